package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// DependencyListModel - Interactive dependency selection
// =============================================================================

// DependencyListModel is the bubbletea model for picking one search result.
type DependencyListModel struct {
	Term     string
	Deps     []maven.Dependency
	Cursor   int
	Selected *maven.Dependency
	Height   int
	Offset   int
}

// NewDependencyListModel creates a new dependency list model.
func NewDependencyListModel(term string, deps []maven.Dependency) DependencyListModel {
	return DependencyListModel{
		Term:   term,
		Deps:   deps,
		Height: 15,
	}
}

func (m DependencyListModel) Init() tea.Cmd {
	return nil
}

func (m DependencyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Deps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Deps) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		case "enter":
			if len(m.Deps) == 0 {
				return m, tea.Quit
			}
			dep := m.Deps[m.Cursor]
			m.Selected = &dep
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DependencyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Select Dependency for %q", m.Term)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Deps))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Deps[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		version := "—"
		if len(d.Versions) > 0 {
			version = d.Versions[0]
		}
		packaging := d.Packaging
		if packaging == "" {
			packaging = "—"
		}
		rows = append(rows, []string{cursor, d.GroupID, d.ArtifactID, version, packaging})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Group", "Artifact", "Version", "Packaging").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Deps))))

	return b.String()
}

// pickDependency runs the full-screen picker on the command's terminal.
func pickDependency(cmd *cobra.Command, results searchResults) (maven.Dependency, bool, error) {
	p := tea.NewProgram(
		NewDependencyListModel(results.term, results.deps),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	finalModel, err := p.Run()
	if err != nil {
		return maven.Dependency{}, false, err
	}

	fm, ok := finalModel.(DependencyListModel)
	if !ok || fm.Selected == nil {
		printDetail(cmd.ErrOrStderr(), "No selection made")
		return maven.Dependency{}, false, nil
	}
	return *fm.Selected, true, nil
}
