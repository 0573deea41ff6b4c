package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
	"github.com/matzehuels/mvnsearch/pkg/search"
)

type searchOptions struct {
	format         search.Format
	showVersions   bool
	nonInteractive bool
	tui            bool
}

// applySearchDefaults fills options the user did not set on the command line
// from the config file.
func (c *CLI) applySearchDefaults(cmd *cobra.Command, opts *searchOptions) error {
	flags := cmd.Flags()
	if !flags.Changed("format") {
		f, err := search.ParseFormat(c.config.Format)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		opts.format = f
	}
	if !flags.Changed("show-versions") {
		opts.showVersions = c.config.ShowVersions
	}
	return nil
}

// searchResults is the outcome of one search, handed to the selection step.
type searchResults struct {
	term string
	deps []maven.Dependency
}

// at returns the dependency for a 1-based choice.
func (r searchResults) at(choice int) (maven.Dependency, bool) {
	if choice < 1 || choice > len(r.deps) {
		return maven.Dependency{}, false
	}
	return r.deps[choice-1], true
}

// runSearch searches for term, lets the user pick a result and prints its snippet.
func (c *CLI) runSearch(cmd *cobra.Command, term string, opts searchOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()
	svc := c.service()

	term = strings.TrimSpace(term)
	if term == "" {
		fmt.Fprintln(out, msgNoSearchTerm)
		return nil
	}
	if err := c.applySearchDefaults(cmd, &opts); err != nil {
		return err
	}

	prog := newProgress(logger)
	results := searchResults{term: term, deps: c.withSpinner(cmd, opts, "Searching Maven Central...", func() []maven.Dependency {
		return svc.Search(ctx, term)
	})}
	prog.done(fmt.Sprintf("Found %d results for %q", len(results.deps), term))

	if len(results.deps) == 0 {
		fmt.Fprintln(out, msgNoResults)
		return nil
	}

	for _, line := range svc.FormatSearchResults(results.deps) {
		fmt.Fprintln(out, line)
	}

	dep, ok, err := c.selectDependency(cmd, results, opts)
	if err != nil {
		if errs.Is(err, errs.ErrCodeInvalidSelection) {
			logger.Error("invalid selection", "err", errs.UserMessage(err))
			return nil
		}
		return err
	}
	if !ok {
		logger.Debug("no dependency selected")
		return nil
	}

	fmt.Fprintln(out, svc.FormatDependency(dep, opts.format))

	if opts.showVersions {
		versions := svc.Versions(ctx, dep.GroupID, dep.ArtifactID)
		fmt.Fprintln(out, msgAvailableVersions)
		for _, v := range versions {
			fmt.Fprintf(out, "- %s\n", v)
		}
	}
	return nil
}

// selectDependency picks one of results. It returns ok=false when the choice is
// out of range or the picker was closed without a selection.
func (c *CLI) selectDependency(cmd *cobra.Command, results searchResults, opts searchOptions) (maven.Dependency, bool, error) {
	switch {
	case opts.nonInteractive:
		return results.deps[0], true, nil
	case opts.tui:
		return pickDependency(cmd, results)
	default:
		choice, err := promptSelection(cmd.InOrStdin(), cmd.OutOrStdout(), len(results.deps))
		if err != nil {
			return maven.Dependency{}, false, err
		}
		dep, ok := results.at(choice)
		return dep, ok, nil
	}
}

// promptSelection asks for a 1-based index and reads one line from in.
func promptSelection(in io.Reader, out io.Writer, n int) (int, error) {
	fmt.Fprintf(out, "Select dependency (1-%d): ", n)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, errs.Wrap(errs.ErrCodeInvalidSelection, err, "read selection")
	}
	return parseSelection(line)
}

func parseSelection(s string) (int, error) {
	s = strings.TrimSpace(s)
	choice, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidSelection, err, "%q is not a number", s)
	}
	return choice, nil
}

// withSpinner runs fn behind a spinner on stderr unless output is meant for scripts.
func (c *CLI) withSpinner(cmd *cobra.Command, opts searchOptions, message string, fn func() []maven.Dependency) []maven.Dependency {
	if opts.nonInteractive {
		return fn()
	}
	s := newSpinnerWithContext(cmd.Context(), cmd.ErrOrStderr(), message)
	s.Start()
	defer s.Stop()
	return fn()
}
