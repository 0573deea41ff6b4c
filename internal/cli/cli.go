package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsearch/pkg/buildinfo"
	"github.com/matzehuels/mvnsearch/pkg/config"
	"github.com/matzehuels/mvnsearch/pkg/integrations"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
	"github.com/matzehuels/mvnsearch/pkg/observability"
	"github.com/matzehuels/mvnsearch/pkg/search"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "mvnsearch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Fixed user-facing messages.
const (
	msgNoSearchTerm      = "No search term provided"
	msgNoResults         = "No results found"
	msgAvailableVersions = "Available versions:"
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
	client     *maven.Client
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs an interactive search.
func (c *CLI) RootCommand() *cobra.Command {
	var opts searchOptions

	root := &cobra.Command{
		Use:   "mvnsearch [term]",
		Short: "Search Maven Central and print dependency snippets",
		Long: `mvnsearch searches Maven Central for artifacts and prints the chosen one
as a dependency declaration for Maven, Gradle or sbt.

Search terms are passed to the index as-is, so field queries such as
"g:org.slf4j" or "a:guava" work too.`,
		Example: `  mvnsearch junit
  mvnsearch spring-boot-starter-web -f gradle --non-interactive
  mvnsearch g:org.slf4j -o --tui`,
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) > 0 {
				term = args[0]
			}
			return c.runSearch(cmd, term, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mvnsearch/config.toml)")

	root.Flags().VarP(&opts.format, "format", "f", "output format: maven, gradle, gradlekts, gradlegroovy, sbt")
	root.Flags().BoolVarP(&opts.showVersions, "show-versions", "o", false, "also list every known version")
	root.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "pick the first result without prompting")
	root.Flags().BoolVar(&opts.tui, "tui", false, "pick the result with a full-screen list")
	_ = root.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return search.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	// Register all subcommands
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.mcpCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Setup
// =============================================================================

// setup loads the config file, builds the Maven client and attaches the logger
// to the command context. It runs before every command.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	c.config = cfg

	observability.SetHTTPHooks(newLogHooks(c.Logger))

	c.client = maven.NewClient(maven.Options{
		BaseURL:    cfg.BaseURL,
		HTTPClient: integrations.NewHTTPClient(cfg.ConnectTimeout.Duration, cfg.ReadTimeout.Duration),
		Logger:     c.Logger,
	})
	c.Logger.Debug("configured", "base_url", cfg.BaseURL, "connect_timeout", cfg.ConnectTimeout, "read_timeout", cfg.ReadTimeout)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// service returns a search service over the configured client.
func (c *CLI) service() *search.Service {
	return search.NewService(c.client)
}
