package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsearch/internal/api"
)

// serveCommand creates the serve command for the JSON HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve search as a JSON HTTP API",
		Long: `Serve Maven Central search over HTTP for tool runtimes that do not speak MCP.

Routes:
  GET /search?q=<term>
  GET /versions?groupId=<g>&artifactId=<a>
  GET /format?groupId=<g>&artifactId=<a>&version=<v>&format=<f>
  GET /healthz`,
		Example: `  mvnsearch serve --addr 127.0.0.1:8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.config.ListenAddr
			}
			printInfo(cmd.ErrOrStderr(), "Listening on %s", StyleHighlight.Render(addr))
			return api.New(c.client, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
