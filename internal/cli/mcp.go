package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mvnsearch/internal/mcpserver"
)

// mcpCommand creates the mcp command, which serves the search tools on stdio.
func (c *CLI) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve search tools over the Model Context Protocol on stdio",
		Long: `Serve Maven Central search as MCP tools on stdin/stdout.

Tools:
  search               searchTerm -> dependencies
  getArtifactVersions  groupId, artifactId -> versions

Logs go to stderr; stdout carries protocol traffic only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.New(c.client, c.Logger).Run(cmd.Context())
		},
	}
}
