package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var group, artifact string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List coordinates under a group or artifact",
		Long: `List the coordinates Maven Central knows under a group, an artifact, or both.

With only --group, artifacts in that group are listed. Adding --artifact lists
the versions of that artifact as group:artifact:version.`,
		Example: `  mvnsearch browse --group org.slf4j
  mvnsearch browse --group org.slf4j --artifact slf4j-api`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, coord := range c.client.Browse(cmd.Context(), group, artifact) {
				fmt.Fprintln(cmd.OutOrStdout(), coord)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "group ID")
	cmd.Flags().StringVarP(&artifact, "artifact", "a", "", "artifact ID")
	cmd.MarkFlagsOneRequired("group", "artifact")

	return cmd
}
