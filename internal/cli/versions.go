package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
)

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "versions <groupId> <artifactId>",
		Short:   "List every known version of an artifact",
		Example: `  mvnsearch versions com.google.guava guava`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, artifactID := args[0], args[1]
			if err := errs.ValidateCoordinate(groupID, artifactID); err != nil {
				return err
			}
			for _, v := range c.service().Versions(cmd.Context(), groupID, artifactID) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
