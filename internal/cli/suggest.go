package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
)

// suggestCommand creates the suggest command.
func (c *CLI) suggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <partial>",
		Short: "Print search suggestions for a partial term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := strings.TrimSpace(args[0])
			if partial == "" {
				return errs.New(errs.ErrCodeInvalidInput, "partial term cannot be empty")
			}
			for _, s := range c.client.Suggest(cmd.Context(), partial) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
