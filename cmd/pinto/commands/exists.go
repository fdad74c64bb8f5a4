package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists",
		Short: "Report whether the project environment has been created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exists, err := c.app.Exists(cmd.Context(), c.projectDir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}
