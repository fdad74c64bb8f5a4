package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains OTHER_DIR",
		Short: "Report whether another project is installed in this project's environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := c.app.Contains(cmd.Context(), c.projectDir, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
