package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run BIN [ARGS...]",
		Short: "Run a command inside the project environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), c.projectDir, args[0], args[1:])
		},
	}

	// Everything after BIN belongs to the command being run.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
