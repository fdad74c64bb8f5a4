package commands

import "github.com/spf13/cobra"

func (c *CLI) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create the project environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Create(cmd.Context(), c.projectDir)
		},
	}
}
