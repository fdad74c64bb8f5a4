package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinto/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the project and its dependencies into its environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extras, _ := cmd.Flags().GetStringSlice("extras")
			update, _ := cmd.Flags().GetBool("update")

			return c.app.Install(cmd.Context(), c.projectDir, domain.InstallOptions{
				Extras: extras,
				Update: update,
			})
		},
	}

	cmd.Flags().StringSliceP("extras", "E", nil, "Extra dependency groups to install")
	cmd.Flags().Bool("update", false, "Update the lock file before installing")

	return cmd
}
