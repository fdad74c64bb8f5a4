// Package commands implements the CLI commands for pinto.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pinto/internal/build"
	"go.trai.ch/pinto/internal/core/domain"
)

// CLI represents the command line interface for pinto.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	projectDir string
}

// Application represents the application logic interface.
type Application interface {
	Exists(ctx context.Context, dir string) (bool, error)
	Create(ctx context.Context, dir string) error
	Install(ctx context.Context, dir string, opts domain.InstallOptions) error
	Run(ctx context.Context, dir, bin string, args []string) error
	Contains(ctx context.Context, dir, otherDir string) (bool, error)
	Info(ctx context.Context, dir string) (*domain.EnvironmentInfo, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pinto",
		Short:         "Manage poetry and conda project environments",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.projectDir, "project", "C", ".", "Project directory containing pyproject.toml")

	rootCmd.AddCommand(c.newExistsCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newContainsCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
