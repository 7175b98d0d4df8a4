package cli

import (
	"fmt"

	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monogen",
		Short: "Generate monorepo configuration from monogen.yaml",
		Long: `A CLI tool for generating the configuration files of pnpm/nx monorepos.

monogen reads monogen.yaml, applies the configured components to the root
project and each subproject, and writes pnpm-workspace.yaml, nx.json,
oxlint.json, vitest.config.json, .vscode/settings.json and .mise.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	s := newSettings(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(NewSynthCommand(fs, s))
	rootCmd.AddCommand(NewTasksCommand(fs, s))
	rootCmd.AddCommand(NewDepsCommand(fs, s))
	rootCmd.AddCommand(NewInitCommand(fs, s))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
