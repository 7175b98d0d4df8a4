package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-monogen/internal/config"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/tui/initflow"
	"github.com/jakoblorz/go-monogen/internal/workspace"
	"github.com/spf13/cobra"
)

// ErrConfigExists is returned by init when the configuration file is already present
var ErrConfigExists = errors.New("configuration already exists")

// InitCommand handles the init command
type InitCommand struct {
	fs       filesystem.FileSystem
	settings *settings
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, s *settings) *cobra.Command {
	cmd := &InitCommand{fs: fs, settings: s}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter monogen.yaml",
		Long: `Creates monogen.yaml in the current directory.

Without --yes an interactive form asks which components to enable.`,
		Example: `  # Interactive
  monogen init

  # Accept the defaults
  monogen init --yes --name my-monorepo`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("yes", "y", false, "Write the default configuration without prompting")
	cobraCmd.Flags().String("name", "", "Project name (default: current directory name)")
	cobraCmd.Flags().Bool("force", false, "Overwrite an existing configuration")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	name, _ := cmd.Flags().GetString("name")
	force, _ := cmd.Flags().GetBool("force")

	cwd, err := c.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	target := filepath.Join(cwd, workspace.ConfigFileName)
	if path := c.settings.configPath(); path != "" {
		target = path
		if !filepath.IsAbs(target) {
			target = filepath.Join(cwd, target)
		}
	}

	if c.fs.Exists(target) && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, target)
	}

	if name == "" {
		name = filepath.Base(cwd)
	}

	var cfg *config.Config
	if yes {
		cfg = config.Default(name)
	} else {
		cfg, err = initflow.NewFlow(name).Run()
		if err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		if cfg == nil {
			return nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := cfg.Encode()
	if err != nil {
		return err
	}

	if err := c.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := c.fs.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), initflow.RenderSuccess(target))

	return nil
}
