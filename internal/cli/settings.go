package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-monogen/internal/config"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFlag  = "config"
	verboseFlag = "verbose"
	envPrefix   = "MONOGEN"
)

// settings resolves persistent flags, falling back to MONOGEN_* environment variables
type settings struct {
	v *viper.Viper
}

func newSettings(rootCmd *cobra.Command) *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringP(configFlag, "c", "", "Path to monogen.yaml (default: nearest monogen.yaml in current or parent directory)")
	flags.BoolP(verboseFlag, "v", false, "Enable debug logging on stderr")

	_ = v.BindPFlag(configFlag, flags.Lookup(configFlag))
	_ = v.BindPFlag(verboseFlag, flags.Lookup(verboseFlag))

	return &settings{v: v}
}

func (s *settings) configPath() string {
	return s.v.GetString(configFlag)
}

func (s *settings) verbose() bool {
	return s.v.GetBool(verboseFlag)
}

// logger writes diagnostics to the command's stderr
func (s *settings) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if s.verbose() {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// resolveConfigPath returns the explicit config path, made absolute, or the nearest monogen.yaml
func (s *settings) resolveConfigPath(fs filesystem.FileSystem) (string, error) {
	if path := s.configPath(); path != "" {
		if filepath.IsAbs(path) {
			return filepath.Clean(path), nil
		}

		cwd, err := fs.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return filepath.Join(cwd, path), nil
	}

	ws := workspace.New(fs)
	if err := ws.Detect(); err != nil {
		return "", fmt.Errorf("failed to detect workspace: %w (run \"monogen init\" to create one)", err)
	}
	return ws.ConfigPath, nil
}

// loadProject loads the configuration and returns the root project with all components applied
func (s *settings) loadProject(cmd *cobra.Command, fs filesystem.FileSystem) (*project.Project, error) {
	path, err := s.resolveConfigPath(fs)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(fs, path)
	if err != nil {
		return nil, err
	}

	logger := s.logger(cmd)
	logger.Debug("config loaded", "path", path)

	root, err := config.NewProject(fs, cfg, filepath.Dir(path), logger)
	if err != nil {
		return nil, err
	}
	if err := root.Apply(); err != nil {
		return nil, err
	}

	return root, nil
}

// selectProjects returns the root followed by its subprojects, or only the named one
func selectProjects(root *project.Project, name string) ([]*project.Project, error) {
	all := append([]*project.Project{root}, root.Subprojects()...)
	if name == "" {
		return all, nil
	}

	for _, p := range all {
		if p.Name == name {
			return []*project.Project{p}, nil
		}
	}
	return nil, fmt.Errorf("project %s not found in workspace", name)
}

// displayPath renders a project directory relative to the root, "." for the root itself
func displayPath(root *project.Project, p *project.Project) string {
	rel, err := root.RelativePath(p)
	if err != nil {
		return p.OutDir
	}
	return rel
}
