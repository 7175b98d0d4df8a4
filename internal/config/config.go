// Package config loads monogen.yaml and turns it into a project tree.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/jakoblorz/go-monogen/internal/components"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when monogen.yaml decodes but fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the content of monogen.yaml
type Config struct {
	// Name of the root project; empty means the root directory name
	Name string `yaml:"name,omitempty"`

	// Tasks seed the root task registry before components run
	Tasks []TaskConfig `yaml:"tasks,omitempty"`

	// Ignore seeds the root .gitignore
	Ignore []string `yaml:"ignore,omitempty"`

	// Components enabled on the root project
	Components Components `yaml:"components,omitempty"`

	// Discover lists globs of package directories. Nil falls back to the
	// workspaces of the root package.json.
	Discover []string `yaml:"discover,omitempty"`

	// SubprojectDefaults are the components of discovered subprojects and
	// of explicit subprojects without a components key
	SubprojectDefaults Components `yaml:"subprojectDefaults,omitempty"`

	// Subprojects declared explicitly; they take precedence over discovered ones with the same outdir
	Subprojects []SubprojectConfig `yaml:"subprojects,omitempty"`
}

// TaskConfig declares a task
type TaskConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Exec        string `yaml:"exec"`
}

// SubprojectConfig declares a subproject
type SubprojectConfig struct {
	Name   string       `yaml:"name,omitempty"`
	OutDir string       `yaml:"outdir"`
	Tasks  []TaskConfig `yaml:"tasks,omitempty"`

	// Components of the subproject; nil means SubprojectDefaults
	Components *Components `yaml:"components,omitempty"`
}

// Components selects the emitters of a project. A nil options pointer disables the
// component; an empty mapping enables it with defaults.
type Components struct {
	PnpmWorkspace bool                      `yaml:"pnpmWorkspace,omitempty"`
	Nx            *components.NxOptions     `yaml:"nx,omitempty"`
	Vscode        bool                      `yaml:"vscode,omitempty"`
	Mise          *components.MiseOptions   `yaml:"mise,omitempty"`
	Oxlint        *components.OxlintOptions `yaml:"oxlint,omitempty"`
	Vitest        *components.VitestOptions `yaml:"vitest,omitempty"`
}

// Default returns the configuration written by monogen init
func Default(name string) *Config {
	return &Config{
		Name:     name,
		Discover: []string{"packages/*", "examples/*"},
		Components: Components{
			PnpmWorkspace: true,
			Nx:            &components.NxOptions{},
			Vscode:        true,
			Mise:          &components.MiseOptions{},
		},
		SubprojectDefaults: Components{
			Oxlint: &components.OxlintOptions{},
			Vitest: &components.VitestOptions{},
		},
	}
}

// Load reads and validates the configuration at path
func Load(fs filesystem.FileSystem, path string) (*Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Encode renders the configuration as YAML
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks constraints yaml decoding cannot express
func (c *Config) Validate() error {
	if err := validateTasks("root", c.Tasks); err != nil {
		return err
	}
	for i, pattern := range c.Ignore {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("%w: ignore[%d] is empty", ErrInvalidConfig, i)
		}
	}
	if err := c.Components.validate("components"); err != nil {
		return err
	}
	if err := c.SubprojectDefaults.validate("subprojectDefaults"); err != nil {
		return err
	}

	outDirs := make(map[string]int)
	for i, sub := range c.Subprojects {
		where := fmt.Sprintf("subprojects[%d]", i)

		dir, err := CleanOutDir(sub.OutDir)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, where, err)
		}
		if prev, ok := outDirs[dir]; ok {
			return fmt.Errorf("%w: %s: outdir %s already used by subprojects[%d]", ErrInvalidConfig, where, dir, prev)
		}
		outDirs[dir] = i

		if err := validateTasks(where, sub.Tasks); err != nil {
			return err
		}
		if sub.Components != nil {
			if err := sub.Components.validate(where + ".components"); err != nil {
				return err
			}
		}
	}

	return nil
}

// CleanOutDir normalizes a subproject outdir, which must stay inside the root
func CleanOutDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("outdir is required")
	}

	clean := path.Clean(strings.ReplaceAll(dir, "\\", "/"))
	switch {
	case path.IsAbs(clean):
		return "", fmt.Errorf("outdir %s must be relative to the root", dir)
	case clean == ".":
		return "", fmt.Errorf("outdir %s is the root itself", dir)
	case clean == ".." || strings.HasPrefix(clean, "../"):
		return "", fmt.Errorf("outdir %s is outside the root", dir)
	}

	return clean, nil
}

func validateTasks(where string, tasks []TaskConfig) error {
	seen := make(map[string]struct{}, len(tasks))
	for i, task := range tasks {
		if strings.TrimSpace(task.Name) == "" {
			return fmt.Errorf("%w: %s.tasks[%d]: name is required", ErrInvalidConfig, where, i)
		}
		if _, ok := seen[task.Name]; ok {
			return fmt.Errorf("%w: %s.tasks[%d]: duplicate task %s", ErrInvalidConfig, where, i, task.Name)
		}
		seen[task.Name] = struct{}{}
	}
	return nil
}

func (c *Components) validate(where string) error {
	if c.Vitest != nil {
		if _, err := models.ParseCoverageProvider(c.Vitest.CoverageProvider.String()); err != nil {
			return fmt.Errorf("%w: %s.vitest: %w", ErrInvalidConfig, where, err)
		}
	}
	return nil
}
