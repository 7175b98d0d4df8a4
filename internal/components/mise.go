package components

import (
	"github.com/jakoblorz/go-monogen/internal/project"
)

// Files touched by Mise
const (
	MiseFile      = ".mise.toml"
	MiseLocalFile = ".mise.local.toml"
)

// MiseOptions pins tool versions through mise
type MiseOptions struct {
	NodeVersion string `yaml:"nodeVersion,omitempty"`
	PnpmVersion string `yaml:"pnpmVersion,omitempty"`
	BunVersion  string `yaml:"bunVersion,omitempty"`

	// Tools is overlaid on node, pnpm and bun; its entries win on collision
	Tools map[string]string `yaml:"tools,omitempty"`
}

type miseConfig struct {
	Tools map[string]string `toml:"tools"`
	Env   miseEnv           `toml:"env"`
}

type miseEnv struct {
	PreferWorkspacePackages string `toml:"NPM_CONFIG_PREFER_WORKSPACE_PACKAGES"`
}

// Mise writes .mise.toml and keeps local overrides out of git
type Mise struct {
	opts MiseOptions
}

func NewMise(opts MiseOptions) *Mise {
	return &Mise{opts: opts}
}

func (c *Mise) Name() string {
	return "mise"
}

// ResolvedTools returns the tool map written to .mise.toml
func (c *Mise) ResolvedTools() map[string]string {
	tools := map[string]string{
		"node": stringOr(c.opts.NodeVersion, "lts"),
		"pnpm": stringOr(c.opts.PnpmVersion, "latest"),
		"bun":  stringOr(c.opts.BunVersion, "latest"),
	}
	for name, version := range c.opts.Tools {
		tools[name] = version
	}
	return tools
}

func (c *Mise) Apply(p *project.Project) error {
	cfg := miseConfig{
		Tools: c.ResolvedTools(),
		Env:   miseEnv{PreferWorkspacePackages: "true"},
	}
	if _, err := p.AddTOMLFile(MiseFile, cfg); err != nil {
		return err
	}

	p.Gitignore.AddPatterns(MiseLocalFile)
	return nil
}
