package components

import (
	"github.com/jakoblorz/go-monogen/internal/project"
)

// PnpmWorkspaceFile is the file written by PnpmWorkspace
const PnpmWorkspaceFile = "pnpm-workspace.yaml"

type pnpmWorkspaceConfig struct {
	Packages []string `yaml:"packages"`
}

// PnpmWorkspace lists every subproject in pnpm-workspace.yaml
type PnpmWorkspace struct{}

func NewPnpmWorkspace() *PnpmWorkspace {
	return &PnpmWorkspace{}
}

func (c *PnpmWorkspace) Name() string {
	return "pnpm-workspace"
}

func (c *PnpmWorkspace) Apply(p *project.Project) error {
	packages, err := subprojectPaths(p)
	if err != nil {
		return err
	}

	_, err = p.AddYAMLFile(PnpmWorkspaceFile, pnpmWorkspaceConfig{Packages: packages})
	return err
}
