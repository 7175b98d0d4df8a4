package initflow

import (
	"strings"

	"github.com/jakoblorz/go-monogen/internal/components"
	"github.com/jakoblorz/go-monogen/internal/config"
	"github.com/jakoblorz/go-monogen/internal/models"
)

// Component keys offered by the flow
const (
	ComponentPnpmWorkspace = "pnpmWorkspace"
	ComponentNx            = "nx"
	ComponentVscode        = "vscode"
	ComponentMise          = "mise"
	ComponentOxlint        = "oxlint"
	ComponentVitest        = "vitest"
)

// Answers holds what the user picked in the init flow
type Answers struct {
	Name             string
	RootComponents   []string
	SubComponents    []string
	Discover         string
	CoverageProvider string
}

// DefaultAnswers preselects the components of a typical pnpm/nx monorepo
func DefaultAnswers(name string) Answers {
	return Answers{
		Name:             name,
		RootComponents:   []string{ComponentPnpmWorkspace, ComponentNx, ComponentVscode, ComponentMise},
		SubComponents:    []string{ComponentOxlint, ComponentVitest},
		Discover:         "packages/*, examples/*",
		CoverageProvider: string(models.CoverageV8),
	}
}

// Config turns the answers into a monogen.yaml configuration
func (a Answers) Config() *config.Config {
	cfg := &config.Config{
		Name:               strings.TrimSpace(a.Name),
		Components:         selectComponents(a.RootComponents, a.CoverageProvider),
		SubprojectDefaults: selectComponents(a.SubComponents, a.CoverageProvider),
	}

	for _, pattern := range strings.Split(a.Discover, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			cfg.Discover = append(cfg.Discover, pattern)
		}
	}
	if cfg.Discover == nil {
		cfg.Discover = []string{}
	}

	return cfg
}

func selectComponents(keys []string, provider string) config.Components {
	var c config.Components
	for _, key := range keys {
		switch key {
		case ComponentPnpmWorkspace:
			c.PnpmWorkspace = true
		case ComponentNx:
			c.Nx = &components.NxOptions{}
		case ComponentVscode:
			c.Vscode = true
		case ComponentMise:
			c.Mise = &components.MiseOptions{}
		case ComponentOxlint:
			c.Oxlint = &components.OxlintOptions{}
		case ComponentVitest:
			c.Vitest = &components.VitestOptions{}
			if provider != string(models.CoverageV8) {
				c.Vitest.CoverageProvider = models.CoverageProvider(provider)
			}
		}
	}
	return c
}
