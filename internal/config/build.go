package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-monogen/internal/components"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/workspace"
)

// NewProject builds the project tree described by cfg, rooted at rootDir.
// Components are registered but not applied.
func NewProject(fs filesystem.FileSystem, cfg *Config, rootDir string, logger *slog.Logger) (*project.Project, error) {
	if logger == nil {
		logger = slog.Default()
	}

	root, err := project.New(cfg.Name, rootDir, project.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if err := seedTasks(root, cfg.Tasks); err != nil {
		return nil, err
	}
	root.Gitignore.AddPatterns(cfg.Ignore...)
	addComponents(root, cfg.Components)

	explicit := make(map[string]struct{}, len(cfg.Subprojects))
	for _, sc := range cfg.Subprojects {
		dir, err := CleanOutDir(sc.OutDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		sub, err := root.AddSubproject(sc.Name, filepath.FromSlash(dir))
		if err != nil {
			return nil, err
		}
		explicit[sub.OutDir] = struct{}{}

		if err := seedTasks(sub, sc.Tasks); err != nil {
			return nil, err
		}
		if sc.Components != nil {
			addComponents(sub, *sc.Components)
		} else {
			addComponents(sub, cfg.SubprojectDefaults)
		}
	}

	discovered, err := discover(fs, cfg, root.OutDir)
	if err != nil {
		return nil, err
	}
	for _, pkg := range discovered {
		if _, ok := explicit[pkg.Path]; ok {
			continue
		}

		sub, err := root.AddSubproject(pkg.Name, pkg.Path)
		if err != nil {
			return nil, err
		}
		addComponents(sub, cfg.SubprojectDefaults)
		logger.Debug("subproject discovered", "name", sub.Name, "path", sub.OutDir)
	}

	return root, nil
}

func discover(fs filesystem.FileSystem, cfg *Config, rootDir string) ([]*workspace.Package, error) {
	ws := workspace.New(fs)
	ws.RootPath = rootDir

	patterns := cfg.Discover
	if patterns == nil {
		fromManifest, err := ws.ManifestWorkspaces()
		if err != nil {
			return nil, err
		}
		patterns = fromManifest
	}

	packages, err := ws.Discover(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover subprojects: %w", err)
	}
	return packages, nil
}

func seedTasks(p *project.Project, tasks []TaskConfig) error {
	for _, task := range tasks {
		if _, err := p.Tasks.Define(task.Name, task.Description, task.Exec); err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}
	}
	return nil
}

// addComponents registers the enabled components in a fixed order
func addComponents(p *project.Project, c Components) {
	if c.PnpmWorkspace {
		p.AddComponent(components.NewPnpmWorkspace())
	}
	if c.Nx != nil {
		p.AddComponent(components.NewNx(*c.Nx))
	}
	if c.Vscode {
		p.AddComponent(components.NewVscodeSettings())
	}
	if c.Mise != nil {
		p.AddComponent(components.NewMise(*c.Mise))
	}
	if c.Oxlint != nil {
		p.AddComponent(components.NewOxlint(*c.Oxlint))
	}
	if c.Vitest != nil {
		p.AddComponent(components.NewVitest(*c.Vitest))
	}
}
