package components

import (
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/schema"
)

// NxFile is the file written by Nx
const NxFile = "nx.json"

// NxOptions configures the nx task orchestrator
type NxOptions struct {
	// CacheableOperations lists the targets nx may cache. Nil means build and test.
	CacheableOperations []string `yaml:"cacheableOperations,omitempty"`

	// DefaultBase is the branch that affected commands compare against
	DefaultBase string `yaml:"defaultBase,omitempty"`
}

type nxConfig struct {
	Schema             string              `json:"$schema"`
	Extends            string              `json:"extends"`
	TasksRunnerOptions map[string]nxRunner `json:"tasksRunnerOptions"`
	TargetDefaults     nxTargetDefaults    `json:"targetDefaults"`
	Affected           nxAffected          `json:"affected"`
}

type nxRunner struct {
	Runner  string          `json:"runner"`
	Options nxRunnerOptions `json:"options"`
}

type nxRunnerOptions struct {
	CacheableOperations []string `json:"cacheableOperations"`
}

type nxTargetDefaults struct {
	Build  nxTarget `json:"build"`
	Test   nxTarget `json:"test"`
	Deploy nxTarget `json:"deploy"`
}

type nxTarget struct {
	DependsOn []string `json:"dependsOn,omitempty"`
	Inputs    []string `json:"inputs,omitempty"`
	Outputs   []string `json:"outputs,omitempty"`
}

type nxAffected struct {
	DefaultBase string `json:"defaultBase"`
}

// Nx writes nx.json with cache-aware target defaults
type Nx struct {
	opts NxOptions
}

func NewNx(opts NxOptions) *Nx {
	return &Nx{opts: opts}
}

func (c *Nx) Name() string {
	return "nx"
}

func (c *Nx) Apply(p *project.Project) error {
	cacheable := c.opts.CacheableOperations
	if cacheable == nil {
		cacheable = []string{"build", "test"}
	}

	if err := p.AddDevDeps("nx@^20"); err != nil {
		return err
	}

	cfg := nxConfig{
		Schema:  "./node_modules/nx/schemas/nx-schema.json",
		Extends: "nx/presets/npm.json",
		TasksRunnerOptions: map[string]nxRunner{
			"default": {
				Runner:  "nx/tasks-runners/default",
				Options: nxRunnerOptions{CacheableOperations: cacheable},
			},
		},
		TargetDefaults: nxTargetDefaults{
			Build: nxTarget{
				DependsOn: []string{"^build"},
				Inputs: excludeOutputs(
					"test-reports",
					"coverage",
					"build",
					"dist",
					"lib",
					"cdk.out",
				),
				Outputs: []string{
					"{projectRoot}/dist",
					"{projectRoot}/lib",
					"{projectRoot}/cdk.out",
				},
			},
			Test: nxTarget{
				DependsOn: []string{"build"},
				Inputs:    excludeOutputs("coverage", "test-reports"),
				Outputs: []string{
					"{projectRoot}/coverage",
					"{projectRoot}/test-reports",
				},
			},
			Deploy: nxTarget{
				DependsOn: []string{"build"},
			},
		},
		Affected: nxAffected{
			DefaultBase: stringOr(c.opts.DefaultBase, "origin/main"),
		},
	}

	_, err := p.AddJSONFile(NxFile, cfg, schema.Nx)
	return err
}

// excludeOutputs turns output directories into negated nx input globs
func excludeOutputs(dirs ...string) []string {
	inputs := make([]string, len(dirs))
	for i, dir := range dirs {
		inputs[i] = "!{projectRoot}/" + dir + "/**/*"
	}
	return inputs
}
