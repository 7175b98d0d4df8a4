package components

import (
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/schema"
)

// VitestFile is the file written by Vitest
const VitestFile = "vitest.config.json"

const vitestRunCommand = "vitest run --passWithNoTests"

// VitestOptions configures the vitest test runner
type VitestOptions struct {
	// Coverage enables coverage reporting. Nil means true.
	Coverage *bool `yaml:"coverage,omitempty"`

	// CoverageProvider selects the coverage engine; empty means v8
	CoverageProvider models.CoverageProvider `yaml:"coverageProvider,omitempty"`
}

type vitestConfig struct {
	Test vitestTestConfig `json:"test"`
}

type vitestTestConfig struct {
	Globals     bool            `json:"globals"`
	Environment string          `json:"environment"`
	Include     []string        `json:"include"`
	Coverage    *vitestCoverage `json:"coverage,omitempty"`
}

type vitestCoverage struct {
	Provider         models.CoverageProvider `json:"provider"`
	Reporter         []string                `json:"reporter"`
	ReportsDirectory string                  `json:"reportsDirectory"`
}

// Vitest writes vitest.config.json and points the test tasks at vitest
type Vitest struct {
	opts VitestOptions
}

func NewVitest(opts VitestOptions) *Vitest {
	return &Vitest{opts: opts}
}

func (c *Vitest) Name() string {
	return "vitest"
}

func (c *Vitest) Apply(p *project.Project) error {
	provider, err := models.ParseCoverageProvider(c.opts.CoverageProvider.String())
	if err != nil {
		return err
	}
	coverage := boolOr(c.opts.Coverage, true)

	// The v8 coverage package is installed for every provider
	if err := p.AddDevDeps("vitest@^3", "@vitest/coverage-v8@^3"); err != nil {
		return err
	}

	cfg := vitestConfig{
		Test: vitestTestConfig{
			Globals:     true,
			Environment: "node",
			Include:     []string{"src/**/*.test.ts", "test/**/*.test.ts"},
		},
	}
	if coverage {
		cfg.Test.Coverage = &vitestCoverage{
			Provider:         provider,
			Reporter:         []string{"text", "json", "html", "lcov"},
			ReportsDirectory: "coverage",
		}
	}
	if _, err := p.AddJSONFile(VitestFile, cfg, schema.Vitest); err != nil {
		return err
	}

	if task, ok := p.Tasks.Find("test"); ok {
		task.Reset(vitestRunCommand)
	} else if _, err := p.Tasks.Define("test", "Run tests with Vitest", vitestRunCommand); err != nil {
		return err
	}

	if _, err := p.Tasks.Define("test:watch", "Run tests in watch mode", "vitest"); err != nil {
		return err
	}

	if coverage {
		if _, err := p.Tasks.Define("test:coverage", "Run tests with coverage", "vitest run --coverage"); err != nil {
			return err
		}
	} else {
		p.Tasks.Remove("test:coverage")
	}

	return nil
}
