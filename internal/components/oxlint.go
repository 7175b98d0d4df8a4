package components

import (
	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/jakoblorz/go-monogen/internal/schema"
)

// OxlintFile is the file written by Oxlint
const OxlintFile = "oxlint.json"

// Task commands installed by Oxlint
const (
	oxlintCommand    = "oxlint src"
	oxlintFixCommand = "oxlint --fix src"
)

// OxlintOptions configures the oxlint linter
type OxlintOptions struct {
	// Fix makes the lint task apply fixes. Nil means true.
	Fix *bool `yaml:"fix,omitempty"`
}

type oxlintConfig struct {
	Schema         string      `json:"$schema"`
	Rules          oxlintRules `json:"rules"`
	IgnorePatterns []string    `json:"ignorePatterns"`
}

// oxlintRules keeps the emitted rule order stable
type oxlintRules struct {
	NoUnusedVars    string `json:"no-unused-vars"`
	NoUndef         string `json:"no-undef"`
	NoConsole       string `json:"no-console"`
	NoExplicitAnyTS string `json:"@typescript-eslint/no-explicit-any"`
}

// Oxlint writes oxlint.json and replaces eslint with oxlint lint tasks
type Oxlint struct {
	opts OxlintOptions
}

func NewOxlint(opts OxlintOptions) *Oxlint {
	return &Oxlint{opts: opts}
}

func (c *Oxlint) Name() string {
	return "oxlint"
}

func (c *Oxlint) Apply(p *project.Project) error {
	if err := p.AddDevDeps("oxlint@^1"); err != nil {
		return err
	}

	cfg := oxlintConfig{
		Schema: "./node_modules/oxlint/configuration_schema.json",
		Rules: oxlintRules{
			NoUnusedVars:    "warn",
			NoUndef:         "error",
			NoConsole:       "warn",
			NoExplicitAnyTS: "warn",
		},
		IgnorePatterns: []string{
			"lib/**",
			"dist/**",
			"node_modules/**",
			"coverage/**",
			"*.js",
			"*.d.ts",
		},
	}
	if _, err := p.AddJSONFile(OxlintFile, cfg, schema.Oxlint); err != nil {
		return err
	}

	lintCommand := oxlintCommand
	if boolOr(c.opts.Fix, true) {
		lintCommand = oxlintFixCommand
	}

	if _, ok := p.Tasks.Find("eslint"); ok {
		p.Tasks.Remove("eslint")
		p.Logger().Debug("eslint task removed", "project", p.Name)
	}

	if _, err := p.Tasks.Define("lint", "Lint with oxlint", lintCommand); err != nil {
		return err
	}
	if _, err := p.Tasks.Define("lint:fix", "Lint and fix with oxlint", oxlintFixCommand); err != nil {
		return err
	}

	return nil
}
