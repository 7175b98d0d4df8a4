package config

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jakoblorz/go-monogen/internal/components"
	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
name: projen-monorepo
tasks:
  - name: build
    description: Build all packages
    exec: nx run-many --target=build
ignore:
  - node_modules/
components:
  pnpmWorkspace: true
  nx:
    defaultBase: origin/develop
  vscode: true
  mise:
    nodeVersion: "20"
    tools:
      python: 3.12
discover:
  - packages/*
subprojectDefaults:
  oxlint: {}
  vitest:
    coverageProvider: istanbul
subprojects:
  - name: app-a
    outdir: examples/app-a
    components:
      vitest:
        coverage: false
  - outdir: examples/shared-lib
`

func TestParse_Sample(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	require.Equal(t, "projen-monorepo", cfg.Name)
	require.Len(t, cfg.Tasks, 1)
	require.Equal(t, "nx run-many --target=build", cfg.Tasks[0].Exec)

	require.True(t, cfg.Components.PnpmWorkspace)
	require.True(t, cfg.Components.Vscode)
	require.Equal(t, "origin/develop", cfg.Components.Nx.DefaultBase)
	require.Nil(t, cfg.Components.Nx.CacheableOperations)
	require.Equal(t, map[string]string{"python": "3.12"}, cfg.Components.Mise.Tools)
	require.Nil(t, cfg.Components.Oxlint)

	require.NotNil(t, cfg.SubprojectDefaults.Oxlint)
	require.Nil(t, cfg.SubprojectDefaults.Oxlint.Fix)
	require.Equal(t, models.CoverageIstanbul, cfg.SubprojectDefaults.Vitest.CoverageProvider)

	require.Len(t, cfg.Subprojects, 2)
	require.False(t, *cfg.Subprojects[0].Components.Vitest.Coverage)
	require.Nil(t, cfg.Subprojects[1].Components)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, cfg.Name)
	require.Nil(t, cfg.Discover)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{
			name:    "unknown key",
			content: "name: x\ncomponent: {}\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "unknown component option",
			content: "components:\n  nx:\n    base: main\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "duplicate outdir",
			content: "subprojects:\n  - outdir: packages/a\n  - outdir: ./packages/a/\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "outdir outside root",
			content: "subprojects:\n  - outdir: ../elsewhere\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "missing outdir",
			content: "subprojects:\n  - name: a\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "unnamed task",
			content: "tasks:\n  - exec: echo\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "duplicate task",
			content: "subprojects:\n  - outdir: a\n    tasks:\n      - {name: t, exec: a}\n      - {name: t, exec: b}\n",
			target:  ErrInvalidConfig,
		},
		{
			name:    "bad provider",
			content: "subprojectDefaults:\n  vitest:\n    coverageProvider: c8\n",
			target:  models.ErrUnknownCoverageProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/workspace/monogen.yaml", []byte("name: repo\n"))

	cfg, err := Load(mfs, "/workspace/monogen.yaml")
	require.NoError(t, err)
	require.Equal(t, "repo", cfg.Name)

	_, err = Load(mfs, "/workspace/missing.yaml")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDefault_RoundTrip(t *testing.T) {
	data, err := Default("my-monorepo").Encode()
	require.NoError(t, err)

	want := `name: my-monorepo
components:
  pnpmWorkspace: true
  nx: {}
  vscode: true
  mise: {}
discover:
  - packages/*
  - examples/*
subprojectDefaults:
  oxlint: {}
  vitest: {}
`
	require.Equal(t, want, string(data))

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, Default("my-monorepo"), cfg)
}

func TestCleanOutDir(t *testing.T) {
	dir, err := CleanOutDir(`examples\app-a\`)
	require.NoError(t, err)
	require.Equal(t, "examples/app-a", dir)

	for _, bad := range []string{"", " ", ".", "/abs", "..", "../x"} {
		_, err := CleanOutDir(bad)
		require.Error(t, err, bad)
	}
}

func TestComponentsOptionsDecodeIntoEmitters(t *testing.T) {
	cfg, err := Parse([]byte("components:\n  oxlint:\n    fix: false\n"))
	require.NoError(t, err)
	require.Equal(t, &components.OxlintOptions{Fix: components.Bool(false)}, cfg.Components.Oxlint)
}
