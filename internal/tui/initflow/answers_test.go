package initflow

import (
	"testing"

	"github.com/jakoblorz/go-monogen/internal/config"
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/stretchr/testify/require"
)

func TestDefaultAnswersMatchDefaultConfig(t *testing.T) {
	require.Equal(t, config.Default("repo"), DefaultAnswers("repo").Config())
}

func TestAnswersConfig(t *testing.T) {
	a := Answers{
		Name:             "  shop  ",
		RootComponents:   []string{ComponentNx},
		SubComponents:    []string{ComponentVitest},
		Discover:         " apps/* ,, libs/*",
		CoverageProvider: string(models.CoverageIstanbul),
	}

	cfg := a.Config()
	require.Equal(t, "shop", cfg.Name)
	require.Equal(t, []string{"apps/*", "libs/*"}, cfg.Discover)
	require.NotNil(t, cfg.Components.Nx)
	require.False(t, cfg.Components.PnpmWorkspace)
	require.Nil(t, cfg.SubprojectDefaults.Oxlint)
	require.Equal(t, models.CoverageIstanbul, cfg.SubprojectDefaults.Vitest.CoverageProvider)

	require.NoError(t, cfg.Validate())
}

func TestAnswersConfig_NoGlobsDisablesDiscovery(t *testing.T) {
	cfg := Answers{Name: "x"}.Config()
	require.NotNil(t, cfg.Discover)
	require.Empty(t, cfg.Discover)
}

func TestRenderSuccess(t *testing.T) {
	out := RenderSuccess("/repo/monogen.yaml")
	require.Contains(t, out, "Configuration Created")
	require.Contains(t, out, "Wrote /repo/monogen.yaml")
}
