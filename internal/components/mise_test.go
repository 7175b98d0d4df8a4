package components

import (
	"strings"
	"testing"

	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

type decodedMise struct {
	Tools map[string]string `toml:"tools"`
	Env   map[string]string `toml:"env"`
}

func TestMise_Defaults(t *testing.T) {
	p := newMonorepo(t)
	require.NoError(t, NewMise(MiseOptions{}).Apply(p))

	data := render(t, p, MiseFile)
	require.True(t, strings.HasPrefix(string(data), "# "+project.GeneratedMarker))

	var decoded decodedMise
	require.NoError(t, toml.Unmarshal(data, &decoded))
	require.Equal(t, map[string]string{"node": "lts", "pnpm": "latest", "bun": "latest"}, decoded.Tools)
	require.Equal(t, map[string]string{"NPM_CONFIG_PREFER_WORKSPACE_PACKAGES": "true"}, decoded.Env)

	require.Equal(t, []string{".mise.local.toml"}, p.Gitignore.Patterns())
}

func TestMise_ToolsOverlay(t *testing.T) {
	c := NewMise(MiseOptions{Tools: map[string]string{"node": "20", "python": "3.12"}})

	require.Equal(t, map[string]string{
		"node":   "20",
		"pnpm":   "latest",
		"bun":    "latest",
		"python": "3.12",
	}, c.ResolvedTools())
}

func TestMise_ToolsWinOverVersionOptions(t *testing.T) {
	c := NewMise(MiseOptions{
		NodeVersion: "18",
		PnpmVersion: "9",
		Tools:       map[string]string{"pnpm": "10"},
	})

	tools := c.ResolvedTools()
	require.Equal(t, "18", tools["node"])
	require.Equal(t, "10", tools["pnpm"])
	require.Equal(t, "latest", tools["bun"])
}

func TestMise_ApplyTwiceIsStable(t *testing.T) {
	p := newMonorepo(t)
	c := NewMise(MiseOptions{Tools: map[string]string{"go": "latest", "python": "3.12", "rust": "1"}})

	require.NoError(t, c.Apply(p))
	first := render(t, p, MiseFile)
	require.NoError(t, c.Apply(p))

	require.Equal(t, first, render(t, p, MiseFile))
	require.Equal(t, []string{".mise.local.toml"}, p.Gitignore.Patterns())
}
