package components

import (
	"strings"
	"testing"

	"github.com/jakoblorz/go-monogen/internal/project"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPnpmWorkspace_ListsSubprojectsInOrder(t *testing.T) {
	root := newMonorepo(t, "packages/projen-constructs", "examples/app-a", "examples/shared-lib")
	require.NoError(t, NewPnpmWorkspace().Apply(root))

	data := render(t, root, PnpmWorkspaceFile)
	require.True(t, strings.HasPrefix(string(data), "# "+project.GeneratedMarker))

	var decoded struct {
		Packages []string `yaml:"packages"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, []string{"packages/projen-constructs", "examples/app-a", "examples/shared-lib"}, decoded.Packages)
}

func TestPnpmWorkspace_NoSubprojects(t *testing.T) {
	root := newMonorepo(t)
	require.NoError(t, NewPnpmWorkspace().Apply(root))

	data := render(t, root, PnpmWorkspaceFile)
	require.Contains(t, string(data), "packages: []\n")
}

func TestPnpmWorkspace_ApplyTwiceIsStable(t *testing.T) {
	root := newMonorepo(t, "a", "b")
	c := NewPnpmWorkspace()

	require.NoError(t, c.Apply(root))
	first := render(t, root, PnpmWorkspaceFile)
	require.NoError(t, c.Apply(root))
	second := render(t, root, PnpmWorkspaceFile)

	require.Equal(t, first, second)
	require.Len(t, root.Files(), 1)
}
