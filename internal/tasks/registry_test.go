package tasks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_DefineAndFind(t *testing.T) {
	r := NewRegistry()

	_, err := r.Define("build", "Full release build", "tsc --build")
	require.NoError(t, err)

	task, ok := r.Find("build")
	require.True(t, ok)
	require.Equal(t, "tsc --build", task.Command)
	require.Equal(t, "Full release build", task.Description)

	_, ok = r.Find("missing")
	require.False(t, ok)
}

func TestRegistry_DefineReplacesAndMovesToEnd(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Define("lint", "Lint with eslint", "eslint src")
	_, _ = r.Define("build", "Build", "tsc")

	_, err := r.Define("lint", "Lint with oxlint", "oxlint src")
	require.NoError(t, err)

	require.Equal(t, []string{"build", "lint"}, r.Names())
	task, _ := r.Find("lint")
	require.Equal(t, "oxlint src", task.Command)
	require.Equal(t, "Lint with oxlint", task.Description)
	require.Equal(t, 2, r.Len())
}

func TestRegistry_ResetKeepsPosition(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Define("test", "Run tests", "jest")
	_, _ = r.Define("build", "Build", "tsc")

	task, ok := r.Find("test")
	require.True(t, ok)
	task.Reset("vitest run --passWithNoTests")

	require.Equal(t, []string{"test", "build"}, r.Names())
	again, _ := r.Find("test")
	require.Equal(t, "vitest run --passWithNoTests", again.Command)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Define("eslint", "Runs eslint", "eslint --ext .ts src")
	_, _ = r.Define("build", "Build", "tsc")

	require.True(t, r.Remove("eslint"))
	require.False(t, r.Remove("eslint"))
	require.Equal(t, []string{"build"}, r.Names())

	empty := NewRegistry()
	require.False(t, empty.Remove("eslint"))
}

func TestRegistry_DefineRequiresName(t *testing.T) {
	r := NewRegistry()
	_, err := r.Define("", "nothing", "true")
	require.Error(t, err)
	require.Equal(t, 0, r.Len())
}

func TestRegistry_AllInOrder(t *testing.T) {
	r := NewRegistry()
	_, _ = r.Define("test", "", "vitest run")
	_, _ = r.Define("test:watch", "", "vitest")
	_, _ = r.Define("test:coverage", "", "vitest run --coverage")

	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, "test", all[0].Name)
	require.Equal(t, "test:watch", all[1].Name)
	require.Equal(t, "test:coverage", all[2].Name)
}
