package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIgnoreFile_AddPatternsDedupes(t *testing.T) {
	g := NewIgnoreFile()
	g.AddPatterns(".mise.local.toml", "  ", "node_modules/")
	g.AddPatterns(".mise.local.toml")

	require.Equal(t, []string{".mise.local.toml", "node_modules/"}, g.Patterns())
}

func TestIgnoreFile_Merge(t *testing.T) {
	g := NewIgnoreFile()
	g.AddPatterns("node_modules/", ".mise.local.toml")

	require.Equal(t, "node_modules/\n.mise.local.toml\n", string(g.Merge(nil)))

	existing := []byte("# user rules\nnode_modules/\ncoverage")
	merged := g.Merge(existing)
	require.Equal(t, "# user rules\nnode_modules/\ncoverage\n.mise.local.toml\n", string(merged))

	// merging again leaves content untouched
	require.Equal(t, string(merged), string(g.Merge(merged)))
}

func TestIgnoreMatcher(t *testing.T) {
	m := NewIgnoreMatcher([]byte(".vscode/\n*.local.toml\n"), "/workspace")

	require.True(t, m.Ignored(".vscode/settings.json", false))
	require.True(t, m.Ignored(".mise.local.toml", false))
	require.False(t, m.Ignored(".mise.toml", false))
	require.False(t, m.Ignored("nx.json", false))

	var nilMatcher *IgnoreMatcher
	require.False(t, nilMatcher.Ignored("nx.json", false))
}
