package project

import (
	"bytes"
	"path"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// IgnoreFileName is the ignore file maintained for each project
const IgnoreFileName = ".gitignore"

// IgnoreFile collects patterns for a project's .gitignore
type IgnoreFile struct {
	patterns []string
}

// NewIgnoreFile creates an empty IgnoreFile
func NewIgnoreFile() *IgnoreFile {
	return &IgnoreFile{}
}

// AddPatterns appends patterns, skipping blanks and ones already present
func (g *IgnoreFile) AddPatterns(patterns ...string) {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || g.has(pattern) {
			continue
		}
		g.patterns = append(g.patterns, pattern)
	}
}

func (g *IgnoreFile) has(pattern string) bool {
	for _, p := range g.patterns {
		if p == pattern {
			return true
		}
	}
	return false
}

// Patterns returns the collected patterns in insertion order
func (g *IgnoreFile) Patterns() []string {
	out := make([]string, len(g.patterns))
	copy(out, g.patterns)
	return out
}

// Merge returns existing with every missing pattern appended.
// Existing lines are kept verbatim; when nothing is missing existing is returned unchanged.
func (g *IgnoreFile) Merge(existing []byte) []byte {
	present := make(map[string]struct{})
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = struct{}{}
	}

	var missing []string
	for _, pattern := range g.patterns {
		if _, ok := present[pattern]; !ok {
			missing = append(missing, pattern)
		}
	}
	if len(missing) == 0 {
		return existing
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	for _, pattern := range missing {
		buf.WriteString(pattern)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// IgnoreMatcher answers whether paths are excluded by a .gitignore
type IgnoreMatcher struct {
	ignore gitignore.GitIgnore
}

// NewIgnoreMatcher parses .gitignore content rooted at base
func NewIgnoreMatcher(content []byte, base string) *IgnoreMatcher {
	return &IgnoreMatcher{
		ignore: gitignore.New(bytes.NewReader(content), base, nil),
	}
}

// Ignored reports whether the slash-separated relative path, or any of its
// parent directories, is ignored.
func (m *IgnoreMatcher) Ignored(rel string, isDir bool) bool {
	if m == nil || m.ignore == nil {
		return false
	}

	rel = path.Clean(rel)
	parts := strings.Split(rel, "/")
	for i := 1; i < len(parts); i++ {
		if m.matches(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}

	return m.matches(rel, isDir)
}

func (m *IgnoreMatcher) matches(rel string, isDir bool) bool {
	match := m.ignore.Relative(rel, isDir)
	return match != nil && match.Ignore()
}
