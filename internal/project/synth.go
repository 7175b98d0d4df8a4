package project

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/jakoblorz/go-monogen/internal/filesystem"
	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/jakoblorz/go-monogen/internal/schema"
)

// Paths of the manifests written next to each project's generated files
const (
	TasksManifestPath = ".monogen/tasks.json"
	DepsManifestPath  = ".monogen/deps.json"
)

// FileStatus describes what synthesis did with a file
type FileStatus string

const (
	StatusCreated   FileStatus = "created"
	StatusUpdated   FileStatus = "updated"
	StatusUnchanged FileStatus = "unchanged"
)

// FileResult is the outcome for one synthesized file
type FileResult struct {
	Project string
	Path    string
	Status  FileStatus
}

// SynthReport lists every file touched by a synthesis pass
type SynthReport struct {
	DryRun   bool
	Files    []FileResult
	Warnings []string
}

// Changed returns the results that created or updated a file
func (r *SynthReport) Changed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Status != StatusUnchanged {
			out = append(out, f)
		}
	}
	return out
}

// SynthOption configures a synthesis pass.
type SynthOption func(*synthesizer)

// WithDryRun reports what would change without writing anything.
func WithDryRun(enabled bool) SynthOption {
	return func(s *synthesizer) {
		s.dryRun = enabled
	}
}

type synthesizer struct {
	fs     filesystem.FileSystem
	dryRun bool
	logger *slog.Logger
	report *SynthReport
}

type tasksManifest struct {
	Tasks map[string]*models.Task `json:"tasks"`
}

type depsManifest struct {
	Dependencies []*models.Dependency `json:"dependencies"`
}

// Synth writes the generated files of p and all its subprojects.
// Call Apply first; Synth only serializes what components registered.
func (p *Project) Synth(fs filesystem.FileSystem, options ...SynthOption) (*SynthReport, error) {
	s := &synthesizer{
		fs:     fs,
		logger: p.logger,
		report: &SynthReport{},
	}
	for _, option := range options {
		option(s)
	}
	s.report.DryRun = s.dryRun

	if err := s.synthProject(p); err != nil {
		return nil, err
	}

	return s.report, nil
}

func (s *synthesizer) synthProject(p *Project) error {
	var generated []string

	for _, f := range p.files {
		data, err := f.Render()
		if err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}

		if f.Schema != "" {
			if err := schema.Validate(f.Schema, data); err != nil {
				return fmt.Errorf("project %s: %s: %w", p.Name, f.Path, err)
			}
		}

		if err := s.write(p, f.Path, data); err != nil {
			return err
		}
		generated = append(generated, f.Path)
	}

	if err := s.writeManifests(p); err != nil {
		return err
	}
	generated = append(generated, TasksManifestPath, DepsManifestPath)

	ignoreContent, err := s.writeIgnoreFile(p)
	if err != nil {
		return err
	}
	s.warnIgnored(p, ignoreContent, generated)

	for _, sub := range p.subprojects {
		if err := s.synthProject(sub); err != nil {
			return err
		}
	}

	return nil
}

func (s *synthesizer) writeManifests(p *Project) error {
	taskMap := make(map[string]*models.Task, p.Tasks.Len())
	for _, task := range p.Tasks.All() {
		taskMap[task.Name] = task
	}

	manifests := []*File{
		{Path: TasksManifestPath, Format: models.FormatJSON, Object: tasksManifest{Tasks: taskMap}},
		{Path: DepsManifestPath, Format: models.FormatJSON, Object: depsManifest{Dependencies: p.Deps.Sorted()}},
	}

	for _, m := range manifests {
		data, err := m.Render()
		if err != nil {
			return fmt.Errorf("project %s: %w", p.Name, err)
		}
		if err := s.write(p, m.Path, data); err != nil {
			return err
		}
	}

	return nil
}

// writeIgnoreFile merges the project's patterns into .gitignore and returns the final content
func (s *synthesizer) writeIgnoreFile(p *Project) ([]byte, error) {
	ignorePath := filepath.Join(p.OutDir, IgnoreFileName)

	var existing []byte
	if s.fs.Exists(ignorePath) {
		data, err := s.fs.ReadFile(ignorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", ignorePath, err)
		}
		existing = data
	}

	if len(p.Gitignore.patterns) == 0 {
		return existing, nil
	}

	merged := p.Gitignore.Merge(existing)
	if err := s.write(p, IgnoreFileName, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *synthesizer) warnIgnored(p *Project, ignoreContent []byte, generated []string) {
	if len(ignoreContent) == 0 {
		return
	}

	matcher := NewIgnoreMatcher(ignoreContent, p.OutDir)
	sort.Strings(generated)
	for _, rel := range generated {
		if matcher.Ignored(rel, false) {
			warning := fmt.Sprintf("%s: generated file %s is excluded by %s", p.Name, rel, IgnoreFileName)
			s.report.Warnings = append(s.report.Warnings, warning)
			s.logger.Warn("generated file is ignored", "project", p.Name, "path", rel)
		}
	}
}

func (s *synthesizer) write(p *Project, rel string, data []byte) error {
	target := filepath.Join(p.OutDir, filepath.FromSlash(rel))

	status := StatusCreated
	if s.fs.Exists(target) {
		existing, err := s.fs.ReadFile(target)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", target, err)
		}
		status = StatusUpdated
		if bytes.Equal(existing, data) {
			status = StatusUnchanged
		}
	}

	if status != StatusUnchanged && !s.dryRun {
		if err := s.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}
		if err := s.fs.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}

	s.report.Files = append(s.report.Files, FileResult{
		Project: p.Name,
		Path:    target,
		Status:  status,
	})
	s.logger.Debug("file synthesized", "project", p.Name, "path", rel, "status", string(status), "dry_run", s.dryRun)
	return nil
}
