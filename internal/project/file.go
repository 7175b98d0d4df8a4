package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/jakoblorz/go-monogen/internal/models"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// GeneratedMarker heads every generated file whose format allows comments
const GeneratedMarker = `~~ Generated by monogen. To modify, edit monogen.yaml and run "monogen synth".`

// File is a generated file registered on a project
type File struct {
	// Path is relative to the project's output directory, slash-separated
	Path string

	// Format selects the serializer
	Format models.FileFormat

	// Object is the value rendered into the file
	Object any

	// Schema names an embedded JSON schema checked before writing; empty skips validation
	Schema string
}

// Render serializes the file's object. Output is deterministic for a given object.
func (f *File) Render() ([]byte, error) {
	var buf bytes.Buffer

	if f.Format.HasGeneratedMarker() {
		fmt.Fprintf(&buf, "# %s\n\n", GeneratedMarker)
	}

	switch f.Format {
	case models.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f.Object); err != nil {
			return nil, fmt.Errorf("failed to encode %s as JSON: %w", f.Path, err)
		}
	case models.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f.Object); err != nil {
			return nil, fmt.Errorf("failed to encode %s as YAML: %w", f.Path, err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode %s as YAML: %w", f.Path, err)
		}
	case models.FormatTOML:
		data, err := toml.Marshal(f.Object)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s as TOML: %w", f.Path, err)
		}
		buf.Write(data)
	case models.FormatText:
		lines, err := textLines(f.Object)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", f.Path, err)
		}
		for _, line := range lines {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	default:
		return nil, fmt.Errorf("unsupported format %q for %s", f.Format, f.Path)
	}

	return buf.Bytes(), nil
}

func textLines(obj any) ([]string, error) {
	switch v := obj.(type) {
	case string:
		return strings.Split(strings.TrimSuffix(v, "\n"), "\n"), nil
	case []string:
		return v, nil
	default:
		return nil, fmt.Errorf("text files need a string or []string, got %T", obj)
	}
}

// AddFile registers a generated file. Registering an existing path
// replaces its content in place.
func (p *Project) AddFile(filePath string, format models.FileFormat, obj any, schemaName string) (*File, error) {
	clean := path.Clean(strings.ReplaceAll(filePath, "\\", "/"))
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || clean == ".." || path.IsAbs(clean) {
		return nil, fmt.Errorf("invalid generated file path %q for %s", filePath, p.Name)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("invalid format %q for %s", format, clean)
	}

	if existing, ok := p.TryFindFile(clean); ok {
		existing.Format = format
		existing.Object = obj
		existing.Schema = schemaName
		p.logger.Debug("file replaced", "project", p.Name, "path", clean)
		return existing, nil
	}

	f := &File{
		Path:   clean,
		Format: format,
		Object: obj,
		Schema: schemaName,
	}
	p.files = append(p.files, f)
	p.logger.Debug("file registered", "project", p.Name, "path", clean, "format", format.String())
	return f, nil
}

// AddJSONFile registers a JSON file checked against the named schema
func (p *Project) AddJSONFile(filePath string, obj any, schemaName string) (*File, error) {
	return p.AddFile(filePath, models.FormatJSON, obj, schemaName)
}

// AddYAMLFile registers a YAML file
func (p *Project) AddYAMLFile(filePath string, obj any) (*File, error) {
	return p.AddFile(filePath, models.FormatYAML, obj, "")
}

// AddTOMLFile registers a TOML file
func (p *Project) AddTOMLFile(filePath string, obj any) (*File, error) {
	return p.AddFile(filePath, models.FormatTOML, obj, "")
}

// TryFindFile returns the file registered at path
func (p *Project) TryFindFile(filePath string) (*File, bool) {
	clean := path.Clean(filePath)
	for _, f := range p.files {
		if f.Path == clean {
			return f, true
		}
	}
	return nil, false
}

// Files returns the registered files in registration order
func (p *Project) Files() []*File {
	out := make([]*File, len(p.files))
	copy(out, p.files)
	return out
}
