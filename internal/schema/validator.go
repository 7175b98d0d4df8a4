package schema

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Names of the embedded schemas
const (
	Nx             = "nx"
	Oxlint         = "oxlint"
	Vitest         = "vitest"
	VscodeSettings = "vscode-settings"
)

var (
	// ErrUnknownSchema is returned when no embedded schema has the given name
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrValidation is returned when a document does not satisfy its schema
	ErrValidation = errors.New("schema validation failed")
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	compiled     = make(map[string]*jsonschema.Schema)
	compiledLock sync.Mutex
	printer      = message.NewPrinter(language.English)
)

// Names returns the names of all embedded schemas, sorted
func Names() []string {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".schema.json"))
	}
	sort.Strings(names)
	return names
}

// Has reports whether an embedded schema with the given name exists
func Has(name string) bool {
	_, err := schemaFS.ReadFile(schemaPath(name))
	return err == nil
}

// Validate checks a JSON document against the named schema.
// Validation failures wrap ErrValidation and list each failing location.
func Validate(name string, data []byte) error {
	sch, err := getSchema(name)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse document for schema %s: %w", name, err)
	}

	err = sch.Validate(inst)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("failed to validate against schema %s: %w", name, err)
	}

	return fmt.Errorf("%w: %s: %s", ErrValidation, name, strings.Join(leafMessages(validationErr), "; "))
}

func schemaPath(name string) string {
	return "schemas/" + name + ".schema.json"
}

func getSchema(name string) (*jsonschema.Schema, error) {
	compiledLock.Lock()
	defer compiledLock.Unlock()

	if sch, ok := compiled[name]; ok {
		return sch, nil
	}

	data, err := schemaFS.ReadFile(schemaPath(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	url := name + ".schema.json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}

	compiled[name] = sch
	return sch, nil
}

// leafMessages flattens the error tree into unique "location: message" strings
func leafMessages(err *jsonschema.ValidationError) []string {
	var out []string
	seen := make(map[string]bool)
	collectLeaves(err, func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	})
	return out
}

func collectLeaves(err *jsonschema.ValidationError, emit func(string)) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collectLeaves(cause, emit)
		}
		return
	}

	location := "/" + strings.Join(err.InstanceLocation, "/")
	msg := err.Error()
	if err.ErrorKind != nil {
		msg = err.ErrorKind.LocalizedString(printer)
	}
	emit(location + ": " + msg)
}
