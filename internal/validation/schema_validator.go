// Package validation checks JSON documents against JSON Schema files.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against schema files. Compiled
// schemas are cached per path, so a single instance can be shared.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type schemaValidator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	cache    map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator with an empty schema cache.
func NewSchemaValidator() SchemaValidator {
	return &schemaValidator{
		compiler: jsonschema.NewCompiler(),
		cache:    make(map[string]*jsonschema.Schema),
	}
}

func (v *schemaValidator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *schemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schemaFor(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return describeFailure(err)
	}
	return nil
}

// schemaFor returns the compiled schema for path, compiling and caching it
// on first use.
func (v *schemaValidator) schemaFor(path string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.cache[path]; ok {
		return schema, nil
	}

	resolved, err := locateSchema(path)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := v.compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.cache[path] = schema
	return schema, nil
}

// describeFailure flattens a validation error tree into one line per leaf
// cause, each naming the instance location and the failing keyword.
func describeFailure(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validation error: %w", err)
	}
	return fmt.Errorf("document does not match schema:\n%s",
		strings.Join(leafMessages(ve, nil), "\n"))
}

func leafMessages(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) == 0 {
		return append(out, leafMessage(ve))
	}
	for _, cause := range ve.Causes {
		out = leafMessages(cause, out)
	}
	return out
}

func leafMessage(ve *jsonschema.ValidationError) string {
	location := "/" + strings.Join(ve.InstanceLocation, "/")
	if location == "/" {
		location = "(root)"
	}

	keyword := "schema"
	if ve.ErrorKind != nil {
		if path := ve.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}

	return fmt.Sprintf("  - at %s: %s constraint violated", location, keyword)
}

// locateSchema resolves a schema path. Relative paths are tried against the
// working directory first, then against each ancestor directory up to the
// module root (the directory holding go.mod), so tests running from package
// directories find repo-level schemas.
func locateSchema(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		atModuleRoot := false
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			atModuleRoot = true
		}

		parent := filepath.Dir(dir)
		if atModuleRoot || parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("schema file not found: %s (searched up from %s)", path, cwd)
}
