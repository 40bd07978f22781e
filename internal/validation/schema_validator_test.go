package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogTestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string", "minLength": 3},
					"rarity": {"type": "string", "enum": ["common", "rare", "epic", "legendary"]}
				},
				"required": ["name", "rarity"]
			}
		}
	},
	"required": ["items"]
}`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t, catalogTestSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		contains string
	}{
		{
			name: "conforming document",
			data: `{"items": [{"name": "Top Hat", "rarity": "rare"}]}`,
		},
		{
			name: "empty item list is allowed by this schema",
			data: `{"items": []}`,
		},
		{
			name:     "missing required property",
			data:     `{"items": [{"name": "Top Hat"}]}`,
			wantErr:  true,
			contains: "required",
		},
		{
			name:     "enum violation names the location",
			data:     `{"items": [{"name": "Top Hat", "rarity": "mythic"}]}`,
			wantErr:  true,
			contains: "/items/0/rarity",
		},
		{
			name:     "string too short",
			data:     `{"items": [{"name": "ab", "rarity": "rare"}]}`,
			wantErr:  true,
			contains: "minLength",
		},
		{
			name:     "document is not JSON",
			data:     `{"items": `,
			wantErr:  true,
			contains: "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateFile(t *testing.T) {
	schemaPath := writeSchema(t, catalogTestSchema)
	v := NewSchemaValidator()

	t.Run("validates an on-disk document", func(t *testing.T) {
		dataPath := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(dataPath,
			[]byte(`{"items": [{"name": "Beach", "rarity": "epic"}]}`), 0644))

		assert.NoError(t, v.ValidateFile(dataPath, schemaPath))
	})

	t.Run("missing data file", func(t *testing.T) {
		err := v.ValidateFile(filepath.Join(t.TempDir(), "absent.json"), schemaPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read data file")
	})

	t.Run("missing schema file", func(t *testing.T) {
		dataPath := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(dataPath, []byte(`{}`), 0644))

		err := v.ValidateFile(dataPath, filepath.Join(t.TempDir(), "absent.schema.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})

	t.Run("schema that is not valid JSON", func(t *testing.T) {
		badSchema := writeSchema(t, `{"type": `)
		err := v.ValidateBytes([]byte(`{}`), badSchema)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load schema")
	})
}

func TestSchemaCaching(t *testing.T) {
	schemaPath := writeSchema(t, catalogTestSchema)
	v := NewSchemaValidator().(*schemaValidator)

	doc := []byte(`{"items": [{"name": "Top Hat", "rarity": "rare"}]}`)
	require.NoError(t, v.ValidateBytes(doc, schemaPath))
	require.Len(t, v.cache, 1)

	// A second validation against the same path reuses the compiled schema.
	require.NoError(t, v.ValidateBytes(doc, schemaPath))
	assert.Len(t, v.cache, 1)
}
