// file: internal/schema/validator_test.go
package schema

import (
	"encoding/json"
	"testing"

	"github.com/simplemcp/simplemcp/internal/catalog"
	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDefaultValidator(t *testing.T) *ToolValidator {
	t.Helper()
	v, err := NewToolValidator(catalog.Default().Tools(), logging.GetNoopLogger())
	require.NoError(t, err, "Default catalog schemas should compile.")
	return v
}

// TestNewToolValidator_CompilesDefaultCatalog verifies startup compilation.
func TestNewToolValidator_CompilesDefaultCatalog(t *testing.T) {
	v := setupDefaultValidator(t)
	assert.True(t, v.HasSchema("echo"))
	assert.True(t, v.HasSchema("add"))
	assert.True(t, v.HasSchema("list_files"))
	assert.False(t, v.HasSchema("nonexistent"))
}

// TestNewToolValidator_BadSchema_FailsConstruction verifies config errors abort.
func TestNewToolValidator_BadSchema_FailsConstruction(t *testing.T) {
	tools := []mcptypes.Tool{{
		Name:        "broken",
		InputSchema: json.RawMessage(`{"type": 12}`),
	}}
	_, err := NewToolValidator(tools, logging.GetNoopLogger())
	assert.Error(t, err, "An uncompilable input schema should fail construction.")
}

// TestValidate_ConformingArguments_Pass verifies the happy path.
func TestValidate_ConformingArguments_Pass(t *testing.T) {
	v := setupDefaultValidator(t)

	assert.NoError(t, v.Validate("echo", json.RawMessage(`{"message":"hi"}`)))
	assert.NoError(t, v.Validate("add", json.RawMessage(`{"a":2,"b":3}`)))
	assert.NoError(t, v.Validate("list_files", json.RawMessage(`{"path":"/tmp"}`)))
	assert.NoError(t, v.Validate("list_files", nil), "list_files has no required properties.")
}

// TestValidate_Violations_ReturnInvalidParams verifies violations map to -32602.
func TestValidate_Violations_ReturnInvalidParams(t *testing.T) {
	v := setupDefaultValidator(t)

	cases := []struct {
		name string
		tool string
		args json.RawMessage
	}{
		{"missing required message", "echo", json.RawMessage(`{}`)},
		{"missing required message (absent args)", "echo", nil},
		{"wrong operand type", "add", json.RawMessage(`{"a":"two","b":3}`)},
		{"wrong path type", "list_files", json.RawMessage(`{"path":5}`)},
		{"arguments not JSON", "echo", json.RawMessage(`{oops`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.tool, tc.args)
			require.Error(t, err)
			code, msg := mcperrors.MapToJSONRPC(err)
			assert.Equal(t, -32602, code)
			assert.Contains(t, msg, tc.tool)
		})
	}
}

// TestValidate_UnknownTool_ValidatesTrivially verifies no schema means no check.
func TestValidate_UnknownTool_ValidatesTrivially(t *testing.T) {
	v := setupDefaultValidator(t)
	assert.NoError(t, v.Validate("nonexistent", json.RawMessage(`{"anything":"goes"}`)))
}
