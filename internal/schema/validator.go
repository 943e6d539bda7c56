// Package schema compiles each catalog tool's input schema at startup and
// validates tools/call arguments against it.
//
// Validation is advisory by default: every tool fills in defaults for
// missing arguments (echo without a message still answers), so a schema
// violation is logged and the call proceeds. Strict mode turns a
// violation into an invalid-params error instead.
package schema

// file: internal/schema/validator.go

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/simplemcp/simplemcp/internal/logging"
	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// ToolValidator holds the compiled input schemas of all catalog tools.
// Compilation happens once at construction; Validate is read-only afterwards.
type ToolValidator struct {
	schemas map[string]*jsonschema.Schema
	logger  logging.Logger
}

// NewToolValidator compiles the input schema of every given tool.
// A schema that fails to compile is a configuration error and aborts startup.
func NewToolValidator(tools []mcptypes.Tool, logger logging.Logger) (*ToolValidator, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	schemas := make(map[string]*jsonschema.Schema, len(tools))
	for _, tool := range tools {
		if len(tool.InputSchema) == 0 {
			continue
		}
		url := fmt.Sprintf("inline://tools/%s/input", tool.Name)
		if err := compiler.AddResource(url, bytes.NewReader(tool.InputSchema)); err != nil {
			return nil, errors.Wrapf(err, "failed to add input schema for tool %q", tool.Name)
		}
		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compile input schema for tool %q", tool.Name)
		}
		schemas[tool.Name] = compiled
	}

	return &ToolValidator{
		schemas: schemas,
		logger:  logger.WithField("component", "tool_validator"),
	}, nil
}

// HasSchema reports whether a compiled schema exists for the tool.
func (v *ToolValidator) HasSchema(name string) bool {
	_, ok := v.schemas[name]
	return ok
}

// Validate checks raw call arguments against the tool's compiled schema.
// Absent arguments are treated as an empty object. Tools without a compiled
// schema validate trivially. A violation is returned as an invalid-params
// error; the caller decides whether it is fatal for the request.
func (v *ToolValidator) Validate(name string, args json.RawMessage) error {
	compiled, ok := v.schemas[name]
	if !ok {
		return nil
	}

	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	var decoded any
	if err := json.Unmarshal(args, &decoded); err != nil {
		return mcperrors.NewInvalidParamsError(
			fmt.Sprintf("Invalid arguments for tool '%s': not valid JSON", name), err)
	}

	if err := compiled.Validate(decoded); err != nil {
		v.logger.Debug("Tool arguments failed schema validation.", "tool", name, "error", err)
		return mcperrors.NewInvalidParamsError(
			fmt.Sprintf("Invalid arguments for tool '%s': %v", name, err), err)
	}
	return nil
}
