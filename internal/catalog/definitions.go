// file: internal/catalog/definitions.go
package catalog

import (
	"encoding/json"

	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// Default returns the server's built-in capability catalog: three tools,
// two resources, and two prompts.
func Default() *Catalog {
	c, err := New(defaultTools(), defaultResources(), defaultPrompts())
	if err != nil {
		// The built-in definitions have unique keys; reaching this means the
		// definitions below were edited into an invalid state.
		panic(err)
	}
	return c
}

func defaultTools() []mcptypes.Tool {
	return []mcptypes.Tool{
		{
			Name:        "echo",
			Description: "Echo back the provided message",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"message": {
						"type": "string",
						"description": "The message to echo back"
					}
				},
				"required": ["message"]
			}`),
		},
		{
			Name:        "add",
			Description: "Add two numbers together",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"a": {"type": "number", "description": "First number"},
					"b": {"type": "number", "description": "Second number"}
				},
				"required": ["a", "b"]
			}`),
		},
		{
			Name:        "list_files",
			Description: "List files in the current directory",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"path": {
						"type": "string",
						"description": "Directory path to list (optional)",
						"default": "."
					}
				}
			}`),
		},
	}
}

func defaultResources() []mcptypes.Resource {
	return []mcptypes.Resource{
		{
			URI:         "config://test",
			Name:        "Test Config",
			Description: "A test configuration resource",
			MimeType:    "application/json",
		},
		{
			URI:         "data://sample",
			Name:        "Sample Data",
			Description: "Sample data for testing",
			MimeType:    "text/plain",
		},
	}
}

func defaultPrompts() []mcptypes.Prompt {
	return []mcptypes.Prompt{
		{
			Name:        "greeting",
			Description: "Generate a personalized greeting",
			Arguments: []mcptypes.PromptArgument{
				{Name: "name", Description: "Name of the person to greet", Required: true},
				{Name: "language", Description: "Language for the greeting", Required: false},
			},
		},
		{
			Name:        "summary",
			Description: "Generate a summary prompt",
			Arguments: []mcptypes.PromptArgument{
				{Name: "topic", Description: "Topic to summarize", Required: true},
			},
		},
	}
}
