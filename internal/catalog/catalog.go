// Package catalog holds the static capability registry: the tools, resources,
// and prompts this server exposes. The registry is populated once at
// construction and is immutable afterwards, so it can be shared freely
// without locking.
package catalog

// file: internal/catalog/catalog.go

import (
	"github.com/cockroachdb/errors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// Catalog is an immutable set of capability definitions. Listing accessors
// return entries in catalog-definition order, stable across calls.
type Catalog struct {
	tools     []mcptypes.Tool
	resources []mcptypes.Resource
	prompts   []mcptypes.Prompt

	toolsByName    map[string]mcptypes.Tool
	resourcesByURI map[string]mcptypes.Resource
	promptsByName  map[string]mcptypes.Prompt
}

// New builds a catalog from the given definitions. Names and URIs must be
// unique within their respective catalogs.
func New(tools []mcptypes.Tool, resources []mcptypes.Resource, prompts []mcptypes.Prompt) (*Catalog, error) {
	c := &Catalog{
		tools:          tools,
		resources:      resources,
		prompts:        prompts,
		toolsByName:    make(map[string]mcptypes.Tool, len(tools)),
		resourcesByURI: make(map[string]mcptypes.Resource, len(resources)),
		promptsByName:  make(map[string]mcptypes.Prompt, len(prompts)),
	}

	for _, tool := range tools {
		if _, dup := c.toolsByName[tool.Name]; dup {
			return nil, errors.Newf("duplicate tool name in catalog: %s", tool.Name)
		}
		c.toolsByName[tool.Name] = tool
	}
	for _, resource := range resources {
		if _, dup := c.resourcesByURI[resource.URI]; dup {
			return nil, errors.Newf("duplicate resource URI in catalog: %s", resource.URI)
		}
		c.resourcesByURI[resource.URI] = resource
	}
	for _, prompt := range prompts {
		if _, dup := c.promptsByName[prompt.Name]; dup {
			return nil, errors.Newf("duplicate prompt name in catalog: %s", prompt.Name)
		}
		c.promptsByName[prompt.Name] = prompt
	}
	return c, nil
}

// Tools returns all tools in definition order.
func (c *Catalog) Tools() []mcptypes.Tool {
	return c.tools
}

// Resources returns all resources in definition order.
func (c *Catalog) Resources() []mcptypes.Resource {
	return c.resources
}

// Prompts returns all prompts in definition order.
func (c *Catalog) Prompts() []mcptypes.Prompt {
	return c.prompts
}

// Tool looks up a tool by name.
func (c *Catalog) Tool(name string) (mcptypes.Tool, bool) {
	tool, ok := c.toolsByName[name]
	return tool, ok
}

// Resource looks up a resource by URI.
func (c *Catalog) Resource(uri string) (mcptypes.Resource, bool) {
	resource, ok := c.resourcesByURI[uri]
	return resource, ok
}

// Prompt looks up a prompt by name.
func (c *Catalog) Prompt(name string) (mcptypes.Prompt, bool) {
	prompt, ok := c.promptsByName[name]
	return prompt, ok
}
