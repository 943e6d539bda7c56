// file: internal/mcp/handlers_prompts.go
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/simplemcp/simplemcp/internal/mcp/mcperrors"
	"github.com/simplemcp/simplemcp/internal/mcptypes"
)

// greetingsByLanguage maps the greeting prompt's language argument to its
// salutation. Unknown languages fall back to the English salutation.
var greetingsByLanguage = map[string]string{
	"English": "Hello",
	"Spanish": "Hola",
	"French":  "Bonjour",
	"German":  "Hallo",
}

// handlePromptsList returns the prompt catalog in definition order.
func (s *Server) handlePromptsList(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(mcptypes.ListPromptsResult{Prompts: s.catalog.Prompts()})
}

// handlePromptsGet renders the named prompt template with the supplied
// arguments. An unknown prompt name maps to method-not-found, mirroring the
// unknown-tool case.
func (s *Server) handlePromptsGet(_ context.Context, params json.RawMessage) (json.RawMessage, error) {
	var get mcptypes.GetPromptRequest
	if err := json.Unmarshal(params, &get); err != nil {
		return nil, mcperrors.NewInvalidParamsError("Invalid params for prompts/get", err)
	}

	if _, ok := s.catalog.Prompt(get.Name); !ok {
		return nil, mcperrors.NewMethodNotFoundError(fmt.Sprintf("Prompt '%s' not found", get.Name))
	}

	var description, text string
	switch get.Name {
	case "greeting":
		description, text = renderGreetingPrompt(get.Arguments)
	case "summary":
		description, text = renderSummaryPrompt(get.Arguments)
	}

	result := mcptypes.GetPromptResult{
		Description: description,
		Messages: []mcptypes.PromptMessage{{
			Role:    "user",
			Content: mcptypes.NewTextContent(text),
		}},
	}
	return json.Marshal(result)
}

// renderGreetingPrompt fills the greeting template. Both arguments are
// defaulted when absent, and the salutation lookup is exact-match on the
// language name.
func renderGreetingPrompt(args map[string]string) (description, text string) {
	name := argumentOrDefault(args, "name", "World")
	language := argumentOrDefault(args, "language", "English")

	greeting, ok := greetingsByLanguage[language]
	if !ok {
		greeting = "Hello"
	}
	return "Personalized greeting prompt",
		fmt.Sprintf("%s, %s! How can I help you today?", greeting, name)
}

// renderSummaryPrompt fills the summary template, defaulting the topic.
func renderSummaryPrompt(args map[string]string) (description, text string) {
	topic := argumentOrDefault(args, "topic", "general topic")
	return "Summary generation prompt",
		fmt.Sprintf("Please provide a comprehensive summary of %s. "+
			"Include key points, important details, and conclusions.", topic)
}

// argumentOrDefault reads a prompt argument, substituting fallback when the
// key is absent. An explicitly empty value is kept as-is.
func argumentOrDefault(args map[string]string, key, fallback string) string {
	if v, ok := args[key]; ok {
		return v
	}
	return fallback
}
