// Package llm abstracts the remote text-generation service behind a
// Provider interface and supplies the shared transport middleware: fixed
// retry, response validation against a JSON schema, and request auditing.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single network-call abstraction the generation pipeline
// builds on. One Generate call is one logical request; retry behavior is
// layered on by WithRetry, never inside a provider.
type Provider interface {
	// Generate sends a prompt to the remote service and returns its reply.
	// When the request carries a Schema the provider asks for structured
	// output and validates the reply against it before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes what to send to the service.
type Request struct {
	// System sets the service's role and output constraints.
	System string

	// Messages is the conversation. Paper generation is single-turn, so
	// this is one user message in practice.
	Messages []Message

	// Schema, when set, is the JSON Schema the reply must conform to.
	// When nil the reply is free text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the service.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "section-questions".
	Name string

	// Description tells the service what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the service's reply.
type Response struct {
	// Content is the reply body. With a Schema in the request this is the
	// validated JSON document; without one it is raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
