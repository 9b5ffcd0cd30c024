package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to a generative backend. Flows build a Request,
// call Generate, and decode the structured JSON they get back.
type Provider interface {
	// Generate sends the request and returns the model output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the returned Content is schema-valid JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Generation flows in this engine are
	// single-turn: one user message, optionally carrying an image.
	Messages []Message

	// Schema, when set, is the JSON Schema the output must conform to.
	// When nil the Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string

	// ImageDataURI optionally attaches an image, encoded as a data URI
	// ("data:<mime>;base64,<payload>"). Used by submission moderation.
	ImageDataURI string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "quiz-challenge".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is schema-validated JSON when the request had a Schema,
	// raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
