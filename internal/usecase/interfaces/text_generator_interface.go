package interfaces

import "context"

// Schema is a provider-neutral description of the JSON shape a generation
// call must return. Type is one of object, array, string, number, integer, boolean.
type Schema struct {
	Type        string             `yaml:"type" json:"type"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Enum        []string           `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// GenerationRequest is a single structured-generation call.
type GenerationRequest struct {
	Flow           string
	System         string
	Prompt         string
	ResponseSchema *Schema
}

// ITextGenerator abstracts the hosted LLM provider (e.g. Gemini).
//
// Both methods return the raw text the provider produced; schema validation
// is the caller's job. GenerateStream hands every provider chunk to onChunk
// as it arrives and returns the concatenated text.
type ITextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	GenerateStream(ctx context.Context, req GenerationRequest, onChunk func(chunk string) error) (string, error)
}
