package llm

import (
	"context"
	"encoding/json"
	"sort"

	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// MockGenerator answers every request with a placeholder document that
// satisfies the declared response schema. Used when LLM_MOCK is set.
type MockGenerator struct {
	log *zap.Logger
}

var _ interfaces.ITextGenerator = (*MockGenerator)(nil)

func NewMockGenerator(log *zap.Logger) *MockGenerator {
	log.Info("llm mock mode enabled")
	return &MockGenerator{log: log.With(zap.String("component", "llm"))}
}

func (m *MockGenerator) Generate(ctx context.Context, req interfaces.GenerationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := json.Marshal(exampleFor(req.ResponseSchema))
	if err != nil {
		return "", err
	}
	m.log.Debug("mock generate", zap.String("flow", req.Flow))
	return string(b), nil
}

// GenerateStream emits the mock document in a few pieces so streaming
// clients see more than one chunk.
func (m *MockGenerator) GenerateStream(ctx context.Context, req interfaces.GenerationRequest, onChunk func(chunk string) error) (string, error) {
	text, err := m.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	const size = 16
	for i := 0; i < len(text); i += size {
		end := min(i+size, len(text))
		if err := onChunk(text[i:end]); err != nil {
			return "", err
		}
	}
	return text, nil
}

func exampleFor(s *interfaces.Schema) any {
	if s == nil {
		return map[string]any{}
	}
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}
	switch s.Type {
	case "object":
		out := map[string]any{}
		names := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			out[name] = exampleFor(s.Properties[name])
		}
		return out
	case "array":
		return []any{exampleFor(s.Items)}
	case "number":
		return 1.0
	case "integer":
		return 1
	case "boolean":
		return false
	default:
		if s.Description == "" {
			return "mock"
		}
		return "mock " + s.Description
	}
}
