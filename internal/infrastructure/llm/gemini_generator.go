package llm

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrEmptyResponse = errors.New("model returned an empty response")

// contentModels is the subset of *genai.Models used by the generator.
type contentModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// GeminiGenerator produces schema-constrained JSON through the Gemini API.
type GeminiGenerator struct {
	models contentModels
	model  string
	log    *zap.Logger
}

var _ interfaces.ITextGenerator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	log.Info("gemini client initialized", zap.String("model", model))
	return &GeminiGenerator{models: client.Models, model: model, log: log.With(zap.String("component", "llm"))}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req interfaces.GenerationRequest) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), g.config(req))
	if err != nil {
		g.log.Warn("generate failed", zap.String("flow", req.Flow), zap.Error(err))
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	g.log.Debug("generate done", zap.String("flow", req.Flow), zap.Int("len", len(text)))
	return text, nil
}

func (g *GeminiGenerator) GenerateStream(ctx context.Context, req interfaces.GenerationRequest, onChunk func(chunk string) error) (string, error) {
	var sb strings.Builder
	for resp, err := range g.models.GenerateContentStream(ctx, g.model, genai.Text(req.Prompt), g.config(req)) {
		if err != nil {
			g.log.Warn("stream failed", zap.String("flow", req.Flow), zap.Error(err))
			return "", err
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		sb.WriteString(chunk)
		if err := onChunk(chunk); err != nil {
			return "", err
		}
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func (g *GeminiGenerator) config(req interfaces.GenerationRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.ResponseSchema),
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	return cfg
}

func toGenaiSchema(s *interfaces.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = toGenaiSchema(p)
		}
	}
	return out
}

func genaiType(t string) genai.Type {
	switch strings.ToLower(t) {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
