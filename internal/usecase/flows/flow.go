// Package flows implements the AI prompt flows: typed input is validated,
// rendered into a prompt, sent to the text generator with a declared
// response schema, and the answer is decoded and validated strictly.
package flows

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"

	"go.uber.org/zap"
)

var (
	ErrUnknownFlow      = errors.New("unknown flow")
	ErrSchemaMismatch   = errors.New("model response does not match the flow schema")
	ErrGenerationFailed = errors.New("text generation failed")
)

// Flow binds one prompt definition to its input and output types.
// It performs exactly one generation call per invocation.
type Flow[In, Out any] struct {
	name   string
	system string
	tmpl   *template.Template
	schema *interfaces.Schema
	gen    interfaces.ITextGenerator
	log    *zap.Logger
}

func newFlow[In, Out any](name string, def promptDef, gen interfaces.ITextGenerator, log *zap.Logger) (*Flow[In, Out], error) {
	if def.Template == "" || def.Schema == nil {
		return nil, fmt.Errorf("flow %q: template and schema are required", name)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(def.Template)
	if err != nil {
		return nil, fmt.Errorf("flow %q: parse template: %w", name, err)
	}
	return &Flow[In, Out]{
		name:   name,
		system: strings.TrimSpace(def.System),
		tmpl:   tmpl,
		schema: def.Schema,
		gen:    gen,
		log:    log,
	}, nil
}

func (f *Flow[In, Out]) Name() string { return f.name }

func (f *Flow[In, Out]) Schema() *interfaces.Schema { return f.schema }

// Run validates in, calls the generator once and returns the validated output.
func (f *Flow[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	var zero Out

	req, err := f.request(in)
	if err != nil {
		return zero, err
	}

	text, err := f.gen.Generate(ctx, req)
	if err != nil {
		f.log.Warn("generation failed", zap.String("flow", f.name), zap.Error(err))
		return zero, fmt.Errorf("%w: %s: %w", ErrGenerationFailed, f.name, err)
	}
	return f.parse(text)
}

// Stream is Run with every provider chunk handed to onChunk unchanged.
// The concatenated text is validated the same way as Run.
func (f *Flow[In, Out]) Stream(ctx context.Context, in In, onChunk func(chunk string) error) (Out, error) {
	var zero Out

	req, err := f.request(in)
	if err != nil {
		return zero, err
	}

	text, err := f.gen.GenerateStream(ctx, req, onChunk)
	if err != nil {
		f.log.Warn("stream failed", zap.String("flow", f.name), zap.Error(err))
		return zero, fmt.Errorf("%w: %s: %w", ErrGenerationFailed, f.name, err)
	}
	return f.parse(text)
}

func (f *Flow[In, Out]) request(in In) (interfaces.GenerationRequest, error) {
	if err := validation.Struct(in); err != nil {
		return interfaces.GenerationRequest{}, err
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, in); err != nil {
		return interfaces.GenerationRequest{}, fmt.Errorf("flow %q: render prompt: %w", f.name, err)
	}

	return interfaces.GenerationRequest{
		Flow:           f.name,
		System:         f.system,
		Prompt:         buf.String(),
		ResponseSchema: f.schema,
	}, nil
}

func (f *Flow[In, Out]) parse(text string) (Out, error) {
	var zero Out

	text = stripCodeFence(text)

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return zero, f.mismatch(fmt.Errorf("invalid JSON: %w", err))
	}
	if err := conform(f.schema, doc, ""); err != nil {
		return zero, f.mismatch(err)
	}

	var out Out
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return zero, f.mismatch(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return zero, f.mismatch(errors.New("trailing data after JSON document"))
	}
	if err := validation.Struct(out); err != nil {
		return zero, f.mismatch(err)
	}
	return out, nil
}

func (f *Flow[In, Out]) mismatch(err error) error {
	f.log.Warn("schema mismatch", zap.String("flow", f.name), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrSchemaMismatch, f.name, err)
}

// stripCodeFence removes a ```json fence some models wrap around JSON answers.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
