package flows

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

type promptDef struct {
	System   string             `yaml:"system"`
	Template string             `yaml:"template"`
	Schema   *interfaces.Schema `yaml:"schema"`
}

func loadPrompts(data []byte) (map[string]promptDef, error) {
	defs := map[string]promptDef{}
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse prompt catalogue: %w", err)
	}
	return defs, nil
}

// runner erases a Flow's type parameters so flows can be invoked by name
// with a raw JSON input.
type runner interface {
	runJSON(ctx context.Context, raw json.RawMessage) (any, error)
	streamJSON(ctx context.Context, raw json.RawMessage, onChunk func(string) error) (any, error)
}

func (f *Flow[In, Out]) decodeInput(raw json.RawMessage) (In, error) {
	var in In
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return in, validation.Field("body", "must be a JSON object with the flow's input fields: "+err.Error())
	}
	return in, nil
}

func (f *Flow[In, Out]) runJSON(ctx context.Context, raw json.RawMessage) (any, error) {
	in, err := f.decodeInput(raw)
	if err != nil {
		return nil, err
	}
	return f.Run(ctx, in)
}

func (f *Flow[In, Out]) streamJSON(ctx context.Context, raw json.RawMessage, onChunk func(string) error) (any, error) {
	in, err := f.decodeInput(raw)
	if err != nil {
		return nil, err
	}
	return f.Stream(ctx, in, onChunk)
}

// Catalog holds every flow defined in the embedded prompt catalogue.
type Catalog struct {
	SuggestPrice     *Flow[SuggestPriceInput, SuggestPriceOutput]
	TieredEstimate   *Flow[TieredEstimateInput, TieredEstimateOutput]
	SuggestParts     *Flow[SuggestPartsInput, SuggestPartsOutput]
	FindVendors      *Flow[FindVendorsInput, FindVendorsOutput]
	InvoiceAnomalies *Flow[InvoiceAnomaliesInput, InvoiceAnomaliesOutput]

	byName map[string]runner
}

func NewCatalog(gen interfaces.ITextGenerator, log *zap.Logger) (*Catalog, error) {
	defs, err := loadPrompts(promptsYAML)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("component", "flows"))

	c := &Catalog{byName: map[string]runner{}}
	if c.SuggestPrice, err = newFlow[SuggestPriceInput, SuggestPriceOutput](SuggestPriceFlow, defs[SuggestPriceFlow], gen, log); err != nil {
		return nil, err
	}
	if c.TieredEstimate, err = newFlow[TieredEstimateInput, TieredEstimateOutput](TieredEstimateFlow, defs[TieredEstimateFlow], gen, log); err != nil {
		return nil, err
	}
	if c.SuggestParts, err = newFlow[SuggestPartsInput, SuggestPartsOutput](SuggestPartsFlow, defs[SuggestPartsFlow], gen, log); err != nil {
		return nil, err
	}
	if c.FindVendors, err = newFlow[FindVendorsInput, FindVendorsOutput](FindVendorsFlow, defs[FindVendorsFlow], gen, log); err != nil {
		return nil, err
	}
	if c.InvoiceAnomalies, err = newFlow[InvoiceAnomaliesInput, InvoiceAnomaliesOutput](InvoiceAnomaliesFlow, defs[InvoiceAnomaliesFlow], gen, log); err != nil {
		return nil, err
	}

	c.byName[SuggestPriceFlow] = c.SuggestPrice
	c.byName[TieredEstimateFlow] = c.TieredEstimate
	c.byName[SuggestPartsFlow] = c.SuggestParts
	c.byName[FindVendorsFlow] = c.FindVendors
	c.byName[InvoiceAnomaliesFlow] = c.InvoiceAnomalies

	log.Info("prompt catalogue loaded", zap.Int("flows", len(c.byName)))
	return c, nil
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run invokes a flow by name with a JSON encoded input.
func (c *Catalog) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	r, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return r.runJSON(ctx, input)
}

func (c *Catalog) Stream(ctx context.Context, name string, input json.RawMessage, onChunk func(chunk string) error) (any, error) {
	r, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return r.streamJSON(ctx, input, onChunk)
}
