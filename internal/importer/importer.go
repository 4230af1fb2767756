// Package importer loads JSON fixture files into the document store.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultKeyField = "id"
	storeKeyField   = "id"
)

var (
	ErrDirRequired       = errors.New("import directory is required")
	ErrWriterRequired    = errors.New("document writer is required unless dry-run is set")
	ErrUnsupportedLayout = errors.New("file must hold a JSON array or an object keyed by id")
)

type Options struct {
	Dir      string
	KeyField string
	DryRun   bool
}

// RowError describes a document that was skipped. Row is the array index or
// the object key the document was found under.
type RowError struct {
	File   string `json:"file"`
	Row    string `json:"row"`
	Reason string `json:"reason"`
}

func (e RowError) String() string {
	return fmt.Sprintf("%s[%s]: %s", e.File, e.Row, e.Reason)
}

type CollectionReport struct {
	Collection string     `json:"collection"`
	File       string     `json:"file"`
	Imported   int        `json:"imported"`
	Skipped    int        `json:"skipped"`
	Errors     []RowError `json:"errors,omitempty"`
}

type Report struct {
	DryRun      bool               `json:"dry_run"`
	Collections []CollectionReport `json:"collections"`
}

func (r Report) Imported() int {
	n := 0
	for _, c := range r.Collections {
		n += c.Imported
	}
	return n
}

func (r Report) Skipped() int {
	n := 0
	for _, c := range r.Collections {
		n += c.Skipped
	}
	return n
}

type Importer struct {
	writer interfaces.IDocumentWriter
	log    *zap.Logger
}

func New(writer interfaces.IDocumentWriter, log *zap.Logger) *Importer {
	return &Importer{writer: writer, log: log.With(zap.String("component", "importer"))}
}

// Run imports every "<collection>.json" file in opts.Dir, in file name order.
// Bad rows are reported and skipped; only I/O, layout and context errors
// abort the run.
func (i *Importer) Run(ctx context.Context, opts Options) (Report, error) {
	opts.Dir = strings.TrimSpace(opts.Dir)
	if opts.Dir == "" {
		return Report{}, ErrDirRequired
	}
	opts.KeyField = strings.TrimSpace(opts.KeyField)
	if opts.KeyField == "" {
		opts.KeyField = DefaultKeyField
	}
	if !opts.DryRun && i.writer == nil {
		return Report{}, ErrWriterRequired
	}

	entries, err := os.ReadDir(opts.Dir)
	if err != nil {
		return Report{}, fmt.Errorf("read import dir: %w", err)
	}

	report := Report{DryRun: opts.DryRun, Collections: []CollectionReport{}}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		cr, err := i.importFile(ctx, filepath.Join(opts.Dir, entry.Name()), opts)
		if err != nil {
			return report, err
		}
		report.Collections = append(report.Collections, cr)
	}

	i.log.Info("import finished",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("collections", len(report.Collections)),
		zap.Int("imported", report.Imported()),
		zap.Int("skipped", report.Skipped()),
	)
	return report, nil
}

type row struct {
	label string
	doc   map[string]any
	err   string
}

func (i *Importer) importFile(ctx context.Context, path string, opts Options) (CollectionReport, error) {
	file := filepath.Base(path)
	collection := strings.TrimSuffix(file, filepath.Ext(file))
	cr := CollectionReport{Collection: collection, File: file}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cr, fmt.Errorf("read %s: %w", file, err)
	}
	rows, err := decodeRows(raw, opts.KeyField)
	if err != nil {
		return cr, fmt.Errorf("%s: %w", file, err)
	}

	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return cr, err
		}
		if r.err != "" {
			cr.skip(file, r.label, r.err)
			continue
		}

		key, ok := keyOf(r.doc[opts.KeyField])
		if !ok {
			cr.skip(file, r.label, fmt.Sprintf("missing %q", opts.KeyField))
			continue
		}
		r.doc[storeKeyField] = key

		if !opts.DryRun {
			if err := i.writer.Upsert(ctx, collection, r.doc); err != nil {
				if ctx.Err() != nil {
					return cr, ctx.Err()
				}
				i.log.Warn("upsert failed", zap.String("collection", collection), zap.String("key", key), zap.Error(err))
				cr.skip(file, r.label, err.Error())
				continue
			}
		}
		cr.Imported++
	}

	i.log.Info("collection processed",
		zap.String("collection", collection),
		zap.Int("imported", cr.Imported),
		zap.Int("skipped", cr.Skipped),
	)
	return cr, nil
}

func (c *CollectionReport) skip(file, label, reason string) {
	c.Skipped++
	c.Errors = append(c.Errors, RowError{File: file, Row: label, Reason: reason})
}

// decodeRows accepts an array of objects or an object of objects keyed by id.
// In the keyed layout the object key fills in a missing key field.
func decodeRows(raw []byte, keyField string) ([]row, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		rows := make([]row, 0, len(items))
		for idx, item := range items {
			rows = append(rows, decodeRow(strconv.Itoa(idx), item))
		}
		return rows, nil

	case '{':
		var items map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		keys := make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := make([]row, 0, len(keys))
		for _, k := range keys {
			r := decodeRow(k, items[k])
			if r.err == "" {
				if _, ok := keyOf(r.doc[keyField]); !ok && strings.TrimSpace(k) != "" {
					r.doc[keyField] = strings.TrimSpace(k)
				}
			}
			rows = append(rows, r)
		}
		return rows, nil
	}

	return nil, ErrUnsupportedLayout
}

func decodeRow(label string, raw json.RawMessage) row {
	// Numbers stay json.Number so large ids and counts keep every digit.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil || doc == nil {
		return row{label: label, err: "not a JSON object"}
	}
	return row{label: label, doc: doc}
}

func keyOf(v any) (string, bool) {
	switch k := v.(type) {
	case string:
		k = strings.TrimSpace(k)
		return k, k != ""
	case json.Number:
		return k.String(), k != ""
	}
	return "", false
}
