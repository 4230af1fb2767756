package interfaces

import "context"

// IDocumentWriter stores schemaless documents by key. Used by the batch importer.
type IDocumentWriter interface {
	Upsert(ctx context.Context, collection string, doc map[string]any) error
}
