package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDocumentWriter upserts raw documents into "<prefix><collection>" tables.
type DynamoDocumentWriter struct {
	ddb         DynamoDBAPI
	tablePrefix string
}

var _ interfaces.IDocumentWriter = (*DynamoDocumentWriter)(nil)

func NewDynamoDocumentWriter(ddb DynamoDBAPI, tablePrefix string) *DynamoDocumentWriter {
	return &DynamoDocumentWriter{ddb: ddb, tablePrefix: tablePrefix}
}

// Upsert writes doc unconditionally; an existing item with the same id is replaced.
func (w *DynamoDocumentWriter) Upsert(ctx context.Context, collection string, doc map[string]any) error {
	if _, ok := doc[keyAttribute].(string); !ok {
		return fmt.Errorf("document in %s has no string %q attribute", collection, keyAttribute)
	}
	av, err := marshalItem(withDynamoNumbers(doc))
	if err != nil {
		return err
	}
	_, err = w.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(w.tablePrefix + collection),
		Item:      av,
	})
	return err
}

// withDynamoNumbers turns json.Number values into attributevalue.Number so they
// are stored as N attributes with their exact decimal text.
func withDynamoNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		return attributevalue.Number(t.String())
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = withDynamoNumbers(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = withDynamoNumbers(e)
		}
		return out
	}
	return v
}
