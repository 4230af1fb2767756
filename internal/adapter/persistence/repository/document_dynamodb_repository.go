package repository

import (
	"context"
	"errors"
	"fmt"

	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const keyAttribute = "id"

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// DocumentDynamoRepository persists one record type in its own DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// It satisfies interfaces.IRepository so it can replace the in-memory store
// without touching the use cases.
type DocumentDynamoRepository[T any] struct {
	ddb       DynamoDBAPI
	tableName string
	key       func(T) string
}

func NewDocumentDynamoRepository[T any](ddb DynamoDBAPI, tableName string, key func(T) string) *DocumentDynamoRepository[T] {
	return &DocumentDynamoRepository[T]{ddb: ddb, tableName: tableName, key: key}
}

func (r *DocumentDynamoRepository[T]) TableName() string {
	return r.tableName
}

func (r *DocumentDynamoRepository[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	av, err := marshalItem(e)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": keyAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, fmt.Errorf("%s: %s: %w", r.tableName, r.key(e), interfaces.ErrDuplicateKey)
		}
		return zero, err
	}
	return e, nil
}

func (r *DocumentDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}

	var e T
	if err := unmarshalItem(out.Item, &e); err != nil {
		return zero, err
	}
	return e, nil
}

// List scans the whole table. Fine for the small back-office datasets this
// service handles; item order is whatever DynamoDB returns.
func (r *DocumentDynamoRepository[T]) List(ctx context.Context) ([]T, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := []T{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var e T
			if err := unmarshalItem(raw, &e); err != nil {
				return nil, err
			}
			items = append(items, e)
		}
	}
	return items, nil
}

func (r *DocumentDynamoRepository[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	av, err := marshalItem(e)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": keyAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return zero, nil
		}
		return zero, err
	}
	return e, nil
}
