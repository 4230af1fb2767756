package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table and understands the two condition
// expressions the repositories use.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func idOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(*in.TableName)[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(*in.TableName)
	id := idOf(in.Item)
	_, exists := t[id]
	cond := aws.ToString(in.ConditionExpression)
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists") && exists,
		strings.HasPrefix(cond, "attribute_exists") && !exists:
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.ScanOutput{}
	for _, item := range f.table(*in.TableName) {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func TestDocumentDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repos := NewDynamoRepositories(ddb, "fs_")

	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:         "inv-1",
		Number:     "INV-1",
		CustomerID: "cust-1",
		LineItems:  []entities.LineItem{{Description: "labor", Quantity: 2, UnitPrice: 50, Total: 100}},
		Total:      100,
		Status:     entities.InvoiceStatusSent,
		DueDate:    &due,
		CreatedAt:  due,
		UpdatedAt:  due,
	}

	if _, err := repos.Invoices.Create(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ddb.tables["fs_invoices"]["inv-1"]; !ok {
		t.Fatalf("expected item in fs_invoices table, got %v", ddb.tables)
	}
	if _, ok := ddb.tables["fs_invoices"]["inv-1"]["customer_id"]; !ok {
		t.Fatalf("expected json attribute names on item")
	}

	got, err := repos.Invoices.GetByID(ctx, "inv-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Number != "INV-1" || got.Total != 100 || len(got.LineItems) != 1 || got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("unexpected invoice: %+v", got)
	}

	if _, err := repos.Invoices.Create(ctx, inv); !errors.Is(err, interfaces.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	got.Status = entities.InvoiceStatusPaid
	if _, err := repos.Invoices.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := repos.Invoices.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Status != entities.InvoiceStatusPaid {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestDocumentDynamoRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentDynamoRepository(newFakeDynamo(), "customers", func(e entities.Customer) string { return e.ID })

	got, err := repo.GetByID(ctx, "nope")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero value, got %+v err=%v", got, err)
	}

	updated, err := repo.Update(ctx, entities.Customer{ID: "nope"})
	if err != nil || updated.ID != "" {
		t.Fatalf("expected zero value on missing update, got %+v err=%v", updated, err)
	}
}

func TestDocumentDynamoRepository_PropagatesErrors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	repo := NewDocumentDynamoRepository(ddb, "customers", func(e entities.Customer) string { return e.ID })

	if _, err := repo.GetByID(context.Background(), "x"); err == nil || err.Error() != "throttled" {
		t.Fatalf("expected throttled, got %v", err)
	}
	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error from scan")
	}
}

func TestDynamoDocumentWriter_Upsert(t *testing.T) {
	ddb := newFakeDynamo()
	w := NewDynamoDocumentWriter(ddb, "fs_")

	doc := map[string]any{"id": "vend-1", "name": "Supply Co", "trades": []any{"hvac"}}
	if err := w.Upsert(context.Background(), "vendors", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc["name"] = "Supply Co 2"
	if err := w.Upsert(context.Background(), "vendors", doc); err != nil {
		t.Fatalf("upsert over existing item must succeed: %v", err)
	}
	name := ddb.tables["fs_vendors"]["vend-1"]["name"].(*types.AttributeValueMemberS).Value
	if name != "Supply Co 2" {
		t.Fatalf("expected replaced item, got %q", name)
	}

	if err := w.Upsert(context.Background(), "vendors", map[string]any{"name": "no key"}); err == nil {
		t.Fatalf("expected error for document without id")
	}
}

func TestDynamoDocumentWriter_UpsertKeepsExactNumbers(t *testing.T) {
	ddb := newFakeDynamo()
	w := NewDynamoDocumentWriter(ddb, "fs_")

	doc := map[string]any{
		"id":        "item-1",
		"sku_count": json.Number("9007199254740993"),
		"lines":     []any{map[string]any{"qty": json.Number("2")}},
	}
	if err := w.Upsert(context.Background(), "inventory", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := ddb.tables["fs_inventory"]["item-1"]
	count, ok := item["sku_count"].(*types.AttributeValueMemberN)
	if !ok || count.Value != "9007199254740993" {
		t.Fatalf("expected exact N attribute, got %#v", item["sku_count"])
	}
	lines := item["lines"].(*types.AttributeValueMemberL).Value
	qty := lines[0].(*types.AttributeValueMemberM).Value["qty"].(*types.AttributeValueMemberN)
	if qty.Value != "2" {
		t.Fatalf("expected nested number, got %q", qty.Value)
	}
}
