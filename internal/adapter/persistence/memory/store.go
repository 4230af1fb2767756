package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fieldservice/internal/usecase/interfaces"
)

var (
	ErrDuplicateKey = interfaces.ErrDuplicateKey
	ErrMissingKey   = errors.New("missing key")
)

// Collection is the mock persistence layer: a process-local set of documents
// standing in for a database table.
//
// Records are stored JSON-encoded so callers never share slices or maps with
// the store. Every call waits for the configured latency first to mimic a
// network round trip. There is no durability, no isolation and no transaction:
// the last Update for a key wins.
type Collection[T any] struct {
	name    string
	key     func(T) string
	latency time.Duration

	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
}

func NewCollection[T any](name string, key func(T) string, latency time.Duration) *Collection[T] {
	return &Collection[T]{
		name:    name,
		key:     key,
		latency: latency,
		docs:    map[string][]byte{},
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}

	c.mu.RLock()
	raw, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return zero, nil
	}
	return c.decode(raw)
}

// List returns every record in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v, err := c.decode(c.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *Collection[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}
	if err := c.insert(e); err != nil {
		return zero, err
	}
	return e, nil
}

func (c *Collection[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	if err := c.wait(ctx); err != nil {
		return zero, err
	}

	id := c.key(e)
	raw, err := json.Marshal(e)
	if err != nil {
		return zero, fmt.Errorf("%s: encode %s: %w", c.name, id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return zero, nil
	}
	c.docs[id] = raw
	return e, nil
}

// Seed inserts records without simulated latency. Used for fixtures.
func (c *Collection[T]) Seed(records ...T) error {
	for _, r := range records {
		if err := c.insert(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

func (c *Collection[T]) insert(e T) error {
	id := c.key(e)
	if id == "" {
		return fmt.Errorf("%s: %w", c.name, ErrMissingKey)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%s: encode %s: %w", c.name, id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("%s: %s: %w", c.name, id, ErrDuplicateKey)
	}
	c.docs[id] = raw
	c.order = append(c.order, id)
	return nil
}

func (c *Collection[T]) decode(raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("%s: decode: %w", c.name, err)
	}
	return v, nil
}

func (c *Collection[T]) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
