// Package repository layers record semantics over the raw key-value store:
// JSON (de)serialization per collection, fail-open loads and ID allocation.
package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/store"
)

// Collection persists a named sequence of records of one entity type.
type Collection[T any] struct {
	store  store.Store
	name   string
	logger *zap.Logger
}

// NewCollection binds an entity type to its storage key.
func NewCollection[T any](s store.Store, name string, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{store: s, name: name, logger: logger}
}

// Name returns the storage key of the collection.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns the persisted records. A missing key, a driver failure or an
// unparsable payload all degrade to an empty slice: reads never fail, the
// problem is logged and the console keeps working on an empty collection.
func (c *Collection[T]) Load(ctx context.Context) []T {
	payload, err := c.store.Get(ctx, c.name)
	if err != nil {
		c.logger.Warn("collection read failed, treating as empty",
			zap.String("collection", c.name), zap.Error(err))
		return []T{}
	}
	if len(payload) == 0 {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		c.logger.Warn("collection payload unparsable, treating as empty",
			zap.String("collection", c.name), zap.Error(err))
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// Save overwrites the whole persisted collection. Every save is a full
// serialization; there are no partial writes.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Put(ctx, c.name, payload)
}
