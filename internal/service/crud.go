package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/repository"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
)

// Schema describes how the generic CRUD core handles one entity type:
// record identity, which fields the substring search scans, and an optional
// normalize hook carrying the entity's own rules.
type Schema[T any] struct {
	ID         func(*T) int64
	SetID      func(*T, int64)
	SearchText func(*T) []string
	Normalize  func(*T) error
}

// CollectionService is the CRUD core shared by every entity collection.
// The seven console screens differ only in their Schema.
type CollectionService[T any] struct {
	coll   *repository.Collection[T]
	schema Schema[T]
	logger *zap.Logger
}

// NewCollectionService binds a persisted collection to its schema.
func NewCollectionService[T any](coll *repository.Collection[T], schema Schema[T], logger *zap.Logger) *CollectionService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionService[T]{coll: coll, schema: schema, logger: logger}
}

// Collection exposes the storage key served by this service.
func (s *CollectionService[T]) Collection() string {
	return s.coll.Name()
}

// List returns all records, optionally filtered by case-insensitive
// substring containment over the schema's search fields. Plain linear scan.
func (s *CollectionService[T]) List(ctx context.Context, search string) []T {
	records := s.coll.Load(ctx)
	search = strings.TrimSpace(search)
	if search == "" {
		return records
	}

	needle := strings.ToLower(search)
	matched := make([]T, 0, len(records))
	for i := range records {
		for _, field := range s.schema.SearchText(&records[i]) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, records[i])
				break
			}
		}
	}
	return matched
}

// Create assigns an ID, appends the record and persists the collection.
func (s *CollectionService[T]) Create(ctx context.Context, record T) (*T, error) {
	if s.schema.Normalize != nil {
		if err := s.schema.Normalize(&record); err != nil {
			return nil, err
		}
	}

	records := s.coll.Load(ctx)
	ids := make([]int64, 0, len(records))
	for i := range records {
		ids = append(ids, s.schema.ID(&records[i]))
	}
	s.schema.SetID(&record, repository.NextID(ids))

	records = append(records, record)
	if err := s.coll.Save(ctx, records); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist collection")
	}

	s.logger.Info("record created",
		zap.String("collection", s.coll.Name()), zap.Int64("id", s.schema.ID(&record)))
	return &record, nil
}

// Update replaces the record with the given ID wholesale, keeping the ID.
// This is a capability the original screens only hinted at; it is exposed
// here as an explicit full-record replace.
func (s *CollectionService[T]) Update(ctx context.Context, id int64, record T) (*T, error) {
	if s.schema.Normalize != nil {
		if err := s.schema.Normalize(&record); err != nil {
			return nil, err
		}
	}

	records := s.coll.Load(ctx)
	for i := range records {
		if s.schema.ID(&records[i]) != id {
			continue
		}
		s.schema.SetID(&record, id)
		records[i] = record
		if err := s.coll.Save(ctx, records); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist collection")
		}
		s.logger.Info("record updated",
			zap.String("collection", s.coll.Name()), zap.Int64("id", id))
		return &record, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "record not found")
}

// Delete removes the record with the given ID and persists the result.
// Deleting an absent ID leaves the collection unchanged and is not an error;
// confirming intent is the caller's responsibility.
func (s *CollectionService[T]) Delete(ctx context.Context, id int64) error {
	records := s.coll.Load(ctx)
	kept := make([]T, 0, len(records))
	for i := range records {
		if s.schema.ID(&records[i]) != id {
			kept = append(kept, records[i])
		}
	}
	if err := s.coll.Save(ctx, kept); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist collection")
	}
	if len(kept) < len(records) {
		s.logger.Info("record deleted",
			zap.String("collection", s.coll.Name()), zap.Int64("id", id))
	}
	return nil
}
