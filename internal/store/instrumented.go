package store

import (
	"context"
	"time"
)

// Observer receives timings for store operations.
type Observer interface {
	ObserveStoreOperation(operation, collection string, duration time.Duration)
}

// Instrumented wraps a Store and reports per-operation timings.
type Instrumented struct {
	inner    Store
	observer Observer
}

// Instrument decorates a driver with timing observation. A nil observer
// returns the driver unchanged.
func Instrument(inner Store, observer Observer) Store {
	if observer == nil {
		return inner
	}
	return &Instrumented{inner: inner, observer: observer}
}

func (s *Instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	payload, err := s.inner.Get(ctx, key)
	s.observer.ObserveStoreOperation("get", key, time.Since(start))
	return payload, err
}

func (s *Instrumented) Put(ctx context.Context, key string, payload []byte) error {
	start := time.Now()
	err := s.inner.Put(ctx, key, payload)
	s.observer.ObserveStoreOperation("put", key, time.Since(start))
	return err
}
