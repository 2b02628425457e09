package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/repository"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}

func (s *memStore) Put(_ context.Context, key string, payload []byte) error {
	s.data[key] = payload
	return nil
}

func newColl[T any](t *testing.T, s *memStore, name string, seed []T) *repository.Collection[T] {
	t.Helper()
	coll := repository.NewCollection[T](s, name, zap.NewNop())
	if seed != nil {
		require.NoError(t, coll.Save(context.Background(), seed))
	}
	return coll
}
