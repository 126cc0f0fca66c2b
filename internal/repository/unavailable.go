package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// unavailableStore stands in when no storage connection was established at
// process start. Every operation fails with ErrUnavailable so callers can
// branch with errors.Is instead of nil-checking the store.
type unavailableStore struct{}

// NewUnavailableStore creates a store whose every operation reports
// ErrUnavailable.
func NewUnavailableStore() Store {
	return unavailableStore{}
}

func (unavailableStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", ErrUnavailable
}

func (unavailableStore) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) Count(ctx context.Context, collection string) (int64, error) {
	return 0, ErrUnavailable
}

func (unavailableStore) CollectionNames(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) Available() bool {
	return false
}
