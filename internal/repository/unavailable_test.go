package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailableStore(t *testing.T) {
	store := NewUnavailableStore()
	ctx := context.Background()

	assert.False(t, store.Available())

	id, err := store.Insert(ctx, "product", map[string]any{"title": "x"})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrUnavailable)

	docs, err := store.FetchAll(ctx, "product")
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, ErrUnavailable)

	count, err := store.Count(ctx, "product")
	assert.Zero(t, count)
	assert.ErrorIs(t, err, ErrUnavailable)

	names, err := store.CollectionNames(ctx)
	assert.Nil(t, names)
	assert.ErrorIs(t, err, ErrUnavailable)
}
