package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every operation when no storage connection
// was established at process start.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the sole boundary to persistent storage. Records live in named
// collections; identity is assigned by the store on insert. No filtering,
// projection or transactional semantics are offered.
type Store interface {
	// Insert stores one document and returns its generated identifier in
	// string form.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FetchAll returns every document in the named collection, each still
	// carrying its storage-native identifier, in storage-defined order.
	FetchAll(ctx context.Context, collection string) ([]bson.M, error)

	// Count returns the number of documents in the named collection.
	Count(ctx context.Context, collection string) (int64, error)

	// CollectionNames lists the collections present in the database.
	CollectionNames(ctx context.Context) ([]string, error)

	// Available reports whether a storage connection was established at
	// process start. It performs no I/O.
	Available() bool
}
