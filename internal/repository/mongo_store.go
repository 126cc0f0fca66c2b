package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoStore implements Store on top of a MongoDB database handle. The
// underlying driver is safe for concurrent use, so no synchronisation is
// needed here.
type mongoStore struct {
	db     *mongo.Database
	logger zerolog.Logger
}

// NewMongoStore creates a MongoDB-backed store.
func NewMongoStore(db *mongo.Database, logger zerolog.Logger) Store {
	return &mongoStore{
		db:     db,
		logger: logger.With().Str("store", "mongo").Logger(),
	}
}

// Insert stores one document and returns its generated identifier.
func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to insert document")
		return "", fmt.Errorf("storage: insert into %q: %w", collection, err)
	}

	id := stringifyID(res.InsertedID)

	s.logger.Debug().
		Str("collection", collection).
		Str("id", id).
		Msg("document inserted")

	return id, nil
}

// FetchAll returns every document in the named collection.
func (s *mongoStore) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to query collection")
		return nil, fmt.Errorf("storage: fetch from %q: %w", collection, err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to decode documents")
		return nil, fmt.Errorf("storage: decode from %q: %w", collection, err)
	}

	return docs, nil
}

// Count returns the number of documents in the named collection.
func (s *mongoStore) Count(ctx context.Context, collection string) (int64, error) {
	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Msg("failed to count documents")
		return 0, fmt.Errorf("storage: count %q: %w", collection, err)
	}
	return count, nil
}

// CollectionNames lists the collections present in the database.
func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list collections")
		return nil, fmt.Errorf("storage: list collections: %w", err)
	}
	return names, nil
}

// Available always reports true; construction implies a verified connection.
func (s *mongoStore) Available() bool {
	return true
}

// stringifyID renders a storage-assigned identifier as a plain string.
// ObjectIDs become their hex form; anything else falls back to fmt.
func stringifyID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
