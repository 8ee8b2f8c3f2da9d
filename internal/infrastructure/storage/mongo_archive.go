package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ArticleDigest/internal/domain"
	"ArticleDigest/internal/ports"
)

const archiveCollection = "articles"

// MongoArchive appends full extracted article text to the articles
// collection. Append-only: no update or delete path exists, so records
// orphaned by a crash before the cache write only cost storage.
type MongoArchive struct {
	collection *mongo.Collection
}

var _ ports.ArchiveStore = (*MongoArchive)(nil)

// NewMongoArchive wires the archive database handle.
func NewMongoArchive(db *mongo.Database) *MongoArchive {
	return &MongoArchive{collection: db.Collection(archiveCollection)}
}

// Insert appends one record and returns its ObjectID hex as the opaque
// reference id the cache entry will point at.
func (a *MongoArchive) Insert(ctx context.Context, url, fullText string) (string, error) {
	rec := domain.ArchiveRecord{
		URL:       url,
		FullText:  fullText,
		CreatedAt: time.Now().UTC(),
	}
	doc := bson.M{
		"url":       rec.URL,
		"fullText":  rec.FullText,
		"createdAt": rec.CreatedAt,
	}

	res, err := a.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", &domain.StoreError{Store: "archive", Err: fmt.Errorf("insert article: %w", err)}
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &domain.StoreError{Store: "archive", Err: fmt.Errorf("unexpected inserted id type %T", res.InsertedID)}
	}

	return id.Hex(), nil
}
