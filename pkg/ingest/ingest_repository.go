package ingest

import (
	"context"

	"cloud.google.com/go/firestore"
)

type (
	IngestRepository interface {
		WriteDocument(ctx context.Context, collection string, docID string, data map[string]any) (string, error)
	}

	ingestRepository struct {
		db *firestore.Client
	}
)

func NewIngestRepository(db *firestore.Client) IngestRepository {
	return &ingestRepository{db: db}
}

// WriteDocument merge-writes into an arbitrary collection. With a docID the
// write is an upsert; without one the store generates the identifier.
func (r *ingestRepository) WriteDocument(ctx context.Context, collection string, docID string, data map[string]any) (string, error) {
	col := r.db.Collection(collection)
	if docID != "" {
		_, err := col.Doc(docID).Set(ctx, data, firestore.MergeAll)
		return docID, err
	}
	ref, _, err := col.Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}
