package store

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrNotFound = errors.New("document not found")

// Document is a store-neutral snapshot of one collection entry, so services
// and their tests never touch Firestore types directly.
type Document struct {
	ID   string
	Data map[string]any
}

// IsNotFound reports whether err is the adapter's or Firestore's not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || status.Code(err) == codes.NotFound
}

func FromSnapshot(snap *firestore.DocumentSnapshot) Document {
	return Document{ID: snap.Ref.ID, Data: snap.Data()}
}

// Drain reads every snapshot from the iterator.
func Drain(it *firestore.DocumentIterator) ([]Document, error) {
	var docs []Document
	defer it.Stop()
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, FromSnapshot(snap))
	}
}

// QueryOrdered runs q ordered by field descending. Documents written through
// the passthrough endpoint may lack the field (or its index) entirely, so a
// failed read is retried ordered by document id descending.
func QueryOrdered(ctx context.Context, q firestore.Query, field string, limit int) ([]Document, error) {
	ordered := q.OrderBy(field, firestore.Desc)
	if limit > 0 {
		ordered = ordered.Limit(limit)
	}
	docs, err := Drain(ordered.Documents(ctx))
	if err == nil {
		return docs, nil
	}

	fallback := q.OrderBy(firestore.DocumentID, firestore.Desc)
	if limit > 0 {
		fallback = fallback.Limit(limit)
	}
	return Drain(fallback.Documents(ctx))
}
