package aicard

import (
	"Wardrobe-Backend/pkg/store"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionAiCards = "aiCards"

type (
	AiCardRepository interface {
		GetAiCards(ctx context.Context, limit int) ([]store.Document, error)
		GetAiCardByID(ctx context.Context, id string) (store.Document, error)
		CreateAiCard(ctx context.Context, data map[string]any) (string, error)
		MergeAiCard(ctx context.Context, id string, data map[string]any) error
		MergeAiCardWithCreatedAt(ctx context.Context, id string, data map[string]any) error
		DeleteAiCard(ctx context.Context, id string) error
	}

	aiCardRepository struct {
		db *firestore.Client
	}
)

func NewAiCardRepository(db *firestore.Client) AiCardRepository {
	return &aiCardRepository{db: db}
}

func (r *aiCardRepository) col() *firestore.CollectionRef {
	return r.db.Collection(collectionAiCards)
}

func (r *aiCardRepository) GetAiCards(ctx context.Context, limit int) ([]store.Document, error) {
	return store.QueryOrdered(ctx, r.col().Query, "createdAt", limit)
}

func (r *aiCardRepository) GetAiCardByID(ctx context.Context, id string) (store.Document, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	return store.FromSnapshot(snap), nil
}

// CreateAiCard stamps createdAt with the store's server clock; a client
// supplied value never reaches this point.
func (r *aiCardRepository) CreateAiCard(ctx context.Context, data map[string]any) (string, error) {
	data["createdAt"] = firestore.ServerTimestamp
	ref, _, err := r.col().Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *aiCardRepository) MergeAiCard(ctx context.Context, id string, data map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

// MergeAiCardWithCreatedAt backfills a server timestamp for documents that
// were written without one.
func (r *aiCardRepository) MergeAiCardWithCreatedAt(ctx context.Context, id string, data map[string]any) error {
	stamped := make(map[string]any, len(data)+1)
	for k, v := range data {
		stamped[k] = v
	}
	stamped["createdAt"] = firestore.ServerTimestamp
	_, err := r.col().Doc(id).Set(ctx, stamped, firestore.MergeAll)
	return err
}

func (r *aiCardRepository) DeleteAiCard(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
