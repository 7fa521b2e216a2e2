package feed

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/pkg/store"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionRecentItems = "recentItems"

type (
	FeedRepository interface {
		GetFeedItems(ctx context.Context, query domain.FeedQuery) ([]store.Document, error)
		GetFeedItemByID(ctx context.Context, id string) (store.Document, error)
		CreateFeedItem(ctx context.Context, data map[string]any) (string, error)
		MergeFeedItem(ctx context.Context, id string, data map[string]any) error
		DeleteFeedItem(ctx context.Context, id string) error
	}

	feedRepository struct {
		db *firestore.Client
	}
)

func NewFeedRepository(db *firestore.Client) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) col() *firestore.CollectionRef {
	return r.db.Collection(collectionRecentItems)
}

func (r *feedRepository) GetFeedItems(ctx context.Context, query domain.FeedQuery) ([]store.Document, error) {
	q := r.col().Query
	if query.Category != "" {
		q = q.Where("category", "==", query.Category)
	}
	if query.Saved != nil {
		q = q.Where("isSaved", "==", *query.Saved)
	}
	return store.QueryOrdered(ctx, q, "createdAt", query.Limit)
}

func (r *feedRepository) GetFeedItemByID(ctx context.Context, id string) (store.Document, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	return store.FromSnapshot(snap), nil
}

func (r *feedRepository) CreateFeedItem(ctx context.Context, data map[string]any) (string, error) {
	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = firestore.ServerTimestamp
	}
	ref, _, err := r.col().Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *feedRepository) MergeFeedItem(ctx context.Context, id string, data map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *feedRepository) DeleteFeedItem(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
