package image

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/pkg/store"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionImages = "images"

type (
	ImageRepository interface {
		GetImages(ctx context.Context, query domain.ImageQuery) ([]store.Document, error)
		GetImageByID(ctx context.Context, id string) (store.Document, error)
		CreateImage(ctx context.Context, data map[string]any) (string, error)
		MergeImage(ctx context.Context, id string, data map[string]any) error
		DeleteImage(ctx context.Context, id string) error
	}

	imageRepository struct {
		db *firestore.Client
	}
)

func NewImageRepository(db *firestore.Client) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) col() *firestore.CollectionRef {
	return r.db.Collection(collectionImages)
}

func (r *imageRepository) GetImages(ctx context.Context, query domain.ImageQuery) ([]store.Document, error) {
	q := r.col().Query
	if query.Category != "" {
		q = q.Where("category", "==", query.Category)
	}
	if query.Public != nil {
		q = q.Where("isPublic", "==", *query.Public)
	}
	return store.QueryOrdered(ctx, q, "createdAt", query.Limit)
}

func (r *imageRepository) GetImageByID(ctx context.Context, id string) (store.Document, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	return store.FromSnapshot(snap), nil
}

func (r *imageRepository) CreateImage(ctx context.Context, data map[string]any) (string, error) {
	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = firestore.ServerTimestamp
	}
	ref, _, err := r.col().Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *imageRepository) MergeImage(ctx context.Context, id string, data map[string]any) error {
	_, err := r.col().Doc(id).Set(ctx, data, firestore.MergeAll)
	return err
}

func (r *imageRepository) DeleteImage(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
