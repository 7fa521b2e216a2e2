package category

import (
	"Wardrobe-Backend/pkg/store"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionCategories = "categories"

type (
	CategoryRepository interface {
		GetCategories(ctx context.Context) ([]store.Document, error)
		GetCategoryByID(ctx context.Context, id string) (store.Document, error)
		CreateCategory(ctx context.Context, name string) (string, error)
		MergeCategory(ctx context.Context, id string, name string) error
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryRepository struct {
		db *firestore.Client
	}
)

func NewCategoryRepository(db *firestore.Client) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) col() *firestore.CollectionRef {
	return r.db.Collection(collectionCategories)
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]store.Document, error) {
	return store.Drain(r.col().Documents(ctx))
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (store.Document, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	return store.FromSnapshot(snap), nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, name string) (string, error) {
	ref, _, err := r.col().Add(ctx, map[string]any{"name": name})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *categoryRepository) MergeCategory(ctx context.Context, id string, name string) error {
	_, err := r.col().Doc(id).Set(ctx, map[string]any{"name": name}, firestore.MergeAll)
	return err
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
