package group

import (
	"Wardrobe-Backend/pkg/store"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type (
	GroupRepository interface {
		GetGroups(ctx context.Context) ([]store.Document, error)
		GetGroupByID(ctx context.Context, groupID string) (store.Document, error)
		AppendItem(ctx context.Context, groupID string, item map[string]any) error
		SetItems(ctx context.Context, groupID string, items []any) error
	}

	groupRepository struct {
		db         *firestore.Client
		collection string
	}
)

// NewGroupRepository binds the repository to one group collection; the
// "basics" and "recreate" collections share this implementation.
func NewGroupRepository(db *firestore.Client, collection string) GroupRepository {
	return &groupRepository{db: db, collection: collection}
}

func (r *groupRepository) col() *firestore.CollectionRef {
	return r.db.Collection(r.collection)
}

func (r *groupRepository) GetGroups(ctx context.Context) ([]store.Document, error) {
	return store.Drain(r.col().Documents(ctx))
}

func (r *groupRepository) GetGroupByID(ctx context.Context, groupID string) (store.Document, error) {
	snap, err := r.col().Doc(groupID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrNotFound
		}
		return store.Document{}, err
	}
	return store.FromSnapshot(snap), nil
}

// AppendItem creates the group document when absent (an empty merge-set
// cannot clobber an existing items list) and then appends atomically;
// concurrent appends from different callers cannot lose each other.
func (r *groupRepository) AppendItem(ctx context.Context, groupID string, item map[string]any) error {
	doc := r.col().Doc(groupID)
	if _, err := doc.Set(ctx, map[string]any{}, firestore.MergeAll); err != nil {
		return err
	}
	_, err := doc.Update(ctx, []firestore.Update{
		{Path: "items", Value: firestore.ArrayUnion(item)},
	})
	return err
}

func (r *groupRepository) SetItems(ctx context.Context, groupID string, items []any) error {
	_, err := r.col().Doc(groupID).Update(ctx, []firestore.Update{
		{Path: "items", Value: items},
	})
	return err
}
