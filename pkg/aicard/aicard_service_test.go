package aicard

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/pkg/store"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAiCardRepository struct {
	mu   sync.Mutex
	seq  int
	docs map[string]map[string]any
}

func newFakeAiCardRepository() *fakeAiCardRepository {
	return &fakeAiCardRepository{docs: map[string]map[string]any{}}
}

func (r *fakeAiCardRepository) GetAiCards(ctx context.Context, limit int) ([]store.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var docs []store.Document
	for id, data := range r.docs {
		if limit > 0 && len(docs) == limit {
			break
		}
		docs = append(docs, store.Document{ID: id, Data: data})
	}
	return docs, nil
}

func (r *fakeAiCardRepository) GetAiCardByID(ctx context.Context, id string) (store.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.docs[id]
	if !ok {
		return store.Document{}, store.ErrNotFound
	}
	return store.Document{ID: id, Data: data}, nil
}

func (r *fakeAiCardRepository) CreateAiCard(ctx context.Context, data map[string]any) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("card%d", r.seq)
	stored := map[string]any{"createdAt": time.Now().UTC()}
	for k, v := range data {
		stored[k] = v
	}
	r.docs[id] = stored
	return id, nil
}

func (r *fakeAiCardRepository) merge(id string, data map[string]any) {
	existing, ok := r.docs[id]
	if !ok {
		existing = map[string]any{}
		r.docs[id] = existing
	}
	for k, v := range data {
		existing[k] = v
	}
}

func (r *fakeAiCardRepository) MergeAiCard(ctx context.Context, id string, data map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merge(id, data)
	return nil
}

func (r *fakeAiCardRepository) MergeAiCardWithCreatedAt(ctx context.Context, id string, data map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merge(id, data)
	r.docs[id]["createdAt"] = time.Now().UTC()
	return nil
}

func (r *fakeAiCardRepository) DeleteAiCard(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

func TestCreateAiCardShape(t *testing.T) {
	service := NewAiCardService(newFakeAiCardRepository())

	card, err := service.CreateAiCard(context.Background(), map[string]any{
		"title":    "Street style",
		"category": "urban",
	})
	require.NoError(t, err)
	assert.Equal(t, "Street style", card["title"])
	assert.Equal(t, "urban", card["category"])
	assert.Equal(t, "Unisex", card["gender"])
}

func TestAiCardCategoryFallsBackToID(t *testing.T) {
	repo := newFakeAiCardRepository()
	service := NewAiCardService(repo)

	repo.docs["summer-looks"] = map[string]any{"title": "Linen"}

	card, err := service.GetAiCardByID(context.Background(), "summer-looks")
	require.NoError(t, err)
	assert.Equal(t, "summer-looks", card["category"])
}

func TestUpdateAiCardPreservesCreatedAt(t *testing.T) {
	repo := newFakeAiCardRepository()
	service := NewAiCardService(repo)

	repo.docs["c1"] = map[string]any{
		"title":     "Old title",
		"createdAt": "2023-01-01T00:00:00.000Z",
	}

	card, err := service.UpdateAiCard(context.Background(), "c1", map[string]any{"title": "New title"})
	require.NoError(t, err)
	assert.Equal(t, "New title", card["title"])
	assert.Equal(t, "2023-01-01T00:00:00.000Z", card["createdAt"])

	// an empty body changes nothing and still keeps the timestamp
	card, err = service.UpdateAiCard(context.Background(), "c1", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "New title", card["title"])
	assert.Equal(t, "2023-01-01T00:00:00.000Z", card["createdAt"])
	assert.Equal(t, "2023-01-01T00:00:00.000Z", repo.docs["c1"]["createdAt"])
}

func TestUpdateAiCardBackfillsMissingCreatedAt(t *testing.T) {
	repo := newFakeAiCardRepository()
	service := NewAiCardService(repo)

	repo.docs["c1"] = map[string]any{"title": "No timestamp"}

	_, err := service.UpdateAiCard(context.Background(), "c1", map[string]any{"title": "Stamped"})
	require.NoError(t, err)
	assert.NotNil(t, repo.docs["c1"]["createdAt"])
}

func TestUpdateAiCardNotFound(t *testing.T) {
	service := NewAiCardService(newFakeAiCardRepository())

	_, err := service.UpdateAiCard(context.Background(), "ghost", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, domain.ErrAiCardNotFound)
}

func TestAiCardClientCannotSetCreatedAt(t *testing.T) {
	repo := newFakeAiCardRepository()
	service := NewAiCardService(repo)

	repo.docs["c1"] = map[string]any{"createdAt": "2023-01-01T00:00:00.000Z"}

	_, err := service.UpdateAiCard(context.Background(), "c1", map[string]any{
		"createdAt": "1999-01-01T00:00:00.000Z",
		"title":     "Tampered",
	})
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01T00:00:00.000Z", repo.docs["c1"]["createdAt"])
}
