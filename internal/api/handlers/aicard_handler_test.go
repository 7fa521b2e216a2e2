package handlers

import (
	"Wardrobe-Backend/domain"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAiCardService struct {
	cards map[string]map[string]any
}

func newFakeAiCardService() *fakeAiCardService {
	return &fakeAiCardService{cards: map[string]map[string]any{}}
}

func (s *fakeAiCardService) GetAiCards(ctx context.Context, limit int) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(s.cards))
	for _, c := range s.cards {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeAiCardService) GetAiCardByID(ctx context.Context, id string) (map[string]any, error) {
	c, ok := s.cards[id]
	if !ok {
		return nil, domain.ErrAiCardNotFound
	}
	return c, nil
}

func (s *fakeAiCardService) CreateAiCard(ctx context.Context, body map[string]any) (map[string]any, error) {
	card := map[string]any{"id": "card1"}
	for k, v := range body {
		card[k] = v
	}
	s.cards["card1"] = card
	return card, nil
}

func (s *fakeAiCardService) UpdateAiCard(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	c, ok := s.cards[id]
	if !ok {
		return nil, domain.ErrAiCardNotFound
	}
	for k, v := range body {
		c[k] = v
	}
	return c, nil
}

func (s *fakeAiCardService) DeleteAiCard(ctx context.Context, id string) error {
	delete(s.cards, id)
	return nil
}

func newAiCardTestApp() (*fiber.App, *fakeAiCardService) {
	service := newFakeAiCardService()
	handler := NewAiCardHandler(service, validator.New())

	app := fiber.New()
	app.Get("/api/aicards", handler.GetAiCards)
	app.Post("/api/aicards", handler.CreateAiCard)
	app.Get("/api/aicards/:id", handler.GetAiCardDetails)
	app.Put("/api/aicards/:id", handler.UpdateAiCard)
	app.Delete("/api/aicards/:id", handler.DeleteAiCard)
	return app, service
}

func TestAiCardListIsBareArray(t *testing.T) {
	app, service := newAiCardTestApp()
	service.cards["c1"] = map[string]any{"id": "c1", "title": "Look"}

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/aicards", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	// no envelope: the body is the array itself
	var cards []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "c1", cards[0]["id"])
}

func TestAiCardCreateValidatesFields(t *testing.T) {
	app, service := newAiCardTestApp()

	res, err := app.Test(jsonRequest(fiber.MethodPost, "/api/aicards", `{"title":"No category"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageAiCardFieldsRequired, body["error"])
	assert.NotContains(t, body, "ok")
	assert.Empty(t, service.cards)
}

func TestAiCardCreateReturnsBareObject(t *testing.T) {
	app, _ := newAiCardTestApp()

	res, err := app.Test(jsonRequest(fiber.MethodPost, "/api/aicards", `{"title":"Look","category":"street"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Look", body["title"])
	assert.NotContains(t, body, "ok")
}

func TestAiCardNotFoundIsBareError(t *testing.T) {
	app, _ := newAiCardTestApp()

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/aicards/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, domain.MessageAiCardNotFound, body["error"])
	assert.NotContains(t, body, "ok")
}

func TestAiCardDelete(t *testing.T) {
	app, service := newAiCardTestApp()
	service.cards["c1"] = map[string]any{"id": "c1"}

	res, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/aicards/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, map[string]any{"deleted": true}, body)
	assert.Empty(t, service.cards)
}
