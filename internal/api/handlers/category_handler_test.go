package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/entities"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryService struct {
	seq        int
	categories map[string]entities.Category
}

func newFakeCategoryService() *fakeCategoryService {
	return &fakeCategoryService{categories: map[string]entities.Category{}}
}

func (s *fakeCategoryService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	out := make([]entities.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCategoryService) GetCategoryByID(ctx context.Context, id string) (entities.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return entities.Category{}, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (s *fakeCategoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (entities.Category, error) {
	s.seq++
	c := entities.Category{ID: fmt.Sprintf("cat%d", s.seq), Name: req.Name}
	s.categories[c.ID] = c
	return c, nil
}

func (s *fakeCategoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (entities.Category, error) {
	if _, ok := s.categories[id]; !ok {
		return entities.Category{}, domain.ErrCategoryNotFound
	}
	c := entities.Category{ID: id, Name: req.Name}
	s.categories[id] = c
	return c, nil
}

func (s *fakeCategoryService) DeleteCategory(ctx context.Context, id string) error {
	delete(s.categories, id)
	return nil
}

func newCategoryTestApp() (*fiber.App, *fakeCategoryService) {
	service := newFakeCategoryService()
	handler := NewCategoryHandler(service, validator.New())

	app := fiber.New()
	app.Get("/api/categories", handler.GetCategories)
	app.Post("/api/categories", handler.CreateCategory)
	app.Get("/api/categories/:id", handler.GetCategoryDetails)
	app.Put("/api/categories/:id", handler.UpdateCategory)
	app.Delete("/api/categories/:id", handler.DeleteCategory)
	return app, service
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestCreateCategory(t *testing.T) {
	app, service := newCategoryTestApp()

	res, err := app.Test(jsonRequest(fiber.MethodPost, "/api/categories", `{"name":"Outerwear"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["ok"])
	cat, ok := body["category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Outerwear", cat["name"])
	assert.NotEmpty(t, cat["id"])
	assert.Len(t, service.categories, 1)
}

func TestCreateCategoryValidation(t *testing.T) {
	app, service := newCategoryTestApp()

	res, err := app.Test(jsonRequest(fiber.MethodPost, "/api/categories", `{}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, domain.MessageCategoryNameRequired, body["error"])
	assert.Empty(t, service.categories)
}

func TestGetCategoryNotFound(t *testing.T) {
	app, _ := newCategoryTestApp()

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/categories/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, domain.MessageCategoryNotFound, body["error"])
}

func TestUpdateCategoryNotFound(t *testing.T) {
	app, _ := newCategoryTestApp()

	res, err := app.Test(jsonRequest(fiber.MethodPut, "/api/categories/ghost", `{"name":"X"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestListCategoriesEnvelope(t *testing.T) {
	app, service := newCategoryTestApp()
	service.categories["c1"] = entities.Category{ID: "c1", Name: "Shoes"}

	res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(1), body["count"])
	categories, ok := body["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 1)
}

func TestDeleteCategory(t *testing.T) {
	app, service := newCategoryTestApp()
	service.categories["c1"] = entities.Category{ID: "c1", Name: "Shoes"}

	res, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/api/categories/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["ok"])
	assert.Empty(t, service.categories)
}
