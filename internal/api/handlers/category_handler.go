package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/api/presenters"
	"Wardrobe-Backend/pkg/category"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetCategoryDetails(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"categories": categories, "count": len(categories)}, fiber.StatusOK)
}

func (h *categoryHandler) GetCategoryDetails(c *fiber.Ctx) error {
	cat, err := h.categoryService.GetCategoryByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageCategoryNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"category": cat}, fiber.StatusOK)
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	request := domain.CreateCategoryRequest{}
	if err := c.BodyParser(&request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCategoryNameRequired, err)
	}

	cat, err := h.categoryService.CreateCategory(c.Context(), request)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"category": cat}, fiber.StatusCreated)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	request := domain.UpdateCategoryRequest{}
	if err := c.BodyParser(&request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCategoryNameRequired, err)
	}

	cat, err := h.categoryService.UpdateCategory(c.Context(), c.Params("id"), request)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageCategoryNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"category": cat}, fiber.StatusOK)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{}, fiber.StatusOK)
}
