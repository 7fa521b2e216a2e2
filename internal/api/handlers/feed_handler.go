package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/api/presenters"
	"Wardrobe-Backend/pkg/feed"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	FeedHandler interface {
		GetFeedItems(c *fiber.Ctx) error
		GetFeedItemDetails(c *fiber.Ctx) error
		CreateFeedItem(c *fiber.Ctx) error
		UpdateFeedItem(c *fiber.Ctx) error
		DeleteFeedItem(c *fiber.Ctx) error
	}

	feedHandler struct {
		feedService feed.FeedService
	}
)

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &feedHandler{feedService: feedService}
}

func (h *feedHandler) GetFeedItems(c *fiber.Ctx) error {
	query := domain.FeedQuery{
		Limit:    parseLimit(c.Query("limit"), 40),
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Saved:    parseBoolFlag(c.Query("saved")),
	}

	items, err := h.feedService.GetFeedItems(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeedItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items, "count": len(items)}, fiber.StatusOK)
}

func (h *feedHandler) GetFeedItemDetails(c *fiber.Ctx) error {
	item, err := h.feedService.GetFeedItemByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFeedItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFeedItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFeedItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK)
}

func (h *feedHandler) CreateFeedItem(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	id, err := h.feedService.CreateFeedItem(c.Context(), body)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFeedItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusCreated)
}

func (h *feedHandler) UpdateFeedItem(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	id := c.Params("id")
	if err := h.feedService.UpdateFeedItem(c.Context(), id, body); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeedItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusOK)
}

func (h *feedHandler) DeleteFeedItem(c *fiber.Ctx) error {
	if err := h.feedService.DeleteFeedItem(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFeedItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{}, fiber.StatusOK)
}
