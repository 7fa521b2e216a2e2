package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/pkg/aicard"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// AiCardHandler predates the shared response envelope and keeps the older
// bare JSON shapes its clients already parse.
type (
	AiCardHandler interface {
		GetAiCards(c *fiber.Ctx) error
		GetAiCardDetails(c *fiber.Ctx) error
		CreateAiCard(c *fiber.Ctx) error
		UpdateAiCard(c *fiber.Ctx) error
		DeleteAiCard(c *fiber.Ctx) error
	}

	aiCardHandler struct {
		aiCardService aicard.AiCardService
		validator     *validator.Validate
	}
)

func NewAiCardHandler(aiCardService aicard.AiCardService, validator *validator.Validate) AiCardHandler {
	return &aiCardHandler{
		aiCardService: aiCardService,
		validator:     validator,
	}
}

func (h *aiCardHandler) GetAiCards(c *fiber.Ctx) error {
	limit := parseLimit(c.Query("limit"), 100)

	cards, err := h.aiCardService.GetAiCards(c.Context(), limit)
	if err != nil {
		return bareError(c, fiber.StatusInternalServerError, domain.MessageFailedGetAiCards, err)
	}

	return c.Status(fiber.StatusOK).JSON(cards)
}

func (h *aiCardHandler) GetAiCardDetails(c *fiber.Ctx) error {
	card, err := h.aiCardService.GetAiCardByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAiCardNotFound) {
			return bareError(c, fiber.StatusNotFound, domain.MessageAiCardNotFound, err)
		}
		return bareError(c, fiber.StatusInternalServerError, domain.MessageFailedGetAiCards, err)
	}

	return c.Status(fiber.StatusOK).JSON(card)
}

func (h *aiCardHandler) CreateAiCard(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return bareError(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	request := domain.CreateAiCardRequest{}
	request.Title, _ = utils.CoerceString(body["title"])
	request.Category, _ = utils.CoerceString(body["category"])
	if err := h.validator.Struct(request); err != nil {
		return bareError(c, fiber.StatusBadRequest, domain.MessageAiCardFieldsRequired, err)
	}

	card, err := h.aiCardService.CreateAiCard(c.Context(), body)
	if err != nil {
		return bareError(c, fiber.StatusBadRequest, domain.MessageFailedCreateAiCard, err)
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *aiCardHandler) UpdateAiCard(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return bareError(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	card, err := h.aiCardService.UpdateAiCard(c.Context(), c.Params("id"), body)
	if err != nil {
		if errors.Is(err, domain.ErrAiCardNotFound) {
			return bareError(c, fiber.StatusNotFound, domain.MessageAiCardNotFound, err)
		}
		return bareError(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAiCard, err)
	}

	return c.Status(fiber.StatusOK).JSON(card)
}

func (h *aiCardHandler) DeleteAiCard(c *fiber.Ctx) error {
	if err := h.aiCardService.DeleteAiCard(c.Context(), c.Params("id")); err != nil {
		return bareError(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAiCard, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

func bareError(c *fiber.Ctx, status int, message string, err error) error {
	log.Errorf("%s: %v", message, err)
	return c.Status(status).JSON(fiber.Map{"error": message})
}
