package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/api/presenters"
	"Wardrobe-Backend/pkg/ingest"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngestHandler interface {
		WriteDocument(c *fiber.Ctx) error
	}

	ingestHandler struct {
		ingestService ingest.IngestService
		validator     *validator.Validate
	}
)

func NewIngestHandler(ingestService ingest.IngestService, validator *validator.Validate) IngestHandler {
	return &ingestHandler{
		ingestService: ingestService,
		validator:     validator,
	}
}

func (h *ingestHandler) WriteDocument(c *fiber.Ctx) error {
	request := domain.IngestRequest{}
	if err := c.BodyParser(&request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(request); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageIngestFieldsRequired, err)
	}

	id, err := h.ingestService.WriteDocument(c.Context(), request)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWriteDocument, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"collection": request.Collection, "id": id}, fiber.StatusCreated)
}
