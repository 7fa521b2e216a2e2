package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/api/presenters"
	"Wardrobe-Backend/internal/utils"
	"Wardrobe-Backend/pkg/image"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImageHandler interface {
		GetImages(c *fiber.Ctx) error
		GetImageDetails(c *fiber.Ctx) error
		CreateImage(c *fiber.Ctx) error
		UpdateImage(c *fiber.Ctx) error
		DeleteImage(c *fiber.Ctx) error
		UploadImageFile(c *fiber.Ctx) error
	}

	imageHandler struct {
		imageService image.ImageService
		validator    *validator.Validate
	}
)

func NewImageHandler(imageService image.ImageService, validator *validator.Validate) ImageHandler {
	return &imageHandler{
		imageService: imageService,
		validator:    validator,
	}
}

func (h *imageHandler) GetImages(c *fiber.Ctx) error {
	query := domain.ImageQuery{
		Limit:    parseLimit(c.Query("limit"), 60),
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Public:   parseBoolFlag(c.Query("pub")),
	}

	items, err := h.imageService.GetImages(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetImages, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": items, "count": len(items)}, fiber.StatusOK)
}

func (h *imageHandler) GetImageDetails(c *fiber.Ctx) error {
	item, err := h.imageService.GetImageByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageImageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetImages, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK)
}

func (h *imageHandler) CreateImage(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.CreateImageRequest{}
	req.Title, _ = utils.CoerceString(body["title"])
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageTitleRequired, err)
	}

	id, err := h.imageService.CreateImage(c.Context(), body)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusCreated)
}

func (h *imageHandler) UpdateImage(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	id := c.Params("id")
	if err := h.imageService.UpdateImage(c.Context(), id, body); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"id": id}, fiber.StatusOK)
}

func (h *imageHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.imageService.DeleteImage(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{}, fiber.StatusOK)
}

func (h *imageHandler) UploadImageFile(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.imageService.UploadImageFile(c.Context(), c.Params("id"), file)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageImageNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	data := fiber.Map{"id": c.Params("id")}
	for k, v := range res {
		data[k] = v
	}
	return presenters.SuccessResponse(c, data, fiber.StatusOK)
}
