package handlers

import (
	"Wardrobe-Backend/domain"
	"Wardrobe-Backend/internal/api/presenters"
	"Wardrobe-Backend/pkg/group"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		GetGroups(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
	}
)

func NewGroupHandler(groupService group.GroupService) GroupHandler {
	return &groupHandler{groupService: groupService}
}

func (h *groupHandler) GetGroups(c *fiber.Ctx) error {
	groups, err := h.groupService.GetGroups(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGroups, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"groups": groups}, fiber.StatusOK)
}

func (h *groupHandler) AddItem(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	item, err := h.groupService.AddItem(c.Context(), c.Params("groupId"), body)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAppendGroupItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusCreated)
}

func (h *groupHandler) UpdateItem(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	item, err := h.groupService.UpdateItem(c.Context(), c.Params("groupId"), c.Params("itemId"), body)
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageGroupNotFound, err)
		}
		if errors.Is(err, domain.ErrGroupItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageGroupItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroupItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"item": item}, fiber.StatusOK)
}

func (h *groupHandler) DeleteItem(c *fiber.Ctx) error {
	err := h.groupService.DeleteItem(c.Context(), c.Params("groupId"), c.Params("itemId"))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageGroupNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGroupItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{}, fiber.StatusOK)
}
