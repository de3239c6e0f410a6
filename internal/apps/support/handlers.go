package support

import (
	"errors"
	"strings"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupportHandler struct {
	supportService *SupportService
}

func NewSupportHandler(supportService *SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

func (h *SupportHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var input SupportRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	req, err := h.supportService.Create(userID, &input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(req)
}

func (h *SupportHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	list, err := h.supportService.ListForUser(userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

func (h *SupportHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var input SupportRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	req, err := h.supportService.Update(userID, id, &input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(req)
}

func (h *SupportHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	if err := h.supportService.Delete(userID, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Support request deleted"})
}

// --- Admin ---

func (h *SupportHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.supportService.ListAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

func (h *SupportHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	status, err := ParseSupportStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	updated, err := h.supportService.UpdateStatus(id, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(updated)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request ID",
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Support request not found",
		})
	case errors.Is(err, ErrInvalidAmount), strings.HasPrefix(err.Error(), "unknown support"):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Something went wrong",
	})
}
