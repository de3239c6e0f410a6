package farm

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FarmHandler struct {
	farmService *FarmService
}

func NewFarmHandler(farmService *FarmService) *FarmHandler {
	return &FarmHandler{farmService: farmService}
}

func (h *FarmHandler) CreateField(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req FieldRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Field name is required",
		})
	}

	field, err := h.farmService.CreateField(farmerID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create field",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(field)
}

func (h *FarmHandler) ListFields(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	list, err := h.farmService.ListFields(farmerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch fields",
		})
	}
	return c.JSON(list)
}

func (h *FarmHandler) UpdateField(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "field")
	}

	var req FieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	field, err := h.farmService.UpdateField(farmerID, id, &req)
	if err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return notFound(c, "Field")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update field",
		})
	}
	return c.JSON(field)
}

func (h *FarmHandler) DeleteField(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "field")
	}

	if err := h.farmService.DeleteField(farmerID, id); err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			return notFound(c, "Field")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete field",
		})
	}
	return c.JSON(fiber.Map{"message": "Field deleted"})
}

func (h *FarmHandler) CreateHarvest(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req HarvestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	harvest, err := h.farmService.CreateHarvest(farmerID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(harvest)
}

func (h *FarmHandler) ListHarvests(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	list, err := h.farmService.ListHarvests(farmerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch harvests",
		})
	}
	return c.JSON(list)
}

func (h *FarmHandler) UpdateHarvest(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "harvest")
	}

	var req HarvestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	harvest, err := h.farmService.UpdateHarvest(farmerID, id, &req)
	if err != nil {
		if errors.Is(err, ErrHarvestNotFound) {
			return notFound(c, "Harvest")
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(harvest)
}

func (h *FarmHandler) DeleteHarvest(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "harvest")
	}

	if err := h.farmService.DeleteHarvest(farmerID, id); err != nil {
		if errors.Is(err, ErrHarvestNotFound) {
			return notFound(c, "Harvest")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete harvest",
		})
	}
	return c.JSON(fiber.Map{"message": "Harvest deleted"})
}

func (h *FarmHandler) CreateAlert(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req AlertRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Alert type and message are required",
		})
	}

	alert, err := h.farmService.CreateAlert(farmerID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

func (h *FarmHandler) ListAlerts(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var alertType *AlertType
	if raw := c.Query("type"); raw != "" {
		parsed, err := ParseAlertType(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		alertType = &parsed
	}

	list, err := h.farmService.ListAlerts(farmerID, alertType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch alerts",
		})
	}
	return c.JSON(list)
}

func (h *FarmHandler) DeleteAlert(c *fiber.Ctx) error {
	farmerID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c, "alert")
	}

	if err := h.farmService.DeleteAlert(farmerID, id); err != nil {
		if errors.Is(err, ErrAlertNotFound) {
			return notFound(c, "Alert")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete alert",
		})
	}
	return c.JSON(fiber.Map{"message": "Alert deleted"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func invalidID(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid " + what + " ID",
	})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: what + " not found",
	})
}
