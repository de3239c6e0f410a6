package complaints

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/middleware"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ComplaintHandler struct {
	complaintService *ComplaintService
	storage          *services.StorageService
}

func NewComplaintHandler(complaintService *ComplaintService, storage *services.StorageService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, storage: storage}
}

// Create handles POST /complaints - multipart form with an optional image.
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	input, err := h.parseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	complaint, err := h.complaintService.Create(userID, input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create complaint",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// CreatePublic handles POST /public/complaints - no account required.
func (h *ComplaintHandler) CreatePublic(c *fiber.Ctx) error {
	input, err := h.parseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	name := c.FormValue("name")
	phone := c.FormValue("phone")
	if name == "" || phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Name and phone are required",
		})
	}

	complaint, err := h.complaintService.CreatePublic(&PublicComplaintInput{
		ComplaintInput: *input,
		Name:           name,
		Phone:          phone,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create complaint",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

func (h *ComplaintHandler) parseForm(c *fiber.Ctx) (*ComplaintInput, error) {
	input := &ComplaintInput{
		Title:       c.FormValue("title"),
		Type:        c.FormValue("type"),
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
	}
	if input.Title == "" || input.Type == "" || input.Description == "" || input.Location == "" {
		return nil, errors.New("title, type, description and location are required")
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		url, err := h.storage.UploadImage(c.Context(), "complaints", file)
		if err != nil {
			return nil, err
		}
		input.ImageURL = url
	}

	return input, nil
}

func (h *ComplaintHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	list, err := h.complaintService.ListForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch complaints",
		})
	}
	return c.JSON(list)
}

func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	if err := h.complaintService.Delete(userID, id); err != nil {
		if errors.Is(err, ErrComplaintNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Complaint not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete complaint",
		})
	}
	return c.JSON(fiber.Map{"message": "Complaint deleted"})
}

// --- Admin ---

func (h *ComplaintHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.complaintService.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch complaints",
		})
	}
	return c.JSON(list)
}

func (h *ComplaintHandler) ListPublic(c *fiber.Ctx) error {
	list, err := h.complaintService.ListPublic()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch public complaints",
		})
	}
	return c.JSON(list)
}

func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid complaint ID",
		})
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	status, err := ParseComplaintStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	complaint, err := h.complaintService.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, ErrComplaintNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Complaint not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update complaint",
		})
	}
	return c.JSON(complaint)
}
