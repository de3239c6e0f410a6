package programs

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProgramHandler struct {
	programs  *ProgramService
	donations *DonationService
}

func NewProgramHandler(programs *ProgramService, donations *DonationService) *ProgramHandler {
	return &ProgramHandler{programs: programs, donations: donations}
}

func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.District == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Title, description, location and district are required",
		})
	}

	program, err := h.programs.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create program",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(program)
}

func (h *ProgramHandler) List(c *fiber.Ctx) error {
	list, err := h.programs.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch programs",
		})
	}
	return c.JSON(list)
}

func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid program ID",
		})
	}

	program, err := h.programs.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Program not found",
		})
	}
	return c.JSON(program)
}

func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid program ID",
		})
	}

	var req ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	program, err := h.programs.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Program not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update program",
		})
	}
	return c.JSON(program)
}

func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid program ID",
		})
	}

	if err := h.programs.Delete(id); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Program not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete program",
		})
	}
	return c.JSON(fiber.Map{"message": "Program deleted"})
}

func (h *ProgramHandler) Donate(c *fiber.Ctx) error {
	var req DonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	donation, err := h.donations.Donate(&req)
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Program not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(donation)
}

func (h *ProgramHandler) ListDonations(c *fiber.Ctx) error {
	var programID *uuid.UUID
	if raw := c.Query("program_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid program ID",
			})
		}
		programID = &id
	}

	list, err := h.donations.List(programID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch donations",
		})
	}
	return c.JSON(list)
}

func (h *ProgramHandler) ListProgramDonations(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid program ID",
		})
	}

	if _, err := h.programs.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Program not found",
		})
	}

	list, err := h.donations.List(&id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch donations",
		})
	}
	return c.JSON(list)
}
