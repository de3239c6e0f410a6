package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Update handles PUT /profile/:role/:user_id. The role segment selects
// which update struct is parsed; anything else is rejected.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	role, err := models.ParseRole(c.Params("role"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var user *models.User
	switch role {
	case models.RoleFarmer:
		var req dto.FarmerProfileUpdate
		if err := decodeStrict(c, &req); err != nil {
			return badBody(c)
		}
		user, err = h.profileService.UpdateFarmer(userID, &req)
	case models.RoleAgronomist:
		var req dto.AgronomistProfileUpdate
		if err := decodeStrict(c, &req); err != nil {
			return badBody(c)
		}
		user, err = h.profileService.UpdateAgronomist(userID, &req)
	case models.RoleDonor:
		var req dto.DonorProfileUpdate
		if err := decodeStrict(c, &req); err != nil {
			return badBody(c)
		}
		user, err = h.profileService.UpdateDonor(userID, &req)
	case models.RoleLeader:
		var req dto.LeaderProfileUpdate
		if err := decodeStrict(c, &req); err != nil {
			return badBody(c)
		}
		user, err = h.profileService.UpdateLeader(userID, &req)
	case models.RoleFinance:
		var req dto.FinanceProfileUpdate
		if err := decodeStrict(c, &req); err != nil {
			return badBody(c)
		}
		user, err = h.profileService.UpdateFinance(userID, &req)
	case models.RoleAdmin:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin accounts have no profile to complete",
		})
	}

	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		if errors.Is(err, services.ErrRoleMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(user)
}

// decodeStrict rejects unknown JSON keys: each role's update struct
// lists its exact mutable fields, so anything else is a client error,
// not something to silently drop.
func decodeStrict(c *fiber.Ctx, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body or unknown field",
	})
}
