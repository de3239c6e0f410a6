package services

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRoleMismatch = errors.New("profile role does not match the user's role")

// ProfileService applies role-specific profile updates and maintains the
// one-way profile-completion latch.
type ProfileService struct {
	db            *gorm.DB
	notifications *NotificationService
	activity      *ActivityService
}

func NewProfileService(db *gorm.DB, notifications *NotificationService, activity *ActivityService) *ProfileService {
	return &ProfileService{db: db, notifications: notifications, activity: activity}
}

func (s *ProfileService) UpdateFarmer(userID uuid.UUID, req *dto.FarmerProfileUpdate) (*models.User, error) {
	return s.update(userID, models.RoleFarmer, func(u *models.User) {
		setIf(&u.FarmLocation, req.FarmLocation)
		setIf(&u.CropType, req.CropType)
		setIf(&u.Phone, req.Phone)
	})
}

func (s *ProfileService) UpdateAgronomist(userID uuid.UUID, req *dto.AgronomistProfileUpdate) (*models.User, error) {
	return s.update(userID, models.RoleAgronomist, func(u *models.User) {
		setIf(&u.Expertise, req.Expertise)
		setIf(&u.License, req.License)
		setIf(&u.Phone, req.Phone)
	})
}

func (s *ProfileService) UpdateDonor(userID uuid.UUID, req *dto.DonorProfileUpdate) (*models.User, error) {
	return s.update(userID, models.RoleDonor, func(u *models.User) {
		if req.DonorType != "" {
			dt := models.DonorType(req.DonorType)
			u.DonorType = &dt
		}
		setIf(&u.OrgName, req.OrgName)
		setIf(&u.Funding, req.Funding)
		setIf(&u.Phone, req.Phone)
	})
}

func (s *ProfileService) UpdateLeader(userID uuid.UUID, req *dto.LeaderProfileUpdate) (*models.User, error) {
	return s.update(userID, models.RoleLeader, func(u *models.User) {
		setIf(&u.LeaderTitle, req.LeaderTitle)
		setIf(&u.District, req.District)
		setIf(&u.Phone, req.Phone)
	})
}

func (s *ProfileService) UpdateFinance(userID uuid.UUID, req *dto.FinanceProfileUpdate) (*models.User, error) {
	return s.update(userID, models.RoleFinance, func(u *models.User) {
		setIf(&u.Department, req.Department)
		setIf(&u.Phone, req.Phone)
	})
}

func (s *ProfileService) update(userID uuid.UUID, role models.Role, apply func(*models.User)) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if user.Role != role {
		return nil, ErrRoleMismatch
	}

	apply(&user)

	// One-way latch: once complete, later edits never reset it.
	completedNow := false
	if !user.IsProfileCompleted && requiredFieldsComplete(&user) {
		user.IsProfileCompleted = true
		completedNow = true
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	if completedNow {
		s.notifications.NotifyProfileCompleted(user.ID, user.Role)
		s.activity.Log(user.ID, "profile_completed", "All required profile fields supplied", map[string]interface{}{"role": string(user.Role)}, "")
	}

	return &user, nil
}

// requiredFieldsComplete reports whether every required field for the
// user's current role is populated.
func requiredFieldsComplete(u *models.User) bool {
	switch u.Role {
	case models.RoleFarmer:
		return filled(u.FarmLocation, u.CropType, u.Phone)
	case models.RoleAgronomist:
		return filled(u.Expertise, u.License, u.Phone)
	case models.RoleDonor:
		return filled(u.OrgName, u.Funding, u.Phone)
	case models.RoleLeader:
		return filled(u.LeaderTitle, u.District, u.Phone)
	case models.RoleFinance:
		return filled(u.Department, u.Phone)
	case models.RoleAdmin:
		return false
	}
	return false
}

func filled(fields ...*string) bool {
	for _, f := range fields {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}

func setIf(dst **string, val string) {
	if val != "" {
		*dst = &val
	}
}
