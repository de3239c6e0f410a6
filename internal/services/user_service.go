package services

import (
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService covers the admin-facing user operations.
type UserService struct {
	db            *gorm.DB
	notifications *NotificationService
	activity      *ActivityService
}

func NewUserService(db *gorm.DB, notifications *NotificationService, activity *ActivityService) *UserService {
	return &UserService{db: db, notifications: notifications, activity: activity}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at").Find(&users).Error
	return users, err
}

// Approve flips is_approved and notifies the user.
func (s *UserService) Approve(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsApproved {
		if err := s.db.Model(&user).Update("is_approved", true).Error; err != nil {
			return nil, err
		}
		user.IsApproved = true

		s.notifications.NotifyUserApproved(user.ID)
		s.activity.Log(user.ID, "account_approved", "Account approved by an administrator", nil, "")
	}

	return &user, nil
}
