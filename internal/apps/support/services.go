package support

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("support request not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
)

type SupportService struct {
	db            *gorm.DB
	notifications *services.NotificationService
	activity      *services.ActivityService
}

func NewSupportService(db *gorm.DB, notifications *services.NotificationService, activity *services.ActivityService) *SupportService {
	return &SupportService{db: db, notifications: notifications, activity: activity}
}

func (s *SupportService) Create(createdBy uuid.UUID, input *SupportRequestInput) (*SupportRequest, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	category, err := ParseSupportCategory(input.Category)
	if err != nil {
		return nil, err
	}

	req := &SupportRequest{
		ID:        uuid.New(),
		Title:     input.Title,
		Donor:     input.Donor,
		Amount:    input.Amount,
		Category:  category,
		Status:    StatusPending,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(req).Error; err != nil {
		return nil, err
	}

	s.activity.Log(createdBy, "support_requested", "Requested support '"+req.Title+"'",
		map[string]interface{}{"request_id": req.ID.String(), "category": string(req.Category)}, "")

	return req, nil
}

func (s *SupportService) ListForUser(userID uuid.UUID) ([]SupportRequest, error) {
	var list []SupportRequest
	err := s.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *SupportService) ListAll() ([]SupportRequest, error) {
	var list []SupportRequest
	err := s.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *SupportService) Update(userID, id uuid.UUID, input *SupportRequestInput) (*SupportRequest, error) {
	var req SupportRequest
	if err := s.db.First(&req, "id = ? AND created_by = ?", id, userID).Error; err != nil {
		return nil, ErrRequestNotFound
	}

	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	category, err := ParseSupportCategory(input.Category)
	if err != nil {
		return nil, err
	}

	req.Title = input.Title
	req.Donor = input.Donor
	req.Amount = input.Amount
	req.Category = category
	if err := s.db.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus is an admin operation; the requester is notified.
func (s *SupportService) UpdateStatus(id uuid.UUID, status SupportStatus) (*SupportRequest, error) {
	var req SupportRequest
	if err := s.db.First(&req, "id = ?", id).Error; err != nil {
		return nil, ErrRequestNotFound
	}

	if err := s.db.Model(&req).Update("status", status).Error; err != nil {
		return nil, err
	}
	req.Status = status

	s.notifications.NotifySupportStatus(req.CreatedBy, req.ID, req.Title, string(status))

	return &req, nil
}

func (s *SupportService) Delete(userID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND created_by = ?", id, userID).Delete(&SupportRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
