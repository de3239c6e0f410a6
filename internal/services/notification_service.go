package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// urgentComplaintTypes get a high-priority admin notification.
var urgentComplaintTypes = map[string]bool{
	"Pest Attack": true,
	"Theft":       true,
}

func ComplaintPriority(complaintType string) models.NotificationPriority {
	if urgentComplaintTypes[complaintType] {
		return models.PriorityHigh
	}
	return models.PriorityNormal
}

// NotificationService creates notification rows for domain events.
// All writes are best-effort and happen after the triggering operation
// has committed: a failed notification is logged, never propagated.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) Create(userID uuid.UUID, title, message, ntype string, priority models.NotificationPriority, relatedID *uuid.UUID, actionURL string, extra map[string]interface{}) {
	n := models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Priority:  priority,
		RelatedID: relatedID,
		ActionURL: actionURL,
	}
	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			n.ExtraData = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&n).Error; err != nil {
		slog.Error("notification write failed", "user_id", userID.String(), "type", ntype, "error", err)
	}
}

// NotifyComplaintCreated fans out one notification to the creator (when
// the complaint has one) and one to every admin user.
func (s *NotificationService) NotifyComplaintCreated(creatorID *uuid.UUID, complaintID uuid.UUID, title, complaintType, location string) {
	if creatorID != nil {
		s.Create(*creatorID,
			"Complaint Submitted",
			fmt.Sprintf("Your complaint '%s' has been submitted successfully.", title),
			"complaint_created",
			models.PriorityNormal,
			&complaintID,
			fmt.Sprintf("/complaint/%s", complaintID),
			map[string]interface{}{"status": "pending"},
		)
	}

	var admins []models.User
	if err := s.db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		slog.Error("admin lookup for complaint fan-out failed", "error", err)
		return
	}

	priority := ComplaintPriority(complaintType)
	for _, admin := range admins {
		s.Create(admin.ID,
			"New Complaint Filed",
			fmt.Sprintf("New %s complaint: '%s' from %s", complaintType, title, location),
			"admin_alert",
			priority,
			&complaintID,
			fmt.Sprintf("/admin/complaint/%s", complaintID),
			map[string]interface{}{"complaint_id": complaintID.String()},
		)
	}
}

func (s *NotificationService) NotifyUserApproved(userID uuid.UUID) {
	s.Create(userID,
		"Account Approved",
		"Your account has been approved. You can now log in.",
		"account_approved",
		models.PriorityNormal,
		nil, "", nil,
	)
}

func (s *NotificationService) NotifyProfileCompleted(userID uuid.UUID, role models.Role) {
	s.Create(userID,
		"Profile Completed",
		fmt.Sprintf("Your %s profile is now complete.", role),
		"profile_completed",
		models.PriorityNormal,
		nil, "", nil,
	)
}

func (s *NotificationService) NotifySupportStatus(userID uuid.UUID, requestID uuid.UUID, title, status string) {
	s.Create(userID,
		"Support Request Updated",
		fmt.Sprintf("Your support request '%s' is now %s.", title, status),
		"support_status",
		models.PriorityNormal,
		&requestID, "", nil,
	)
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(userID uuid.UUID) ([]models.Notification, error) {
	var list []models.Notification
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *NotificationService) MarkRead(userID, id uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}
