package services

import (
	"encoding/json"
	"log/slog"

	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityService appends audit-trail rows. Like notifications, writes
// are best-effort and never fail the triggering operation.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) Log(userID uuid.UUID, activityType, description string, metadata map[string]interface{}, status string) {
	if status == "" {
		status = "success"
	}

	entry := models.ActivityHistory{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Status:       status,
	}
	if len(metadata) > 0 {
		if b, err := json.Marshal(metadata); err == nil {
			entry.Metadata = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("activity write failed", "user_id", userID.String(), "action", activityType, "error", err)
	}
}

func (s *ActivityService) ListForUser(userID uuid.UUID) ([]models.ActivityHistory, error) {
	var list []models.ActivityHistory
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}
