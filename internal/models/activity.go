package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityHistory is an append-only audit trail. Rows are never updated
// or deleted by application code.
type ActivityHistory struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityType string         `gorm:"size:100;not null" json:"activity_type"`
	Description  string         `gorm:"type:text" json:"description"`
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	Status       string         `gorm:"size:50;default:'success'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}
