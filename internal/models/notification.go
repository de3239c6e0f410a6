package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationPriority is assigned by the fan-out service; "high" is
// reserved for urgent complaint categories.
type NotificationPriority string

const (
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

type Notification struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string               `gorm:"size:255;not null" json:"title"`
	Message   string               `gorm:"type:text;not null" json:"message"`
	Type      string               `gorm:"size:50;not null" json:"type"`
	Priority  NotificationPriority `gorm:"size:10;default:'normal'" json:"priority"`
	IsRead    bool                 `gorm:"default:false" json:"is_read"`
	RelatedID *uuid.UUID           `gorm:"type:uuid" json:"related_id,omitempty"`
	ActionURL string               `gorm:"size:500" json:"action_url,omitempty"`
	ExtraData datatypes.JSON       `gorm:"type:jsonb" json:"extra_data,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
