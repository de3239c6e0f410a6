package support

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SupportCategory is the closed set of things a request can ask for.
type SupportCategory string

const (
	CategoryFunding   SupportCategory = "funding"
	CategoryEquipment SupportCategory = "equipment"
	CategoryTraining  SupportCategory = "training"
	CategoryOther     SupportCategory = "other"
)

func ParseSupportCategory(s string) (SupportCategory, error) {
	switch SupportCategory(s) {
	case CategoryFunding, CategoryEquipment, CategoryTraining, CategoryOther:
		return SupportCategory(s), nil
	}
	return "", fmt.Errorf("unknown support category %q", s)
}

type SupportStatus string

const (
	StatusPending  SupportStatus = "pending"
	StatusApproved SupportStatus = "approved"
	StatusRejected SupportStatus = "rejected"
)

func ParseSupportStatus(s string) (SupportStatus, error) {
	switch SupportStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return SupportStatus(s), nil
	}
	return "", fmt.Errorf("unknown support status %q", s)
}

type SupportRequest struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string          `gorm:"size:255;not null" json:"title"`
	Donor     string          `gorm:"size:255" json:"donor"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Category  SupportCategory `gorm:"size:20;not null" json:"category"`
	Status    SupportStatus   `gorm:"size:20;default:'pending'" json:"status"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// --- DTOs ---

type SupportRequestInput struct {
	Title    string  `json:"title"`
	Donor    string  `json:"donor"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
