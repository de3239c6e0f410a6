package complaints

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus is the closed lifecycle of a complaint.
type ComplaintStatus string

const (
	StatusPending  ComplaintStatus = "Pending"
	StatusResolved ComplaintStatus = "Resolved"
	StatusOnHold   ComplaintStatus = "On Hold"
)

func ParseComplaintStatus(s string) (ComplaintStatus, error) {
	switch ComplaintStatus(s) {
	case StatusPending, StatusResolved, StatusOnHold:
		return ComplaintStatus(s), nil
	}
	return "", fmt.Errorf("unknown complaint status %q", s)
}

// Complaint is filed by an authenticated user; the image, when present,
// is the public object-storage URL.
type Complaint struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Type        string          `gorm:"size:100;not null" json:"type"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Location    string          `gorm:"size:255;not null" json:"location"`
	Image       string          `gorm:"size:500" json:"image,omitempty"`
	Status      ComplaintStatus `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PublicComplaint has no owning account; the submitter leaves a name and
// phone number instead.
type PublicComplaint struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Type        string          `gorm:"size:100;not null" json:"type"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Location    string          `gorm:"size:255;not null" json:"location"`
	Image       string          `gorm:"size:500" json:"image,omitempty"`
	Status      ComplaintStatus `gorm:"size:20;default:'Pending'" json:"status"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Phone       string          `gorm:"size:50;not null" json:"phone"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// --- DTOs ---

type ComplaintInput struct {
	Title       string
	Type        string
	Description string
	Location    string
	ImageURL    string
}

type PublicComplaintInput struct {
	ComplaintInput
	Name  string
	Phone string
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
