package farm

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HarvestStatus tracks a harvest through its two states.
type HarvestStatus string

const (
	HarvestUpcoming  HarvestStatus = "upcoming"
	HarvestCompleted HarvestStatus = "completed"
)

func ParseHarvestStatus(s string) (HarvestStatus, error) {
	switch HarvestStatus(s) {
	case HarvestUpcoming, HarvestCompleted:
		return HarvestStatus(s), nil
	}
	return "", fmt.Errorf("unknown harvest status %q", s)
}

// AlertType distinguishes pest alerts from weather alerts.
type AlertType string

const (
	AlertPest    AlertType = "pest"
	AlertWeather AlertType = "weather"
)

func ParseAlertType(s string) (AlertType, error) {
	switch AlertType(s) {
	case AlertPest, AlertWeather:
		return AlertType(s), nil
	}
	return "", fmt.Errorf("unknown alert type %q", s)
}

// Field is a plot owned by a farmer.
type Field struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FarmerID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"farmer_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Area      float64        `json:"area"`
	CropType  string         `gorm:"size:255" json:"crop_type"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Harvest struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	FarmerID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"farmer_id"`
	HarvestDate time.Time     `json:"harvest_date"`
	Status      HarvestStatus `gorm:"size:20;default:'upcoming'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FarmerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"farmer_id"`
	Type      AlertType `gorm:"size:20;not null;index" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// --- DTOs ---

type FieldRequest struct {
	Name     string  `json:"name"`
	Area     float64 `json:"area"`
	CropType string  `json:"crop_type"`
}

type HarvestRequest struct {
	HarvestDate time.Time `json:"harvest_date"`
	Status      string    `json:"status"`
}

type AlertRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
