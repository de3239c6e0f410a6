package programs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethod is the closed set of supported donation channels.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
	PaymentBank   PaymentMethod = "bank"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCard, PaymentMobile, PaymentBank:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Program is a donation-funded initiative. Raised only grows, via
// donations, and only through an atomic increment.
type Program struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `gorm:"size:255;not null" json:"location"`
	District    string         `gorm:"size:255;not null" json:"district"`
	Goal        float64        `gorm:"default:0" json:"goal"`
	Raised      float64        `gorm:"default:0" json:"raised"`
	Status      string         `gorm:"size:100" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Donation struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProgramID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"program_id"`
	DonorName     string         `gorm:"size:255;not null" json:"donor_name"`
	Amount        float64        `gorm:"not null" json:"amount"`
	PaymentMethod PaymentMethod  `gorm:"size:20;not null" json:"payment_method"`
	CardInfo      datatypes.JSON `gorm:"type:jsonb" json:"card_info,omitempty"`
	MobileNumber  *string        `gorm:"size:50" json:"mobile_number,omitempty"`
	BankDetails   datatypes.JSON `gorm:"type:jsonb" json:"bank_details,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// --- DTOs ---

type ProgramRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	District    string  `json:"district"`
	Goal        float64 `json:"goal"`
	Status      string  `json:"status"`
}

type CardInfo struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
}

type MobileInfo struct {
	MobileNumber string `json:"mobile_number"`
}

type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
}

type DonationRequest struct {
	ProgramID     uuid.UUID    `json:"program_id"`
	DonorName     string       `json:"donor_name"`
	Amount        float64      `json:"amount"`
	PaymentMethod string       `json:"payment_method"`
	Card          *CardInfo    `json:"card,omitempty"`
	Mobile        *MobileInfo  `json:"mobile,omitempty"`
	Bank          *BankDetails `json:"bank,omitempty"`
}
