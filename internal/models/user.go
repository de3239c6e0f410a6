package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of user categories. It gates which profile
// fields apply and which routes a user may call.
type Role string

const (
	RoleFarmer     Role = "farmer"
	RoleAgronomist Role = "agronomist"
	RoleDonor      Role = "donor"
	RoleLeader     Role = "leader"
	RoleFinance    Role = "finance"
	RoleAdmin      Role = "admin"
)

// ParseRole rejects anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleAgronomist, RoleDonor, RoleLeader, RoleFinance, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// DonorType distinguishes individual donors from organizations.
type DonorType string

const (
	DonorPerson       DonorType = "person"
	DonorOrganization DonorType = "organization"
)

// User holds the general account fields plus the role-specific optional
// profile fields. Which optional fields are meaningful depends on Role.
type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName           string    `gorm:"size:255;not null" json:"full_name"`
	Email              string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	Role               Role      `gorm:"size:20;not null" json:"role"`
	IsApproved         bool      `gorm:"default:false" json:"is_approved"`
	IsProfileCompleted bool      `gorm:"default:false" json:"is_profile_completed"`

	// Role-specific fields; nil means never supplied.
	Phone        *string    `gorm:"size:50;index" json:"phone,omitempty"`
	FarmLocation *string    `gorm:"size:255" json:"farm_location,omitempty"`
	CropType     *string    `gorm:"size:255" json:"crop_type,omitempty"`
	Expertise    *string    `gorm:"size:255" json:"expertise,omitempty"`
	License      *string    `gorm:"size:255" json:"license,omitempty"`
	DonorType    *DonorType `gorm:"size:20" json:"donor_type,omitempty"`
	OrgName      *string    `gorm:"size:255" json:"org_name,omitempty"`
	Funding      *string    `gorm:"size:255" json:"funding,omitempty"`
	LeaderTitle  *string    `gorm:"size:255" json:"leader_title,omitempty"`
	District     *string    `gorm:"size:255" json:"district,omitempty"`
	Department   *string    `gorm:"size:255" json:"department,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
