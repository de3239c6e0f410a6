package programs

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProgramNotFound   = errors.New("program not found")
	ErrInvalidAmount     = errors.New("donation amount must be greater than zero")
	ErrMissingSubPayload = errors.New("payment details do not match the payment method")
)

type ProgramService struct {
	db *gorm.DB
}

func NewProgramService(db *gorm.DB) *ProgramService {
	return &ProgramService{db: db}
}

func (s *ProgramService) Create(req *ProgramRequest) (*Program, error) {
	program := &Program{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		District:    req.District,
		Goal:        req.Goal,
		Status:      req.Status,
	}
	if err := s.db.Create(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) List() ([]Program, error) {
	var list []Program
	err := s.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *ProgramService) Get(id uuid.UUID) (*Program, error) {
	var program Program
	if err := s.db.First(&program, "id = ?", id).Error; err != nil {
		return nil, ErrProgramNotFound
	}
	return &program, nil
}

// Update overwrites the mutable fields; raised is deliberately excluded,
// it only moves through donations.
func (s *ProgramService) Update(id uuid.UUID, req *ProgramRequest) (*Program, error) {
	program, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	program.Title = req.Title
	program.Description = req.Description
	program.Location = req.Location
	program.District = req.District
	program.Goal = req.Goal
	program.Status = req.Status

	if err := s.db.Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&Program{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProgramNotFound
	}
	return nil
}

type DonationService struct {
	db *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// Donate records a donation and bumps the program's raised total in the
// same transaction. The increment is done in SQL so that two concurrent
// donations never lose an update.
func (s *DonationService) Donate(req *DonationRequest) (*Donation, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	method, err := ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	donation := &Donation{
		ID:            uuid.New(),
		ProgramID:     req.ProgramID,
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		PaymentMethod: method,
	}

	switch method {
	case PaymentCard:
		if req.Card == nil {
			return nil, ErrMissingSubPayload
		}
		b, _ := json.Marshal(req.Card)
		donation.CardInfo = datatypes.JSON(b)
	case PaymentMobile:
		if req.Mobile == nil || req.Mobile.MobileNumber == "" {
			return nil, ErrMissingSubPayload
		}
		donation.MobileNumber = &req.Mobile.MobileNumber
	case PaymentBank:
		if req.Bank == nil {
			return nil, ErrMissingSubPayload
		}
		b, _ := json.Marshal(req.Bank)
		donation.BankDetails = datatypes.JSON(b)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var program Program
		if err := tx.First(&program, "id = ?", req.ProgramID).Error; err != nil {
			return ErrProgramNotFound
		}

		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		return tx.Model(&Program{}).
			Where("id = ?", req.ProgramID).
			Update("raised", gorm.Expr("raised + ?", req.Amount)).Error
	})
	if err != nil {
		return nil, err
	}

	return donation, nil
}

func (s *DonationService) List(programID *uuid.UUID) ([]Donation, error) {
	query := s.db.Order("created_at DESC")
	if programID != nil {
		query = query.Where("program_id = ?", *programID)
	}
	var list []Donation
	err := query.Find(&list).Error
	return list, err
}
