package farm

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFieldNotFound   = errors.New("field not found")
	ErrHarvestNotFound = errors.New("harvest not found")
	ErrAlertNotFound   = errors.New("alert not found")
)

// FarmService manages the records a farmer owns. Every lookup is scoped
// by farmer_id, so another user's ids behave as absent.
type FarmService struct {
	db *gorm.DB
}

func NewFarmService(db *gorm.DB) *FarmService {
	return &FarmService{db: db}
}

// --- Fields ---

func (s *FarmService) CreateField(farmerID uuid.UUID, req *FieldRequest) (*Field, error) {
	field := &Field{
		ID:       uuid.New(),
		FarmerID: farmerID,
		Name:     req.Name,
		Area:     req.Area,
		CropType: req.CropType,
	}
	if err := s.db.Create(field).Error; err != nil {
		return nil, err
	}
	return field, nil
}

func (s *FarmService) ListFields(farmerID uuid.UUID) ([]Field, error) {
	var list []Field
	err := s.db.Where("farmer_id = ?", farmerID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *FarmService) UpdateField(farmerID, id uuid.UUID, req *FieldRequest) (*Field, error) {
	var field Field
	if err := s.db.Where("id = ? AND farmer_id = ?", id, farmerID).First(&field).Error; err != nil {
		return nil, ErrFieldNotFound
	}

	field.Name = req.Name
	field.Area = req.Area
	field.CropType = req.CropType

	if err := s.db.Save(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (s *FarmService) DeleteField(farmerID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&Field{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFieldNotFound
	}
	return nil
}

// --- Harvests ---

func (s *FarmService) CreateHarvest(farmerID uuid.UUID, req *HarvestRequest) (*Harvest, error) {
	status := HarvestUpcoming
	if req.Status != "" {
		parsed, err := ParseHarvestStatus(req.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	harvest := &Harvest{
		ID:          uuid.New(),
		FarmerID:    farmerID,
		HarvestDate: req.HarvestDate,
		Status:      status,
	}
	if err := s.db.Create(harvest).Error; err != nil {
		return nil, err
	}
	return harvest, nil
}

func (s *FarmService) ListHarvests(farmerID uuid.UUID) ([]Harvest, error) {
	var list []Harvest
	err := s.db.Where("farmer_id = ?", farmerID).Order("harvest_date").Find(&list).Error
	return list, err
}

func (s *FarmService) UpdateHarvest(farmerID, id uuid.UUID, req *HarvestRequest) (*Harvest, error) {
	var harvest Harvest
	if err := s.db.Where("id = ? AND farmer_id = ?", id, farmerID).First(&harvest).Error; err != nil {
		return nil, ErrHarvestNotFound
	}

	if !req.HarvestDate.IsZero() {
		harvest.HarvestDate = req.HarvestDate
	}
	if req.Status != "" {
		status, err := ParseHarvestStatus(req.Status)
		if err != nil {
			return nil, err
		}
		harvest.Status = status
	}

	if err := s.db.Save(&harvest).Error; err != nil {
		return nil, err
	}
	return &harvest, nil
}

func (s *FarmService) DeleteHarvest(farmerID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&Harvest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHarvestNotFound
	}
	return nil
}

// --- Alerts ---

func (s *FarmService) CreateAlert(farmerID uuid.UUID, req *AlertRequest) (*Alert, error) {
	alertType, err := ParseAlertType(req.Type)
	if err != nil {
		return nil, err
	}

	alert := &Alert{
		ID:       uuid.New(),
		FarmerID: farmerID,
		Type:     alertType,
		Message:  req.Message,
	}
	if err := s.db.Create(alert).Error; err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *FarmService) ListAlerts(farmerID uuid.UUID, alertType *AlertType) ([]Alert, error) {
	query := s.db.Where("farmer_id = ?", farmerID)
	if alertType != nil {
		query = query.Where("type = ?", *alertType)
	}
	var list []Alert
	err := query.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *FarmService) DeleteAlert(farmerID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&Alert{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
