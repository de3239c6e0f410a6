package complaints

import (
	"errors"

	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintService persists complaints and fans out the side effects.
// Notification and activity writes happen after the complaint row has
// committed and are best-effort: they never fail the request.
type ComplaintService struct {
	db            *gorm.DB
	notifications *services.NotificationService
	activity      *services.ActivityService
}

func NewComplaintService(db *gorm.DB, notifications *services.NotificationService, activity *services.ActivityService) *ComplaintService {
	return &ComplaintService{db: db, notifications: notifications, activity: activity}
}

func (s *ComplaintService) Create(createdBy uuid.UUID, input *ComplaintInput) (*Complaint, error) {
	complaint := &Complaint{
		ID:          uuid.New(),
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.ImageURL,
		Status:      StatusPending,
		CreatedBy:   createdBy,
	}
	if err := s.db.Create(complaint).Error; err != nil {
		return nil, err
	}

	s.notifications.NotifyComplaintCreated(&createdBy, complaint.ID, complaint.Title, complaint.Type, complaint.Location)
	s.activity.Log(createdBy, "complaint_created", "Filed complaint '"+complaint.Title+"'",
		map[string]interface{}{"complaint_id": complaint.ID.String(), "type": complaint.Type}, "")

	return complaint, nil
}

func (s *ComplaintService) CreatePublic(input *PublicComplaintInput) (*PublicComplaint, error) {
	complaint := &PublicComplaint{
		ID:          uuid.New(),
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.ImageURL,
		Status:      StatusPending,
		Name:        input.Name,
		Phone:       input.Phone,
	}
	if err := s.db.Create(complaint).Error; err != nil {
		return nil, err
	}

	// No owning account, only admins get notified.
	s.notifications.NotifyComplaintCreated(nil, complaint.ID, complaint.Title, complaint.Type, complaint.Location)

	return complaint, nil
}

func (s *ComplaintService) ListForUser(userID uuid.UUID) ([]Complaint, error) {
	var list []Complaint
	err := s.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *ComplaintService) ListAll() ([]Complaint, error) {
	var list []Complaint
	err := s.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *ComplaintService) ListPublic() ([]PublicComplaint, error) {
	var list []PublicComplaint
	err := s.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// UpdateStatus is an admin operation; the creator is notified of the change.
func (s *ComplaintService) UpdateStatus(id uuid.UUID, status ComplaintStatus) (*Complaint, error) {
	var complaint Complaint
	if err := s.db.First(&complaint, "id = ?", id).Error; err != nil {
		return nil, ErrComplaintNotFound
	}

	if err := s.db.Model(&complaint).Update("status", status).Error; err != nil {
		return nil, err
	}
	complaint.Status = status

	s.notifications.Create(complaint.CreatedBy,
		"Complaint Updated",
		"Your complaint '"+complaint.Title+"' is now "+string(status)+".",
		"complaint_status",
		services.ComplaintPriority(complaint.Type),
		&complaint.ID, "", nil,
	)

	return &complaint, nil
}

func (s *ComplaintService) Delete(userID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND created_by = ?", id, userID).Delete(&Complaint{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}
