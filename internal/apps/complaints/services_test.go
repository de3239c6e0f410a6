package complaints

import (
	"testing"

	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.ActivityHistory{},
		&Complaint{},
		&PublicComplaint{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		FullName: "Seed User",
		Email:    uuid.NewString() + "@example.com",
		Password: "irrelevant",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newService(db *gorm.DB) *ComplaintService {
	return NewComplaintService(db,
		services.NewNotificationService(db),
		services.NewActivityService(db),
	)
}

func complaintInput() *ComplaintInput {
	return &ComplaintInput{
		Title:       "Broken irrigation pump",
		Type:        "Equipment",
		Description: "Pump at the east canal stopped working.",
		Location:    "East Canal",
	}
}

func TestCreateComplaintFanOut(t *testing.T) {
	db := testDB(t)
	svc := newService(db)

	creator := seedUser(t, db, models.RoleFarmer)
	adminA := seedUser(t, db, models.RoleAdmin)
	adminB := seedUser(t, db, models.RoleAdmin)
	bystander := seedUser(t, db, models.RoleDonor)

	complaint, err := svc.Create(creator.ID, complaintInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, complaint.Status)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", creator.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one notification to the creator")

	for _, admin := range []*models.User{adminA, adminB} {
		require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", admin.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "exactly one notification per admin")
	}

	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", bystander.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count, "non-admins are not notified")
}

func TestUrgentComplaintTypeGetsHighPriority(t *testing.T) {
	db := testDB(t)
	svc := newService(db)

	creator := seedUser(t, db, models.RoleFarmer)
	admin := seedUser(t, db, models.RoleAdmin)

	input := complaintInput()
	input.Type = "Pest Attack"
	_, err := svc.Create(creator.ID, input)
	require.NoError(t, err)

	var n models.Notification
	require.NoError(t, db.First(&n, "user_id = ?", admin.ID).Error)
	assert.Equal(t, models.PriorityHigh, n.Priority)
}

func TestPublicComplaintNotifiesAdminsOnly(t *testing.T) {
	db := testDB(t)
	svc := newService(db)
	admin := seedUser(t, db, models.RoleAdmin)

	complaint, err := svc.CreatePublic(&PublicComplaintInput{
		ComplaintInput: *complaintInput(),
		Name:           "Walk-in Reporter",
		Phone:          "0844444444",
	})
	require.NoError(t, err)
	assert.Equal(t, "Walk-in Reporter", complaint.Name)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var n models.Notification
	require.NoError(t, db.First(&n).Error)
	assert.Equal(t, admin.ID, n.UserID)
}

func TestUpdateStatusNotifiesCreator(t *testing.T) {
	db := testDB(t)
	svc := newService(db)
	creator := seedUser(t, db, models.RoleFarmer)

	complaint, err := svc.Create(creator.ID, complaintInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(complaint.ID, StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, updated.Status)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", creator.ID, "complaint_status").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteScopedToCreator(t *testing.T) {
	db := testDB(t)
	svc := newService(db)
	creator := seedUser(t, db, models.RoleFarmer)
	other := seedUser(t, db, models.RoleFarmer)

	complaint, err := svc.Create(creator.ID, complaintInput())
	require.NoError(t, err)

	err = svc.Delete(other.ID, complaint.ID)
	assert.ErrorIs(t, err, ErrComplaintNotFound)

	require.NoError(t, svc.Delete(creator.ID, complaint.ID))
}

func TestParseComplaintStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Resolved", "On Hold"} {
		_, err := ParseComplaintStatus(valid)
		assert.NoError(t, err)
	}
	_, err := ParseComplaintStatus("Closed")
	assert.Error(t, err)
}
