package services

import (
	"testing"

	"github.com/agrocare/agrocare-backend/internal/dto"
	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(db, NewNotificationService(db), NewActivityService(db))
}

func TestFarmerProfileCompletionLatch(t *testing.T) {
	db := testDB(t)
	svc := newProfileService(db)
	user := seedUser(t, db, models.RoleFarmer)

	// Partial update: still incomplete.
	updated, err := svc.UpdateFarmer(user.ID, &dto.FarmerProfileUpdate{
		FarmLocation: "North Field",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsProfileCompleted)

	// Supplying the rest flips the latch.
	updated, err = svc.UpdateFarmer(user.ID, &dto.FarmerProfileUpdate{
		CropType: "Rice",
		Phone:    "0811111111",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsProfileCompleted)

	// Later edits never reset it, even when they change nothing required.
	updated, err = svc.UpdateFarmer(user.ID, &dto.FarmerProfileUpdate{
		FarmLocation: "South Field",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsProfileCompleted)

	var fromDB models.User
	require.NoError(t, db.First(&fromDB, "id = ?", user.ID).Error)
	assert.True(t, fromDB.IsProfileCompleted)
}

func TestProfileCompletionNotifiesOnce(t *testing.T) {
	db := testDB(t)
	svc := newProfileService(db)
	user := seedUser(t, db, models.RoleFinance)

	_, err := svc.UpdateFinance(user.ID, &dto.FinanceProfileUpdate{
		Department: "Accounts",
		Phone:      "0822222222",
	})
	require.NoError(t, err)

	// A second complete update must not notify again.
	_, err = svc.UpdateFinance(user.ID, &dto.FinanceProfileUpdate{
		Department: "Treasury",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", user.ID, "profile_completed").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileUpdateRoleMismatch(t *testing.T) {
	db := testDB(t)
	svc := newProfileService(db)
	user := seedUser(t, db, models.RoleDonor)

	_, err := svc.UpdateFarmer(user.ID, &dto.FarmerProfileUpdate{FarmLocation: "Nope"})
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestProfileUpdateUnknownUser(t *testing.T) {
	svc := newProfileService(testDB(t))

	_, err := svc.UpdateLeader(uuid.New(), &dto.LeaderProfileUpdate{District: "East"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestApproveUserNotifies(t *testing.T) {
	db := testDB(t)
	notifications := NewNotificationService(db)
	svc := NewUserService(db, notifications, NewActivityService(db))
	user := seedUser(t, db, models.RoleFarmer)

	approved, err := svc.Approve(user.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	list, err := notifications.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "account_approved", list[0].Type)
}
