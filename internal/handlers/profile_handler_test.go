package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrocare/agrocare-backend/internal/models"
	"github.com/agrocare/agrocare-backend/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	))

	profileService := services.NewProfileService(db,
		services.NewNotificationService(db),
		services.NewActivityService(db),
	)
	handler := NewProfileHandler(profileService)

	app := fiber.New()
	app.Put("/profile/:role/:user_id", handler.Update)
	return app, db
}

func seedFarmer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		FullName: "Test Farmer",
		Email:    uuid.NewString() + "@example.com",
		Password: "irrelevant",
		Role:     models.RoleFarmer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func putJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProfileUpdateRejectsUnknownFields(t *testing.T) {
	app, db := testApp(t)
	user := seedFarmer(t, db)

	resp := putJSON(t, app, "/profile/farmer/"+user.ID.String(),
		`{"farm_location":"North Field","bogus_field":"evil"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// The partial update must not have been applied either.
	var fromDB models.User
	require.NoError(t, db.First(&fromDB, "id = ?", user.ID).Error)
	assert.Nil(t, fromDB.FarmLocation)
}

func TestProfileUpdateAcceptsDeclaredFields(t *testing.T) {
	app, db := testApp(t)
	user := seedFarmer(t, db)

	resp := putJSON(t, app, "/profile/farmer/"+user.ID.String(),
		`{"farm_location":"North Field","crop_type":"Rice","phone":"0855555555"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fromDB models.User
	require.NoError(t, db.First(&fromDB, "id = ?", user.ID).Error)
	require.NotNil(t, fromDB.FarmLocation)
	assert.Equal(t, "North Field", *fromDB.FarmLocation)
	assert.True(t, fromDB.IsProfileCompleted)
}

func TestProfileUpdateRejectsFieldsOfAnotherRole(t *testing.T) {
	app, db := testApp(t)
	user := seedFarmer(t, db)

	// `expertise` belongs to the agronomist struct, not the farmer's.
	resp := putJSON(t, app, "/profile/farmer/"+user.ID.String(),
		`{"expertise":"pests"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProfileUpdateUnknownRoleSegment(t *testing.T) {
	app, db := testApp(t)
	user := seedFarmer(t, db)

	resp := putJSON(t, app, "/profile/wizard/"+user.ID.String(), `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
