package programs

import (
	"sync"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&Program{}, &Donation{}))
	return db
}

func seedProgram(t *testing.T, db *gorm.DB, raised float64) *Program {
	t.Helper()
	program := &Program{
		ID:          uuid.New(),
		Title:       "Irrigation Fund",
		Description: "Canal repairs",
		Location:    "Riverside",
		District:    "North",
		Goal:        10000,
		Raised:      raised,
		Status:      "active",
	}
	require.NoError(t, db.Create(program).Error)
	return program
}

func mobileDonation(programID uuid.UUID, amount float64) *DonationRequest {
	return &DonationRequest{
		ProgramID:     programID,
		DonorName:     "A. Donor",
		Amount:        amount,
		PaymentMethod: "mobile",
		Mobile:        &MobileInfo{MobileNumber: "0833333333"},
	}
}

func TestDonateIncrementsRaised(t *testing.T) {
	db := testDB(t)
	program := seedProgram(t, db, 250)
	svc := NewDonationService(db)

	_, err := svc.Donate(mobileDonation(program.ID, 100))
	require.NoError(t, err)

	var fromDB Program
	require.NoError(t, db.First(&fromDB, "id = ?", program.ID).Error)
	assert.EqualValues(t, 350, fromDB.Raised)
}

func TestConcurrentDonationsNeverLoseAnUpdate(t *testing.T) {
	db := testDB(t)
	program := seedProgram(t, db, 0)
	svc := NewDonationService(db)

	const donors = 10
	var wg sync.WaitGroup
	wg.Add(donors)
	for i := 0; i < donors; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Donate(mobileDonation(program.ID, 5))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var fromDB Program
	require.NoError(t, db.First(&fromDB, "id = ?", program.ID).Error)
	assert.EqualValues(t, donors*5, fromDB.Raised)
}

func TestDonateValidation(t *testing.T) {
	db := testDB(t)
	program := seedProgram(t, db, 0)
	svc := NewDonationService(db)

	t.Run("zero amount", func(t *testing.T) {
		req := mobileDonation(program.ID, 0)
		_, err := svc.Donate(req)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown method", func(t *testing.T) {
		req := mobileDonation(program.ID, 10)
		req.PaymentMethod = "barter"
		_, err := svc.Donate(req)
		assert.Error(t, err)
	})

	t.Run("card without card payload", func(t *testing.T) {
		req := &DonationRequest{
			ProgramID:     program.ID,
			DonorName:     "B. Donor",
			Amount:        10,
			PaymentMethod: "card",
		}
		_, err := svc.Donate(req)
		assert.ErrorIs(t, err, ErrMissingSubPayload)
	})

	t.Run("unknown program", func(t *testing.T) {
		req := mobileDonation(uuid.New(), 10)
		_, err := svc.Donate(req)
		assert.ErrorIs(t, err, ErrProgramNotFound)
	})

	t.Run("failed donation leaves raised untouched", func(t *testing.T) {
		var fromDB Program
		require.NoError(t, db.First(&fromDB, "id = ?", program.ID).Error)
		assert.EqualValues(t, 0, fromDB.Raised)
	})
}

func TestProgramUpdateDoesNotTouchRaised(t *testing.T) {
	db := testDB(t)
	program := seedProgram(t, db, 500)
	svc := NewProgramService(db)

	updated, err := svc.Update(program.ID, &ProgramRequest{
		Title:       "Irrigation Fund II",
		Description: "More canals",
		Location:    "Riverside",
		District:    "North",
		Goal:        20000,
		Status:      "active",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 500, updated.Raised)
	assert.Equal(t, "Irrigation Fund II", updated.Title)
}

func TestListDonationsByProgram(t *testing.T) {
	db := testDB(t)
	first := seedProgram(t, db, 0)
	second := seedProgram(t, db, 0)
	svc := NewDonationService(db)

	_, err := svc.Donate(mobileDonation(first.ID, 10))
	require.NoError(t, err)
	_, err = svc.Donate(mobileDonation(second.ID, 20))
	require.NoError(t, err)

	all, err := svc.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.List(&first.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, first.ID, scoped[0].ProgramID)
}
