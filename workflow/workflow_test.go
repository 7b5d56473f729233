package workflow

import (
	"path/filepath"
	"testing"
	"time"

	"hotel-booking-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "hotel_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
	))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64) *models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, Type: "DELUXE", Price: price, Available: true}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := RegisterCustomer(db, "Test Customer", username, "secret123", username+"@example.com", "9876543210")
	require.NoError(t, err)
	return user
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
