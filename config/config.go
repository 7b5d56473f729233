package config

import (
	"log"
	"os"

	"hotel-booking-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "hotel_booking_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PricingPolicy selects how the amount due at payment time is computed:
// "recompute" uses the current room price, "snapshot" the total stored on
// the booking at creation.
func PricingPolicy() string {
	return getEnv("PRICING_POLICY", "recompute")
}

// DatabaseDSN is the sqlite path, overridable for tests and deployments
func DatabaseDSN() string {
	return getEnv("HOTEL_DB", "hotel_booking.db")
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
