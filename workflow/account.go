package workflow

import (
	"errors"
	"fmt"
	"strings"

	"hotel-booking-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// The original booking desk only ever accepted addresses of this shape, so
// the rule is documented behavior rather than an attempt at RFC validation.
func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.HasSuffix(email, ".com")
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// RegisterCustomer creates a customer account from the public registration flow
func RegisterCustomer(db *gorm.DB, name, username, password, email, phone string) (*models.User, error) {
	return createCustomer(db, name, username, password, email, phone, false)
}

// CreateSpotCustomer creates a customer inline during an owner spot booking
func CreateSpotCustomer(db *gorm.DB, name, username, password, email, phone string) (*models.User, error) {
	return createCustomer(db, name, username, password, email, phone, true)
}

func createCustomer(db *gorm.DB, name, username, password, email, phone string, spot bool) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validPhone(strings.TrimSpace(phone)) {
		return nil, ErrInvalidPhone
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		Role:         models.RoleCustomer,
		SpotCreated:  spot,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

// Authenticate looks a user up by exact username+role match and verifies the
// password. Every mismatch — unknown username, wrong password, wrong role —
// yields the same error so callers cannot enumerate accounts or roles.
func Authenticate(db *gorm.DB, username, password string, role models.UserRole) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ? AND role = ?", username, role).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
