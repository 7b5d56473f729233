package workflow

import (
	"testing"

	"hotel-booking-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterCustomer(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterCustomer(db, "Alice", "alice", "secret123", "Alice@Example.com", "9876543210")
	require.NoError(t, err)

	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.False(t, user.SpotCreated)
	assert.Equal(t, "alice@example.com", user.Email, "email is lowercased")
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterCustomer_Validation(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterCustomer(db, "Alice", "alice", "secret123", "a@b.org", "9876543210")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = RegisterCustomer(db, "Alice", "alice", "secret123", "nodomain.com", "9876543210")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = RegisterCustomer(db, "Alice", "alice", "secret123", "a@b.com", "12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = RegisterCustomer(db, "Alice", "alice", "secret123", "a@b.com", "98765432ab")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	// Nothing was persisted
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRegisterCustomer_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterCustomer(db, "Alice", "alice", "secret123", "a@b.com", "9876543210")
	require.NoError(t, err)

	_, err = RegisterCustomer(db, "Other Alice", "alice", "different", "c@d.com", "9876543211")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestCreateSpotCustomer(t *testing.T) {
	db := newTestDB(t)

	user, err := CreateSpotCustomer(db, "Walk In", "walkin", "secret123", "walkin@hotel.com", "9876543210")
	require.NoError(t, err)
	assert.True(t, user.SpotCreated)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	_, err := RegisterCustomer(db, "Alice", "alice", "secret123", "a@b.com", "9876543210")
	require.NoError(t, err)

	user, err := Authenticate(db, "alice", "secret123", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Wrong password, unknown user, and role mismatch are indistinguishable
	_, err = Authenticate(db, "alice", "wrong", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "nobody", "secret123", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "alice", "secret123", models.RoleOwner)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
