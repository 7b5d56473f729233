package workflow

import (
	"testing"

	"hotel-booking-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampRating(t *testing.T) {
	assert.Equal(t, 3, ClampRating("3"))
	assert.Equal(t, 4, ClampRating(" 4 "))
	assert.Equal(t, 1, ClampRating("1"))
	assert.Equal(t, 5, ClampRating("9"))
	assert.Equal(t, 5, ClampRating("0"))
	assert.Equal(t, 5, ClampRating("-2"))
	assert.Equal(t, 5, ClampRating("great"))
	assert.Equal(t, 5, ClampRating(""))
}

func TestSubmitReview(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")

	review, err := SubmitReview(db, user.ID, room.ID, 4, "Great stay")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "Great stay", review.Text)
}

func TestSubmitReview_ClampsOutOfRangeRating(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")

	review, err := SubmitReview(db, user.ID, room.ID, 9, "Great stay")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating, "out-of-range rating is clamped, not rejected")

	var stored models.Review
	require.NoError(t, db.First(&stored, review.ID).Error)
	assert.Equal(t, 5, stored.Rating)
}

func TestSubmitReview_EmptyText(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "101", 100)
	user := seedCustomer(t, db, "alice")

	_, err := SubmitReview(db, user.ID, room.ID, 4, "   ")
	assert.ErrorIs(t, err, ErrEmptyReview)
}

func TestSubmitReview_RoomNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedCustomer(t, db, "alice")

	_, err := SubmitReview(db, user.ID, 9999, 4, "Great stay")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
