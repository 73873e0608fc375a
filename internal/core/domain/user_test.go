package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	t.Run("Should lowercase and trim", func(t *testing.T) {
		t.Parallel()
		email, err := NormalizeEmail("  Test.User@Gmail.COM  ")
		assert.NoError(t, err)
		assert.Equal(t, "test.user@gmail.com", email)
	})

	t.Run("Should fail with invalid email", func(t *testing.T) {
		t.Parallel()
		_, err := NormalizeEmail("invalid-email-format")
		assert.Equal(t, ErrInvalidEmail, err)
	})

	t.Run("Should fail with empty email", func(t *testing.T) {
		t.Parallel()
		_, err := NormalizeEmail("   ")
		assert.Equal(t, ErrEmptyFriendEmail, err)
	})
}

func TestRankUsers(t *testing.T) {
	users := []User{
		{ID: "a", Name: "Ann", StreakScore: 3},
		{ID: "b", Name: "Bob", StreakScore: 10},
		{ID: "c", Name: "Cid", StreakScore: 3},
		{ID: "d", Name: "Dee", StreakScore: 1},
	}

	rows := RankUsers(users)

	assert.Len(t, rows, 4)
	assert.Equal(t, "b", rows[0].UserID)
	assert.Equal(t, "gold", rows[0].Medal)
	assert.Equal(t, "a", rows[1].UserID, "Ties keep input order")
	assert.Equal(t, "silver", rows[1].Medal)
	assert.Equal(t, "c", rows[2].UserID)
	assert.Equal(t, "bronze", rows[2].Medal)
	assert.Equal(t, 4, rows[3].Rank)
	assert.Empty(t, rows[3].Medal)

	assert.Equal(t, "a", users[0].ID, "Input must not be reordered")
}

func TestUser_Clone(t *testing.T) {
	u := NewLocalUser()
	u.Friends = append(u.Friends, "2")

	clone := u.Clone()
	clone.Friends[0] = "x"

	assert.True(t, u.HasFriend("2"))
	assert.False(t, u.HasPendingRequest("2"))
}
