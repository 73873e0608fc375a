package domain

import (
	"errors"
	"net/mail"
	"sort"
	"strings"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrFriendNotFound   = errors.New("friend not found")
	ErrEmptyFriendEmail = errors.New("friend email cannot be empty")
)

type User struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Avatar          string   `json:"avatar,omitempty"`
	Friends         []string `json:"friends"`
	PendingRequests []string `json:"pendingRequests"`
	StreakScore     int      `json:"streakScore"`
}

func NewLocalUser() *User {
	return &User{
		ID:              "1",
		Name:            "You",
		Friends:         []string{},
		PendingRequests: []string{},
	}
}

func (u *User) Clone() User {
	clone := *u
	clone.Friends = append([]string{}, u.Friends...)
	clone.PendingRequests = append([]string{}, u.PendingRequests...)
	return clone
}

func (u *User) HasFriend(id string) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}

func (u *User) HasPendingRequest(id string) bool {
	for _, r := range u.PendingRequests {
		if r == id {
			return true
		}
	}
	return false
}

func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyFriendEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}

type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	StreakScore int    `json:"streak_score"`
	Medal       string `json:"medal,omitempty"`
}

var medals = []string{"gold", "silver", "bronze"}

// RankUsers orders users by streak score, highest first. Ties keep their input order.
func RankUsers(users []User) []LeaderboardRow {
	sorted := make([]User, len(users))
	copy(sorted, users)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StreakScore > sorted[j].StreakScore
	})

	rows := make([]LeaderboardRow, 0, len(sorted))
	for i, u := range sorted {
		row := LeaderboardRow{
			Rank:        i + 1,
			UserID:      u.ID,
			Name:        u.Name,
			StreakScore: u.StreakScore,
		}
		if i < len(medals) {
			row.Medal = medals[i]
		}
		rows = append(rows, row)
	}
	return rows
}
