package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.CompletionListener = (*SocialService)(nil)

// SocialService keeps the local user's streak score and exposes the friends
// and leaderboard panels. There is no friends backend: outbound intents are
// validated and logged, nothing else.
type SocialService struct {
	mu  sync.RWMutex
	me  *domain.User
	log *zap.Logger
}

func NewSocialService(me *domain.User, logger *zap.Logger) *SocialService {
	if me == nil {
		me = domain.NewLocalUser()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SocialService{
		me:  me,
		log: logger.Named("social"),
	}
}

func (s *SocialService) HabitCompleted(ctx context.Context, entry domain.HabitEntry) {
	s.mu.Lock()
	s.me.StreakScore++
	score := s.me.StreakScore
	s.mu.Unlock()

	s.log.Debug("streak score increased", zap.String("habit_id", entry.ID), zap.Int("streak_score", score))
}

func (s *SocialService) CurrentUser() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.me.Clone()
}

func (s *SocialService) Friends() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends := make([]domain.User, 0, len(s.me.Friends))
	for _, id := range s.me.Friends {
		friends = append(friends, placeholderFriend(id))
	}
	return friends
}

func (s *SocialService) Leaderboard() []domain.LeaderboardRow {
	s.mu.RLock()
	users := []domain.User{s.me.Clone()}
	for _, id := range s.me.Friends {
		users = append(users, placeholderFriend(id))
	}
	s.mu.RUnlock()

	return domain.RankUsers(users)
}

func (s *SocialService) SendFriendRequest(ctx context.Context, email string) error {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return err
	}
	s.log.Info("send friend request", zap.String("email", normalized))
	return nil
}

func (s *SocialService) AcceptRequest(ctx context.Context, userID string) error {
	s.mu.RLock()
	pending := s.me.HasPendingRequest(userID)
	s.mu.RUnlock()

	if !pending {
		s.log.Warn("accept ignored, no such request", zap.String("user_id", userID))
		return domain.ErrRequestNotFound
	}
	s.log.Info("accept friend request", zap.String("user_id", userID))
	return nil
}

func (s *SocialService) Message(ctx context.Context, friendID string) error {
	s.mu.RLock()
	known := s.me.HasFriend(friendID)
	s.mu.RUnlock()

	if !known {
		s.log.Warn("message ignored, not a friend", zap.String("friend_id", friendID))
		return domain.ErrFriendNotFound
	}
	s.log.Info("message friend", zap.String("friend_id", friendID))
	return nil
}

func placeholderFriend(id string) domain.User {
	return domain.User{
		ID:              id,
		Name:            fmt.Sprintf("Friend %s", id),
		Friends:         []string{},
		PendingRequests: []string{},
	}
}

// LogSharer is the default share target: it records the text and returns.
type LogSharer struct {
	log *zap.Logger
}

func NewLogSharer(logger *zap.Logger) *LogSharer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSharer{log: logger.Named("share")}
}

func (s *LogSharer) Share(ctx context.Context, title, text string) error {
	s.log.Info("share progress", zap.String("title", title), zap.String("text", text))
	return nil
}
