package domain

import (
	"context"
	"errors"
)

const (
	TasksKey   = "tasks"
	StreaksKey = "streaks"
)

var (
	ErrStoreUnavailable = errors.New("persistent store unavailable")
)

type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

type SnapshotRepository interface {
	// LoadEntries returns the persisted collection. found is false when no
	// snapshot has ever been written.
	LoadEntries(ctx context.Context) (entries []*HabitEntry, found bool, err error)

	// SaveEntries writes the full collection as one unit.
	SaveEntries(ctx context.Context, entries []*HabitEntry) error

	LoadStreaks(ctx context.Context) (map[string]int, error)

	// SaveStreak merges a single id into the auxiliary streak map.
	SaveStreak(ctx context.Context, id string, streak int) error
}

// CompletionListener receives an event for every false->true transition.
type CompletionListener interface {
	HabitCompleted(ctx context.Context, entry HabitEntry)
}

type Sharer interface {
	Share(ctx context.Context, title, text string) error
}
