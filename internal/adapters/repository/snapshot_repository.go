package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository stores the habit collection as one JSON array under
// "tasks" and the auxiliary id->streak map under "streaks".
type SnapshotRepository struct {
	store domain.KeyValueStore
}

func NewSnapshotRepository(store domain.KeyValueStore) *SnapshotRepository {
	return &SnapshotRepository{store: store}
}

func (r *SnapshotRepository) LoadEntries(ctx context.Context) ([]*domain.HabitEntry, bool, error) {
	raw, found, err := r.store.Get(ctx, domain.TasksKey)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	var entries []*domain.HabitEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, true, fmt.Errorf("failed to unmarshal %s snapshot: %w", domain.TasksKey, err)
	}

	clean := make([]*domain.HabitEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.CompletionHistory == nil {
			e.CompletionHistory = []string{}
		}
		if e.Category == "" {
			e.Category = domain.DefaultCategory
		}
		for i, day := range e.CompletionHistory {
			e.CompletionHistory[i] = domain.NormalizeDay(day)
		}
		if e.LastChecked != nil {
			day := domain.NormalizeDay(*e.LastChecked)
			e.LastChecked = &day
		}
		clean = append(clean, e)
	}
	return clean, true, nil
}

func (r *SnapshotRepository) SaveEntries(ctx context.Context, entries []*domain.HabitEntry) error {
	if entries == nil {
		entries = []*domain.HabitEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", domain.TasksKey, err)
	}
	return r.store.Set(ctx, domain.TasksKey, string(data))
}

func (r *SnapshotRepository) LoadStreaks(ctx context.Context) (map[string]int, error) {
	return r.loadStreaks(ctx)
}

func (r *SnapshotRepository) loadStreaks(ctx context.Context) (map[string]int, error) {
	streaks := make(map[string]int)

	raw, found, err := r.store.Get(ctx, domain.StreaksKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return streaks, nil
	}

	if err := json.Unmarshal([]byte(raw), &streaks); err != nil {
		return nil, &corruptMapError{err: err}
	}
	return streaks, nil
}

// SaveStreak is a read-modify-write merge. A corrupted map is replaced; a
// store failure is returned.
func (r *SnapshotRepository) SaveStreak(ctx context.Context, id string, streak int) error {
	streaks, err := r.loadStreaks(ctx)
	if err != nil {
		var corrupt *corruptMapError
		if !errors.As(err, &corrupt) {
			return err
		}
		streaks = make(map[string]int)
	}
	streaks[id] = streak

	data, err := json.Marshal(streaks)
	if err != nil {
		return fmt.Errorf("failed to marshal %s map: %w", domain.StreaksKey, err)
	}
	return r.store.Set(ctx, domain.StreaksKey, string(data))
}

type corruptMapError struct {
	err error
}

func (e *corruptMapError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s map: %v", domain.StreaksKey, e.err)
}

func (e *corruptMapError) Unwrap() error {
	return e.err
}
