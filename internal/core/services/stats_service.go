package services

import (
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

type HabitSnapshotter interface {
	Snapshot() []domain.HabitEntry
}

// StatsService derives consecutive-day runs from completion history. The runs
// are for display only; the stored streak counter is never touched.
type StatsService struct {
	habits HabitSnapshotter
	now    func() time.Time
}

func NewStatsService(habits HabitSnapshotter, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{
		habits: habits,
		now:    now,
	}
}

func (s *StatsService) GetStats() *domain.HabitStats {
	entries := s.habits.Snapshot()
	today := s.now()

	stats := &domain.HabitStats{
		TotalHabits: len(entries),
		Habits:      make([]domain.HabitRun, 0, len(entries)),
	}

	for _, e := range entries {
		current, longest, days := calculateRuns(e.CompletionHistory, today)

		run := domain.HabitRun{
			HabitID:       e.ID,
			Label:         e.Label,
			Streak:        e.Streak,
			CurrentRun:    current,
			LongestRun:    longest,
			DaysCompleted: days,
		}
		if e.LastChecked != nil {
			run.LastChecked = *e.LastChecked
		}

		if e.IsChecked {
			stats.CheckedNow++
		}
		stats.TotalCompletions += len(e.CompletionHistory)
		stats.Habits = append(stats.Habits, run)
	}

	return stats
}

// calculateRuns walks the distinct completion days oldest first. The run
// ending on the newest day is current if that day is today or yesterday.
// Legacy markers count, unreadable ones are skipped.
func calculateRuns(history []string, now time.Time) (current, longest, days int) {
	seen := make(map[string]bool, len(history))
	keys := make([]string, 0, len(history))
	for _, marker := range history {
		if _, ok := domain.ParseDay(marker); !ok {
			continue
		}
		key := domain.NormalizeDay(marker)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return 0, 0, 0
	}

	// DayLayout keys sort chronologically as plain strings.
	sort.Strings(keys)

	run := 0
	prev := ""
	for _, key := range keys {
		if prev != "" && key == dayAfter(prev) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
		prev = key
	}

	today := domain.DayKey(now)
	if prev == today || dayAfter(prev) == today {
		current = run
	}
	return current, longest, len(keys)
}

func dayAfter(key string) string {
	t, _ := time.Parse(domain.DayLayout, key)
	return t.AddDate(0, 0, 1).Format(domain.DayLayout)
}
