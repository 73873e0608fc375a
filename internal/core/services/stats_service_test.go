package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

type staticSnapshot []domain.HabitEntry

func (s staticSnapshot) Snapshot() []domain.HabitEntry {
	return s
}

func TestCalculateRuns(t *testing.T) {
	today := time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)
	daysAgo := func(n int) string {
		return domain.DayKey(today.AddDate(0, 0, -n))
	}

	tests := []struct {
		name        string
		history     []string
		wantCurrent int
		wantLongest int
		wantDays    int
	}{
		{
			name:    "Empty history",
			history: []string{},
		},
		{
			name:        "Single completion today",
			history:     []string{daysAgo(0)},
			wantCurrent: 1,
			wantLongest: 1,
			wantDays:    1,
		},
		{
			name:        "Single completion yesterday (Run still alive)",
			history:     []string{daysAgo(1)},
			wantCurrent: 1,
			wantLongest: 1,
			wantDays:    1,
		},
		{
			name:        "Single completion 2 days ago (Run broken)",
			history:     []string{daysAgo(2)},
			wantCurrent: 0,
			wantLongest: 1,
			wantDays:    1,
		},
		{
			name:        "Perfect run (2 days ago, Yesterday, Today)",
			history:     []string{daysAgo(2), daysAgo(1), daysAgo(0)},
			wantCurrent: 3,
			wantLongest: 3,
			wantDays:    3,
		},
		{
			name:        "Longest run in the past",
			history:     []string{daysAgo(12), daysAgo(11), daysAgo(10), daysAgo(0)},
			wantCurrent: 1,
			wantLongest: 3,
			wantDays:    4,
		},
		{
			name:        "Repeated completions on one day count once",
			history:     []string{daysAgo(1), daysAgo(0), daysAgo(0), daysAgo(0)},
			wantCurrent: 2,
			wantLongest: 2,
			wantDays:    2,
		},
		{
			name:        "Unparseable markers are skipped",
			history:     []string{"someday", daysAgo(0)},
			wantCurrent: 1,
			wantLongest: 1,
			wantDays:    1,
		},
		{
			name:        "Legacy markers join the run",
			history:     []string{"Wed Oct 14 2026", "Thu Oct 15 2026", daysAgo(0)},
			wantCurrent: 3,
			wantLongest: 3,
			wantDays:    3,
		},
		{
			name:        "Same day in both layouts counts once",
			history:     []string{"Fri Oct 16 2026", daysAgo(0)},
			wantCurrent: 1,
			wantLongest: 1,
			wantDays:    1,
		},
		{
			name:        "Unordered history across a month boundary",
			history:     []string{"2026-10-01", "2026-09-30", "2026-09-29"},
			wantCurrent: 0,
			wantLongest: 3,
			wantDays:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, longest, days := calculateRuns(tt.history, today)
			assert.Equal(t, tt.wantCurrent, current, "Current run mismatch")
			assert.Equal(t, tt.wantLongest, longest, "Longest run mismatch")
			assert.Equal(t, tt.wantDays, days, "Distinct days mismatch")
		})
	}
}

func TestStatsService_GetStats(t *testing.T) {
	today := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	last := "2026-10-16"

	snapshot := staticSnapshot{
		{ID: "h1", Label: "Run", Streak: 5, IsChecked: true, LastChecked: &last,
			CompletionHistory: []string{"2026-10-10", "2026-10-15", "2026-10-16", "2026-10-16", "2026-10-16"}},
		{ID: "h2", Label: "Read", CompletionHistory: []string{}},
	}

	svc := NewStatsService(snapshot, func() time.Time { return today })
	stats := svc.GetStats()

	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalHabits)
	assert.Equal(t, 1, stats.CheckedNow)
	assert.Equal(t, 5, stats.TotalCompletions)

	require.Len(t, stats.Habits, 2)
	run := stats.Habits[0]
	assert.Equal(t, 5, run.Streak, "Stored streak is reported untouched")
	assert.Equal(t, 2, run.CurrentRun)
	assert.Equal(t, 2, run.LongestRun)
	assert.Equal(t, 3, run.DaysCompleted)
	assert.Equal(t, last, run.LastChecked)

	assert.Equal(t, 0, stats.Habits[1].CurrentRun)
	assert.Empty(t, stats.Habits[1].LastChecked)
}
