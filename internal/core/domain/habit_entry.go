package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel    = errors.New("habit label cannot be empty")
	ErrEntryNotFound = errors.New("habit entry not found")
	ErrNothingToUndo = errors.New("no deleted habit available to restore")
	ErrNoEditSession = errors.New("no edit session in progress")
)

const (
	DefaultCategory = "Personal"
	DayLayout       = "2006-01-02"

	// LegacyDayLayout is the Date.toDateString form found in older snapshots.
	LegacyDayLayout = "Mon Jan 02 2006"
)

type HabitEntry struct {
	ID                string    `json:"id"`
	Label             string    `json:"label"`
	IsChecked         bool      `json:"isChecked"`
	Streak            int       `json:"streak"`
	LastChecked       *string   `json:"lastChecked"`
	CreatedAt         time.Time `json:"createdAt"`
	CompletionHistory []string  `json:"completionHistory"`
	Category          string    `json:"category"`

	// completion generation; not persisted
	generation uint64
}

func NewHabitEntry(label string, now time.Time) (*HabitEntry, error) {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return nil, ErrEmptyLabel
	}

	return &HabitEntry{
		ID:                uuid.NewString(),
		Label:             clean,
		CreatedAt:         now.UTC(),
		CompletionHistory: []string{},
		Category:          DefaultCategory,
	}, nil
}

// DayKey returns the UTC calendar day of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ParseDay reads a day marker in either the current or the legacy layout.
func ParseDay(day string) (time.Time, bool) {
	day = strings.TrimSpace(day)
	for _, layout := range []string{DayLayout, LegacyDayLayout} {
		if t, err := time.Parse(layout, day); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDay rewrites a legacy marker as a DayKey. Unreadable markers are
// returned unchanged.
func NormalizeDay(day string) string {
	t, ok := ParseDay(day)
	if !ok {
		return day
	}
	return t.Format(DayLayout)
}

// Complete records a false->true transition. The generation is what a pending
// auto-uncheck must match before it is allowed to clear the checked flag.
func (e *HabitEntry) Complete(now time.Time, generation uint64) {
	today := DayKey(now)

	e.IsChecked = true
	e.Streak++
	e.CompletionHistory = append(e.CompletionHistory, today)
	e.LastChecked = &today
	e.generation = generation
}

func (e *HabitEntry) Uncheck() {
	e.IsChecked = false
}

// Restamp gives a checked entry read from storage a fresh generation so a
// newly armed auto-uncheck can clear it.
func (e *HabitEntry) Restamp(generation uint64) {
	e.generation = generation
}

func (e *HabitEntry) Generation() uint64 {
	return e.generation
}

func (e *HabitEntry) Rename(label string) error {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return ErrEmptyLabel
	}
	e.Label = clean
	return nil
}

func (e *HabitEntry) Clone() *HabitEntry {
	clone := *e
	clone.CompletionHistory = append([]string(nil), e.CompletionHistory...)
	if clone.CompletionHistory == nil {
		clone.CompletionHistory = []string{}
	}
	if e.LastChecked != nil {
		day := *e.LastChecked
		clone.LastChecked = &day
	}
	return &clone
}
