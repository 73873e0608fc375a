package domain

type HabitStats struct {
	TotalHabits      int        `json:"total_habits"`
	CheckedNow       int        `json:"checked_now"`
	TotalCompletions int        `json:"total_completions"`
	Habits           []HabitRun `json:"habits"`
}

type HabitRun struct {
	HabitID       string `json:"habit_id"`
	Label         string `json:"label"`
	Streak        int    `json:"streak"`
	CurrentRun    int    `json:"current_run"`
	LongestRun    int    `json:"longest_run"`
	DaysCompleted int    `json:"days_completed"`
	LastChecked   string `json:"last_checked,omitempty"`
}
