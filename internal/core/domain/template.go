package domain

import "errors"

var (
	ErrTemplateNotFound = errors.New("habit template not found")
)

type HabitTemplate struct {
	Category string          `json:"category" yaml:"category"`
	Habits   []TemplateHabit `json:"habits" yaml:"habits"`
}

type TemplateHabit struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description"`
}
