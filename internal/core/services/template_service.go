package services

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

//go:embed templates.yaml
var defaultTemplates []byte

type TemplateService struct {
	templates []domain.HabitTemplate
}

func NewTemplateService(templates []domain.HabitTemplate) *TemplateService {
	return &TemplateService{templates: templates}
}

func NewDefaultTemplateService() (*TemplateService, error) {
	templates, err := ParseTemplates(defaultTemplates)
	if err != nil {
		return nil, err
	}
	return NewTemplateService(templates), nil
}

func ParseTemplates(data []byte) ([]domain.HabitTemplate, error) {
	var templates []domain.HabitTemplate
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse habit templates: %w", err)
	}

	for i, tpl := range templates {
		if strings.TrimSpace(tpl.Category) == "" {
			return nil, fmt.Errorf("template %d has no category", i)
		}
		for _, h := range tpl.Habits {
			if strings.TrimSpace(h.Label) == "" {
				return nil, fmt.Errorf("template category %q has a habit without label", tpl.Category)
			}
		}
	}
	return templates, nil
}

func (s *TemplateService) List() []domain.HabitTemplate {
	out := make([]domain.HabitTemplate, len(s.templates))
	for i, tpl := range s.templates {
		out[i] = domain.HabitTemplate{
			Category: tpl.Category,
			Habits:   append([]domain.TemplateHabit(nil), tpl.Habits...),
		}
	}
	return out
}

// Find looks a habit up by category and label, case-insensitively.
func (s *TemplateService) Find(category, label string) (domain.TemplateHabit, error) {
	for _, tpl := range s.templates {
		if !strings.EqualFold(tpl.Category, strings.TrimSpace(category)) {
			continue
		}
		for _, h := range tpl.Habits {
			if strings.EqualFold(h.Label, strings.TrimSpace(label)) {
				return h, nil
			}
		}
	}
	return domain.TemplateHabit{}, domain.ErrTemplateNotFound
}
