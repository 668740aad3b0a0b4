package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/alexanderramin/hoikuplan/internal/repository"
)

type assistService struct {
	forms       FormService
	suggestions intelligence.SuggestionService
	observer    UseCaseObserver
}

func NewAssistService(forms FormService, suggestions intelligence.SuggestionService, observers ...UseCaseObserver) AssistService {
	return &assistService{forms: forms, suggestions: suggestions, observer: useCaseObserverOrNoop(observers)}
}

func (s *assistService) Apply(ctx context.Context, userID string, spec domain.DocumentSpec, req intelligence.Request, target AssistTarget) (updated domain.FieldValues, err error) {
	fields := map[string]any{"user": userID, "kind": string(spec.Kind)}
	defer observe(ctx, s.observer, "assist", time.Now().UTC(), &err, fields)

	if err = validateOwner(userID, spec.Kind); err != nil {
		return nil, err
	}
	if spec.Kind != domain.KindWeekly && strings.TrimSpace(target.Item) == "" {
		return nil, fmt.Errorf("%w: a target item is required", ErrInvalidInput)
	}
	if err = layout.Validate(spec); err != nil {
		return nil, err
	}
	if req.Doc == "" {
		req.Doc = spec.Kind
	}
	if req.AgeGroup == "" {
		req.AgeGroup = spec.AgeGroup
	}

	current, err := s.forms.Load(ctx, userID, spec.Kind)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		current = domain.FieldValues{}
	case err != nil:
		return nil, err
	}

	if spec.Kind == domain.KindWeekly {
		var week intelligence.WeekPlan
		week, err = s.suggestions.GenerateWeek(ctx, req)
		if err != nil {
			return nil, err
		}
		updated = week.Apply(current, dayHeadings(spec), weekLabelsFor(spec))
		fields["days"] = len(week)
	} else {
		var text string
		text, err = s.suggestions.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		updated = current.Clone()
		updated.Set(target.Item, target.Period, text)
		fields["item"] = domain.FieldKey{Doc: spec.Kind, Item: target.Item, Period: target.Period}.String()
	}

	if _, err = s.forms.Save(ctx, userID, spec.Kind, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func dayHeadings(spec domain.DocumentSpec) []string {
	p, _ := layout.ProfileFor(spec.Kind)
	days := make([]string, spec.PeriodCount)
	for i := range days {
		days[i] = p.PeriodHeading(spec.Period, i+1)
	}
	return days
}

// weekLabelsFor maps the first three weekly rows onto activity, care and
// supplies.
func weekLabelsFor(spec domain.DocumentSpec) intelligence.WeekLabels {
	var labels intelligence.WeekLabels
	targets := []*string{&labels.Activity, &labels.Care, &labels.Supplies}
	for i, t := range targets {
		if i < len(spec.RowLabels) {
			*t = spec.RowLabels[i]
		}
	}
	return labels
}
