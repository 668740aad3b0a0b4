package intelligence

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/llm"
)

// Request describes one suggestion: the age group, the keywords a staff
// member typed, and the document and row the text is meant for.
type Request struct {
	AgeGroup string              `json:"age_group"`
	Keywords string              `json:"keywords"`
	Doc      domain.DocumentKind `json:"doc"`
	Item     string              `json:"item,omitempty"`
}

// SuggestionService drafts plan text with the local LLM. Errors are always
// *Failure values.
type SuggestionService interface {
	Generate(ctx context.Context, req Request) (string, error)
	GenerateWeek(ctx context.Context, req Request) (WeekPlan, error)
	Available(ctx context.Context) bool
}

type suggestionService struct {
	client   llm.LLMClient
	observer llm.Observer
}

func NewSuggestionService(client llm.LLMClient, observer llm.Observer) SuggestionService {
	return &suggestionService{client: client, observer: observer}
}

type fieldAnswer struct {
	Text string `json:"text"`
}

func (s *suggestionService) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Keywords) == "" {
		return "", &Failure{Code: CodeFailed, Message: "keywords are required"}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggestField,
		SystemPrompt: fieldSystemPrompt,
		UserPrompt:   buildFieldPrompt(req),
	})
	if err != nil {
		return "", classifyErr(err)
	}

	raw := resp.Text
	if strings.Contains(raw, "{") {
		if ans, err := llm.ExtractJSON[fieldAnswer](raw, nil); err == nil && strings.TrimSpace(ans.Text) != "" {
			raw = ans.Text
		}
	}

	text := sanitizeText(raw)
	if text == "" {
		return "", newFailure(CodeInvalidOutput, errors.New("empty suggestion"))
	}
	return text, nil
}

func (s *suggestionService) GenerateWeek(ctx context.Context, req Request) (WeekPlan, error) {
	if strings.TrimSpace(req.Keywords) == "" {
		return nil, &Failure{Code: CodeFailed, Message: "keywords are required"}
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggestWeek,
		SystemPrompt: weekSystemPrompt,
		UserPrompt:   buildWeekPrompt(req),
		JSON:         true,
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	plan, err := llm.ExtractJSON[WeekPlan](resp.Text, validateWeekPlan)
	if err != nil {
		return nil, newFailure(CodeInvalidOutput, err)
	}
	return plan.sanitized(), nil
}

func (s *suggestionService) Available(ctx context.Context) bool {
	return s.client.Available(ctx)
}
