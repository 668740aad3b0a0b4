package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/intelligence"
	"github.com/alexanderramin/hoikuplan/internal/testutil"
)

type suggestionStub struct {
	text    string
	week    intelligence.WeekPlan
	err     error
	lastReq intelligence.Request
}

func (s *suggestionStub) Generate(_ context.Context, req intelligence.Request) (string, error) {
	s.lastReq = req
	return s.text, s.err
}

func (s *suggestionStub) GenerateWeek(_ context.Context, req intelligence.Request) (intelligence.WeekPlan, error) {
	s.lastReq = req
	return s.week, s.err
}

func (s *suggestionStub) Available(context.Context) bool { return s.err == nil }

func TestAssistService_Apply_SetsTargetField(t *testing.T) {
	forms, _ := newFormService(t, 0)
	stub := &suggestionStub{text: "水遊びを楽しむ。"}
	svc := NewAssistService(forms, stub)
	ctx := context.Background()

	_, err := forms.Save(ctx, "u1", domain.KindMonthly, domain.FieldValues{"環境構成_period1": "keep me"})
	require.NoError(t, err)

	updated, err := svc.Apply(ctx, "u1", testutil.NewTestSpec(), intelligence.Request{Keywords: "水遊び"}, AssistTarget{Item: "ねらい", Period: 2})
	require.NoError(t, err)

	assert.Equal(t, "水遊びを楽しむ。", updated.Get("ねらい", 2))
	assert.Equal(t, "keep me", updated.Get("環境構成", 1))
	assert.Equal(t, "1歳児", stub.lastReq.AgeGroup, "age group defaults to the document spec")
	assert.Equal(t, domain.KindMonthly, stub.lastReq.Doc)

	loaded, err := forms.Load(ctx, "u1", domain.KindMonthly)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestAssistService_Apply_SummaryField(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewAssistService(forms, &suggestionStub{text: "家庭と連絡を密にする。"})

	updated, err := svc.Apply(context.Background(), "u1", testutil.NewTestSpec(),
		intelligence.Request{Keywords: "連絡帳"}, AssistTarget{Item: "家庭連携"})
	require.NoError(t, err)
	assert.Equal(t, "家庭と連絡を密にする。", updated["家庭連携"])
}

func TestAssistService_Apply_FailureLeavesValuesUntouched(t *testing.T) {
	forms, _ := newFormService(t, 0)
	failure := &intelligence.Failure{Code: intelligence.CodeUnavailable, Message: "down"}
	svc := NewAssistService(forms, &suggestionStub{err: failure})
	ctx := context.Background()

	_, err := forms.Save(ctx, "u1", domain.KindMonthly, domain.FieldValues{"ねらい_period1": "original"})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, "u1", testutil.NewTestSpec(), intelligence.Request{Keywords: "k"}, AssistTarget{Item: "ねらい", Period: 1})
	f, ok := intelligence.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, intelligence.CodeUnavailable, f.Code)

	history, err := forms.History(ctx, "u1", domain.KindMonthly, 0)
	require.NoError(t, err)
	require.Len(t, history, 1, "a failed suggestion must not save")
	assert.Equal(t, "original", history[0].Values.Get("ねらい", 1))
}

func TestAssistService_Apply_WeeklyFillsDays(t *testing.T) {
	forms, _ := newFormService(t, 0)
	stub := &suggestionStub{week: intelligence.WeekPlan{
		"月": {Activity: "散歩", Care: "水分補給", Supplies: "帽子"},
		"土": {Activity: "自由遊び"},
	}}
	svc := NewAssistService(forms, stub)
	spec := testutil.NewTestSpec(
		testutil.WithKind(domain.KindWeekly),
		testutil.WithPeriodCount(6),
		testutil.WithRowLabels("活動内容", "配慮事項", "準備物"),
		testutil.WithPeriod(testutil.April2025.AddDate(0, 0, 6)), // Monday 7 April
	)

	updated, err := svc.Apply(context.Background(), "u1", spec, intelligence.Request{Keywords: "春"}, AssistTarget{})
	require.NoError(t, err)

	assert.Equal(t, domain.FieldValues{
		"活動内容_period1": "散歩",
		"配慮事項_period1": "水分補給",
		"準備物_period1":  "帽子",
		"活動内容_period6": "自由遊び",
	}, updated)
	assert.Equal(t, domain.KindWeekly, stub.lastReq.Doc)
}

func TestAssistService_Apply_InvalidInput(t *testing.T) {
	forms, _ := newFormService(t, 0)
	svc := NewAssistService(forms, &suggestionStub{text: "x"})
	ctx := context.Background()

	_, err := svc.Apply(ctx, "", testutil.NewTestSpec(), intelligence.Request{Keywords: "k"}, AssistTarget{Item: "ねらい", Period: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Apply(ctx, "u1", testutil.NewTestSpec(), intelligence.Request{Keywords: "k"}, AssistTarget{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
