package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

func TestWeekPlan_Apply(t *testing.T) {
	plan := WeekPlan{
		"月": {Activity: "散歩", Care: "水分補給", Supplies: "帽子"},
		"水": {Activity: "製作", Care: "はさみの扱い"},
	}
	values := domain.FieldValues{"今週のねらい": "夏を楽しむ", "活動内容_period1": "old"}

	out := plan.Apply(values, []string{"月", "火", "水", "木", "金", "土"}, DefaultWeekLabels())

	assert.Equal(t, "散歩", out.Get("活動内容", 1))
	assert.Equal(t, "水分補給", out.Get("配慮事項", 1))
	assert.Equal(t, "帽子", out.Get("準備物", 1))
	assert.Equal(t, "製作", out.Get("活動内容", 3))
	assert.Equal(t, "はさみの扱い", out.Get("配慮事項", 3))
	assert.Equal(t, "", out.Get("準備物", 3), "empty parts are not written")
	assert.Equal(t, "", out.Get("活動内容", 2))
	assert.Equal(t, "夏を楽しむ", out.Get("今週のねらい", 0))

	// the input map is untouched
	assert.Equal(t, "old", values["活動内容_period1"])
	assert.Len(t, values, 2)
}

func TestWeekPlan_Apply_MatchesDatedHeadings(t *testing.T) {
	plan := WeekPlan{
		"月曜日": {Activity: "散歩"},
		"土":   {Activity: "自由遊び"},
	}
	days := []string{"4/7(月)", "4/8(火)", "4/9(水)", "4/10(木)", "4/11(金)", "4/12(土)"}

	out := plan.Apply(nil, days, DefaultWeekLabels())

	assert.Equal(t, domain.FieldValues{
		"活動内容_period1": "散歩",
		"活動内容_period6": "自由遊び",
	}, out)
}

func TestWeekPlan_Apply_CustomAndBlankLabels(t *testing.T) {
	plan := WeekPlan{"火": {Activity: "リズム遊び", Care: "怪我に注意", Supplies: "太鼓"}}

	out := plan.Apply(domain.FieldValues{}, []string{"月", "火"}, WeekLabels{Activity: "主な活動", Care: "援助"})

	assert.Equal(t, domain.FieldValues{
		"主な活動_period2": "リズム遊び",
		"援助_period2":   "怪我に注意",
	}, out)
}

func TestWeekPlan_Day(t *testing.T) {
	plan := WeekPlan{"金曜日": {Activity: "a"}, "Saturday": {Activity: "b"}}

	d, ok := plan.Day("4/11(金)")
	require.True(t, ok)
	assert.Equal(t, "a", d.Activity)

	d, ok = plan.Day("Saturday")
	require.True(t, ok, "exact label always matches")
	assert.Equal(t, "b", d.Activity)

	_, ok = plan.Day("土")
	assert.False(t, ok)
	_, ok = plan.Day("")
	assert.False(t, ok)
}

func TestWeekdayOf(t *testing.T) {
	tests := map[string]string{
		"月":      "月",
		"火曜日":    "火",
		"4/7(月)": "月",
		"4/7（水）": "水",
		" 木 ":    "木",
		"Monday": "",
		"4月7日":   "",
		"":       "",
	}
	for in, want := range tests {
		assert.Equal(t, want, weekdayOf(in), in)
	}
}

func TestWeekPlan_Days(t *testing.T) {
	plan := WeekPlan{
		"日":       {Activity: "g"},
		"Holiday": {Activity: "x"},
		"水曜日":     {Activity: "c"},
		"4/7(月)":  {Activity: "a"},
		"火":       {Activity: "b"},
	}
	assert.Equal(t, []string{"4/7(月)", "火", "水曜日", "日", "Holiday"}, plan.Days())
}
