package intelligence

import (
	"errors"
	"sort"
	"strings"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// DayPlan is the suggestion for one day of a weekly plan.
type DayPlan struct {
	Activity string `json:"activity"`
	Care     string `json:"care"`
	Supplies string `json:"supplies"`
}

// WeekPlan maps a day label (月, 火曜日, "4/7(月)") to that day's plan.
type WeekPlan map[string]DayPlan

// WeekLabels names the weekly rows each DayPlan part is written to.
type WeekLabels struct {
	Activity string
	Care     string
	Supplies string
}

// DefaultWeekLabels matches the weekly document's default row labels.
func DefaultWeekLabels() WeekLabels {
	return WeekLabels{Activity: "活動内容", Care: "配慮事項", Supplies: "準備物"}
}

func validateWeekPlan(p WeekPlan) error {
	if len(p) == 0 {
		return errors.New("week plan has no days")
	}
	for day, d := range p {
		if strings.TrimSpace(day) == "" {
			return errors.New("week plan has a blank day label")
		}
		if d == (DayPlan{}) {
			return errors.New("day " + day + " is empty")
		}
	}
	return nil
}

func (p WeekPlan) sanitized() WeekPlan {
	out := make(WeekPlan, len(p))
	for day, d := range p {
		out[strings.TrimSpace(day)] = DayPlan{
			Activity: sanitizeText(d.Activity),
			Care:     sanitizeText(d.Care),
			Supplies: sanitizeText(d.Supplies),
		}
	}
	return out
}

// Day returns the plan for label, matching on the weekday character when
// the exact label is absent.
func (p WeekPlan) Day(label string) (DayPlan, bool) {
	if d, ok := p[label]; ok {
		return d, true
	}
	want := weekdayOf(label)
	if want == "" {
		return DayPlan{}, false
	}
	for k, d := range p {
		if weekdayOf(k) == want {
			return d, true
		}
	}
	return DayPlan{}, false
}

// Apply flattens the plan into a copy of values. days lists the day labels
// in column order; day i is written to period i+1. Rows with an empty label
// and days missing from the plan are skipped.
func (p WeekPlan) Apply(values domain.FieldValues, days []string, labels WeekLabels) domain.FieldValues {
	out := values.Clone()
	for i, day := range days {
		d, ok := p.Day(day)
		if !ok {
			continue
		}
		period := i + 1
		for _, f := range []struct{ item, text string }{
			{labels.Activity, d.Activity},
			{labels.Care, d.Care},
			{labels.Supplies, d.Supplies},
		} {
			if f.item == "" || f.text == "" {
				continue
			}
			out.Set(f.item, period, f.text)
		}
	}
	return out
}

const weekdayChars = "日月火水木金土"

// Days returns the day labels of p from Monday to Sunday. Labels without a
// recognizable weekday follow in sorted order.
func (p WeekPlan) Days() []string {
	days := make([]string, 0, len(p))
	for k := range p {
		days = append(days, k)
	}
	sort.SliceStable(days, func(i, j int) bool {
		oi, oj := weekdayOrder(days[i]), weekdayOrder(days[j])
		if oi != oj {
			return oi < oj
		}
		return days[i] < days[j]
	})
	return days
}

// weekdayOrder ranks a label Monday first; unknown labels rank last.
func weekdayOrder(label string) int {
	wd := weekdayOf(label)
	if wd == "" {
		return 7
	}
	i := strings.Index(weekdayChars, wd) / len("日")
	return (i + 6) % 7
}

// weekdayOf extracts the weekday character of a day label: the text inside
// parentheses when present ("4/7(月)"), otherwise the first character.
func weekdayOf(label string) string {
	s := strings.TrimSpace(label)
	if open := strings.IndexAny(s, "(（"); open >= 0 {
		s = s[open:]
		s = strings.TrimLeft(s, "(（")
	}
	for _, r := range s {
		if strings.ContainsRune(weekdayChars, r) {
			return string(r)
		}
		return ""
	}
	return ""
}
