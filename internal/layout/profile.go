package layout

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// ClosingBlock is a full-width label/value pair at the bottom of the sheet.
// Values are stored under Key so relabelling a block keeps its text.
type ClosingBlock struct {
	Key   string
	Label string
}

// Profile describes everything that differs between document kinds. The
// layout engine itself is shared.
type Profile struct {
	Kind           domain.DocumentKind
	AllowedPeriods []int
	DefaultPeriods int
	CornerLabel    string
	RowLabels      []string
	SummaryLabels  []string
	Closing        []ClosingBlock
	Reviewer       string
	Author         string

	heading    func(start time.Time, i int) string
	periodText func(start time.Time) string
	fileStamp  func(start time.Time) string
}

var weekdayNames = [...]string{"日", "月", "火", "水", "木", "金", "土"}

var annualTerms = [...]string{"1期 (4〜5月)", "2期 (6〜8月)", "3期 (9〜12月)", "4期 (1〜3月)"}

var profiles = map[domain.DocumentKind]Profile{
	domain.KindMonthly: {
		Kind:           domain.KindMonthly,
		AllowedPeriods: []int{4, 5},
		DefaultPeriods: 4,
		CornerLabel:    "項目 / 週",
		RowLabels: []string{
			"ねらい", "養護:生命", "養護:情緒", "教育:健康", "教育:人間関係",
			"教育:環境", "教育:言葉", "教育:表現", "環境構成", "小学校連携",
		},
		SummaryLabels: []string{"前月の振り返り", "今月の目標", "家庭連携"},
		Closing:       []ClosingBlock{{Key: "reflection", Label: "今月の振り返り・反省"}},
		Reviewer:      "園長",
		Author:        "担任",
		heading: func(_ time.Time, i int) string {
			return fmt.Sprintf("第%d週", i)
		},
		periodText: func(start time.Time) string { return start.Format("2006年01月") },
		fileStamp:  func(start time.Time) string { return start.Format("2006年01月") },
	},
	domain.KindAnnual: {
		Kind:           domain.KindAnnual,
		AllowedPeriods: []int{4},
		DefaultPeriods: 4,
		CornerLabel:    "項目 / 期",
		RowLabels: []string{
			"ねらい", "養護", "健康", "人間関係", "環境", "言葉", "表現", "食育", "家庭連携",
		},
		SummaryLabels: []string{"年間目標", "園の方針"},
		Closing: []ClosingBlock{
			{Key: "evaluation", Label: "年間の評価・反省"},
			{Key: "next_year", Label: "次年度への課題"},
		},
		Reviewer: "園長",
		Author:   "担任",
		heading: func(_ time.Time, i int) string {
			if i >= 1 && i <= len(annualTerms) {
				return annualTerms[i-1]
			}
			return fmt.Sprintf("%d期", i)
		},
		periodText: func(start time.Time) string { return fmt.Sprintf("%d年度", fiscalYear(start)) },
		fileStamp:  func(start time.Time) string { return fmt.Sprintf("%d年度", fiscalYear(start)) },
	},
	domain.KindWeekly: {
		Kind:           domain.KindWeekly,
		AllowedPeriods: []int{6},
		DefaultPeriods: 6,
		CornerLabel:    "項目 / 曜日",
		RowLabels:      []string{"活動内容", "配慮事項", "準備物"},
		SummaryLabels:  []string{"前週の子どもの姿", "今週のねらい"},
		Closing:        []ClosingBlock{{Key: "self_evaluation", Label: "評価・反省"}},
		Reviewer:       "園長",
		Author:         "担任",
		heading: func(start time.Time, i int) string {
			if start.IsZero() {
				return weekdayNames[i%7]
			}
			d := WeekStart(start).AddDate(0, 0, i-1)
			return fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), weekdayNames[d.Weekday()])
		},
		periodText: func(start time.Time) string { return WeekStart(start).Format("2006/01/02") + "〜" },
		fileStamp:  func(start time.Time) string { return WeekStart(start).Format("2006-01-02") },
	},
}

// WeekStart returns the Monday of the Monday-to-Saturday week containing t.
// A Sunday belongs to the week that starts the next day.
func WeekStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	switch wd := t.Weekday(); wd {
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t.AddDate(0, 0, -int(wd-time.Monday))
	}
}

// fiscalYear returns the Japanese school year (April to March) containing t.
func fiscalYear(t time.Time) int {
	if t.Month() < time.April {
		return t.Year() - 1
	}
	return t.Year()
}

// ProfileFor returns the profile for kind. The returned value owns its slices.
func ProfileFor(kind domain.DocumentKind) (Profile, bool) {
	p, ok := profiles[kind]
	if !ok {
		return Profile{}, false
	}
	p.AllowedPeriods = slices.Clone(p.AllowedPeriods)
	p.RowLabels = slices.Clone(p.RowLabels)
	p.SummaryLabels = slices.Clone(p.SummaryLabels)
	p.Closing = slices.Clone(p.Closing)
	return p, true
}

// DefaultSpec fills a DocumentSpec with the profile defaults for kind.
func DefaultSpec(kind domain.DocumentKind, ageGroup string, period time.Time) (domain.DocumentSpec, error) {
	p, ok := ProfileFor(kind)
	if !ok {
		return domain.DocumentSpec{}, configErrorf("kind", "unknown document kind %q", kind)
	}
	if kind == domain.KindWeekly {
		period = WeekStart(period)
	}
	return domain.DocumentSpec{
		Kind:          kind,
		AgeGroup:      ageGroup,
		Period:        period,
		Orientation:   domain.Landscape,
		PeriodCount:   p.DefaultPeriods,
		RowLabels:     p.RowLabels,
		SummaryLabels: p.SummaryLabels,
	}, nil
}

// PeriodHeading returns the column heading for period i (1-based).
func (p Profile) PeriodHeading(start time.Time, i int) string {
	return p.heading(start, i)
}

// Title renders the sheet title, e.g. "【月間指導計画】 2025年04月 (1歳児)".
func (p Profile) Title(spec domain.DocumentSpec) string {
	var b strings.Builder
	b.WriteString("【" + p.Kind.Label() + "】")
	if !spec.Period.IsZero() {
		b.WriteString(" " + p.periodText(spec.Period))
	}
	if spec.AgeGroup != "" {
		b.WriteString(" (" + spec.AgeGroup + ")")
	}
	return b.String()
}

func (p Profile) allows(n int) bool {
	return slices.Contains(p.AllowedPeriods, n)
}
