package layout

import (
	"sort"
	"strings"

	"github.com/alexanderramin/hoikuplan/internal/domain"
)

// Page margins in inches.
const pageMargin = 0.4

var (
	titleStyle     = Style{Border: true, HAlign: AlignLeft, VAlign: AlignCenter, Bold: true, FontSize: 14}
	signatureStyle = Style{Border: true}
	labelStyle     = Style{Border: true, Fill: true, HAlign: AlignCenter, VAlign: AlignCenter, Wrap: true}
	valueStyle     = Style{Border: true, HAlign: AlignLeft, VAlign: AlignTop, Wrap: true}
)

// resolved is a validated spec together with its profile.
type resolved struct {
	spec    domain.DocumentSpec
	profile Profile
	summary []string
}

func resolve(spec domain.DocumentSpec) (*resolved, error) {
	profile, ok := ProfileFor(spec.Kind)
	if !ok {
		return nil, configErrorf("kind", "unknown document kind %q", spec.Kind)
	}
	if !spec.Orientation.Valid() {
		return nil, configErrorf("orientation", "unknown orientation %q", spec.Orientation)
	}
	if !profile.allows(spec.PeriodCount) {
		return nil, configErrorf("period_count", "%d is not allowed for %s documents (allowed: %v)",
			spec.PeriodCount, spec.Kind, profile.AllowedPeriods)
	}
	if len(spec.RowLabels) == 0 {
		return nil, configErrorf("row_labels", "at least one row label is required")
	}
	seen := make(map[string]bool, len(spec.RowLabels))
	for i, label := range spec.RowLabels {
		if strings.TrimSpace(label) == "" {
			return nil, configErrorf("row_labels", "label %d is blank", i+1)
		}
		if seen[label] {
			return nil, configErrorf("row_labels", "duplicate label %q", label)
		}
		seen[label] = true
	}

	summary := spec.SummaryLabels
	if len(summary) == 0 {
		summary = profile.SummaryLabels
	}
	if cols := 1 + spec.PeriodCount; len(summary) > cols {
		return nil, configErrorf("summary_labels", "%d blocks do not fit in %d columns", len(summary), cols)
	}
	for i, label := range summary {
		if strings.TrimSpace(label) == "" {
			return nil, configErrorf("summary_labels", "label %d is blank", i+1)
		}
		for _, block := range profile.Closing {
			if label == block.Key {
				return nil, configErrorf("summary_labels", "label %q is reserved for the %s block", label, block.Label)
			}
		}
	}

	return &resolved{spec: spec, profile: profile, summary: summary}, nil
}

// Validate checks spec without rendering it.
func Validate(spec domain.DocumentSpec) error {
	_, err := resolve(spec)
	return err
}

// Render lays out spec with values. Absent values render as empty cells.
// The result depends only on the arguments.
func Render(spec domain.DocumentSpec, values domain.FieldValues) (*Plan, error) {
	r, err := resolve(spec)
	if err != nil {
		return nil, err
	}
	g := newGrid(spec.PeriodCount, len(spec.RowLabels), len(r.summary), len(r.profile.Closing))

	b := &planBuilder{}

	// Header band.
	title := g.titleSpan()
	b.add(Cell{Row: g.titleRow, Col: title.first, ColSpan: title.last - title.first + 1,
		Text: r.profile.Title(spec), Role: RoleTitle, Style: titleStyle})
	b.add(Cell{Row: g.titleRow, Col: g.reviewerCol(), Text: r.profile.Reviewer, Role: RoleSignature, Style: signatureStyle})
	b.add(Cell{Row: g.titleRow, Col: g.authorCol(), Text: r.profile.Author, Role: RoleSignature, Style: signatureStyle})

	// Summary band.
	for i, label := range r.summary {
		s := g.summary[i]
		w := s.last - s.first + 1
		b.add(Cell{Row: g.summaryLabelRow, Col: s.first, ColSpan: w, Text: label, Role: RoleSummaryLabel, Style: labelStyle})
		b.add(Cell{Row: g.summaryValueRow, Col: s.first, ColSpan: w, Text: values.Get(label, 0), Role: RoleSummaryValue, Style: valueStyle})
	}

	// Heading row.
	b.add(Cell{Row: g.headingRow, Col: 1, Text: r.profile.CornerLabel, Role: RoleCorner, Style: labelStyle})
	for p := 1; p <= spec.PeriodCount; p++ {
		b.add(Cell{Row: g.headingRow, Col: 1 + p, Text: r.profile.PeriodHeading(spec.Period, p), Role: RoleHeading, Style: labelStyle})
	}

	// Body band.
	for i, label := range spec.RowLabels {
		row := g.bodyRow(i)
		b.add(Cell{Row: row, Col: 1, Text: label, Role: RoleRowLabel, Style: labelStyle})
		for p := 1; p <= spec.PeriodCount; p++ {
			b.add(Cell{Row: row, Col: 1 + p, Text: values.Get(label, p), Role: RoleBody, Style: valueStyle})
		}
	}

	// Closing band.
	for i, block := range r.profile.Closing {
		b.add(Cell{Row: g.closingLabelRow(i), Col: 1, ColSpan: g.cols, Text: block.Label, Role: RoleClosingLabel, Style: labelStyle})
		b.add(Cell{Row: g.closingValueRow(i), Col: 1, ColSpan: g.cols, Text: values.Get(block.Key, 0), Role: RoleClosingValue, Style: valueStyle})
	}

	return &Plan{
		Kind:  spec.Kind,
		Title: r.profile.Title(spec),
		Cells: b.sorted(),
		Bands: g.bands(),
		Page: PageSetup{
			Paper:       PaperA4,
			Orientation: spec.Orientation,
			FitToWidth:  true,
			Margins:     Margins{Top: pageMargin, Bottom: pageMargin, Left: pageMargin, Right: pageMargin},
		},
		ColumnWidths: ColumnWidths(spec.Orientation, spec.PeriodCount),
		RowHeights:   g.rowHeights(),
		LastRow:      g.lastRow,
		LastCol:      g.cols,
	}, nil
}

type planBuilder struct {
	cells []Cell
}

func (b *planBuilder) add(c Cell) {
	if c.RowSpan < 1 {
		c.RowSpan = 1
	}
	if c.ColSpan < 1 {
		c.ColSpan = 1
	}
	b.cells = append(b.cells, c)
}

func (b *planBuilder) sorted() []Cell {
	sort.SliceStable(b.cells, func(i, j int) bool {
		if b.cells[i].Row != b.cells[j].Row {
			return b.cells[i].Row < b.cells[j].Row
		}
		return b.cells[i].Col < b.cells[j].Col
	})
	return b.cells
}

// FieldKeys lists every field the plan reads, in sheet order: summary
// blocks, body cells row by row, then closing blocks.
func FieldKeys(spec domain.DocumentSpec) ([]domain.FieldKey, error) {
	r, err := resolve(spec)
	if err != nil {
		return nil, err
	}
	keys := make([]domain.FieldKey, 0, len(r.summary)+len(spec.RowLabels)*spec.PeriodCount+len(r.profile.Closing))
	for _, label := range r.summary {
		keys = append(keys, domain.FieldKey{Doc: spec.Kind, Item: label})
	}
	for _, label := range spec.RowLabels {
		for p := 1; p <= spec.PeriodCount; p++ {
			keys = append(keys, domain.FieldKey{Doc: spec.Kind, Item: label, Period: p})
		}
	}
	for _, block := range r.profile.Closing {
		keys = append(keys, domain.FieldKey{Doc: spec.Kind, Item: block.Key})
	}
	return keys, nil
}

// UnusedKeys returns the keys in values that the plan for spec never reads.
// Such values are dropped on render.
func UnusedKeys(spec domain.DocumentSpec, values domain.FieldValues) ([]string, error) {
	keys, err := FieldKeys(spec)
	if err != nil {
		return nil, err
	}
	used := make(map[string]bool, len(keys))
	for _, k := range keys {
		used[k.String()] = true
	}
	var unused []string
	for _, k := range values.Keys() {
		if used[k] {
			continue
		}
		pk := domain.ParseFieldKey(spec.Kind, k)
		if pk.Period > 0 && used[pk.String()] {
			continue
		}
		unused = append(unused, k)
	}
	return unused, nil
}
