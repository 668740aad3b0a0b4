package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// PlanBody renders the body band of plan as a table whose header row is the
// period heading row.
func PlanBody(plan *layout.Plan) string {
	heading, ok := plan.Band(layout.BandHeading)
	if !ok {
		return ""
	}
	headers := make([]string, plan.LastCol)
	for col := 1; col <= plan.LastCol; col++ {
		if c, ok := plan.CellAt(heading.FirstRow, col); ok {
			headers[col-1] = c.Text
		}
	}

	var rows [][]string
	for _, cells := range plan.BodyRows() {
		row := make([]string, plan.LastCol)
		for _, c := range cells {
			row[c.Col-1] = c.Text
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// PlanBlocks renders the label/value pairs of the summary and closing bands.
// A value pairs with the label cell directly above it.
func PlanBlocks(plan *layout.Plan) string {
	var b strings.Builder
	labels := make(map[int]string)
	for _, c := range plan.Cells {
		switch c.Role {
		case layout.RoleSummaryLabel, layout.RoleClosingLabel:
			labels[c.Col] = c.Text
		case layout.RoleSummaryValue, layout.RoleClosingValue:
			value := c.Text
			if value == "" {
				value = Dim("(未記入)")
			}
			fmt.Fprintf(&b, "  %s  %s\n", Bold(labels[c.Col]), strings.ReplaceAll(value, "\n", "\n    "))
		}
	}
	return b.String()
}

// SnapshotTable lists snapshots newest first.
func SnapshotTable(snaps []*domain.Snapshot) string {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.ID[:min(8, len(s.ID))],
			s.CreatedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%d", filledCount(s.Values)),
		})
	}
	return RenderTable([]string{"ID", "Saved", "Fields"}, rows)
}

func filledCount(v domain.FieldValues) int {
	n := 0
	for _, s := range v {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// ValuesTable lists field values by key.
func ValuesTable(values domain.FieldValues) string {
	rows := make([][]string, 0, len(values))
	for _, k := range values.Keys() {
		rows = append(rows, []string{k, values[k]})
	}
	return RenderTable([]string{"Field", "Value"}, rows)
}
