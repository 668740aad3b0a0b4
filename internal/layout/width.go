package layout

import "github.com/alexanderramin/hoikuplan/internal/domain"

// Width budgets in character units. The label column is reserved first and
// the remainder is shared by the period columns.
const (
	landscapeLabelWidth  = 16
	landscapePeriodWidth = 110
	portraitLabelWidth   = 12
	portraitPeriodWidth  = 75
)

func widthBudget(o domain.Orientation) (label, periods int) {
	if o == domain.Portrait {
		return portraitLabelWidth, portraitPeriodWidth
	}
	return landscapeLabelWidth, landscapePeriodWidth
}

// UsableWidth returns the total sheet width budget for an orientation.
func UsableWidth(o domain.Orientation) float64 {
	label, periods := widthBudget(o)
	return float64(label + periods)
}

// ColumnWidths returns the label column width followed by periodCount period
// column widths. Widths are split in whole hundredths of a unit and the
// leftover hundredths go to the leftmost period columns. The hundredths add
// up to the budget exactly; the float64 sum matches UsableWidth to within
// float rounding.
func ColumnWidths(o domain.Orientation, periodCount int) []float64 {
	if periodCount <= 0 {
		return nil
	}
	label, periods := widthBudget(o)
	total := periods * 100
	base, extra := total/periodCount, total%periodCount

	widths := make([]float64, 0, periodCount+1)
	widths = append(widths, float64(label))
	for i := 0; i < periodCount; i++ {
		w := base
		if i < extra {
			w++
		}
		widths = append(widths, float64(w)/100)
	}
	return widths
}
