package layout

// Row heights in points.
const (
	titleRowHeight   = 30
	labelRowHeight   = 20
	summaryRowHeight = 60
	bodyRowHeight    = 60
	closingRowHeight = 90
)

// headerGap is the blank row between the header band and the summary band.
const headerGap = 1

type span struct{ first, last int }

// grid holds every row and column offset of a plan. All offsets derive from
// the period count and band sizes; nothing below is a literal row number
// except the title row.
type grid struct {
	cols            int
	titleRow        int
	summaryLabelRow int
	summaryValueRow int
	headingRow      int
	bodyStart       int
	bodyEnd         int
	closingStart    int
	closingBlocks   int
	lastRow         int
	summary         []span
}

func newGrid(periodCount, rowLabels, summaryBlocks, closingBlocks int) grid {
	g := grid{cols: 1 + periodCount, titleRow: 1, closingBlocks: closingBlocks}
	g.summaryLabelRow = g.titleRow + 1 + headerGap
	g.summaryValueRow = g.summaryLabelRow + 1
	g.headingRow = g.summaryValueRow + 1
	g.bodyStart = g.headingRow + 1
	g.bodyEnd = g.bodyStart + rowLabels - 1
	g.closingStart = g.bodyEnd + 1
	g.lastRow = g.bodyEnd + 2*closingBlocks
	g.summary = splitColumns(g.cols, summaryBlocks)
	return g
}

// titleSpan is the merged title area; the last two columns hold the
// signature boxes.
func (g grid) titleSpan() span {
	last := g.cols - 2
	if last < 1 {
		last = 1
	}
	return span{1, last}
}

func (g grid) reviewerCol() int { return g.cols - 1 }
func (g grid) authorCol() int   { return g.cols }

func (g grid) closingLabelRow(i int) int { return g.closingStart + 2*i }
func (g grid) closingValueRow(i int) int { return g.closingStart + 2*i + 1 }

func (g grid) bodyRow(i int) int { return g.bodyStart + i }

func (g grid) bands() []Band {
	bands := []Band{
		{Kind: BandHeader, FirstRow: g.titleRow, LastRow: g.titleRow},
		{Kind: BandSummary, FirstRow: g.summaryLabelRow, LastRow: g.summaryValueRow},
		{Kind: BandHeading, FirstRow: g.headingRow, LastRow: g.headingRow},
		{Kind: BandBody, FirstRow: g.bodyStart, LastRow: g.bodyEnd},
	}
	if g.closingBlocks > 0 {
		bands = append(bands, Band{Kind: BandClosing, FirstRow: g.closingStart, LastRow: g.lastRow})
	}
	return bands
}

func (g grid) rowHeights() []float64 {
	h := make([]float64, g.lastRow)
	set := func(row int, v float64) { h[row-1] = v }

	set(g.titleRow, titleRowHeight)
	set(g.summaryLabelRow, labelRowHeight)
	set(g.summaryValueRow, summaryRowHeight)
	set(g.headingRow, labelRowHeight)
	for r := g.bodyStart; r <= g.bodyEnd; r++ {
		set(r, bodyRowHeight)
	}
	for i := 0; i < g.closingBlocks; i++ {
		set(g.closingLabelRow(i), labelRowHeight)
		set(g.closingValueRow(i), closingRowHeight)
	}
	return h
}

// splitColumns divides columns 1..total into n contiguous spans as evenly as
// possible; earlier spans take the remainder (5 columns, 3 spans: 2,2,1;
// 6 columns, 3 spans: 2,2,2).
func splitColumns(total, n int) []span {
	if n <= 0 {
		return nil
	}
	base, extra := total/n, total%n
	spans := make([]span, 0, n)
	col := 1
	for i := 0; i < n; i++ {
		w := base
		if i < extra {
			w++
		}
		spans = append(spans, span{col, col + w - 1})
		col += w
	}
	return spans
}
