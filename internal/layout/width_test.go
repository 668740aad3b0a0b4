package layout

import (
	"math"
	"testing"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnWidths_SumToBudget(t *testing.T) {
	for _, o := range []domain.Orientation{domain.Landscape, domain.Portrait} {
		for n := 1; n <= 8; n++ {
			widths := ColumnWidths(o, n)
			require.Len(t, widths, n+1)

			sum := 0.0
			for _, w := range widths {
				sum += w
			}
			assert.InDelta(t, UsableWidth(o), sum, 1e-9, "orientation=%s n=%d", o, n)
		}
	}
}

func TestColumnWidths_WholeHundredths(t *testing.T) {
	for _, o := range []domain.Orientation{domain.Landscape, domain.Portrait} {
		_, budget := widthBudget(o)
		for n := 1; n <= 8; n++ {
			hundredths := 0
			for _, w := range ColumnWidths(o, n)[1:] {
				h := math.Round(w * 100)
				assert.InDelta(t, h, w*100, 1e-6, "orientation=%s n=%d", o, n)
				hundredths += int(h)
			}
			assert.Equal(t, budget*100, hundredths, "orientation=%s n=%d", o, n)
		}
	}
}

func TestColumnWidths_EvenSplit(t *testing.T) {
	assert.Equal(t, []float64{16, 27.5, 27.5, 27.5, 27.5}, ColumnWidths(domain.Landscape, 4))
	assert.Equal(t, []float64{16, 22, 22, 22, 22, 22}, ColumnWidths(domain.Landscape, 5))
	assert.Equal(t, []float64{12, 25, 25, 25}, ColumnWidths(domain.Portrait, 3))
}

func TestColumnWidths_RemainderGoesLeft(t *testing.T) {
	widths := ColumnWidths(domain.Landscape, 3)
	assert.Equal(t, []float64{16, 36.67, 36.67, 36.66}, widths)
}

func TestColumnWidths_NonPositive(t *testing.T) {
	assert.Nil(t, ColumnWidths(domain.Landscape, 0))
	assert.Nil(t, ColumnWidths(domain.Portrait, -1))
}

func TestSplitColumns(t *testing.T) {
	assert.Equal(t, []span{{1, 2}, {3, 4}, {5, 5}}, splitColumns(5, 3))
	assert.Equal(t, []span{{1, 2}, {3, 4}, {5, 6}}, splitColumns(6, 3))
	assert.Equal(t, []span{{1, 4}, {5, 7}}, splitColumns(7, 2))
	assert.Equal(t, []span{{1, 5}}, splitColumns(5, 1))
	assert.Nil(t, splitColumns(5, 0))
}

func TestNewGrid_OffsetsFollowLabelCount(t *testing.T) {
	g := newGrid(4, 10, 3, 1)
	assert.Equal(t, 3, g.summaryLabelRow)
	assert.Equal(t, 5, g.headingRow)
	assert.Equal(t, 6, g.bodyStart)
	assert.Equal(t, 15, g.bodyEnd)
	assert.Equal(t, 16, g.closingLabelRow(0))
	assert.Equal(t, 17, g.closingValueRow(0))
	assert.Equal(t, 17, g.lastRow)

	g = newGrid(4, 3, 3, 2)
	assert.Equal(t, 8, g.bodyEnd)
	assert.Equal(t, 11, g.closingLabelRow(1))
	assert.Equal(t, 12, g.lastRow)
}
