package layout

import "github.com/alexanderramin/hoikuplan/internal/domain"

// FillColor is the light label fill, as an RGB hex string.
const FillColor = "F2F2F2"

type Align string

const (
	AlignNone   Align = ""
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignTop    Align = "top"
)

// Style is the complete formatting of one cell (or merged region).
type Style struct {
	Border   bool
	Fill     bool
	HAlign   Align
	VAlign   Align
	Wrap     bool
	Bold     bool
	FontSize float64 // 0 means the workbook default
}

type CellRole string

const (
	RoleTitle        CellRole = "title"
	RoleSignature    CellRole = "signature"
	RoleSummaryLabel CellRole = "summary_label"
	RoleSummaryValue CellRole = "summary_value"
	RoleCorner       CellRole = "corner"
	RoleHeading      CellRole = "heading"
	RoleRowLabel     CellRole = "row_label"
	RoleBody         CellRole = "body"
	RoleClosingLabel CellRole = "closing_label"
	RoleClosingValue CellRole = "closing_value"
)

// Cell is one grid position. A merged region is a single Cell at its
// top-left corner with RowSpan/ColSpan > 1. Rows and columns are 1-based.
type Cell struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Text    string
	Role    CellRole
	Style   Style
}

// LastRow returns the bottom row covered by the cell.
func (c Cell) LastRow() int { return c.Row + c.RowSpan - 1 }

// LastCol returns the rightmost column covered by the cell.
func (c Cell) LastCol() int { return c.Col + c.ColSpan - 1 }

// Merged reports whether the cell spans more than one grid position.
func (c Cell) Merged() bool { return c.RowSpan > 1 || c.ColSpan > 1 }

func (c Cell) covers(row, col int) bool {
	return row >= c.Row && row <= c.LastRow() && col >= c.Col && col <= c.LastCol()
}

type BandKind string

const (
	BandHeader  BandKind = "header"
	BandSummary BandKind = "summary"
	BandHeading BandKind = "heading"
	BandBody    BandKind = "body"
	BandClosing BandKind = "closing"
)

// Band is a contiguous run of rows serving one purpose.
type Band struct {
	Kind     BandKind
	FirstRow int
	LastRow  int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.LastRow - b.FirstRow + 1 }

type PaperSize string

const PaperA4 PaperSize = "A4"

type Margins struct {
	Top, Bottom, Left, Right float64 // inches
}

type PageSetup struct {
	Paper       PaperSize
	Orientation domain.Orientation
	FitToWidth  bool
	Margins     Margins
}

// Plan is the fully resolved sheet. It is built once per export and never
// modified afterwards.
type Plan struct {
	Kind  domain.DocumentKind
	Title string
	Cells []Cell
	Bands []Band
	Page  PageSetup

	// ColumnWidths[i] is the width of column i+1 in character units.
	ColumnWidths []float64

	// RowHeights[i] is the height of row i+1 in points; 0 keeps the default.
	RowHeights []float64

	LastRow int
	LastCol int
}

// CellAt returns the cell covering (row, col).
func (p *Plan) CellAt(row, col int) (Cell, bool) {
	for _, c := range p.Cells {
		if c.covers(row, col) {
			return c, true
		}
	}
	return Cell{}, false
}

// Band returns the band of the given kind.
func (p *Plan) Band(kind BandKind) (Band, bool) {
	for _, b := range p.Bands {
		if b.Kind == kind {
			return b, true
		}
	}
	return Band{}, false
}

// RowHeight returns the explicit height of row, or 0 for the default.
func (p *Plan) RowHeight(row int) float64 {
	if row < 1 || row > len(p.RowHeights) {
		return 0
	}
	return p.RowHeights[row-1]
}

// BodyRows returns the body-band cells grouped by row, label column first.
func (p *Plan) BodyRows() [][]Cell {
	body, ok := p.Band(BandBody)
	if !ok {
		return nil
	}
	rows := make([][]Cell, body.Rows())
	for _, c := range p.Cells {
		if c.Row >= body.FirstRow && c.Row <= body.LastRow {
			rows[c.Row-body.FirstRow] = append(rows[c.Row-body.FirstRow], c)
		}
	}
	return rows
}
