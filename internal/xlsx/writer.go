// Package xlsx writes a layout.Plan as an Excel workbook.
package xlsx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alexanderramin/hoikuplan/internal/domain"
	"github.com/alexanderramin/hoikuplan/internal/layout"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single sheet in every exported workbook.
const SheetName = "指導計画表"

// ContentType is the MIME type of the serialized workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// excelize paper size code for A4.
const paperA4 = 9

const borderColor = "000000"

// Serialize renders plan into xlsx bytes.
func Serialize(plan *layout.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, plan); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders plan and streams the workbook to w.
func Write(w io.Writer, plan *layout.Plan) error {
	if plan == nil {
		return fmt.Errorf("write xlsx: nil plan")
	}
	f, err := build(plan)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles map[layout.Style]int
}

func build(plan *layout.Plan) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sw := &sheetWriter{f: f, sheet: SheetName, styles: make(map[layout.Style]int)}

	steps := []func(*layout.Plan) error{
		sw.writeColumns,
		sw.writeRows,
		sw.writeCells,
		sw.writePage,
	}
	for _, step := range steps {
		if err := step(plan); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (sw *sheetWriter) writeColumns(plan *layout.Plan) error {
	for i, width := range plan.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := sw.f.SetColWidth(sw.sheet, col, col, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}
	return nil
}

func (sw *sheetWriter) writeRows(plan *layout.Plan) error {
	for i, height := range plan.RowHeights {
		if height <= 0 {
			continue
		}
		if err := sw.f.SetRowHeight(sw.sheet, i+1, height); err != nil {
			return fmt.Errorf("set height of row %d: %w", i+1, err)
		}
	}
	return nil
}

func (sw *sheetWriter) writeCells(plan *layout.Plan) error {
	for _, c := range plan.Cells {
		topLeft, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", c.Row, c.Col, err)
		}
		bottomRight, err := excelize.CoordinatesToCellName(c.LastCol(), c.LastRow())
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", c.LastRow(), c.LastCol(), err)
		}

		if c.Text != "" {
			if err := sw.f.SetCellValue(sw.sheet, topLeft, c.Text); err != nil {
				return fmt.Errorf("set %s: %w", topLeft, err)
			}
		}
		if c.Merged() {
			if err := sw.f.MergeCell(sw.sheet, topLeft, bottomRight); err != nil {
				return fmt.Errorf("merge %s:%s: %w", topLeft, bottomRight, err)
			}
		}

		styleID, err := sw.style(c.Style)
		if err != nil {
			return err
		}
		// Style the whole merged range so every edge gets a border.
		if err := sw.f.SetCellStyle(sw.sheet, topLeft, bottomRight, styleID); err != nil {
			return fmt.Errorf("style %s:%s: %w", topLeft, bottomRight, err)
		}
	}
	return nil
}

func (sw *sheetWriter) writePage(plan *layout.Plan) error {
	orientation := "landscape"
	if plan.Page.Orientation == domain.Portrait {
		orientation = "portrait"
	}
	size := paperA4
	opts := &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}
	if plan.Page.FitToWidth {
		one := 1
		opts.FitToWidth = &one
		opts.FitToHeight = &one
		fit := true
		if err := sw.f.SetSheetProps(sw.sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
			return fmt.Errorf("set sheet props: %w", err)
		}
	}
	if err := sw.f.SetPageLayout(sw.sheet, opts); err != nil {
		return fmt.Errorf("set page layout: %w", err)
	}

	m := plan.Page.Margins
	if err := sw.f.SetPageMargins(sw.sheet, &excelize.PageLayoutMarginsOptions{
		Top:    &m.Top,
		Bottom: &m.Bottom,
		Left:   &m.Left,
		Right:  &m.Right,
	}); err != nil {
		return fmt.Errorf("set page margins: %w", err)
	}
	return nil
}

// style returns the workbook style id for s, registering it on first use.
func (sw *sheetWriter) style(s layout.Style) (int, error) {
	if id, ok := sw.styles[s]; ok {
		return id, nil
	}
	id, err := sw.f.NewStyle(toExcelStyle(s))
	if err != nil {
		return 0, fmt.Errorf("new style: %w", err)
	}
	sw.styles[s] = id
	return id, nil
}

func toExcelStyle(s layout.Style) *excelize.Style {
	style := &excelize.Style{}
	if s.Border {
		for _, side := range []string{"left", "top", "right", "bottom"} {
			style.Border = append(style.Border, excelize.Border{Type: side, Color: borderColor, Style: 1})
		}
	}
	if s.Fill {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{layout.FillColor}, Pattern: 1}
	}
	if s.Bold || s.FontSize > 0 {
		style.Font = &excelize.Font{Bold: s.Bold, Size: s.FontSize}
	}
	if s.HAlign != layout.AlignNone || s.VAlign != layout.AlignNone || s.Wrap {
		style.Alignment = &excelize.Alignment{
			Horizontal: string(s.HAlign),
			Vertical:   string(s.VAlign),
			WrapText:   s.Wrap,
		}
	}
	return style
}
