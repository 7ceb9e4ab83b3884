// Package xlsx exports a laid-out ledger report to an Excel worksheet.
//
// Every grid slot becomes one spreadsheet column sized from the report's
// character grid; cells spanning several slots are merged. Alignment,
// indent, bold and font size carry over as cell styles and row heights are
// copied in points.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/javajack/ledger"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used by Write.
const DefaultSheet = "Sheet1"

// styleKey identifies a distinct combination of cell style attributes.
type styleKey struct {
	align  ledger.Align
	indent int
	bold   bool
	size   float64
	places int // -1 for text
}

// Exporter writes reports into an excelize file.
type Exporter struct {
	file       *excelize.File
	styleCache map[styleKey]int
}

// NewExporter creates an Exporter writing into f.
func NewExporter(f *excelize.File) *Exporter {
	return &Exporter{file: f, styleCache: make(map[styleKey]int)}
}

// Write exports r to a new workbook and writes it to w.
func Write(r *ledger.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := NewExporter(f).Export(r, DefaultSheet); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Export writes r into sheet, creating the sheet if needed. The report must
// already be laid out by DrawInit or PrintInit.
func (e *Exporter) Export(r *ledger.Report, sheet string) error {
	if !r.LaidOut() {
		return fmt.Errorf("export %q: %w", r.Name(), ledger.ErrNotInitialized)
	}
	idx, err := e.file.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		if _, err := e.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}

	_, charStarts := r.SlotStarts()
	for i := 0; i < r.Slots(); i++ {
		w := max(float64(charStarts[i+1]-charStarts[i]), 1)
		name := ColToName(i)
		if err := e.file.SetColWidth(sheet, name, name, w); err != nil {
			return fmt.Errorf("set width of column %s: %w", name, err)
		}
	}

	for rowIdx, row := range r.Rows() {
		height, _ := row.Height()
		if height > 0 {
			if err := e.file.SetRowHeight(sheet, rowIdx+1, height); err != nil {
				return fmt.Errorf("set height of row %d: %w", rowIdx+1, err)
			}
		}
		for _, cell := range row.Cells() {
			if err := e.writeCell(sheet, rowIdx, cell); err != nil {
				return fmt.Errorf("row %d column %q: %w", rowIdx+1, cell.Column().Name(), err)
			}
		}
	}
	return nil
}

// writeCell writes one report cell, merging it across its slots. Right
// aligned text that parses as a number is stored as a number.
func (e *Exporter) writeCell(sheet string, rowIdx int, cell *ledger.Cell) error {
	col := cell.Column()
	left, right := col.Slots()
	first := CellName(rowIdx, left)

	key := styleKey{
		align:  col.Align(),
		indent: col.IndentLevel(),
		bold:   cell.Bold(),
		size:   cell.Size(),
		places: -1,
	}

	text := cell.String()
	if _, hasSecondary := cell.Secondary(); !hasSecondary && col.Align() == ledger.AlignRight && text != "" {
		if d, err := decimal.NewFromString(text); err == nil {
			key.places = decimalPlaces(text)
			if err := e.file.SetCellValue(sheet, first, d.InexactFloat64()); err != nil {
				return err
			}
			text = ""
		}
	}
	if text != "" {
		if err := e.file.SetCellValue(sheet, first, text); err != nil {
			return err
		}
	}

	last := first
	if right-left > 1 {
		last = CellName(rowIdx, right-1)
		if err := e.file.MergeCell(sheet, first, last); err != nil {
			return err
		}
	}

	styleID, err := e.style(key)
	if err != nil {
		return err
	}
	return e.file.SetCellStyle(sheet, first, last, styleID)
}

// style returns a cached style ID for key.
func (e *Exporter) style(key styleKey) (int, error) {
	if id, ok := e.styleCache[key]; ok {
		return id, nil
	}
	horizontal := "left"
	switch key.align {
	case ledger.AlignCentered:
		horizontal = "center"
	case ledger.AlignRight:
		horizontal = "right"
	}
	st := &excelize.Style{
		Font:      &excelize.Font{Bold: key.bold, Size: key.size},
		Alignment: &excelize.Alignment{Horizontal: horizontal, Indent: key.indent},
	}
	if key.places >= 0 {
		format := "0"
		if key.places > 0 {
			format += "." + strings.Repeat("0", key.places)
		}
		st.CustomNumFmt = &format
	}
	id, err := e.file.NewStyle(st)
	if err != nil {
		return 0, fmt.Errorf("new style: %w", err)
	}
	e.styleCache[key] = id
	return id, nil
}

func decimalPlaces(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
