package ledger

import (
	"fmt"
	"io"
	"strings"
)

// Row is an instance of a Shape holding cells in column order. The bottom
// margin row has no shape; its start offsets are the report's height.
type Row struct {
	report *Report
	shape  *Shape
	num    int // 1-based position in the report
	cells  []*Cell

	pad         float64
	height      float64
	heightChars int
	yStart      float64
	yCharStart  int
}

// Shape returns the row's shape, or nil for the bottom margin row.
func (r *Row) Shape() *Shape { return r.shape }

// Cells returns the row's cells in column order.
func (r *Row) Cells() []*Cell { return r.cells }

// Height returns the row height in points and characters.
func (r *Row) Height() (points float64, chars int) { return r.height, r.heightChars }

// Start returns the row's vertical offset from the top in points and characters.
func (r *Row) Start() (points float64, chars int) { return r.yStart, r.yCharStart }

func (r *Row) yEnd() float64 { return r.yStart + r.height }

// NextCell appends a cell bound to the next column of the shape. The value
// is rendered through the column's format template; nil leaves the cell empty.
func (r *Row) NextCell(value any, opts ...CellOption) error {
	if err := r.report.checkBuilding(); err != nil {
		return fmt.Errorf("row %d: %w", r.num, err)
	}
	if len(r.cells) >= len(r.shape.columns) {
		return fmt.Errorf("row %d (%s): %d columns: %w", r.num, r.shape.name, len(r.shape.columns), ErrTooManyCells)
	}
	col := r.shape.columns[len(r.cells)]

	var text string
	if value != nil {
		var err error
		if text, err = Format(col.format, value); err != nil {
			return fmt.Errorf("row %d column %q: %w", r.num, col.name, err)
		}
	}
	settings, err := resolveCellSettings(r.report, opts)
	if err != nil {
		return fmt.Errorf("row %d column %q: %w", r.num, col.name, err)
	}

	cell := &Cell{column: col, row: r, text: text, size: col.size, bold: col.bold}
	if settings.size != 0 {
		cell.size = settings.size
	}
	if settings.bold != nil {
		cell.bold = *settings.bold
	}
	r.cells = append(r.cells, cell)
	return nil
}

// SetSecondary attaches secondary text to the last cell, rendered through
// that column's secondary format template. Secondary text is not bold
// unless CellBold(true) is given.
func (r *Row) SetSecondary(value any, opts ...CellOption) error {
	cell, err := r.lastCell()
	if err != nil {
		return err
	}
	text, err := Format(cell.column.secondaryFormat, value)
	if err != nil {
		return fmt.Errorf("row %d column %q: %w", r.num, cell.column.name, err)
	}
	return r.attachSecondary(cell, text, opts)
}

// setSecondaryText attaches already rendered secondary text to the last
// cell, bypassing the column's secondary format.
func (r *Row) setSecondaryText(text string) error {
	cell, err := r.lastCell()
	if err != nil {
		return err
	}
	return r.attachSecondary(cell, text, nil)
}

func (r *Row) lastCell() (*Cell, error) {
	if err := r.report.checkBuilding(); err != nil {
		return nil, fmt.Errorf("row %d: %w", r.num, err)
	}
	if len(r.cells) == 0 {
		return nil, fmt.Errorf("row %d: %w", r.num, ErrNoCell)
	}
	return r.cells[len(r.cells)-1], nil
}

func (r *Row) attachSecondary(cell *Cell, text string, opts []CellOption) error {
	settings, err := resolveCellSettings(r.report, opts)
	if err != nil {
		return fmt.Errorf("row %d column %q: %w", r.num, cell.column.name, err)
	}
	bold := false
	if settings.bold != nil {
		bold = *settings.bold
	}
	return cell.setSecondary(text, bold)
}

// SetPad adds extra vertical space, in points, to the row.
func (r *Row) SetPad(points float64) error {
	if err := r.report.checkBuilding(); err != nil {
		return fmt.Errorf("row %d: %w", r.num, err)
	}
	r.pad = points
	return nil
}

func (r *Row) setHeight(points float64, chars int) {
	if points > r.height {
		r.height = points
	}
	if chars > r.heightChars {
		r.heightChars = chars
	}
}

// measure sizes every cell, then adds the row's pad once.
func (r *Row) measure() {
	for _, c := range r.cells {
		c.measure()
	}
	r.height += r.pad
	r.heightChars = 1
}

func (r *Row) draw(cv Canvas, pageTop, xOffset, yOffset float64) {
	for _, c := range r.cells {
		c.draw(cv, pageTop, xOffset, yOffset)
	}
}

// print writes the row's cells, moving to each column's character start
// first, and ends the line.
func (r *Row) print(w io.Writer) error {
	pos := 0
	for _, c := range r.cells {
		if gap := c.column.xChars() - pos; gap > 0 {
			if _, err := io.WriteString(w, strings.Repeat(" ", gap)); err != nil {
				return err
			}
			pos += gap
		}
		if err := c.print(w); err != nil {
			return err
		}
		pos += c.column.RenderedWidthChars()
	}
	_, err := io.WriteString(w, "\n")
	return err
}
