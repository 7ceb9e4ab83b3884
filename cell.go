package ledger

import (
	"fmt"
	"io"
	"strings"
)

// Cell is one value rendered in one column of one row.
type Cell struct {
	column *Column
	row    *Row

	text          string
	secondary     string
	hasSecondary  bool
	size          float64
	bold          bool
	secondaryBold bool
}

// CellOption overrides a cell's font settings.
type CellOption func(*cellSettings)

type cellSettings struct {
	size     float64
	sizeName string
	bold     *bool
}

// CellSize overrides the column's font size.
func CellSize(size float64) CellOption {
	return func(s *cellSettings) { s.size = size }
}

// CellSizeName overrides the column's font size with a named size.
func CellSizeName(name string) CellOption {
	return func(s *cellSettings) { s.sizeName = name }
}

// CellBold overrides the column's bold flag.
func CellBold(bold bool) CellOption {
	return func(s *cellSettings) { s.bold = &bold }
}

func resolveCellSettings(r *Report, opts []CellOption) (cellSettings, error) {
	var s cellSettings
	for _, opt := range opts {
		opt(&s)
	}
	if s.sizeName != "" {
		size, ok := r.opts.namedSizes[s.sizeName]
		if !ok {
			return s, fmt.Errorf("size %q: %w", s.sizeName, ErrUnknownSize)
		}
		s.size = size
	}
	return s, nil
}

// Text returns the primary text.
func (c *Cell) Text() string { return c.text }

// Secondary returns the secondary text and whether one was attached.
func (c *Cell) Secondary() (string, bool) { return c.secondary, c.hasSecondary }

// Column returns the column the cell is bound to.
func (c *Cell) Column() *Column { return c.column }

// Size returns the resolved font size.
func (c *Cell) Size() float64 { return c.size }

// Bold reports whether the primary text is bold.
func (c *Cell) Bold() bool { return c.bold }

// String returns the full character-mode text: primary, gap, secondary.
func (c *Cell) String() string {
	if !c.hasSecondary {
		return c.text
	}
	gap := strings.Repeat(" ", c.column.report.opts.secondaryGapChars)
	return c.text + gap + c.secondary
}

func (c *Cell) setSecondary(text string, bold bool) error {
	if c.hasSecondary {
		return fmt.Errorf("row %d column %q: first %q, then %q: %w",
			c.row.num, c.column.name, c.secondary, text, ErrSecondaryTextSet)
	}
	c.secondary = text
	c.secondaryBold = bold
	c.hasSecondary = true
	return nil
}

// primaryWidth is the measured primary text width plus the secondary gap
// when secondary text follows it.
func (c *Cell) primaryWidth() float64 {
	opts := c.column.report.opts
	w := opts.measurer.MeasureWidth(c.text, opts.font(c.bold), c.size)
	if c.hasSecondary {
		w += opts.secondaryGapPoints(c.size)
	}
	return w
}

func (c *Cell) secondaryWidth() float64 {
	if !c.hasSecondary {
		return 0
	}
	opts := c.column.report.opts
	return opts.measurer.MeasureWidth(c.secondary, opts.font(c.secondaryBold), c.size)
}

// Width returns the cell's width in points.
func (c *Cell) Width() float64 {
	return c.primaryWidth() + c.secondaryWidth()
}

// WidthChars returns the cell's width in characters.
func (c *Cell) WidthChars() int {
	return textWidth(c.String())
}

// measure feeds the cell's sizes into its column and row.
func (c *Cell) measure() {
	c.column.setWidth(c.Width(), c.WidthChars())
	c.row.setHeight(c.size, 1)
}

func (c *Cell) draw(cv Canvas, pageTop, xOffset, yOffset float64) {
	opts := c.column.report.opts
	x := c.column.xOffset(c.Width()) + xOffset
	y := pageTop - (yOffset + c.row.yEnd())

	cv.SetFont(opts.font(c.bold), c.size)
	cv.DrawText(x, y, c.text)
	if c.hasSecondary {
		cv.SetFont(opts.font(c.secondaryBold), c.size)
		cv.DrawText(x+c.primaryWidth(), y, c.secondary)
	}
}

// print writes the padded field for the cell.
func (c *Cell) print(w io.Writer) error {
	text := c.String()
	left, right := c.column.padding(textWidth(text))
	_, err := io.WriteString(w, strings.Repeat(" ", left)+text+strings.Repeat(" ", right))
	return err
}
