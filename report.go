// Package ledger lays out tabular reports from a shared column grid and
// aggregates numbers through trees of row templates.
//
// A report is declared as a set of named shapes, each an ordered list of
// columns. Rows are created from shapes and filled left to right. Once all
// rows exist, the report measures every cell, stacks rows vertically, and
// relaxes column edges across the grid; it can then be drawn on a Canvas
// in points or printed as a fixed-width character table.
package ledger

import (
	"fmt"
	"io"
	"strconv"
)

type phase int

const (
	phaseBuilding phase = iota
	phaseLaidOut
)

// Report owns the column grid, the shapes, and the rows in output order.
type Report struct {
	name string
	opts *Options

	shapes      map[string]*Shape
	shapeOrder  []*Shape
	columns     map[string]*Column
	columnOrder []*Column
	nameSuffix  map[string]int
	slots       int

	rows   []*Row
	bottom *Row

	xStarts     []float64
	xCharStarts []int

	phase      phase
	drawReady  bool
	printReady bool
}

// NewReport builds a report from its shapes. It assigns slot indices to
// every column and fails if column names collide, a named size is unknown,
// or the shapes disagree on the total slot count.
func NewReport(name string, shapes []*Shape, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.measurer == nil {
		o.measurer = FixedMeasurer{Ratio: 0.5}
	}

	r := &Report{
		name:       name,
		opts:       o,
		shapes:     make(map[string]*Shape, len(shapes)),
		columns:    make(map[string]*Column),
		nameSuffix: make(map[string]int),
	}

	for i, s := range shapes {
		if _, dup := r.shapes[s.name]; dup {
			r.release()
			return nil, fmt.Errorf("report %q: shape %q: %w", name, s.name, ErrDuplicateShape)
		}
		if err := s.bind(r); err != nil {
			r.release()
			return nil, fmt.Errorf("report %q: %w", name, err)
		}
		n := s.slots()
		if i == 0 {
			r.slots = n
		} else if n != r.slots {
			r.release()
			return nil, fmt.Errorf("report %q: shape %q uses %d slots, shape %q uses %d: %w",
				name, s.name, n, r.shapeOrder[0].name, r.slots, ErrGridMismatch)
		}
		r.shapes[s.name] = s
		r.shapeOrder = append(r.shapeOrder, s)
	}

	r.xStarts = make([]float64, r.slots+1)
	r.xCharStarts = make([]int, r.slots+1)
	return r, nil
}

// Name returns the report's name.
func (r *Report) Name() string { return r.name }

// Shapes returns the shapes in declaration order.
func (r *Report) Shapes() []*Shape { return r.shapeOrder }

// Column returns a column by name.
func (r *Report) Column(name string) (*Column, bool) {
	c, ok := r.columns[name]
	return c, ok
}

// Rows returns the rows in output order, excluding the bottom margin.
func (r *Report) Rows() []*Row { return r.rows }

// Slots returns the number of slots in the grid.
func (r *Report) Slots() int { return r.slots }

// SlotStarts returns the x-start of every slot boundary in points and in
// characters. Both have Slots()+1 entries and are zero before layout.
func (r *Report) SlotStarts() ([]float64, []int) { return r.xStarts, r.xCharStarts }

// LaidOut reports whether the sizing and positioning passes have run.
func (r *Report) LaidOut() bool { return r.phase >= phaseLaidOut }

// peekColumnName returns the name makeColumnName would generate next.
func (r *Report) peekColumnName(kind string) string {
	return kind + "-" + strconv.Itoa(r.nameSuffix[kind]+1)
}

func (r *Report) makeColumnName(kind string) string {
	r.nameSuffix[kind]++
	return kind + "-" + strconv.Itoa(r.nameSuffix[kind])
}

func (r *Report) registerColumn(c *Column) {
	r.columns[c.name] = c
	r.columnOrder = append(r.columnOrder, c)
}

// release unbinds every column bound so far, after a failed NewReport.
func (r *Report) release() {
	for _, c := range r.columnOrder {
		c.unbind()
	}
}

func (r *Report) checkBuilding() error {
	if r.phase != phaseBuilding {
		return fmt.Errorf("report %q: %w", r.name, ErrFrozen)
	}
	return nil
}

// NewRow appends a row of the named shape and fills its leading cells with
// values. Rows are output in the order they are created.
func (r *Report) NewRow(shape string, values ...any) (*Row, error) {
	if err := r.checkBuilding(); err != nil {
		return nil, err
	}
	s, ok := r.shapes[shape]
	if !ok {
		return nil, fmt.Errorf("report %q: shape %q: %w", r.name, shape, ErrUnknownShape)
	}
	row := &Row{report: r, shape: s, num: len(r.rows) + 1}
	r.rows = append(r.rows, row)
	for _, v := range values {
		if err := row.NextCell(v); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// DrawInit lays out the report and returns its size in points.
func (r *Report) DrawInit() (width, height float64) {
	r.layout()
	r.drawReady = true
	width, height = r.Width(), r.Height()
	r.opts.logger.Info().Str("report", r.name).
		Float64("width", width).Float64("height", height).
		Msg("report laid out in points")
	return width, height
}

// PrintInit lays out the report and returns its size in characters.
func (r *Report) PrintInit() (width, height int) {
	r.layout()
	r.printReady = true
	width, height = r.WidthChars(), r.HeightChars()
	r.opts.logger.Info().Str("report", r.name).
		Int("width", width).Int("height", height).
		Msg("report laid out in characters")
	return width, height
}

// Draw renders the report on cv with its top-left corner moved right by
// xOffset and down by yOffset. DrawInit must have been called.
func (r *Report) Draw(cv Canvas, xOffset, yOffset float64) error {
	if !r.drawReady {
		return fmt.Errorf("report %q: draw: %w", r.name, ErrNotInitialized)
	}
	_, pageTop := cv.PageSize()
	for _, row := range r.rows {
		row.draw(cv, pageTop, xOffset, yOffset)
	}
	return nil
}

// Print writes the report as a character table. PrintInit must have been called.
func (r *Report) Print(w io.Writer) error {
	if !r.printReady {
		return fmt.Errorf("report %q: print: %w", r.name, ErrNotInitialized)
	}
	for _, row := range r.rows {
		if err := row.print(w); err != nil {
			return fmt.Errorf("report %q: print row %d: %w", r.name, row.num, err)
		}
	}
	return nil
}

// Width returns the report width in points, excluding the trailing gap.
func (r *Report) Width() float64 {
	return max(r.xStarts[r.slots]-r.opts.columnGapPoints(), 0)
}

// WidthChars returns the report width in characters, excluding the trailing gap.
func (r *Report) WidthChars() int {
	return max(r.xCharStarts[r.slots]-r.opts.columnGapChars, 0)
}

// Height returns the report height in points.
func (r *Report) Height() float64 {
	if r.bottom == nil {
		return 0
	}
	return r.bottom.yStart
}

// HeightChars returns the report height in lines.
func (r *Report) HeightChars() int {
	if r.bottom == nil {
		return 0
	}
	return r.bottom.yCharStart
}
