package ledger

import "fmt"

// Align is a column's horizontal alignment policy.
type Align int

const (
	AlignLeft Align = iota
	AlignCentered
	AlignRight
)

// String returns the alignment name, also used to generate column names.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCentered:
		return "Centered"
	case AlignRight:
		return "Right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Column declares one column of a Shape. Its width is the maximum over the
// cells bound to it, accumulated during the sizing pass.
type Column struct {
	name            string
	align           Align
	span            int
	skip            int
	indentLevel     int
	size            float64
	sizeName        string
	bold            bool
	format          string
	secondaryFormat string

	report       *Report
	autoNamed    bool
	declaredSize float64
	left, right  int // slot indices
	indent       float64
	indentChars  int
	width        float64
	widthChars   int
}

// ColumnOption configures a Column.
type ColumnOption func(*Column)

// WithColumnName names the column. Names must be unique within a report.
func WithColumnName(name string) ColumnOption {
	return func(c *Column) { c.name = name }
}

// WithSpan sets how many grid slots the column occupies (default: 1).
func WithSpan(n int) ColumnOption {
	return func(c *Column) { c.span = n }
}

// WithSkip sets how many empty slots follow the column (default: 0).
func WithSkip(n int) ColumnOption {
	return func(c *Column) { c.skip = n }
}

// WithIndent sets the indent level.
func WithIndent(level int) ColumnOption {
	return func(c *Column) { c.indentLevel = level }
}

// WithSize sets a numeric font size in points.
func WithSize(size float64) ColumnOption {
	return func(c *Column) { c.size = size }
}

// WithSizeName sets a font size by name, resolved against the report's
// named size table.
func WithSizeName(name string) ColumnOption {
	return func(c *Column) { c.sizeName = name }
}

// WithBold makes the column's text bold by default.
func WithBold() ColumnOption {
	return func(c *Column) { c.bold = true }
}

// WithFormat sets the template applied to primary cell values.
func WithFormat(template string) ColumnOption {
	return func(c *Column) { c.format = template }
}

// WithSecondaryFormat sets the template applied to secondary cell values.
func WithSecondaryFormat(template string) ColumnOption {
	return func(c *Column) { c.secondaryFormat = template }
}

func newColumn(align Align, opts []ColumnOption) *Column {
	c := &Column{align: align, span: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Left declares a left-aligned column.
func Left(opts ...ColumnOption) *Column { return newColumn(AlignLeft, opts) }

// Centered declares a centered column. Indent is ignored when centering.
func Centered(opts ...ColumnOption) *Column { return newColumn(AlignCentered, opts) }

// Right declares a right-aligned column.
func Right(opts ...ColumnOption) *Column { return newColumn(AlignRight, opts) }

// bind attaches the column to a report at slot index left. The column is
// left untouched when bind fails.
func (c *Column) bind(r *Report, left int) error {
	if c.report != nil {
		return fmt.Errorf("column %q: %w", c.name, ErrDuplicateColumn)
	}
	if c.span < 1 {
		return fmt.Errorf("column %q: span %d < 1: %w", c.name, c.span, ErrInvalidColumn)
	}
	if c.skip < 0 || c.indentLevel < 0 {
		return fmt.Errorf("column %q: negative skip or indent: %w", c.name, ErrInvalidColumn)
	}

	name := c.name
	if name == "" {
		name = r.peekColumnName(c.align.String())
	}
	if _, dup := r.columns[name]; dup {
		return fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
	}
	size := c.size
	switch {
	case c.sizeName != "":
		named, ok := r.opts.namedSizes[c.sizeName]
		if !ok {
			return fmt.Errorf("column %q: size %q: %w", name, c.sizeName, ErrUnknownSize)
		}
		size = named
	case size == 0:
		size = r.opts.defaultSize
	}

	if c.name == "" {
		c.name = r.makeColumnName(c.align.String())
		c.autoNamed = true
	}
	c.declaredSize = c.size
	c.size = size
	c.report = r
	c.left = left
	c.right = left + c.span
	c.indent = float64(c.indentLevel) * r.opts.indentPoints()
	c.indentChars = c.indentLevel * r.opts.indentChars
	if c.align == AlignCentered {
		c.indent, c.indentChars = 0, 0
	}
	r.registerColumn(c)
	return nil
}

// unbind detaches the column from a report whose construction failed, so
// the column can be passed to NewReport again.
func (c *Column) unbind() {
	if c.autoNamed {
		c.name = ""
		c.autoNamed = false
	}
	c.size = c.declaredSize
	c.report = nil
	c.left, c.right = 0, 0
	c.indent, c.indentChars = 0, 0
}

// setWidth raises the column's widths to at least the given values.
func (c *Column) setWidth(points float64, chars int) {
	if points > c.width {
		c.width = points
	}
	if chars > c.widthChars {
		c.widthChars = chars
	}
}

// Name returns the column's name.
func (c *Column) Name() string { return c.name }

// Align returns the alignment policy.
func (c *Column) Align() Align { return c.align }

// Slots returns the left slot index and the right slot index (left + span).
func (c *Column) Slots() (left, right int) { return c.left, c.right }

// Span returns the number of slots the column occupies.
func (c *Column) Span() int { return c.span }

// Skip returns the number of empty slots after the column.
func (c *Column) Skip() int { return c.skip }

// IndentLevel returns the declared indent level.
func (c *Column) IndentLevel() int { return c.indentLevel }

// IndentChars returns the indent in characters.
func (c *Column) IndentChars() int { return c.indentChars }

// Size returns the resolved font size.
func (c *Column) Size() float64 { return c.size }

// Bold reports whether cells default to bold.
func (c *Column) Bold() bool { return c.bold }

// MeasuredWidth returns the widest bound cell in points and characters.
func (c *Column) MeasuredWidth() (points float64, chars int) { return c.width, c.widthChars }

// x returns the left edge of the column in points.
func (c *Column) x() float64 { return c.report.xStarts[c.left] }

// xChars returns the left edge of the column in characters.
func (c *Column) xChars() int { return c.report.xCharStarts[c.left] }

// RenderedWidth returns the width of the column's field in points, which
// spans its slots minus the trailing column gap.
func (c *Column) RenderedWidth() float64 {
	return c.report.xStarts[c.right] - c.x() - c.report.opts.columnGapPoints()
}

// RenderedWidthChars returns the width of the column's field in characters.
func (c *Column) RenderedWidthChars() int {
	return c.report.xCharStarts[c.right] - c.xChars() - c.report.opts.columnGapChars
}

// xOffset returns where text of the given width starts, in points.
func (c *Column) xOffset(textWidth float64) float64 {
	switch c.align {
	case AlignCentered:
		return c.x() + c.RenderedWidth()/2 - textWidth/2
	case AlignRight:
		return c.x() + c.RenderedWidth() - c.indent - textWidth
	default:
		return c.x() + c.indent
	}
}

// padding returns how many spaces go left and right of text of the given
// character width so the field is exactly RenderedWidthChars wide.
func (c *Column) padding(textWidth int) (left, right int) {
	w := c.RenderedWidthChars()
	switch c.align {
	case AlignCentered:
		left = (w - textWidth) / 2
		right = w - textWidth - left
	case AlignRight:
		right = c.indentChars
		left = w - c.indentChars - textWidth
	default:
		left = c.indentChars
		right = w - c.indentChars - textWidth
	}
	return max(left, 0), max(right, 0)
}
