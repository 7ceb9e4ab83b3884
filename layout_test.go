package ledger

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawCall records one DrawText call.
type drawCall struct {
	Font string
	Size float64
	X, Y float64
	Text string
}

// recordingCanvas is a Canvas that remembers what was drawn on a Letter page.
type recordingCanvas struct {
	font  string
	size  float64
	calls []drawCall
	pages int
}

func newRecordingCanvas() *recordingCanvas { return &recordingCanvas{pages: 1} }

func (c *recordingCanvas) SetFont(family string, size float64) { c.font, c.size = family, size }

func (c *recordingCanvas) DrawText(x, y float64, text string) {
	c.calls = append(c.calls, drawCall{Font: c.font, Size: c.size, X: x, Y: y, Text: text})
}

func (c *recordingCanvas) PageSize() (float64, float64) { return 612, 792 }

func (c *recordingCanvas) NewPage() { c.pages++ }

func (c *recordingCanvas) Save() error { return nil }

func TestLayout_VerticalOffsets(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left())})
	require.NoError(t, err)
	_, err = r.NewRow("a", "one")
	require.NoError(t, err)
	_, err = r.NewRow("a", "two")
	require.NoError(t, err)
	big, err := r.NewRow("a")
	require.NoError(t, err)
	require.NoError(t, big.NextCell("three", CellSize(17)))

	w, h := r.DrawInit()
	assert.Greater(t, w, 0.0)
	assert.Equal(t, 43.0, h)

	var starts []float64
	for _, row := range r.Rows() {
		y, _ := row.Start()
		starts = append(starts, y)
	}
	assert.Equal(t, []float64{0, 13, 26}, starts)
	assert.Equal(t, 3, r.HeightChars())
}

func TestLayout_PadAddedOnce(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right())})
	require.NoError(t, err)
	row, err := r.NewRow("a", "label", "1.00")
	require.NoError(t, err)
	require.NoError(t, row.SetPad(5))
	_, err = r.NewRow("a", "next")
	require.NoError(t, err)

	r.DrawInit()
	h, chars := row.Height()
	assert.Equal(t, 18.0, h)
	assert.Equal(t, 1, chars)
	assert.Equal(t, 31.0, r.Height())
	assert.Equal(t, 2, r.HeightChars())
}

func TestLayout_WidthIsMonotone(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left())})
	require.NoError(t, err)
	for _, s := range []string{"abcde", "abc", "abcdefgh", "a"} {
		_, err := r.NewRow("a", s)
		require.NoError(t, err)
	}
	col := r.Shapes()[0].Columns()[0]

	var seen []int
	for _, row := range r.Rows() {
		row.measure()
		_, chars := col.MeasuredWidth()
		seen = append(seen, chars)
	}
	assert.Equal(t, []int{5, 5, 8, 8}, seen)
}

func TestLayout_SpanningColumn(t *testing.T) {
	r, err := NewReport("T", []*Shape{
		NewShape("title", Centered(WithSpan(2))),
		NewShape("row", Left(), Right()),
	})
	require.NoError(t, err)
	_, err = r.NewRow("title", "ABCDEFGHIJKLMNOPQRST")
	require.NoError(t, err)
	_, err = r.NewRow("row", "ab", "cd")
	require.NoError(t, err)

	w, h := r.PrintInit()
	assert.Equal(t, 20, w)
	assert.Equal(t, 2, h)

	_, chars := r.SlotStarts()
	if diff := cmp.Diff([]int{0, 5, 23}, chars); diff != "" {
		t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
	}

	lines := printReport(t, r)
	assert.Equal(t, []string{
		"ABCDEFGHIJKLMNOPQRST",
		"ab" + strings.Repeat(" ", 16) + "cd",
	}, lines)
}

func TestLayout_SkipSlotsCarryEdge(t *testing.T) {
	r, err := NewReport("T", []*Shape{
		NewShape("a", Left(WithSkip(1)), Right()),
		NewShape("b", Left(), Left(), Right()),
	})
	require.NoError(t, err)
	_, err = r.NewRow("a", "x", "1")
	require.NoError(t, err)
	_, err = r.NewRow("b", "long-label", "mid", "2")
	require.NoError(t, err)

	r.PrintInit()
	_, chars := r.SlotStarts()
	if diff := cmp.Diff([]int{0, 13, 19, 23}, chars); diff != "" {
		t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(chars); i++ {
		assert.LessOrEqual(t, chars[i-1], chars[i])
	}

	lines := printReport(t, r)
	assert.Equal(t, "x"+strings.Repeat(" ", 18)+"1", lines[0])
	assert.Equal(t, "long-label   mid   2", lines[1])
}

func TestLayout_ColumnFitsEveryCell(t *testing.T) {
	r, err := NewReport("T", []*Shape{
		NewShape("l0", Left(WithBold(), WithSpan(2)), Right()),
		NewShape("l1", Left(WithIndent(1)), Right(WithSkip(1))),
	})
	require.NoError(t, err)
	_, err = r.NewRow("l0", "Cash Flow", "25.00")
	require.NoError(t, err)
	_, err = r.NewRow("l1", "Breakfast", "-1234.50")
	require.NoError(t, err)

	r.DrawInit()
	r.PrintInit()
	for _, row := range r.Rows() {
		for _, cell := range row.Cells() {
			col := cell.Column()
			assert.GreaterOrEqual(t, col.RenderedWidth()+1e-9, col.indent+cell.Width(), cell.Text())
			assert.GreaterOrEqual(t, col.RenderedWidthChars(), col.IndentChars()+cell.WidthChars(), cell.Text())
		}
	}
}

func TestPrint_LeftPaddingIsExact(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(WithIndent(1)))}, WithIndentChars(2))
	require.NoError(t, err)
	_, err = r.NewRow("a", "Total")
	require.NoError(t, err)
	_, err = r.NewRow("a", "abcdefghijklmnopqr")
	require.NoError(t, err)

	r.PrintInit()
	col := r.Shapes()[0].Columns()[0]
	require.Equal(t, 20, col.RenderedWidthChars())

	left, right := col.padding(5)
	assert.Equal(t, 2, left)
	assert.Equal(t, 13, right)

	lines := printReport(t, r)
	assert.Equal(t, "  Total"+strings.Repeat(" ", 13), lines[0])
	assert.Equal(t, "  abcdefghijklmnopqr", lines[1])
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
}

func TestPrint_RightAlignment(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Right())})
	require.NoError(t, err)
	_, err = r.NewRow("a", "123.45")
	require.NoError(t, err)
	_, err = r.NewRow("a", "1234567890")
	require.NoError(t, err)

	r.PrintInit()
	col := r.Shapes()[0].Columns()[0]
	require.Equal(t, 10, col.RenderedWidthChars())
	left, right := col.padding(6)
	assert.Equal(t, 4, left)
	assert.Equal(t, 0, right)

	lines := printReport(t, r)
	assert.Equal(t, []string{"    123.45", "1234567890"}, lines)
}

func TestPrint_Centered(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Centered(WithIndent(2)))})
	require.NoError(t, err)
	_, err = r.NewRow("a", "abc")
	require.NoError(t, err)
	_, err = r.NewRow("a", "abcdefgh")
	require.NoError(t, err)

	lines := printReport(t, r)
	assert.Equal(t, []string{"  abc   ", "abcdefgh"}, lines)
}

func TestPrint_SecondaryText(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right())})
	require.NoError(t, err)
	row, err := r.NewRow("a", "Sales")
	require.NoError(t, err)
	require.NoError(t, row.SetSecondary("(61)"))
	require.NoError(t, row.NextCell("610.00"))

	lines := printReport(t, r)
	assert.Equal(t, []string{"Sales (61)   610.00"}, lines)
}

func TestDraw_Positions(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(WithBold()), Right())})
	require.NoError(t, err)
	_, err = r.NewRow("a", "Ab", "12.50")
	require.NoError(t, err)

	r.DrawInit()
	cv := newRecordingCanvas()
	require.NoError(t, r.Draw(cv, 10, 20))
	require.Len(t, cv.calls, 2)

	// FixedMeasurer{0.5}: "Ab" is 13pt wide, "12.50" 32.5pt; a 3 char gap at 13pt is 10.842pt.
	label, amount := cv.calls[0], cv.calls[1]
	assert.Equal(t, DefaultBoldFontFamily, label.Font)
	assert.Equal(t, DefaultFontFamily, amount.Font)
	assert.InDelta(t, 10.0, label.X, 1e-9)
	assert.InDelta(t, 759.0, label.Y, 1e-9)
	assert.InDelta(t, 13+10.842+10, amount.X, 1e-9)
	assert.InDelta(t, 759.0, amount.Y, 1e-9)
	assert.InDelta(t, 13+10.842+32.5, r.Width(), 1e-9)
}

func TestDraw_SecondaryFollowsPrimary(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(WithBold()))})
	require.NoError(t, err)
	row, err := r.NewRow("a", "Sales")
	require.NoError(t, err)
	require.NoError(t, row.SetSecondary("(12)"))

	r.DrawInit()
	cv := newRecordingCanvas()
	require.NoError(t, r.Draw(cv, 0, 0))
	require.Len(t, cv.calls, 2)

	primary, secondary := cv.calls[0], cv.calls[1]
	assert.Equal(t, "Sales", primary.Text)
	assert.Equal(t, DefaultBoldFontFamily, primary.Font)
	assert.Equal(t, "(12)", secondary.Text)
	assert.Equal(t, DefaultFontFamily, secondary.Font)
	assert.InDelta(t, 5*6.5+13*DefaultCharRatio, secondary.X-primary.X, 1e-9)
}
