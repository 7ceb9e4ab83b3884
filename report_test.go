package ledger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// printReport lays out r for characters and returns its lines.
func printReport(t *testing.T, r *Report) []string {
	t.Helper()
	r.PrintInit()
	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestNewReport_SharedGrid(t *testing.T) {
	r, err := NewReport("T", []*Shape{
		NewShape("title", Centered(WithSpan(5), WithSizeName("title"), WithBold())),
		NewShape("l0", Left(WithBold(), WithSpan(4)), Right()),
		NewShape("l1", Left(WithIndent(1), WithSpan(3)), Right(WithSkip(1))),
		NewShape("l3", Left(WithIndent(3)), Right(WithSkip(3))),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Slots())
	for _, s := range r.Shapes() {
		assert.Equal(t, 5, s.slots(), s.Name())
	}

	c, ok := r.Column("Right-3")
	require.True(t, ok)
	left, right := c.Slots()
	assert.Equal(t, 1, left)
	assert.Equal(t, 2, right)
	assert.Equal(t, TitleSize, r.Shapes()[0].Columns()[0].Size())
	assert.Equal(t, DefaultSize, c.Size())
}

func TestNewReport_GridMismatch(t *testing.T) {
	_, err := NewReport("T", []*Shape{
		NewShape("a", Left(WithSpan(2))),
		NewShape("b", Left(), Right(), Right()),
	})
	require.ErrorIs(t, err, ErrGridMismatch)
	assert.Contains(t, err.Error(), `shape "b" uses 3 slots`)
}

func TestNewReport_DuplicateColumnName(t *testing.T) {
	_, err := NewReport("T", []*Shape{
		NewShape("a", Left(WithColumnName("label")), Right()),
		NewShape("b", Left(WithColumnName("label")), Right()),
	})
	require.ErrorIs(t, err, ErrDuplicateColumn)
	assert.Contains(t, err.Error(), `"label"`)
}

func TestNewReport_SharedColumnPointer(t *testing.T) {
	label := Left()
	_, err := NewReport("T", []*Shape{
		NewShape("a", label, Right()),
		NewShape("b", label, Right()),
	})
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestNewReport_DuplicateShape(t *testing.T) {
	_, err := NewReport("T", []*Shape{
		NewShape("a", Left()),
		NewShape("a", Left()),
	})
	require.ErrorIs(t, err, ErrDuplicateShape)
}

func TestNewReport_UnknownNamedSize(t *testing.T) {
	_, err := NewReport("T", []*Shape{NewShape("a", Left(WithSizeName("huge")))})
	require.ErrorIs(t, err, ErrUnknownSize)

	r, err := NewReport("T", []*Shape{NewShape("a", Left(WithSizeName("huge")))}, WithNamedSize("huge", 30))
	require.NoError(t, err)
	assert.Equal(t, 30.0, r.Shapes()[0].Columns()[0].Size())
}

func TestNewReport_InvalidColumns(t *testing.T) {
	_, err := NewReport("T", []*Shape{NewShape("a", Left(WithSpan(0)))})
	require.ErrorIs(t, err, ErrInvalidColumn)

	_, err = NewReport("T", []*Shape{NewShape("a", Left(WithSkip(-1)))})
	require.ErrorIs(t, err, ErrInvalidColumn)

	_, err = NewReport("T", []*Shape{NewShape("a")})
	require.ErrorIs(t, err, ErrInvalidColumn)
}

func TestNewReport_GeneratedColumnNames(t *testing.T) {
	r, err := NewReport("T", []*Shape{
		NewShape("a", Left(), Right()),
		NewShape("b", Left(), Right(WithColumnName("amount"))),
	})
	require.NoError(t, err)

	var names []string
	for _, s := range r.Shapes() {
		for _, c := range s.Columns() {
			names = append(names, c.Name())
		}
	}
	assert.Equal(t, []string{"Left-1", "Right-1", "Left-2", "amount"}, names)
}

func TestNewRow_UnknownShape(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left())})
	require.NoError(t, err)
	_, err = r.NewRow("missing")
	require.ErrorIs(t, err, ErrUnknownShape)
}

func TestNextCell_TooManyCalls(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right())})
	require.NoError(t, err)
	row, err := r.NewRow("a", "label", 1)
	require.NoError(t, err)

	err = row.NextCell("extra")
	require.ErrorIs(t, err, ErrTooManyCells)
	assert.Contains(t, err.Error(), "row 1")

	_, err = r.NewRow("a", "x", 2, 3)
	require.ErrorIs(t, err, ErrTooManyCells)
}

func TestSetSecondary_Twice(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right())})
	require.NoError(t, err)
	row, err := r.NewRow("a", "Sales")
	require.NoError(t, err)

	require.NoError(t, row.SetSecondary("(12)"))
	err = row.SetSecondary("(13)")
	require.ErrorIs(t, err, ErrSecondaryTextSet)
	assert.Contains(t, err.Error(), `"(12)"`)
	assert.Contains(t, err.Error(), `"(13)"`)
}

func TestSetSecondary_NoCell(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left())})
	require.NoError(t, err)
	row, err := r.NewRow("a")
	require.NoError(t, err)
	require.ErrorIs(t, row.SetSecondary("x"), ErrNoCell)
}

func TestReport_FrozenAfterLayout(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right())})
	require.NoError(t, err)
	row, err := r.NewRow("a", "label")
	require.NoError(t, err)

	r.PrintInit()
	assert.True(t, r.LaidOut())

	_, err = r.NewRow("a")
	require.ErrorIs(t, err, ErrFrozen)
	require.ErrorIs(t, row.NextCell(1), ErrFrozen)
	require.ErrorIs(t, row.SetSecondary("x"), ErrFrozen)
	require.ErrorIs(t, row.SetPad(5), ErrFrozen)
}

func TestReport_RenderRequiresInit(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left())})
	require.NoError(t, err)
	_, err = r.NewRow("a", "x")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.ErrorIs(t, r.Print(&buf), ErrNotInitialized)
	require.ErrorIs(t, r.Draw(newRecordingCanvas(), 0, 0), ErrNotInitialized)

	r.DrawInit()
	require.NoError(t, r.Draw(newRecordingCanvas(), 0, 0))
	require.ErrorIs(t, r.Print(&buf), ErrNotInitialized)

	r.PrintInit()
	require.NoError(t, r.Print(&buf))
	assert.Equal(t, "x\n", buf.String())
}

func TestReport_NilValueLeavesCellEmpty(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(), Right(WithFormat("${fixed(value, 2)}")))})
	require.NoError(t, err)
	_, err = r.NewRow("a", "x", nil)
	require.NoError(t, err)
	_, err = r.NewRow("a", "y", 2)
	require.NoError(t, err)

	lines := printReport(t, r)
	assert.Equal(t, []string{"x       ", "y   2.00"}, lines)
}

func TestReport_CellOverrides(t *testing.T) {
	r, err := NewReport("T", []*Shape{NewShape("a", Left(WithBold()))})
	require.NoError(t, err)
	row, err := r.NewRow("a")
	require.NoError(t, err)
	require.NoError(t, row.NextCell("x", CellBold(false), CellSizeName("title")))

	cell := row.Cells()[0]
	assert.False(t, cell.Bold())
	assert.Equal(t, TitleSize, cell.Size())

	row2, err := r.NewRow("a")
	require.NoError(t, err)
	require.ErrorIs(t, row2.NextCell("y", CellSizeName("nope")), ErrUnknownSize)
}

func TestNewReport_ColumnsReusableAfterFailure(t *testing.T) {
	label, amount := Left(), Right()
	_, err := NewReport("T", []*Shape{
		NewShape("a", label, amount),
		NewShape("b", Left(), Right(), Right()),
	})
	require.ErrorIs(t, err, ErrGridMismatch)

	r, err := NewReport("T", []*Shape{NewShape("a", label, amount)}, WithDefaultSize(11))
	require.NoError(t, err)
	assert.Equal(t, "Left-1", label.Name())
	assert.Equal(t, "Right-1", amount.Name())
	assert.Equal(t, 11.0, label.Size())
	c, ok := r.Column("Left-1")
	require.True(t, ok)
	assert.Same(t, label, c)
}

func TestNewReport_RetryAfterUnknownSize(t *testing.T) {
	named := WithColumnName("label")
	label, big := Left(named), Right(WithSizeName("huge"))
	_, err := NewReport("T", []*Shape{NewShape("a", label, big)})
	require.ErrorIs(t, err, ErrUnknownSize)

	_, err = NewReport("T", []*Shape{NewShape("a", label, big)}, WithNamedSize("huge", 30))
	require.NoError(t, err)
	assert.Equal(t, "label", label.Name())
	assert.Equal(t, 30.0, big.Size())
}
