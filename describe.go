package ledger

import (
	"fmt"
	"strings"
)

// Describe returns a human-readable tree of the report's grid: every shape
// with its columns, their slots, alignment and, once laid out, their widths.
// Useful for debugging reports whose columns don't line up.
func Describe(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report: %s (%d slots, %d rows)\n", r.name, r.slots, len(r.rows))

	counts := make(map[*Shape]int, len(r.shapeOrder))
	for _, row := range r.rows {
		counts[row.shape]++
	}

	for _, s := range r.shapeOrder {
		fmt.Fprintf(&b, "  %s: %d rows\n", s.name, counts[s])
		for _, c := range s.columns {
			fmt.Fprintf(&b, "    %s %s slots [%d,%d)%s\n", c.name, c.align, c.left, c.right, describeColumnAttrs(c))
			if r.LaidOut() {
				fmt.Fprintf(&b, "      x=%.2f width=%.2f chars x=%d width=%d\n",
					c.x(), c.RenderedWidth(), c.xChars(), c.RenderedWidthChars())
			}
		}
	}

	if r.LaidOut() {
		fmt.Fprintf(&b, "Size: %.2fx%.2f points, %dx%d chars\n", r.Width(), r.Height(), r.WidthChars(), r.HeightChars())
	}
	return b.String()
}

// describeColumnAttrs returns the column's non-default attributes for display.
func describeColumnAttrs(c *Column) string {
	var parts []string
	if c.skip > 0 {
		parts = append(parts, fmt.Sprintf("skip=%d", c.skip))
	}
	if c.indentLevel > 0 {
		parts = append(parts, fmt.Sprintf("indent=%d", c.indentLevel))
	}
	if c.sizeName != "" {
		parts = append(parts, fmt.Sprintf("size=%q", c.sizeName))
	} else {
		parts = append(parts, fmt.Sprintf("size=%g", c.size))
	}
	if c.bold {
		parts = append(parts, "bold")
	}
	if c.format != "" {
		parts = append(parts, fmt.Sprintf("format=%q", c.format))
	}
	if c.secondaryFormat != "" {
		parts = append(parts, fmt.Sprintf("secondaryFormat=%q", c.secondaryFormat))
	}
	return " " + strings.Join(parts, " ")
}
