package ledger

// layout runs the sizing and positioning passes once. After it returns the
// report structure is frozen and every width, height and offset is fixed.
func (r *Report) layout() {
	if r.phase >= phaseLaidOut {
		return
	}
	r.phase = phaseLaidOut
	r.measure()
	r.setYStarts()
	r.setXStarts()
}

// measure visits every cell once, raising column widths and row heights.
func (r *Report) measure() {
	for _, row := range r.rows {
		row.measure()
	}
}

// setYStarts stacks rows in creation order and appends the bottom margin row,
// whose start is the total height.
func (r *Report) setYStarts() {
	r.bottom = &Row{report: r, num: len(r.rows) + 1}
	var y float64
	var yChars int
	for _, row := range r.rows {
		row.yStart, row.yCharStart = y, yChars
		y += row.height
		yChars += row.heightChars
	}
	r.bottom.yStart, r.bottom.yCharStart = y, yChars
}

// setXStarts fixes slot boundaries with one forward sweep. Every column's
// right slot is at least its left slot's start plus indent, width and gap.
// Right indices are always greater than left ones, so by the time slot i is
// visited no column can push it further.
func (r *Report) setXStarts() {
	gap := r.opts.columnGapPoints()
	gapChars := r.opts.columnGapChars

	for i := 0; i <= r.slots; i++ {
		if i > 0 {
			// Slots inside a skip carry the edge before them.
			r.xStarts[i] = max(r.xStarts[i], r.xStarts[i-1])
			r.xCharStarts[i] = max(r.xCharStarts[i], r.xCharStarts[i-1])
		}
		for _, c := range r.columnOrder {
			if c.left != i {
				continue
			}
			right := r.xStarts[i] + c.indent + c.width + gap
			if right > r.xStarts[c.right] {
				r.xStarts[c.right] = right
			}
			rightChars := r.xCharStarts[i] + c.indentChars + c.widthChars + gapChars
			if rightChars > r.xCharStarts[c.right] {
				r.xCharStarts[c.right] = rightChars
			}
		}
	}
}
