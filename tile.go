package ledger

import "fmt"

// TileSpec controls how copies of a report are laid out on one page.
type TileSpec struct {
	MarginX, MarginY float64 // space kept free at the page edges
	GapX, GapY       float64 // space between copies
}

// DefaultTileSpec leaves a thin left margin and generous gutters between copies.
var DefaultTileSpec = TileSpec{MarginX: 2, MarginY: 0, GapX: 22, GapY: 28}

// TileOffsets returns the top-left offsets of every copy of a width×height
// report that fits on the page, row by row. Gaps that would not advance
// past the previous copy yield no offsets.
func TileOffsets(pageWidth, pageHeight, width, height float64, spec TileSpec) [][2]float64 {
	var offsets [][2]float64
	if width <= 0 || height <= 0 || width+spec.GapX <= 0 || height+spec.GapY <= 0 {
		return offsets
	}
	for y := spec.MarginY; y+height <= pageHeight-spec.MarginY; y += height + spec.GapY {
		for x := spec.MarginX; x+width <= pageWidth-spec.MarginX; x += width + spec.GapX {
			offsets = append(offsets, [2]float64{x, y})
		}
	}
	return offsets
}

// DrawTiled draws as many copies of the report as fit on the current page of
// cv and returns how many were drawn. DrawInit must have been called.
func (r *Report) DrawTiled(cv Canvas, spec TileSpec) (int, error) {
	if !r.drawReady {
		return 0, fmt.Errorf("report %q: draw tiled: %w", r.name, ErrNotInitialized)
	}
	pageWidth, pageHeight := cv.PageSize()
	offsets := TileOffsets(pageWidth, pageHeight, r.Width(), r.Height(), spec)
	for _, off := range offsets {
		if err := r.Draw(cv, off[0], off[1]); err != nil {
			return 0, err
		}
	}
	r.opts.logger.Debug().Str("report", r.name).Int("copies", len(offsets)).Msg("report tiled")
	return len(offsets), nil
}
