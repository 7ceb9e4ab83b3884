package ledger

import "github.com/mattn/go-runewidth"

// Measurer measures rendered text. Widths are in points.
type Measurer interface {
	MeasureWidth(text, family string, size float64) float64
}

// Canvas is a point-addressed drawing surface with a bottom-up y axis.
type Canvas interface {
	SetFont(family string, size float64)
	DrawText(x, y float64, text string)
	PageSize() (width, height float64)
	NewPage()
	Save() error
}

// FixedMeasurer approximates text width as a constant fraction of the font
// size per character cell. It ignores the font family.
type FixedMeasurer struct {
	Ratio float64
}

// MeasureWidth implements Measurer.
func (m FixedMeasurer) MeasureWidth(text, family string, size float64) float64 {
	return float64(runewidth.StringWidth(text)) * size * m.Ratio
}

// textWidth is the character-grid width of s.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
