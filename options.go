package ledger

import "github.com/rs/zerolog"

// Default typography. Widths of a space in Helvetica are 0.278 of the font
// size, which is what indents and gaps are measured in.
const (
	DefaultFontFamily     = "Helvetica"
	DefaultBoldFontFamily = "Helvetica-Bold"
	DefaultSize           = 13.0
	TitleSize             = 17.0
	DefaultCharRatio      = 0.278
)

// Options holds configuration for a Report.
type Options struct {
	fontFamily        string
	boldFontFamily    string
	defaultSize       float64
	namedSizes        map[string]float64
	indentChars       int
	columnGapChars    int
	secondaryGapChars int
	charRatio         float64
	measurer          Measurer
	logger            zerolog.Logger
}

func defaultOptions() *Options {
	return &Options{
		fontFamily:     DefaultFontFamily,
		boldFontFamily: DefaultBoldFontFamily,
		defaultSize:    DefaultSize,
		namedSizes: map[string]float64{
			"default": DefaultSize,
			"title":   TitleSize,
		},
		indentChars:       4,
		columnGapChars:    3,
		secondaryGapChars: 1,
		charRatio:         DefaultCharRatio,
		logger:            zerolog.Nop(),
	}
}

// Option configures a Report.
type Option func(*Options)

// WithFontFamily sets the regular font family (default: Helvetica).
func WithFontFamily(family string) Option {
	return func(o *Options) { o.fontFamily = family }
}

// WithBoldFontFamily sets the bold font family (default: Helvetica-Bold).
func WithBoldFontFamily(family string) Option {
	return func(o *Options) { o.boldFontFamily = family }
}

// WithDefaultSize sets the font size used by columns that don't name one.
// The "default" entry of the named size table follows it.
func WithDefaultSize(size float64) Option {
	return func(o *Options) {
		o.defaultSize = size
		o.namedSizes["default"] = size
	}
}

// WithNamedSize adds or replaces an entry in the named size table.
func WithNamedSize(name string, size float64) Option {
	return func(o *Options) { o.namedSizes[name] = size }
}

// WithIndentChars sets the width of one indent level in characters (default: 4).
func WithIndentChars(n int) Option {
	return func(o *Options) { o.indentChars = n }
}

// WithColumnGapChars sets the gap between columns in characters (default: 3).
func WithColumnGapChars(n int) Option {
	return func(o *Options) { o.columnGapChars = n }
}

// WithSecondaryGapChars sets the gap between a cell's primary and secondary
// text in characters (default: 1).
func WithSecondaryGapChars(n int) Option {
	return func(o *Options) { o.secondaryGapChars = n }
}

// WithCharRatio sets the fraction of a font size that one character of
// indent or gap occupies in points (default: 0.278).
func WithCharRatio(r float64) Option {
	return func(o *Options) { o.charRatio = r }
}

// WithMeasurer sets the text measurement capability used by the sizing pass.
// Without one, an approximate fixed-ratio measurer is used.
func WithMeasurer(m Measurer) Option {
	return func(o *Options) { o.measurer = m }
}

// WithLogger sets the logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func (o *Options) indentPoints() float64 {
	return float64(o.indentChars) * o.defaultSize * o.charRatio
}

func (o *Options) columnGapPoints() float64 {
	return float64(o.columnGapChars) * o.defaultSize * o.charRatio
}

func (o *Options) secondaryGapPoints(size float64) float64 {
	return float64(o.secondaryGapChars) * size * o.charRatio
}

func (o *Options) font(bold bool) string {
	if bold {
		return o.boldFontFamily
	}
	return o.fontFamily
}
