// Package pdfcanvas implements ledger.Canvas and ledger.Measurer on a PDF
// document using the core PDF fonts.
package pdfcanvas

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Canvas draws text on a letter-size portrait PDF measured in points. Its y
// axis runs bottom-up; it is flipped to the document's top-down axis when drawing.
type Canvas struct {
	pdf  *gofpdf.Fpdf
	out  io.Writer
	path string

	family string
	size   float64
}

// Option configures a Canvas.
type Option func(*gofpdf.InitType)

// WithPageSize sets a named page size such as "Letter" or "A4".
func WithPageSize(size string) Option {
	return func(init *gofpdf.InitType) { init.SizeStr = size }
}

// WithLandscape switches to landscape orientation.
func WithLandscape() Option {
	return func(init *gofpdf.InitType) { init.OrientationStr = "L" }
}

func newCanvas(opts []Option) *Canvas {
	init := &gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "Letter",
	}
	for _, opt := range opts {
		opt(init)
	}
	pdf := gofpdf.NewCustom(init)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &Canvas{pdf: pdf}
}

// New creates a canvas whose Save writes the document to w.
func New(w io.Writer, opts ...Option) *Canvas {
	c := newCanvas(opts)
	c.out = w
	return c
}

// NewFile creates a canvas whose Save writes the document to path.
func NewFile(path string, opts ...Option) *Canvas {
	c := newCanvas(opts)
	c.path = path
	return c
}

// splitFamily maps "Helvetica-Bold" style names to a gofpdf family and style.
func splitFamily(family string) (string, string) {
	base, variant, ok := strings.Cut(family, "-")
	if !ok {
		return family, ""
	}
	style := ""
	v := strings.ToLower(variant)
	if strings.Contains(v, "bold") {
		style += "B"
	}
	if strings.Contains(v, "oblique") || strings.Contains(v, "italic") {
		style += "I"
	}
	return base, style
}

// SetFont implements ledger.Canvas.
func (c *Canvas) SetFont(family string, size float64) {
	base, style := splitFamily(family)
	c.pdf.SetFont(base, style, size)
	c.family, c.size = family, size
}

// DrawText implements ledger.Canvas. y is measured up from the page bottom.
func (c *Canvas) DrawText(x, y float64, text string) {
	_, h := c.PageSize()
	c.pdf.Text(x, h-y, text)
}

// PageSize implements ledger.Canvas.
func (c *Canvas) PageSize() (width, height float64) {
	return c.pdf.GetPageSize()
}

// NewPage implements ledger.Canvas. The current font carries over.
func (c *Canvas) NewPage() {
	c.pdf.AddPage()
	if c.family != "" {
		c.SetFont(c.family, c.size)
	}
}

// MeasureWidth implements ledger.Measurer using the font's metrics.
func (c *Canvas) MeasureWidth(text, family string, size float64) float64 {
	prevFamily, prevSize := c.family, c.size
	c.SetFont(family, size)
	w := c.pdf.GetStringWidth(text)
	if prevFamily != "" {
		c.SetFont(prevFamily, prevSize)
	}
	return w
}

// Err returns the first error recorded by the document, if any.
func (c *Canvas) Err() error {
	return c.pdf.Error()
}

// Save implements ledger.Canvas. It writes the document and closes it.
func (c *Canvas) Save() error {
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if c.path != "" {
		if err := c.pdf.OutputFileAndClose(c.path); err != nil {
			return fmt.Errorf("write pdf %q: %w", c.path, err)
		}
		return nil
	}
	w := c.out
	if w == nil {
		w = os.Stdout
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
