package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RowTemplate is a labeled Value that expands into a row of a report. The
// rows of its children follow its own. A template whose total is zero and
// whose children are all skipped emits nothing unless forced.
type RowTemplate struct {
	Value

	shape           string
	label           string
	children        []*RowTemplate
	secondary       Value
	secondaryFormat string
	hasSecondary    bool

	force        bool
	hideValue    bool
	pad          float64
	invertParent bool

	inserted []*Report
}

// TemplateOption configures a RowTemplate.
type TemplateOption func(*RowTemplate)

// Force emits the row even when it and all its children are zero.
func Force() TemplateOption {
	return func(t *RowTemplate) { t.force = true }
}

// HideValue omits the total cell.
func HideValue() TemplateOption {
	return func(t *RowTemplate) { t.hideValue = true }
}

// Pad adds extra vertical space, in points, below the row.
func Pad(points float64) TemplateOption {
	return func(t *RowTemplate) { t.pad = points }
}

// InvertParent makes changes to this template subtract from the parents it
// is attached to through AddChild or AddParent.
func InvertParent() TemplateOption {
	return func(t *RowTemplate) { t.invertParent = true }
}

// SecondaryFormat attaches a secondary label rendered from the template's
// secondary value, e.g. "(${value})". A template with no ${...} is shown as
// is. An empty template defers to the label column's secondary format.
func SecondaryFormat(template string) TemplateOption {
	return func(t *RowTemplate) {
		t.secondaryFormat = template
		t.hasSecondary = true
	}
}

// Children adds child templates in order.
func Children(children ...*RowTemplate) TemplateOption {
	return func(t *RowTemplate) {
		for _, c := range children {
			t.addChild(c)
		}
	}
}

// NewRowTemplate creates a template emitting rows of the named shape.
func NewRowTemplate(shape, label string, opts ...TemplateOption) *RowTemplate {
	t := &RowTemplate{shape: shape, label: label}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Label returns the template's label.
func (t *RowTemplate) Label() string { return t.label }

// ShapeName returns the name of the shape the template's row uses.
func (t *RowTemplate) ShapeName() string { return t.shape }

// Children returns the child templates in order.
func (t *RowTemplate) Children() []*RowTemplate { return t.children }

// SecondaryTotal returns the secondary value's total.
func (t *RowTemplate) SecondaryTotal() decimal.Decimal { return t.secondary.total }

// IncrementSecondary adds d to the secondary value. It does not propagate.
func (t *RowTemplate) IncrementSecondary(d decimal.Decimal) { t.secondary.total = t.secondary.total.Add(d) }

func (t *RowTemplate) checkMutable() error {
	for _, r := range t.inserted {
		if err := r.checkBuilding(); err != nil {
			return fmt.Errorf("template %q: %w", t.label, err)
		}
	}
	return nil
}

// AddChild appends child and registers t as its parent, inverted when the
// child was created with InvertParent.
func (t *RowTemplate) AddChild(child *RowTemplate) error {
	if err := t.checkMutable(); err != nil {
		return err
	}
	if err := child.checkMutable(); err != nil {
		return err
	}
	t.addChild(child)
	return nil
}

func (t *RowTemplate) addChild(child *RowTemplate) {
	t.children = append(t.children, child)
	child.Value.AddParent(t, child.invertParent)
}

// AddParent registers an extra parent without making t one of its children.
func (t *RowTemplate) AddParent(p Node) error {
	if err := t.checkMutable(); err != nil {
		return err
	}
	t.Value.AddParent(p, t.invertParent)
	return nil
}

// Skip reports whether inserting the template would emit nothing.
func (t *RowTemplate) Skip() bool {
	if t.force || !t.total.IsZero() {
		return false
	}
	for _, c := range t.children {
		if !c.Skip() {
			return false
		}
	}
	return true
}

// Insert appends the template's row, then its children's, to r. Inserting
// the same template twice duplicates its rows.
func (t *RowTemplate) Insert(r *Report) error {
	if t.Skip() {
		r.opts.logger.Debug().Str("report", r.name).Str("label", t.label).Msg("template skipped")
		return nil
	}
	row, err := r.NewRow(t.shape, t.label)
	if err != nil {
		return fmt.Errorf("template %q: %w", t.label, err)
	}
	if err := t.insertSecondary(row); err != nil {
		return fmt.Errorf("template %q: %w", t.label, err)
	}
	if !t.hideValue {
		if err := row.NextCell(t.total); err != nil {
			return fmt.Errorf("template %q: %w", t.label, err)
		}
	}
	if t.pad != 0 {
		if err := row.SetPad(t.pad); err != nil {
			return err
		}
	}
	t.markInserted(r)

	for _, c := range t.children {
		if err := c.Insert(r); err != nil {
			return err
		}
	}
	return nil
}

// insertSecondary attaches the secondary label. A template format renders
// the secondary total itself; without one the label column's secondary
// format applies to the raw total.
func (t *RowTemplate) insertSecondary(row *Row) error {
	if !t.hasSecondary {
		return nil
	}
	if t.secondaryFormat == "" {
		return row.SetSecondary(t.secondary.total)
	}
	text, err := Format(t.secondaryFormat, t.secondary.total)
	if err != nil {
		return fmt.Errorf("secondary: %w", err)
	}
	return row.setSecondaryText(text)
}

func (t *RowTemplate) markInserted(r *Report) {
	for _, seen := range t.inserted {
		if seen == r {
			return
		}
	}
	t.inserted = append(t.inserted, r)
}
