package ledger

import "fmt"

// Shape is a named, ordered list of columns defining one kind of report line.
type Shape struct {
	name    string
	columns []*Column
}

// NewShape declares a shape. Columns must not be shared between shapes.
func NewShape(name string, columns ...*Column) *Shape {
	return &Shape{name: name, columns: columns}
}

// Name returns the shape's name.
func (s *Shape) Name() string { return s.name }

// Columns returns the shape's columns in order.
func (s *Shape) Columns() []*Column { return s.columns }

// slots returns the number of grid slots the shape consumes.
func (s *Shape) slots() int {
	n := 0
	for _, c := range s.columns {
		n += c.span + c.skip
	}
	return n
}

// bind assigns slot indices to the shape's columns by walking them in order.
func (s *Shape) bind(r *Report) error {
	if len(s.columns) == 0 {
		return fmt.Errorf("shape %q has no columns: %w", s.name, ErrInvalidColumn)
	}
	cursor := 0
	for i, c := range s.columns {
		if c == nil {
			return fmt.Errorf("shape %q column %d is nil: %w", s.name, i, ErrInvalidColumn)
		}
		if err := c.bind(r, cursor); err != nil {
			return fmt.Errorf("shape %q: %w", s.name, err)
		}
		cursor += c.span + c.skip
	}
	return nil
}
