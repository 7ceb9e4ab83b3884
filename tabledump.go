package ledger

import "fmt"

// TableColumn describes one field of a table dump.
type TableColumn struct {
	Name    string
	Numeric bool   // right aligned when true
	Format  string // optional format template for data cells
}

// NewTableDump builds a report listing records under a centered title and a
// bold header row. Numeric columns are right aligned, others left aligned.
// A nil value produces an empty cell.
func NewTableDump(title string, columns []TableColumn, records [][]any, opts ...Option) (*Report, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q: no columns: %w", title, ErrInvalidColumn)
	}
	headers := make([]*Column, 0, len(columns))
	data := make([]*Column, 0, len(columns))
	for _, tc := range columns {
		if tc.Numeric {
			headers = append(headers, Right(WithBold()))
			data = append(data, Right(WithFormat(tc.Format)))
		} else {
			headers = append(headers, Left(WithBold()))
			data = append(data, Left(WithFormat(tc.Format)))
		}
	}

	r, err := NewReport(title, []*Shape{
		NewShape("title", Centered(WithSpan(len(columns)), WithSizeName("title"), WithBold())),
		NewShape("headers", headers...),
		NewShape("data", data...),
	}, opts...)
	if err != nil {
		return nil, err
	}

	if _, err := r.NewRow("title", title); err != nil {
		return nil, err
	}
	names := make([]any, len(columns))
	for i, tc := range columns {
		names[i] = tc.Name
	}
	if _, err := r.NewRow("headers", names...); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if len(rec) > len(columns) {
			return nil, fmt.Errorf("table %q: record %d has %d values for %d columns: %w",
				title, i, len(rec), len(columns), ErrTooManyCells)
		}
		if _, err := r.NewRow("data", rec...); err != nil {
			return nil, err
		}
	}
	return r, nil
}
