package ledger

import "github.com/shopspring/decimal"

// Node is anything that carries a Value and can act as a parent in an
// aggregation graph: *Value and *RowTemplate.
type Node interface {
	value() *Value
}

// parentEdge is a non-owning reference to a parent accumulator.
type parentEdge struct {
	parent *Value
	invert bool
}

// Value is a decimal accumulator. Every change is forwarded to its parents,
// negated on edges registered with invert. Parent graphs must be acyclic.
type Value struct {
	total   decimal.Decimal
	parents []parentEdge
}

func (v *Value) value() *Value { return v }

// Total returns the accumulated value.
func (v *Value) Total() decimal.Decimal { return v.total }

// Increment adds d to the value and to every parent.
func (v *Value) Increment(d decimal.Decimal) {
	v.total = v.total.Add(d)
	for _, e := range v.parents {
		if e.invert {
			e.parent.Decrement(d)
		} else {
			e.parent.Increment(d)
		}
	}
}

// Decrement subtracts d from the value and from every parent.
func (v *Value) Decrement(d decimal.Decimal) {
	v.Increment(d.Neg())
}

// AddParent registers p as a parent. Only changes made after the call
// propagate to p.
func (v *Value) AddParent(p Node, invert bool) {
	v.parents = append(v.parents, parentEdge{parent: p.value(), invert: invert})
}
