package riv

import (
	"golang.org/x/tools/go/ssa"
)

// =============================================================================
// ValueSet
//
// ValueSet is a set of SSA values keyed by identity. ssa.Value is always
// implemented by a pointer type, so map membership gives the reference
// equality the analysis needs: two instructions with the same textual form
// are still distinct values.
//
// The set remembers insertion order. Sets are append-only during
// propagation, which keeps the whole analysis result deterministic and
// makes a parent's set safe to read while children accumulate.
// =============================================================================

// ValueSet is an insertion-ordered set of SSA values with identity
// membership. The zero value is not usable; use NewValueSet.
type ValueSet struct {
	order []ssa.Value
	index map[ssa.Value]struct{}
}

// NewValueSet creates an empty ValueSet.
func NewValueSet() *ValueSet {
	return &ValueSet{index: make(map[ssa.Value]struct{})}
}

// Add inserts v into the set. It reports whether v was newly added.
func (s *ValueSet) Add(v ssa.Value) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// AddAll inserts every value of other into the set, preserving other's
// order for values not already present.
func (s *ValueSet) AddAll(other *ValueSet) {
	if other == nil {
		return
	}
	for _, v := range other.order {
		s.Add(v)
	}
}

// Contains reports whether v is a member of the set.
func (s *ValueSet) Contains(v ssa.Value) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of values in the set.
func (s *ValueSet) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order. The returned slice is
// owned by the set and must not be mutated by the caller.
func (s *ValueSet) Values() []ssa.Value {
	return s.order
}

// Copy returns an independent snapshot of the set. Later additions to
// either set do not affect the other.
func (s *ValueSet) Copy() *ValueSet {
	c := &ValueSet{
		order: make([]ssa.Value, len(s.order)),
		index: make(map[ssa.Value]struct{}, len(s.index)),
	}
	copy(c.order, s.order)
	for v := range s.index {
		c.index[v] = struct{}{}
	}
	return c
}
