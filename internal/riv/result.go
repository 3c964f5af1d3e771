package riv

import (
	"golang.org/x/tools/go/ssa"
)

// =============================================================================
// Result
//
// Result maps each basic block to the set of values reachable at its
// start. Iteration order over blocks equals insertion order, which is the
// dominator-tree visitation order of Build. Downstream consumers (the
// reporter, golden tests) depend on that order being stable.
// =============================================================================

// Result holds the reachable-in values of one function, one set per
// basic block, in dominator-tree visitation order.
type Result struct {
	blocks []*ssa.BasicBlock
	sets   map[*ssa.BasicBlock]*ValueSet
}

func newResult(capacity int) *Result {
	return &Result{
		blocks: make([]*ssa.BasicBlock, 0, capacity),
		sets:   make(map[*ssa.BasicBlock]*ValueSet, capacity),
	}
}

// ensure returns the set for b, creating and recording it on first use.
func (r *Result) ensure(b *ssa.BasicBlock) *ValueSet {
	if s, ok := r.sets[b]; ok {
		return s
	}
	s := NewValueSet()
	r.sets[b] = s
	r.blocks = append(r.blocks, b)
	return s
}

// Lookup returns the reachable-value set of b. The second result is false
// when b has no entry, i.e. the block was never visited (it is outside
// the dominator tree). Absent means "no information", not "empty set".
func (r *Result) Lookup(b *ssa.BasicBlock) (*ValueSet, bool) {
	s, ok := r.sets[b]
	return s, ok
}

// Blocks returns the analyzed blocks in visitation order. The returned
// slice is owned by the Result and must not be mutated by the caller.
func (r *Result) Blocks() []*ssa.BasicBlock {
	return r.blocks
}

// Len returns the number of blocks with reachable-value information.
func (r *Result) Len() int {
	return len(r.blocks)
}
