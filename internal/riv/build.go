// Package riv computes reachable-in values (RIV) for SSA functions.
//
// For every basic block of a function, the analysis determines the set of
// first-class values that are visible at the start of the block by virtue
// of dominance: a value is reachable-in at block B when it is defined in
// a block that strictly dominates B, or is always visible (package-level
// globals, parameters, free variables).
//
// # Algorithm
//
//	v_N   = set of first-class values defined in block N
//	RIV_N = set of reachable-in values of block N
//
//	STEP 1: for every block N of fn, compute v_N        (DefinedValues)
//	STEP 2: RIV_entry = {globals, parameters, free vars} (seedEntry)
//	STEP 3: walk the dominator tree from the entry; for every child M of
//	        block N:  RIV_M += RIV_N ∪ v_N               (Build)
//
// The dominator tree is finite and acyclic, so a single top-down pass
// visits each block exactly once. No fixed-point iteration is needed.
// Blocks outside the dominator tree are never visited and have no entry
// in the result.
package riv

import (
	"errors"
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/ssa"
)

// ErrRevisitedBlock reports a malformed dominator tree: a block was
// reached twice during propagation. A well-formed tree visits each block
// exactly once, so revisitation is an internal-consistency violation in
// the host-provided tree, not a recoverable condition.
var ErrRevisitedBlock = errors.New("dominator tree revisited a block")

// Build computes the reachable-in values of every block of fn.
//
// The entry block's set is seeded with every first-class package-level
// global, every first-class parameter, and every first-class free
// variable of fn. Each remaining block accumulates its immediate
// dominator's set plus the values that dominator defines. A block has
// exactly one immediate dominator, so no conflicting unions occur.
//
// Functions without a body (external declarations) yield (nil, nil).
func Build(fn *ssa.Function) (*Result, error) {
	if fn == nil || len(fn.Blocks) == 0 {
		return nil, nil
	}

	// STEP 1: per-block definitions.
	defs := DefinedValues(fn)

	// STEP 2: seed the entry block with the always-visible values.
	res := newResult(len(fn.Blocks))
	entry := fn.Blocks[0]
	seedEntry(res.ensure(entry), fn)

	// STEP 3: propagate top-down over the dominator tree. The stack
	// yields a depth-first pre-order; any order works because each node
	// reads only its own finalized state before its children are touched.
	stack := []*ssa.BasicBlock{entry}
	visited := make(map[*ssa.BasicBlock]bool, len(fn.Blocks))
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[parent] {
			return nil, fmt.Errorf("%w: block %d in %s", ErrRevisitedBlock, parent.Index, fn)
		}
		visited[parent] = true

		parentDefs := defs[parent]
		// Snapshot the parent's set before touching any child. Children
		// must accumulate from a stable copy, never from a container that
		// is mutated while they are being filled.
		parentRIVs := res.ensure(parent).Copy()

		children := parent.Dominees()
		for _, child := range children {
			set := res.ensure(child)
			set.AddAll(parentRIVs)
			set.AddAll(parentDefs)
		}
		// Push in reverse so children pop in Dominees order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return res, nil
}

// seedEntry populates the entry block's set with the values that are
// visible everywhere in fn: first-class package-level globals, then
// parameters, then free variables (for anonymous functions, captured
// bindings play the same always-visible role as parameters).
//
// Package members are iterated in sorted name order; ssa.Package.Members
// is a map and would otherwise make the seeded order nondeterministic.
func seedEntry(entry *ValueSet, fn *ssa.Function) {
	if fn.Pkg != nil {
		names := make([]string, 0, len(fn.Pkg.Members))
		for name := range fn.Pkg.Members {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			g, ok := fn.Pkg.Members[name].(*ssa.Global)
			if !ok {
				continue
			}
			// A global is a pointer to the variable's storage; classify
			// by the pointee, the type the variable actually holds.
			if ptr, ok := g.Type().(*types.Pointer); ok && isFirstClass(ptr.Elem()) {
				entry.Add(g)
			}
		}
	}
	for _, p := range fn.Params {
		if isFirstClass(p.Type()) {
			entry.Add(p)
		}
	}
	for _, fv := range fn.FreeVars {
		if isFirstClass(fv.Type()) {
			entry.Add(fv)
		}
	}
}
