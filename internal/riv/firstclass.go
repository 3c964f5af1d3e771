package riv

import "go/types"

// isFirstClass reports whether t is a type whose values ordinary
// instructions produce and consume directly: basics, pointers, slices,
// maps, channels, functions and interfaces. Aggregates (structs, arrays),
// instruction tuples (multi-result calls) and the SSA builder's opaque
// internal types do not participate in the analysis.
func isFirstClass(t types.Type) bool {
	if t == nil {
		return false
	}
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return u.Kind() != types.Invalid
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan,
		*types.Signature, *types.Interface:
		return true
	}
	return false
}
