package riv

import (
	"golang.org/x/tools/go/ssa"
)

// DefinedValuesMap maps each basic block to the set of first-class values
// its instructions define. Built once per function, read-only afterwards.
type DefinedValuesMap map[*ssa.BasicBlock]*ValueSet

// DefinedValues collects, for every basic block of fn, the first-class
// values defined in it. Only instructions that are themselves values
// contribute; control instructions (Store, Jump, If, Return, ...) and
// instructions with non-first-class results are skipped.
//
// The collection is a pure function of fn. Block order does not matter:
// there are no cross-block dependencies at this stage.
func DefinedValues(fn *ssa.Function) DefinedValuesMap {
	defs := make(DefinedValuesMap, len(fn.Blocks))
	for _, b := range fn.Blocks {
		set := NewValueSet()
		for _, instr := range b.Instrs {
			v, ok := instr.(ssa.Value)
			if !ok {
				continue
			}
			if !isFirstClass(v.Type()) {
				continue
			}
			set.Add(v)
		}
		defs[b] = set
	}
	return defs
}
