// Package callsite provides a pass that lists the direct call sites of
// the main function.
//
// A call site is direct when its callee is statically known (a declared
// function or a bound method, as opposed to a call through an interface
// or a function value). The pass is a linear scan over instructions; no
// control-flow analysis is involved.
package callsite

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"
)

// Analyzer reports every direct call site in the main function.
var Analyzer = &analysis.Analyzer{
	Name:     "callsite",
	Doc:      "list direct call sites in the main function",
	Requires: []*analysis.Analyzer{buildssa.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	ssaInfo := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	for _, fn := range ssaInfo.SrcFuncs {
		// Top-level main only; anonymous functions named by their
		// parent are skipped.
		if fn.Name() != "main" || fn.Parent() != nil {
			continue
		}
		for _, b := range fn.Blocks {
			for _, instr := range b.Instrs {
				call, ok := instr.(ssa.CallInstruction)
				if !ok {
					continue
				}
				callee := call.Common().StaticCallee()
				if callee == nil {
					continue
				}
				pass.Reportf(call.Pos(), "direct call to %s", callee)
			}
		}
	}

	return nil, nil
}
