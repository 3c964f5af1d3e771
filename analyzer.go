// Package rivet provides a reachable-in-values (RIV) analysis pass for
// Go SSA.
//
// For every basic block of every source function, the pass computes the
// set of first-class values visible at the start of the block: values
// defined in dominating blocks, plus the always-visible package globals,
// parameters and captured free variables.
//
// The pass emits no diagnostics. Its result is exposed through
// analysis.Analyzer.ResultType so downstream passes can consume the
// per-function maps, and the -report flag dumps the textual listing of
// every function.
package rivet

import (
	"io"
	"os"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"

	"github.com/rivet-analysis/rivet/internal/report"
	"github.com/rivet-analysis/rivet/internal/riv"
)

// Analyzer computes reachable-in values for every basic block.
var Analyzer = &analysis.Analyzer{
	Name:       "riv",
	Doc:        "compute the set of reachable-in values for every basic block",
	Requires:   []*analysis.Analyzer{buildssa.Analyzer},
	ResultType: reflect.TypeOf((*Result)(nil)),
	Run:        run,
}

var reportFlag bool

func init() {
	Analyzer.Flags.BoolVar(&reportFlag, "report", false,
		"print the reachable-value listing of every function")
}

// ReportWriter receives the -report output. It defaults to os.Stderr and
// is a variable so tests can capture the listing.
var ReportWriter io.Writer = os.Stderr

// Result holds the reachable-in values of every source function of one
// package, in buildssa's function order.
type Result struct {
	order []*ssa.Function
	funcs map[*ssa.Function]*riv.Result
}

// FuncResult returns the analysis result of fn. The second result is
// false for functions the pass did not analyze (functions of other
// packages, or declarations without a body).
func (r *Result) FuncResult(fn *ssa.Function) (*riv.Result, bool) {
	res, ok := r.funcs[fn]
	return res, ok
}

// Functions returns the analyzed functions in analysis order. The
// returned slice is owned by the Result and must not be mutated.
func (r *Result) Functions() []*ssa.Function {
	return r.order
}

func run(pass *analysis.Pass) (any, error) {
	ssaInfo := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	result := &Result{funcs: make(map[*ssa.Function]*riv.Result)}

	// SrcFuncs already includes anonymous functions, so no closure
	// recursion is needed here.
	for _, fn := range ssaInfo.SrcFuncs {
		res, err := riv.Build(fn)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		result.order = append(result.order, fn)
		result.funcs[fn] = res
	}

	if reportFlag {
		for _, fn := range result.order {
			report.Fprint(ReportWriter, fn, result.funcs[fn])
		}
	}

	return result, nil
}
