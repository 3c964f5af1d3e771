// Package report renders reachable-in-value analysis results as text.
//
// The format is one labeled section per basic block, in the result's
// visitation order, with one line per reachable value:
//
//	=================================================
//	Reachable values of p.f
//	=================================================
//	[[BasicBlock 0 (entry)]]
//	==>global p.g : *int
//	==>parameter a0 : int
//	-------------------------------------------------
//
// Rendering is a pure function of its inputs, so the output is stable for
// golden-file comparison.
package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/tools/go/ssa"

	"github.com/rivet-analysis/rivet/internal/riv"
)

const (
	headerRule  = "================================================="
	sectionRule = "-------------------------------------------------"
)

// Format returns the textual listing of res for fn.
func Format(fn *ssa.Function, res *riv.Result) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "%s\n", headerRule)
	fmt.Fprintf(&buf, "Reachable values of %s\n", fn)
	fmt.Fprintf(&buf, "%s\n", headerRule)

	for _, b := range res.Blocks() {
		set, _ := res.Lookup(b)
		fmt.Fprintf(&buf, "[[BasicBlock %s]]\n", blockID(b))
		for _, v := range set.Values() {
			fmt.Fprintf(&buf, "==>%s\n", formatValue(v))
		}
		fmt.Fprintf(&buf, "%s\n", sectionRule)
	}

	return buf.String()
}

// Fprint writes the textual listing of res for fn to w.
func Fprint(w io.Writer, fn *ssa.Function, res *riv.Result) {
	fmt.Fprint(w, Format(fn, res))
}

// blockID labels a block by its index, with the builder's comment when
// one exists ("entry", "if.then", ...).
func blockID(b *ssa.BasicBlock) string {
	if b.Comment == "" {
		return fmt.Sprintf("%d", b.Index)
	}
	return fmt.Sprintf("%d (%s)", b.Index, b.Comment)
}

// formatValue renders a single value. Instructions print as their
// defining form ("t0 = ..."); globals carry their type; parameters and
// free variables already print a self-describing form.
func formatValue(v ssa.Value) string {
	if g, ok := v.(*ssa.Global); ok {
		return fmt.Sprintf("global %s : %s", g, g.Type())
	}
	if _, ok := v.(ssa.Instruction); ok {
		return fmt.Sprintf("%s = %s", v.Name(), v)
	}
	return v.String()
}
