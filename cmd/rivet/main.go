// Command rivet runs the reachable-in-values and call-site passes over
// Go packages.
//
// Usage:
//
//	rivet -riv.report ./...
//
// Or as a vet tool:
//
//	go vet -vettool=$(which rivet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/rivet-analysis/rivet"
	"github.com/rivet-analysis/rivet/callsite"
)

func main() {
	multichecker.Main(rivet.Analyzer, callsite.Analyzer)
}
