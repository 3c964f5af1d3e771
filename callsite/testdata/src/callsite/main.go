package main

import "fmt"

var verbose bool

type greeter struct{}

func (greeter) greet() string { return "hi" }

func helper() {}

func cleanup() {}

func worker() {}

// notMain is scanned by nothing: only main's call sites are listed.
func notMain() {
	helper()
}

func main() {
	helper()          // want `direct call to callsite\.helper`
	fmt.Println("hi") // want `direct call to fmt\.Println`

	g := greeter{}
	g.greet() // want `direct call to \(callsite\.greeter\)\.greet`

	defer cleanup() // want `direct call to callsite\.cleanup`
	go worker()     // want `direct call to callsite\.worker`

	// A call through a function value is not direct once the callee is
	// no longer statically known.
	f := helper
	if verbose {
		f = cleanup
	}
	f()

	// Interface dispatch is never direct.
	var s fmt.Stringer = label("x")
	_ = s.String()
}

type label string

func (l label) String() string { return string(l) }
