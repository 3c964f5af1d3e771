package riv

var counter int

// limits is an aggregate: it never participates in the analysis.
var limits struct{ min, max int }

func branching(a int) int {
	if a > counter {
		v := a * 2
		return v
	}
	return a
}

func loop(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += i
	}
	return sum
}

func nested(a int) int {
	if a > 0 {
		b := a + 1
		if b > 10 {
			return b * b
		}
		return b
	}
	return -a
}

func capture(base int) func(int) int {
	return func(d int) int {
		return base + d
	}
}
