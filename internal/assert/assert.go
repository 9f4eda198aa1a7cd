package assert

import "fmt"

// Index panics if i is not a valid index into a sequence of length n.
func Index(name string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("%s index out of range: %d not in [0, %d)", name, i, n))
	}
}
