package edgeset_test

import (
	"fmt"

	"github.com/katalvlaran/tempnet/edgeset"
)

// ExampleDifference computes the transition between two graph states.
func ExampleDifference() {
	prev := edgeset.MustFromPairs([][2]int{{0, 1}, {1, 2}})
	next := edgeset.MustFromPairs([][2]int{{2, 1}, {2, 3}})

	fmt.Println("added:  ", edgeset.Difference(next, prev))
	fmt.Println("removed:", edgeset.Difference(prev, next))
	// Output:
	// added:   {(2,3)}
	// removed: {(0,1)}
}
