package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/graphinfo/matrix"
)

// ExampleNormalizeRowSums turns a directed adjacency matrix into the
// transition matrix of a random walker.
func ExampleNormalizeRowSums() {
	A, _ := matrix.NewDenseFrom([][]float64{
		{0, 1, 3},
		{2, 0, 2},
		{1, 1, 0},
	})

	W, outDegree, _ := matrix.NormalizeRowSums(A)
	inDegree, _ := matrix.ColSums(A)

	fmt.Println("out:", outDegree)
	fmt.Println("in: ", inDegree)
	fmt.Print(W)
	// Output:
	// out: [4 4 2]
	// in:  [3 2 5]
	// [0, 0.25, 0.75]
	// [0.5, 0, 0.5]
	// [0.5, 0.5, 0]
}
