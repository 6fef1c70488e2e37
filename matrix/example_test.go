// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// ExampleNewLaplacian builds L = D − A for a weighted triangle.
func ExampleNewLaplacian() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 1.5)
	_, _ = g.AddEdge("C", "A", 1.5)

	lm, _ := matrix.NewLaplacian(g)
	fmt.Print(lm.Mat)
	fmt.Println("order:", lm.VertexOrder(), "volume:", lm.Volume())

	// Output:
	// [3.5, -2, -1.5]
	// [-2, 3.5, -1.5]
	// [-1.5, -1.5, 3]
	// order: [A B C] volume: 10
}

// ExamplePseudoInverse inverts the Laplacian of a single edge of weight 2.
func ExamplePseudoInverse() {
	L, _ := matrix.NewDenseFromRows([][]float64{{2, -2}, {-2, 2}})
	P, rank, _ := matrix.PseudoInverse(L)

	fmt.Println("rank:", rank)
	for i := 0; i < P.Rows(); i++ {
		row := P.RawRow(i)
		fmt.Printf("%.4f %.4f\n", row[0], row[1])
	}

	// Output:
	// rank: 1
	// 0.1250 -0.1250
	// -0.1250 0.1250
}

// ExampleTrace shows the Kirchhoff index n·trace(L⁺) of a 3-vertex path.
func ExampleTrace() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)

	lm, _ := matrix.NewLaplacian(g)
	P, _, _ := matrix.PseudoInverse(lm.Mat)
	tr, _ := matrix.Trace(P)
	fmt.Printf("Kf = %.6f\n", float64(lm.Size())*tr)

	// Output:
	// Kf = 4.000000
}
