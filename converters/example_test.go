// SPDX-License-Identifier: MIT
package converters_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kirchhoff/converters"
	"github.com/katalvlaran/kirchhoff/resistance"
)

func ExampleReadGraph() {
	src := `
nodes: [A, B, C]
edges:
  - {from: A, to: B}
  - {from: B, to: C}
  - {from: C, to: A}
`
	g, err := converters.ReadGraph(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	kr, err := resistance.Kirchhoff(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Printf("Kf=%.4f\n", kr.Index)

	// Output:
	// [A B C]
	// Kf=2.0000
}

func ExampleToGonum() {
	g, _ := converters.ReadGraph(strings.NewReader("edges:\n  - {from: x, to: y, weight: 3}\n"))
	dst, ids, _ := converters.ToGonum(g)
	w, _ := dst.Weight(0, 1)
	fmt.Println(ids, w)

	// Output:
	// [x y] 3
}
