// Package kirchhoff computes resistance-distance quantities of weighted
// undirected graphs: the combinatorial Laplacian, its Moore–Penrose
// pseudoinverse, the Kirchhoff index, effective resistances and random-walk
// hitting and commute times.
//
// Every edge weight is read as a conductance. With L = D − A and L⁺ its
// pseudoinverse over n vertices:
//
//	Kf     = n · trace(L⁺)
//	R(u,v) = L⁺[u,u] + L⁺[v,v] − 2·L⁺[u,v]
//	H(i,j) = Vol · (L⁺[j,j] − L⁺[i,j])
//
// Subpackages:
//
//	core/        – thread-safe weighted undirected graph, degrees, volume, components
//	matrix/      – dense matrices, Laplacian builder, SVD pseudoinverse
//	resistance/  – Kirchhoff index, effective resistance, hitting and commute times
//	builder/     – canonical topologies (path, cycle, star, wheel, complete, grid, random)
//	               and synthetic price series
//	converters/  – YAML documents, gonum/graph adapters, Graphviz DOT
//	correlation/ – pairwise price correlation and correlation networks
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a unit-conductance 4-cycle: Kf = (4³ − 4)/12 = 5, R(A,C) = 1.
//
//	go get github.com/katalvlaran/kirchhoff
package kirchhoff
