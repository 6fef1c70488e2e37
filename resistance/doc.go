// SPDX-License-Identifier: MIT

// Package resistance computes resistance-distance quantities of a weighted
// undirected graph viewed as an electrical network (edge weight = conductance).
//
// Every quantity is derived from the Moore–Penrose pseudoinverse L⁺ of the
// graph Laplacian L = D − A:
//
//	– Kirchhoff index:       Kf = n · trace(L⁺)
//	– Effective resistance:  R(u,v) = L⁺[u,u] + L⁺[v,v] − 2·L⁺[u,v]
//	– Hitting time:          H(i,j) = Vol(G) · (L⁺[j,j] − L⁺[i,j]),  H(i,i) = 0
//	– Commute time:          C(u,v) = H(u,v) + H(v,u) = Vol(G) · R(u,v)
//
// where Vol(G) is the sum of weighted degrees (twice the total edge weight).
// On a connected graph Σ_{i<j} R(i,j) = Kf.
//
// The hitting-time form above drops the degree-weighted correction term of the
// general random-walk formula; it is exact on regular graphs, and the commute
// time derived from it is exact on every connected graph.
//
// Complexity:
//
//	– Time:  O(V³) for the SVD, O(V² + E) for the Laplacian and every derived matrix.
//	– Space: O(V²) (L, L⁺, H are dense).
//
// Options:
//
//	– WithTolerance(rcond):   singular values σ ≤ rcond·σ_max are treated as zero (default 1e-15).
//	– WithEpsilon(eps):       structural tolerance for Laplacian/symmetry checks (default 1e-9).
//	– WithAllowDisconnected:  compute on disconnected graphs instead of failing.
//	– WithLogger(l):          logrus.FieldLogger for debug traces (default: discard).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrEmptyGraph        if the graph has no vertices.
//	– ErrDisconnected      if the graph has several components (strict mode).
//	– ErrNilResult         if a nil or incomplete *KirchhoffResult is passed on.
//	– ErrDimensionMismatch if the graph no longer matches a result's vertex order.
//	– ErrVertexNotFound    if a queried vertex is not part of the result.
//
// Example usage:
//
//	a, err := resistance.Analyze(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, _ := a.EffectiveResistance("A", "B")
//	fmt.Printf("Kf=%.4f R(A,B)=%.4f\n", a.Index, r)
package resistance
