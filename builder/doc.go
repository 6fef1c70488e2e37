// SPDX-License-Identifier: MIT

// Package builder constructs canonical weighted graphs and synthetic price
// series for tests, examples and benchmarks of the resistance computations.
//
// Graph fixtures are composed through one orchestrator:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSymbNumb("v"), builder.WithConstantWeight(2)},
//	    builder.Path(5))
//
// The package offers:
//
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols).
//     – RandomSparse(n, p): Erdős–Rényi trials, already-adjacent pairs skipped.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Edge-weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. Weights are conductances and must stay positive.
//   - Price series: BuildPriceSeries(days, seed, opts...) simulates daily
//     closes by geometric Brownian motion.
//
// Closed-form Kirchhoff indices for unit weights, handy as test oracles:
//
//	Kf(P_n) = (n³ − n)/6    Kf(C_n) = (n³ − n)/12
//	Kf(K_n) = n − 1         Kf(S_n) = (n − 1)²
//
// Guarantees:
//   - Determinism: equal inputs, options, seed and constructor order give
//     identical graphs and series.
//   - Option constructors panic on nonsensical values; constructors return
//     sentinel errors and never panic.
package builder
