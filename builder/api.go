// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// api.go - public entry point for graph construction.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructor factories live in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is against builder and
//     core sentinels (ErrTooFewVertices, core.ErrBadWeight, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
