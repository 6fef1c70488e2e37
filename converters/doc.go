// SPDX-License-Identifier: MIT

// Package converters provides adapters between core.Graph and external
// representations:
//   - YAML documents (gopkg.in/yaml.v3): ReadGraph / WriteGraph.
//   - gonum/graph (simple.WeightedUndirectedGraph): ToGonum / FromGonum.
//   - Graphviz DOT (awalterschulze/gographviz): ToDOT / ParseDOT.
//
// The YAML and gonum adapters preserve the vertex insertion order, so a round
// trip keeps the Laplacian index and therefore L and L⁺ unchanged. DOT keeps
// the vertex set, the edges and their weights; the writer may reorder node
// statements, which relabels L but leaves the Kirchhoff index and every
// pairwise resistance unchanged.
// Parallel edges are kept by YAML and DOT and merged (weights summed) by the
// gonum adapter, which leaves the Laplacian unchanged as well.
package converters
