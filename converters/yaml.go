// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	opReadGraph  = "ReadGraph"
	opWriteGraph = "WriteGraph"
)

// Document is the YAML shape of a graph:
//
//	multi_edges: false
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 2}
//	  - {from: B, to: C}          # weight defaults to 1
//
// Nodes fix the enumeration order; endpoints not listed are appended in the
// order edges mention them.
type Document struct {
	MultiEdges bool           `yaml:"multi_edges,omitempty"`
	Nodes      []string       `yaml:"nodes"`
	Edges      []EdgeDocument `yaml:"edges"`
}

// EdgeDocument is one undirected edge; a nil Weight means 1.
type EdgeDocument struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// ReadGraph decodes one YAML Document from r and builds the graph.
// Unknown keys are rejected.
//
// Errors:
//   - ErrDecode for malformed YAML or unknown fields.
//   - ErrInvalidDocument for a repeated node, or wrapping the core error
//     (ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrEmptyVertexID)
//     with the offending entry.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, convErrorf(opReadGraph, fmt.Errorf("%w: %v", ErrDecode, err))
	}

	return doc.Graph()
}

// Graph builds a core.Graph from the document.
func (d Document) Graph() (*core.Graph, error) {
	var gopts []core.GraphOption
	if d.MultiEdges {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for i, id := range d.Nodes {
		if g.HasVertex(id) {
			return nil, convErrorf(opReadGraph, fmt.Errorf("%w: nodes[%d]: duplicate label %q", ErrInvalidDocument, i, id))
		}
		if err := g.AddVertex(id); err != nil {
			return nil, convErrorf(opReadGraph, fmt.Errorf("%w: nodes[%d]: %w", ErrInvalidDocument, i, err))
		}
	}
	var w float64
	for i, e := range d.Edges {
		w = 1
		if e.Weight != nil {
			w = *e.Weight
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, convErrorf(opReadGraph, fmt.Errorf("%w: edges[%d] %s--%s: %w", ErrInvalidDocument, i, e.From, e.To, err))
		}
	}

	return g, nil
}

// NewDocument snapshots g into a Document (vertex and edge insertion order).
func NewDocument(g *core.Graph) (Document, error) {
	if g == nil {
		return Document{}, ErrNilGraph
	}
	doc := Document{
		MultiEdges: g.Multigraph(),
		Nodes:      g.Vertices(),
	}
	edges := g.Edges()
	doc.Edges = make([]EdgeDocument, len(edges))
	for i, e := range edges {
		w := e.Weight
		doc.Edges[i] = EdgeDocument{From: e.From, To: e.To, Weight: &w}
	}

	return doc, nil
}

// WriteGraph encodes g as a YAML Document to w with two-space indentation.
func WriteGraph(w io.Writer, g *core.Graph) error {
	doc, err := NewDocument(g)
	if err != nil {
		return convErrorf(opWriteGraph, err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return convErrorf(opWriteGraph, err)
	}

	return enc.Close()
}
