// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	opToDOT    = "ToDOT"
	opParseDOT = "ParseDOT"

	// DefaultGraphName is the DOT graph identifier used by ToDOT.
	DefaultGraphName = "G"

	attrWeight = "weight"
	attrLabel  = "label"

	panicEmptyGraphName = "converters: WithGraphName: name must be non-empty"
	panicNilEdgeLabel   = "converters: WithEdgeLabel: fn must be non-nil"
)

// DOTOption customizes ToDOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	name  string
	label func(*core.Edge) string
}

// WithGraphName sets the DOT graph identifier. Panics on "".
func WithGraphName(name string) DOTOption {
	if name == "" {
		panic(panicEmptyGraphName)
	}

	return func(c *dotConfig) { c.name = name }
}

// WithEdgeLabel attaches fn(e) as the label attribute of every edge.
// Panics on nil fn.
func WithEdgeLabel(fn func(*core.Edge) string) DOTOption {
	if fn == nil {
		panic(panicNilEdgeLabel)
	}

	return func(c *dotConfig) { c.label = fn }
}

// ToDOT renders g as an undirected DOT graph. Vertices are added in
// insertion order, then edges in insertion order, each carrying its weight
// attribute. All identifiers are quoted, so IDs like "0,1" survive.
func ToDOT(g *core.Graph, opts ...DOTOption) (string, error) {
	if g == nil {
		return "", convErrorf(opToDOT, ErrNilGraph)
	}
	cfg := dotConfig{name: DefaultGraphName}
	for _, opt := range opts {
		opt(&cfg)
	}

	ast, err := gographviz.ParseString(fmt.Sprintf("graph %s {}", quoteID(cfg.name)))
	if err != nil {
		return "", convErrorf(opToDOT, fmt.Errorf("%w: graph name %q: %v", ErrInvalidDocument, cfg.name, err))
	}
	dst := gographviz.NewGraph()
	if err = gographviz.Analyse(ast, dst); err != nil {
		return "", convErrorf(opToDOT, err)
	}

	for _, id := range g.Vertices() {
		if err = dst.AddNode(dst.Name, quoteID(id), nil); err != nil {
			return "", convErrorf(opToDOT, fmt.Errorf("vertex %q: %w", id, err))
		}
	}
	for _, e := range g.Edges() {
		attrs := map[string]string{
			attrWeight: quoteID(strconv.FormatFloat(e.Weight, 'g', -1, 64)),
		}
		if cfg.label != nil {
			attrs[attrLabel] = quoteID(cfg.label(e))
		}
		if err = dst.AddEdge(quoteID(e.From), quoteID(e.To), false, attrs); err != nil {
			return "", convErrorf(opToDOT, fmt.Errorf("edge %s: %w", e.ID, err))
		}
	}

	return dst.String(), nil
}

// ParseDOT reads an undirected DOT graph. Nodes are added in the order the
// parser reports them; endpoints only named by edges follow as edges reach
// them.
// The weight attribute defaults to 1. A graph with repeated vertex pairs is
// returned as a multigraph.
//
// Errors:
//   - ErrDecode for DOT syntax errors.
//   - ErrInvalidDocument for digraphs, self-loops or unusable weights.
func ParseDOT(src string) (*core.Graph, error) {
	parsed, err := gographviz.Read([]byte(src))
	if err != nil {
		return nil, convErrorf(opParseDOT, fmt.Errorf("%w: %v", ErrDecode, err))
	}
	if parsed.Directed {
		return nil, convErrorf(opParseDOT, fmt.Errorf("%w: digraph not supported", ErrInvalidDocument))
	}

	var gopts []core.GraphOption
	if hasParallel(parsed.Edges.Edges) {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for _, n := range parsed.Nodes.Nodes {
		if err = g.AddVertex(unquoteID(n.Name)); err != nil {
			return nil, convErrorf(opParseDOT, fmt.Errorf("%w: node %s: %w", ErrInvalidDocument, n.Name, err))
		}
	}

	var w float64
	for i, e := range parsed.Edges.Edges {
		w = 1
		if raw, ok := e.Attrs[gographviz.Attr(attrWeight)]; ok {
			if w, err = strconv.ParseFloat(unquoteID(raw), 64); err != nil {
				return nil, convErrorf(opParseDOT, fmt.Errorf("%w: edge %d weight %s: %v", ErrInvalidDocument, i, raw, err))
			}
		}
		if _, err = g.AddEdge(unquoteID(e.Src), unquoteID(e.Dst), w); err != nil {
			return nil, convErrorf(opParseDOT, fmt.Errorf("%w: edge %d %s--%s: %w", ErrInvalidDocument, i, e.Src, e.Dst, err))
		}
	}

	return g, nil
}

// hasParallel reports whether two edges join the same unordered pair.
func hasParallel(edges []*gographviz.Edge) bool {
	seen := make(map[[2]string]struct{}, len(edges))
	var key [2]string
	for _, e := range edges {
		key = [2]string{unquoteID(e.Src), unquoteID(e.Dst)}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
	}

	return false
}

// quoteID wraps s in double quotes, escaping backslashes and quotes.
func quoteID(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')

	return b.String()
}

// unquoteID reverses quoteID. Unquoted IDs are returned as is; a backslash
// not followed by a backslash or quote is kept literally.
func unquoteID(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	body := s[1 : len(s)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) && (body[i+1] == '\\' || body[i+1] == '"') {
			i++
		}
		b.WriteByte(body[i])
	}

	return b.String()
}
