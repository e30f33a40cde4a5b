package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Graph is the constructed flow: an ordered sequence of vertices and edges
// (order = discovery order), a root resolution policy, and the build report
// of its construction run.
type Graph struct {
	// ID uniquely identifies this graph instance in log output.
	ID string

	Vertices []*Vertex
	Edges    []*Edge

	// HasConnectors is set when at least one connector-kind vertex was
	// resolved during construction.
	HasConnectors bool

	// Report records partially wired and pruned vertices.
	Report Report

	rootPolicy RootPolicy
}

// Option customizes graph construction.
type Option func(*Graph)

// WithRootPolicy overrides the default root resolution policy.
func WithRootPolicy(policy RootPolicy) Option {
	return func(g *Graph) {
		g.rootPolicy = policy
	}
}

func newGraph(opts ...Option) *Graph {
	g := &Graph{
		ID:         uuid.NewString(),
		rootPolicy: TerminalRootPolicy,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromParts assembles a graph directly from pre-built vertex and edge
// sequences, bypassing the ingestion pipeline. Used for subgraph views.
func NewFromParts(vertices []*Vertex, edges []*Edge, opts ...Option) *Graph {
	g := newGraph(opts...)
	g.Vertices = vertices
	g.Edges = edges
	return g
}

// VertexByID returns the first vertex with the given id in construction
// order, or false when no vertex matches.
func (g *Graph) VertexByID(id string) (*Vertex, bool) {
	for _, v := range g.Vertices {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// SourcesOf returns every vertex that is the source of an edge terminating
// at v.
func (g *Graph) SourcesOf(v *Vertex) []*Vertex {
	var sources []*Vertex
	for _, e := range g.Edges {
		if e.Target == v {
			sources = append(sources, e.Source)
		}
	}
	return sources
}

// Neighbors returns each vertex adjacent to v mapped to the number of
// parallel edges, in either direction, connecting the two.
func (g *Graph) Neighbors(v *Vertex) map[*Vertex]int {
	neighbors := make(map[*Vertex]int)
	for _, e := range g.Edges {
		if !e.Touches(v) {
			continue
		}
		neighbors[e.Other(v)]++
	}
	return neighbors
}

// ChildrenByType returns [v] when typeTag matches the vertex's primary type
// tag or any of its declared base classes, else nil. Despite the name this
// is a single-vertex membership test, kept for editor compatibility.
func (g *Graph) ChildrenByType(v *Vertex, typeTag string) []*Vertex {
	for _, tag := range v.TypeTags() {
		if tag == typeTag {
			return []*Vertex{v}
		}
	}
	return nil
}

// Root resolves the graph's root vertex via the configured policy, or nil
// when the policy yields nothing.
func (g *Graph) Root() *Vertex {
	return g.rootPolicy(g.Vertices, g.Edges)
}

// Build resolves the root vertex and recursively builds the graph from it.
func (g *Graph) Build(ctx context.Context) (map[string]any, error) {
	root := g.Root()
	if root == nil {
		return nil, fmt.Errorf("cannot build graph %s: %w", g.ID, ErrNoRoot)
	}
	return root.Build(ctx)
}

// Equal reports structural equality: both vertex and edge sequences must
// match element-wise, in order.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil {
		return false
	}
	if len(g.Vertices) != len(other.Vertices) || len(g.Edges) != len(other.Edges) {
		return false
	}
	for i, v := range g.Vertices {
		if other.Vertices[i] != v {
			return false
		}
	}
	for i, e := range g.Edges {
		if other.Edges[i] != e {
			return false
		}
	}
	return true
}
