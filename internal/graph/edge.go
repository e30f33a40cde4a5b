package graph

import "fmt"

// Edge is a directed connection between two vertices. Direction is semantic
// (source feeds target) but adjacency queries treat it bidirectionally.
// Endpoints are repointed at most once, during flow inlining.
type Edge struct {
	Source *Vertex
	Target *Vertex
}

// NewEdge connects source to target. Both endpoints must already exist; the
// builder validates that before calling.
func NewEdge(source, target *Vertex) *Edge {
	return &Edge{Source: source, Target: target}
}

// Other returns the endpoint opposite to v. When the edge is a self-loop or
// does not touch v, the source endpoint is returned.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.Source == v {
		return e.Target
	}
	return e.Source
}

// Touches reports whether v is one of the edge's endpoints.
func (e *Edge) Touches(v *Vertex) bool {
	return e.Source == v || e.Target == v
}

// SameEndpoints reports endpoint equality with another edge, ignoring
// direction.
func (e *Edge) SameEndpoints(other *Edge) bool {
	if other == nil {
		return false
	}
	return (e.Source == other.Source && e.Target == other.Target) ||
		(e.Source == other.Target && e.Target == other.Source)
}

// String identifies the edge in logs and error messages.
func (e *Edge) String() string {
	return fmt.Sprintf("%s->%s", e.Source.ID, e.Target.ID)
}
