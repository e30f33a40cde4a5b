package graph

import (
	"context"
	"fmt"

	"github.com/vk/flowgraphgo/internal/registry"
	"github.com/vk/flowgraphgo/internal/schema"
)

// Vertex is a typed node in the processing graph, wrapping its raw
// descriptor. The ID is mutated in exactly one place: when a flow node is
// inlined and the subgraph root assumes the flow node's identity. All other
// bookkeeping keys on the vertex pointer, never on the ID.
type Vertex struct {
	ID   string
	Kind registry.Kind
	Data *schema.NodeDescriptor

	// Edges holds every edge incident to this vertex, in registration order.
	Edges []*Edge

	// Params is the vertex's build-time parameter mapping, materialized
	// from its template by BuildParams.
	Params map[string]any

	building bool
	built    bool
	artifact map[string]any
}

// NewVertex instantiates a vertex of the given kind from its descriptor.
func NewVertex(d *schema.NodeDescriptor, kind registry.Kind) *Vertex {
	return &Vertex{
		ID:   d.ID,
		Kind: kind,
		Data: d,
	}
}

// AddEdge registers an incident edge. Registration is rejected when the edge
// does not reference this vertex as either endpoint.
func (v *Vertex) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("vertex %q: cannot register a nil edge", v.ID)
	}
	if e.Source != v && e.Target != v {
		return fmt.Errorf("vertex %q: edge %s does not reference this vertex", v.ID, e)
	}
	v.Edges = append(v.Edges, e)
	return nil
}

// BuildParams materializes the vertex's parameter mapping from its template.
// Every template field carrying a "value" member contributes a parameter;
// registry defaults fill in keys the template does not provide. The pass is
// per-vertex and side-effect free across vertices; re-running it resets
// Params from the descriptor.
func (v *Vertex) BuildParams(reg *registry.Registry) {
	params := make(map[string]any)

	if v.Data != nil && v.Data.Data != nil && v.Data.Data.Node != nil {
		for name, raw := range v.Data.Data.Node.Template {
			if name == "_type" {
				continue
			}
			field, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if value, ok := field["value"]; ok {
				params[name] = value
			}
		}
	}

	for _, tag := range []string{v.Data.TypeTag(), v.Data.ConstructTag()} {
		for name, value := range reg.Defaults(tag) {
			if _, ok := params[name]; !ok {
				params[name] = value
			}
		}
	}

	v.Params = params
}

// Build recursively builds this vertex: every upstream vertex (sources of
// edges terminating here) is built first, then the vertex's own artifact is
// materialized. Results are memoized so shared upstreams build once.
func (v *Vertex) Build(ctx context.Context) (map[string]any, error) {
	if v.built {
		return v.artifact, nil
	}
	if v.building {
		return nil, fmt.Errorf("build cycle detected involving vertex %q", v.ID)
	}
	v.building = true
	defer func() { v.building = false }()

	for _, e := range v.Edges {
		if e.Target != v {
			continue
		}
		if _, err := e.Source.Build(ctx); err != nil {
			return nil, fmt.Errorf("failed to build upstream of vertex %q: %w", v.ID, err)
		}
	}

	artifact := make(map[string]any, len(v.Params))
	for name, value := range v.Params {
		artifact[name] = value
	}
	v.artifact = artifact
	v.built = true
	return v.artifact, nil
}

// TypeTags returns the vertex's primary type tag followed by its declared
// base-class tags.
func (v *Vertex) TypeTags() []string {
	tags := []string{v.Data.TypeTag()}
	return append(tags, v.Data.BaseClasses()...)
}

// String identifies the vertex in logs and error messages.
func (v *Vertex) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.ID)
}
