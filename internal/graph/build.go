package graph

import (
	"context"
	"fmt"

	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/registry"
	"github.com/vk/flowgraphgo/internal/schema"
)

// FromPayload runs the full ingestion pipeline over a raw flow payload and
// returns a ready graph. Fatal errors are referential (an edge naming an
// unknown id), root resolution failures while inlining flows, and cyclic or
// pathologically deep flow nesting. Wiring rejections are not fatal; they
// land in the graph's Report.
func FromPayload(ctx context.Context, payload *schema.FlowPayload, reg *registry.Registry, opts ...Option) (*Graph, error) {
	b := &builder{
		reg:       reg,
		expanding: make(map[string]struct{}),
	}
	return b.build(ctx, payload, opts...)
}

// builder carries the state shared across recursive subgraph builds: the
// type registry plus the flow-expansion guards.
type builder struct {
	reg *registry.Registry

	// expanding holds the ids of flow nodes currently being inlined,
	// guarding against cyclic nesting.
	expanding map[string]struct{}
	depth     int
}

func (b *builder) build(ctx context.Context, payload *schema.FlowPayload, opts ...Option) (*Graph, error) {
	g := newGraph(opts...)
	logger := ctxlog.FromContext(ctx).With("graph_id", g.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Starting graph construction.", "node_count", len(payload.Nodes), "edge_count", len(payload.Edges))

	remaining, err := b.expandFlows(ctx, g, payload.Nodes)
	if err != nil {
		return nil, err
	}
	logger.Debug("Flow expansion complete.", "inlined_vertices", len(g.Vertices))

	b.createVertices(ctx, g, remaining)
	logger.Debug("Vertex creation complete.", "vertex_count", len(g.Vertices))

	if err := g.createEdges(ctx, payload.Edges); err != nil {
		return nil, err
	}
	logger.Debug("Edge creation complete.", "edge_count", len(g.Edges))

	g.wireEdges(ctx)
	g.buildParams(ctx, b.reg)
	g.prune(ctx)

	logger.Debug("Graph construction successful.",
		"vertex_count", len(g.Vertices),
		"fully_wired", g.Report.FullyWired())
	return g, nil
}

// createVertices instantiates a typed vertex for every remaining descriptor.
// Descriptors still tagged "flow" are skipped defensively; expansion should
// already have consumed them.
func (b *builder) createVertices(ctx context.Context, g *Graph, descriptors []*schema.NodeDescriptor) {
	logger := ctxlog.FromContext(ctx)
	for _, d := range descriptors {
		if d.TypeTag() == "flow" {
			logger.Warn("Skipping unexpanded flow descriptor.", "id", d.ID)
			continue
		}
		kind := b.reg.Resolve(d.TypeTag(), d.ConstructTag())
		if kind == registry.KindConnector {
			g.HasConnectors = true
		}
		g.Vertices = append(g.Vertices, NewVertex(d, kind))
	}
}

// createEdges resolves every edge descriptor against the vertex sequence by
// exact id match. An unresolvable endpoint is a fatal referential error.
func (g *Graph) createEdges(ctx context.Context, descriptors []*schema.EdgeDescriptor) error {
	for _, d := range descriptors {
		source, ok := g.VertexByID(d.Source)
		if !ok {
			return fmt.Errorf("source vertex %q: %w", d.Source, ErrVertexNotFound)
		}
		target, ok := g.VertexByID(d.Target)
		if !ok {
			return fmt.Errorf("target vertex %q: %w", d.Target, ErrVertexNotFound)
		}
		g.Edges = append(g.Edges, NewEdge(source, target))
	}
	return nil
}

// wireEdges registers every edge on both of its endpoints. A rejection is
// logged and recorded but never aborts construction; the resulting vertex is
// under-wired, which the caller can detect through the Report.
func (g *Graph) wireEdges(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	partial := make(map[string]struct{})
	for _, e := range g.Edges {
		for _, endpoint := range []*Vertex{e.Source, e.Target} {
			if err := endpoint.AddEdge(e); err != nil {
				logger.Warn("Vertex rejected edge registration.", "vertex", endpoint.ID, "edge", e.String(), "error", err)
				partial[endpoint.ID] = struct{}{}
			}
		}
	}
	for _, v := range g.Vertices {
		if _, ok := partial[v.ID]; ok {
			g.Report.PartiallyWired = append(g.Report.PartiallyWired, v.ID)
		}
	}
}

// buildParams runs each vertex's parameter materialization, then performs
// the one cross-vertex injection: the LLM vertex, when present, is handed to
// every toolkit vertex as its "llm" parameter. When multiple LLM vertices
// exist the last one in construction order wins.
func (g *Graph) buildParams(ctx context.Context, reg *registry.Registry) {
	logger := ctxlog.FromContext(ctx)

	var llm *Vertex
	for _, v := range g.Vertices {
		v.BuildParams(reg)
		if v.Kind == registry.KindLLM {
			llm = v
		}
	}

	if llm == nil {
		return
	}
	for _, v := range g.Vertices {
		if v.Kind == registry.KindToolkit {
			logger.Debug("Injecting LLM vertex into toolkit params.", "toolkit", v.ID, "llm", llm.ID)
			v.Params["llm"] = llm
		}
	}
}

// prune removes every vertex with no incident edges. The one exception is a
// graph of exactly one vertex and zero edges: a single isolated vertex is
// valid and is its own root.
func (g *Graph) prune(ctx context.Context) {
	if len(g.Vertices) == 1 && len(g.Edges) == 0 {
		return
	}

	logger := ctxlog.FromContext(ctx)
	kept := g.Vertices[:0]
	for _, v := range g.Vertices {
		if len(v.Edges) > 0 {
			kept = append(kept, v)
			continue
		}
		logger.Debug("Pruning disconnected vertex.", "id", v.ID)
		g.Report.Pruned = append(g.Report.Pruned, v.ID)
	}
	g.Vertices = kept
}
