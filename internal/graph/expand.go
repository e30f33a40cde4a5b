package graph

import (
	"context"
	"fmt"

	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/schema"
)

// maxFlowDepth bounds recursive flow inlining. Editor-produced flows nest a
// handful of levels at most; anything deeper is assumed pathological.
const maxFlowDepth = 32

// expandFlows removes every flow-node descriptor from the list and inlines
// its subgraph contents into g. All other descriptors pass through for the
// regular vertex-construction pass. Expansion is recursive: a nested payload
// may itself contain flow nodes.
func (b *builder) expandFlows(ctx context.Context, g *Graph, descriptors []*schema.NodeDescriptor) ([]*schema.NodeDescriptor, error) {
	remaining := make([]*schema.NodeDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		embedded := d.EmbeddedFlow()
		if embedded == nil {
			remaining = append(remaining, d)
			continue
		}
		if err := b.expandFlow(ctx, g, d, embedded); err != nil {
			return nil, err
		}
	}
	return remaining, nil
}

// expandFlow inlines one flow node: its embedded payload is built into a
// full subgraph through the same pipeline, the subgraph root is renamed to
// the flow node's id so parent edges bind to it, and the subgraph's vertices
// and edges transfer into g. The subgraph object itself is discarded.
func (b *builder) expandFlow(ctx context.Context, g *Graph, d *schema.NodeDescriptor, embedded *schema.FlowPayload) error {
	logger := ctxlog.FromContext(ctx)

	if _, ok := b.expanding[d.ID]; ok {
		return fmt.Errorf("flow node %q: %w", d.ID, ErrFlowCycle)
	}
	if b.depth+1 > maxFlowDepth {
		return fmt.Errorf("flow node %q exceeds %d nesting levels: %w", d.ID, maxFlowDepth, ErrFlowDepth)
	}

	logger.Debug("Inlining flow node.", "id", d.ID, "depth", b.depth+1)
	b.expanding[d.ID] = struct{}{}
	b.depth++
	sub, err := b.build(ctx, embedded)
	b.depth--
	delete(b.expanding, d.ID)
	if err != nil {
		return fmt.Errorf("failed to build subgraph of flow node %q: %w", d.ID, err)
	}

	root := sub.Root()
	if root == nil {
		return fmt.Errorf("flow node %q subgraph: %w", d.ID, ErrNoRoot)
	}

	// The inlined root assumes the flow node's external identity, so parent
	// edges pointing at the flow node id now bind to it.
	oldID := root.ID
	root.ID = d.ID

	// Guard against subgraph edges constructed before the rename: any
	// endpoint still carrying the old root id is repointed to the root.
	for _, e := range sub.Edges {
		if e.Source != root && e.Source.ID == oldID {
			e.Source = root
		}
		if e.Target != root && e.Target.ID == oldID {
			e.Target = root
		}
	}

	// Ownership transfer: the subgraph's contents move into the parent.
	g.Vertices = append(g.Vertices, sub.Vertices...)
	g.Edges = append(g.Edges, sub.Edges...)
	g.HasConnectors = g.HasConnectors || sub.HasConnectors
	g.Report.merge(&sub.Report)

	logger.Debug("Flow node inlined.", "id", d.ID, "root_was", oldID,
		"vertices", len(sub.Vertices), "edges", len(sub.Edges))
	return nil
}
