package app

import (
	"context"
	"fmt"

	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/graph"
	"github.com/vk/flowgraphgo/internal/schema"
)

// Run executes the main application logic: load the flow file, construct the
// graph, and build it from its root.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Loading flow payload.", "path", cfg.FlowPath)
	payload, err := schema.LoadFile(cfg.FlowPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Flow payload loaded.", "node_count", len(payload.Nodes), "edge_count", len(payload.Edges))

	g, err := graph.FromPayload(ctx, payload, a.registry)
	if err != nil {
		return fmt.Errorf("failed to construct flow graph: %w", err)
	}

	if !g.Report.FullyWired() {
		a.logger.Warn("Graph is only partially wired.", "vertices", g.Report.PartiallyWired)
	}
	if len(g.Report.Pruned) > 0 {
		a.logger.Info("Disconnected vertices were pruned.", "vertices", g.Report.Pruned)
	}

	root := g.Root()
	if root == nil {
		return fmt.Errorf("flow %s has no resolvable root vertex", cfg.FlowPath)
	}
	a.logger.Info("Flow graph constructed.",
		"graph_id", g.ID,
		"vertex_count", len(g.Vertices),
		"edge_count", len(g.Edges),
		"root", root.ID,
		"has_connectors", g.HasConnectors)

	artifact, err := g.Build(ctx)
	if err != nil {
		return fmt.Errorf("failed to build flow graph: %w", err)
	}
	a.logger.Info("Flow built successfully.", "root", root.ID, "root_param_count", len(artifact))

	a.logger.Debug("App.Run method finished.")
	return nil
}
