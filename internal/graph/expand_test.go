package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgraphgo/internal/registry"
	"github.com/vk/flowgraphgo/internal/schema"
	"github.com/vk/flowgraphgo/internal/testutil"
)

func TestExpandFlow_PreservesExternalBindings(t *testing.T) {
	// Parent: A -> F, where F is a flow node whose subgraph is r0 <- s0.
	sub := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.Node("s0", "prompts", nil),
			testutil.Node("r0", "chains", nil),
		},
		[]*schema.EdgeDescriptor{testutil.Edge("s0", "r0")},
	)
	payload := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.Node("A", "llms", nil),
			testutil.FlowNode("F", sub),
		},
		[]*schema.EdgeDescriptor{testutil.Edge("A", "F")},
	)

	g := buildGraph(t, payload)

	// The subgraph root was renamed: no vertex with the original id remains.
	_, ok := g.VertexByID("r0")
	assert.False(t, ok)

	inlinedRoot, ok := g.VertexByID("F")
	require.True(t, ok)
	assert.Equal(t, registry.KindChain, inlinedRoot.Kind, "inlined root keeps its own kind")

	// The parent edge A -> F binds to the inlined root object.
	a, ok := g.VertexByID("A")
	require.True(t, ok)
	var bound bool
	for _, e := range g.Edges {
		if e.Source == a && e.Target == inlinedRoot {
			bound = true
		}
	}
	assert.True(t, bound, "expected edge A -> inlined root")

	// Subgraph internals survive: s0 still feeds the renamed root.
	s0, ok := g.VertexByID("s0")
	require.True(t, ok)
	assert.Contains(t, g.SourcesOf(inlinedRoot), s0)

	require.Len(t, g.Vertices, 3)
	require.Len(t, g.Edges, 2)
}

func TestExpandFlow_TransitiveNesting(t *testing.T) {
	inner := testutil.Payload(
		[]*schema.NodeDescriptor{testutil.Node("deep", "llms", nil)},
		nil,
	)
	middle := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.Node("mid", "chains", nil),
			testutil.FlowNode("inner-flow", inner),
		},
		[]*schema.EdgeDescriptor{testutil.Edge("inner-flow", "mid")},
	)
	payload := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.Node("top", "toolkits", nil),
			testutil.FlowNode("mid-flow", middle),
		},
		[]*schema.EdgeDescriptor{testutil.Edge("mid-flow", "top")},
	)

	g := buildGraph(t, payload)

	// Both flow levels were inlined: the inner single-vertex subgraph root
	// took the inner flow node's id, the middle root took the outer one's.
	for _, id := range []string{"inner-flow", "mid-flow", "top"} {
		_, ok := g.VertexByID(id)
		assert.True(t, ok, "expected vertex %q", id)
	}
	for _, id := range []string{"deep", "mid"} {
		_, ok := g.VertexByID(id)
		assert.False(t, ok, "expected %q to be renamed away", id)
	}
	assert.Len(t, g.Vertices, 3)
	assert.Len(t, g.Edges, 2)
}

func TestExpandFlow_SubgraphWithoutRoot(t *testing.T) {
	// Every subgraph vertex is the source of some edge, so no root resolves.
	sub := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.Node("a", "llms", nil),
			testutil.Node("b", "chains", nil),
		},
		[]*schema.EdgeDescriptor{testutil.Edge("a", "b"), testutil.Edge("b", "a")},
	)
	payload := testutil.Payload(
		[]*schema.NodeDescriptor{testutil.FlowNode("F", sub)},
		nil,
	)

	_, err := FromPayload(context.Background(), payload, registry.New())
	require.ErrorIs(t, err, ErrNoRoot)
	assert.ErrorContains(t, err, `flow node "F"`)
}

func TestExpandFlow_CycleDetected(t *testing.T) {
	// A nested flow node reusing an ancestor's id marks a cyclic reference.
	inner := testutil.Payload(
		[]*schema.NodeDescriptor{
			testutil.FlowNode("F", testutil.Payload(
				[]*schema.NodeDescriptor{testutil.Node("leaf", "llms", nil)},
				nil,
			)),
		},
		nil,
	)
	payload := testutil.Payload(
		[]*schema.NodeDescriptor{testutil.FlowNode("F", inner)},
		nil,
	)

	_, err := FromPayload(context.Background(), payload, registry.New())
	require.ErrorIs(t, err, ErrFlowCycle)
}

func TestExpandFlow_DepthLimit(t *testing.T) {
	// Build nesting one level past the limit, innermost first.
	payload := testutil.Payload(
		[]*schema.NodeDescriptor{testutil.Node("leaf", "llms", nil)},
		nil,
	)
	for i := 0; i <= maxFlowDepth; i++ {
		payload = testutil.Payload(
			[]*schema.NodeDescriptor{testutil.FlowNode(flowID(i), payload)},
			nil,
		)
	}

	_, err := FromPayload(context.Background(), payload, registry.New())
	require.ErrorIs(t, err, ErrFlowDepth)
}

func flowID(i int) string {
	return "flow-" + string(rune('a'+i%26)) + "-" + string(rune('0'+i%10))
}
