// Package testutil provides shared helpers for constructing flow payloads
// and capturing log output in tests.
package testutil

import (
	"bytes"
	"sync"

	"github.com/vk/flowgraphgo/internal/schema"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Node builds a node descriptor with the given id, primary type tag and
// template. Base classes are optional trailing arguments.
func Node(id, typeTag string, template map[string]any, baseClasses ...string) *schema.NodeDescriptor {
	if template == nil {
		template = map[string]any{}
	}
	return &schema.NodeDescriptor{
		ID: id,
		Data: &schema.NodeData{
			Type: typeTag,
			Node: &schema.NodeSpec{
				Template:    template,
				BaseClasses: baseClasses,
			},
		},
	}
}

// FlowNode builds a flow-node descriptor embedding the given payload.
func FlowNode(id string, embedded *schema.FlowPayload) *schema.NodeDescriptor {
	return &schema.NodeDescriptor{
		ID: id,
		Data: &schema.NodeData{
			Type: "flow",
			Node: &schema.NodeSpec{
				Template: map[string]any{},
				Flow:     &schema.FlowRef{Data: embedded},
			},
		},
	}
}

// Edge builds an edge descriptor between two node ids.
func Edge(source, target string) *schema.EdgeDescriptor {
	return &schema.EdgeDescriptor{Source: source, Target: target}
}

// Payload assembles a flow payload from descriptors.
func Payload(nodes []*schema.NodeDescriptor, edges []*schema.EdgeDescriptor) *schema.FlowPayload {
	return &schema.FlowPayload{Nodes: nodes, Edges: edges}
}

// Param wraps a value the way editor templates do, as a field object with a
// "value" member.
func Param(value any) map[string]any {
	return map[string]any{"value": value}
}
