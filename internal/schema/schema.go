package schema

// FlowPayload is the top-level `{nodes, edges}` document describing one flow.
// A payload can be nested: a node descriptor may embed another payload via
// its Flow reference, which the graph builder inlines before construction.
type FlowPayload struct {
	Nodes []*NodeDescriptor `json:"nodes" yaml:"nodes"`
	Edges []*EdgeDescriptor `json:"edges" yaml:"edges"`
}

// NodeDescriptor is one untyped node as exported by the editor.
type NodeDescriptor struct {
	ID   string    `json:"id" yaml:"id"`
	Data *NodeData `json:"data" yaml:"data"`
}

// NodeData carries the node's primary type tag and its inner definition.
type NodeData struct {
	Type string    `json:"type" yaml:"type"`
	Node *NodeSpec `json:"node" yaml:"node"`
}

// NodeSpec is the inner `node` object of a descriptor.
type NodeSpec struct {
	// Template maps parameter names to their raw field definitions. The
	// reserved "_type" key holds the language-construct type tag; every
	// other entry is an object whose "value" member, when present, becomes
	// a build-time parameter.
	Template map[string]any `json:"template" yaml:"template"`

	// BaseClasses lists the type tags the node is assignable to.
	BaseClasses []string `json:"base_classes" yaml:"base_classes"`

	// Flow, when non-nil, marks this descriptor as a nested subgraph to be
	// inlined rather than instantiated directly.
	Flow *FlowRef `json:"flow,omitempty" yaml:"flow,omitempty"`
}

// FlowRef wraps the embedded payload of a flow node.
type FlowRef struct {
	Data *FlowPayload `json:"data" yaml:"data"`
}

// EdgeDescriptor names a directed connection between two node ids.
type EdgeDescriptor struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// TypeTag returns the descriptor's primary type tag, or "" when the
// descriptor is structurally incomplete.
func (d *NodeDescriptor) TypeTag() string {
	if d == nil || d.Data == nil {
		return ""
	}
	return d.Data.Type
}

// ConstructTag returns the secondary language-construct tag stored under the
// template's "_type" key, or "" when absent.
func (d *NodeDescriptor) ConstructTag() string {
	if d == nil || d.Data == nil || d.Data.Node == nil {
		return ""
	}
	tag, _ := d.Data.Node.Template["_type"].(string)
	return tag
}

// BaseClasses returns the declared base-class tags, never nil.
func (d *NodeDescriptor) BaseClasses() []string {
	if d == nil || d.Data == nil || d.Data.Node == nil {
		return nil
	}
	return d.Data.Node.BaseClasses
}

// EmbeddedFlow returns the nested payload of a flow node, or nil when the
// descriptor is not a flow node.
func (d *NodeDescriptor) EmbeddedFlow() *FlowPayload {
	if d == nil || d.Data == nil || d.Data.Node == nil || d.Data.Node.Flow == nil {
		return nil
	}
	return d.Data.Node.Flow.Data
}
