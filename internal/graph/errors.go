package graph

import "errors"

var (
	// ErrVertexNotFound reports an edge descriptor naming an id with no
	// corresponding vertex. Fatal to construction.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrNoRoot reports that the root policy resolved no vertex, either at
	// build time or while inlining a flow node's subgraph.
	ErrNoRoot = errors.New("no root vertex found")

	// ErrFlowCycle reports a flow node whose nesting chain references an id
	// already being inlined.
	ErrFlowCycle = errors.New("flow expansion cycle detected")

	// ErrFlowDepth reports flow nesting deeper than the expansion limit.
	ErrFlowDepth = errors.New("flow nesting too deep")
)
