// Package graph turns a declarative flow payload into an executable directed
// graph of typed vertices and resolves it to a single buildable root.
//
// Construction is a single synchronous pass over in-memory collections:
//
//	expand flows → create vertices → create edges → wire → params → prune
//
// Flow nodes (descriptors embedding a whole nested payload) are inlined
// recursively before any vertex of the current level is instantiated; the
// nested root assumes the flow node's external identity so parent edges keep
// binding correctly. Edge descriptors naming an unknown id abort
// construction; a vertex rejecting edge registration does not — that vertex
// is recorded in the build Report and construction continues.
//
// Vertices and edges are referenced by pointer throughout. Pointer identity
// is the stable key for adjacency and traversal bookkeeping, so renaming a
// vertex id during flow inlining never corrupts set membership.
package graph
