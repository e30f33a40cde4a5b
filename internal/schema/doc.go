// Package schema defines the raw flow payload consumed by the graph engine.
//
// A payload is the minimal `{nodes, edges}` document exported by the visual
// flow editor. Only the fields the engine actually reads are modeled here;
// everything else a descriptor carries is preserved untouched inside the
// Template map. Payloads decode from JSON (the editor's native format) or
// YAML (hand-written flows).
package schema
