// Package registry maps the string type tags carried by node descriptors to
// the concrete vertex kinds the graph engine instantiates.
//
// The registry is an explicit value passed into graph construction rather
// than a package-level table, so tests and embedders can substitute their
// own tag universe. It holds three lookup surfaces: the type-tag → kind
// table, the set of file-tool tags (which win over the general table), and
// optional per-tag default parameters.
//
// A built-in table covers the standard editor categories; additional tags
// can be registered programmatically or loaded from HCL manifest files.
package registry
