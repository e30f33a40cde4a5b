package graph

// Report captures the non-fatal outcomes of one construction run. A graph is
// usable even when some vertices rejected edge registration; the report lets
// callers distinguish a fully wired graph from a partially wired one instead
// of having to grep logs.
type Report struct {
	// PartiallyWired lists the ids of vertices that rejected at least one
	// edge registration.
	PartiallyWired []string

	// Pruned lists the ids of vertices removed for having no incident edges.
	Pruned []string
}

// FullyWired reports whether every edge registered cleanly on both of its
// endpoints.
func (r *Report) FullyWired() bool {
	return len(r.PartiallyWired) == 0
}

// merge folds a subgraph's report into the parent's after inlining.
func (r *Report) merge(other *Report) {
	r.PartiallyWired = append(r.PartiallyWired, other.PartiallyWired...)
	r.Pruned = append(r.Pruned, other.Pruned...)
}
