package graph

// RootPolicy selects the root vertex of a graph, given its vertex and edge
// sequences in construction order. Returning nil means no root is
// resolvable. The policy is injectable so embedders can change how the
// entry point of a flow is chosen.
type RootPolicy func(vertices []*Vertex, edges []*Edge) *Vertex

// TerminalRootPolicy is the default root policy: it selects the first vertex
// in construction order that is the source of no edge. Such a vertex is a
// sink of the dependency relation and therefore the natural point to build
// the whole flow from. A graph with a single isolated vertex resolves to
// that vertex.
func TerminalRootPolicy(vertices []*Vertex, edges []*Edge) *Vertex {
	for _, v := range vertices {
		isSource := false
		for _, e := range edges {
			if e.Source == v {
				isSource = true
				break
			}
		}
		if !isSource {
			return v
		}
	}
	return nil
}
