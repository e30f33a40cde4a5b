package graph

// FromRoot reconstructs a graph view containing exactly the vertices and
// edges reachable from root over the incident-edge relation. Traversal is
// iterative depth-first search; discovery order determines the sequences of
// the resulting graph. The view shares vertex and edge objects with the
// original graph.
func FromRoot(root *Vertex, opts ...Option) *Graph {
	visitedVertices := make(map[*Vertex]struct{})
	visitedEdges := make(map[*Edge]struct{})

	var vertices []*Vertex
	var edges []*Edge

	stack := []*Vertex{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visitedVertices[v]; ok {
			continue
		}
		visitedVertices[v] = struct{}{}
		vertices = append(vertices, v)

		for _, e := range v.Edges {
			if _, ok := visitedEdges[e]; ok {
				continue
			}
			visitedEdges[e] = struct{}{}
			edges = append(edges, e)
			stack = append(stack, e.Other(v))
		}
	}

	return NewFromParts(vertices, edges, opts...)
}
