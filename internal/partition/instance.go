package partition

import "slices"

// Edge is an unordered pair of distinct node ids. After normalization the
// smaller id is always stored in U.
type Edge struct {
	U, V int
}

// NormalizeEdges removes self-loops and duplicates, stores every pair as
// (min, max) and sorts the result lexicographically. The zero-based position
// of an edge in the returned slice is its identity for encoding purposes.
func NormalizeEdges(edges []Edge) []Edge {
	seen := make(map[Edge]bool, len(edges))
	normalized := make([]Edge, 0, len(edges))

	for _, edge := range edges {
		if edge.U == edge.V {
			continue
		}
		if edge.U > edge.V {
			edge.U, edge.V = edge.V, edge.U
		}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		normalized = append(normalized, edge)
	}

	slices.SortFunc(normalized, func(a, b Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})

	return normalized
}
