package partition

import (
	"graphpartition/internal/sat"

	"github.com/samber/lo"
)

// Cardinality-instance ids, one per sub-encoder invocation
const (
	instancePartitionUpper = iota // at most n nodes in U
	instancePartitionLower        // at most n nodes in W, i.e. at least n in U
	instanceEdgeBudget            // at most k edges cross
)

// Encoding is the output of Encode: the CNF instance together with the
// allocation table and normalized edge list needed to interpret a model.
type Encoding struct {
	SAT       sat.SAT
	Allocator *Allocator
	Edges     []Edge
	N, K      int
}

// Encode reduces the balanced-partition instance to CNF: edge variables are
// defined as the XOR of their endpoints' node variables, both partition sets
// are forced to exactly n nodes, and at most k edge variables may be true.
// Trivially unsatisfiable values of n and k are left for the solver to
// report; only a negative cardinality bound is rejected.
func Encode(edges []Edge, n, k int) (*Encoding, error) {
	normalized := NormalizeEdges(edges)
	allocator := NewAllocator()

	clauses := make([][]int64, 0, 4*len(normalized))

	// e_j <=> x_u XOR x_v for every edge. Node variables are allocated
	// lazily, so edges sharing a node share its variable.
	for j, edge := range normalized {
		e := allocator.Var(EdgeKey(j))
		xu := allocator.Var(NodeKey(edge.U))
		xv := allocator.Var(NodeKey(edge.V))

		clauses = append(clauses,
			[]int64{xu, xv, -e},
			[]int64{-xu, -xv, -e},
			[]int64{xu, -xv, e},
			[]int64{-xu, xv, e},
		)
	}

	// The partition-size constraints range over every node, isolated ones included
	nodeVars := make([]int64, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		nodeVars = append(nodeVars, allocator.Var(NodeKey(i)))
	}

	upper, err := AtMostK(allocator, instancePartitionUpper, nodeVars, n)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, upper...)

	negated := lo.Map(nodeVars, func(variable int64, _ int) int64 { return -variable })
	lower, err := AtMostK(allocator, instancePartitionLower, negated, n)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, lower...)

	if len(normalized) > 0 {
		edgeVars := make([]int64, 0, len(normalized))
		for j := range normalized {
			edgeVars = append(edgeVars, allocator.Var(EdgeKey(j)))
		}

		budget, err := AtMostK(allocator, instanceEdgeBudget, edgeVars, k)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, budget...)
	}

	return &Encoding{
		SAT:       sat.SAT{Variables: allocator.Count(), Clauses: clauses},
		Allocator: allocator,
		Edges:     normalized,
		N:         n,
		K:         k,
	}, nil
}
