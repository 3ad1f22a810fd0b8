package partition

import (
	"fmt"

	"graphpartition/internal/sat"

	"github.com/samber/lo"
)

// Result is the decoded outcome of a solving run. U, W and Crossing are only
// populated when Satisfiable is true.
type Result struct {
	Satisfiable bool
	U, W        []int
	Crossing    []Edge
}

// Decode maps a solver model back to a partition. A nil solution means the
// instance is unsatisfiable, which is a first-class outcome, not an error.
//
// Crossing edges are recomputed from U/W membership rather than read from
// the edge variables, so the reported crossing count always matches the
// partition. A table variable missing from the model, an unbalanced
// partition or a busted edge budget are contract violations and fail the
// whole decode.
func Decode(solution sat.SATSolution, encoding *Encoding) (Result, error) {
	if solution == nil {
		return Result{}, nil
	}

	assignment := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal == 0 {
			continue
		}
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		assignment[variable] = literal > 0
	}

	result := Result{Satisfiable: true}
	inU := make(map[int]bool, encoding.N)

	for i := 0; i < 2*encoding.N; i++ {
		variable, ok := encoding.Allocator.Lookup(NodeKey(i))
		if !ok {
			return Result{}, fmt.Errorf("node %v has no variable in the allocation table", i)
		}

		value, ok := assignment[variable]
		if !ok {
			return Result{}, fmt.Errorf("variable %v is missing from the solver model", variable)
		}

		if value {
			result.U = append(result.U, i)
			inU[i] = true
		} else {
			result.W = append(result.W, i)
		}
	}

	if len(result.U) != encoding.N || len(result.W) != encoding.N {
		return Result{}, fmt.Errorf("unbalanced partition in model: |U| = %v, |W| = %v, expected %v", len(result.U), len(result.W), encoding.N)
	}

	result.Crossing = lo.Filter(encoding.Edges, func(edge Edge, _ int) bool {
		return inU[edge.U] != inU[edge.V]
	})

	if len(result.Crossing) > encoding.K {
		return Result{}, fmt.Errorf("model crosses %v edges, budget is %v", len(result.Crossing), encoding.K)
	}

	return result, nil
}
