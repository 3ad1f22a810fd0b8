package partition

import "fmt"

// AtMostK encodes "at most k of literals are true" with the sequential
// counter encoding. Counter registers C[i][j] mean "among the first i+1
// literals at least j+1 are true"; they are allocated through the shared
// allocator under the given cardinality-instance id, so independent
// invocations never collide.
//
// The last row of registers is never materialized (nothing constrains it),
// so the general case introduces exactly (m-1)*k auxiliary variables.
func AtMostK(allocator *Allocator, instance int, literals []int64, k int) ([][]int64, error) {
	if k < 0 {
		return nil, fmt.Errorf("cardinality bound must be non-negative: %v", k)
	}

	m := len(literals)
	if k >= m { // Vacuously true
		return nil, nil
	}

	if k == 0 { // Forbid every literal individually
		clauses := make([][]int64, 0, m)
		for _, literal := range literals {
			clauses = append(clauses, []int64{-literal})
		}
		return clauses, nil
	}

	counter := func(i, j int) int64 {
		return allocator.Var(CounterKey(instance, i, j))
	}

	clauses := make([][]int64, 0, 2*m*k)

	// Base row: a single literal can only reach a tally of one
	clauses = append(clauses, []int64{-literals[0], counter(0, 0)})
	for j := 1; j < k; j++ {
		clauses = append(clauses, []int64{-counter(0, j)})
	}

	for i := 1; i < m; i++ {
		if i < m-1 {
			// The current literal alone starts the tally, and tallies propagate forward
			clauses = append(clauses, []int64{-literals[i], counter(i, 0)})
			clauses = append(clauses, []int64{-counter(i-1, 0), counter(i, 0)})

			for j := 1; j < k; j++ {
				clauses = append(clauses, []int64{-counter(i-1, j), counter(i, j)})
				clauses = append(clauses, []int64{-literals[i], -counter(i-1, j-1), counter(i, j)})
			}
		}

		// Cutoff: the literal cannot fire once the tally has already reached k
		clauses = append(clauses, []int64{-literals[i], -counter(i-1, k-1)})
	}

	return clauses, nil
}
