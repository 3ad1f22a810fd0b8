package partition

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtMostKRejectsNegativeBound(t *testing.T) {
	// Arrange
	allocator := NewAllocator()
	literals := []int64{allocator.Var(NodeKey(0))}

	// Act
	clauses, err := AtMostK(allocator, 0, literals, -1)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, clauses)
	assert.Equal(t, uint64(1), allocator.Count()) // No counters were allocated
}

func TestAtMostKIsVacuousWhenBoundCoversAllLiterals(t *testing.T) {
	for _, k := range []int{3, 4, 10} {
		// Arrange
		allocator := NewAllocator()
		literals := make([]int64, 3)
		for i := range literals {
			literals[i] = allocator.Var(NodeKey(i))
		}

		// Act
		clauses, err := AtMostK(allocator, 0, literals, k)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, clauses)
		assert.Equal(t, 0, allocator.CountKind(KindCounter))
	}
}

func TestAtMostZeroForbidsEveryLiteral(t *testing.T) {
	// Arrange
	allocator := NewAllocator()
	literals := make([]int64, 4)
	for i := range literals {
		literals[i] = allocator.Var(NodeKey(i))
	}

	// Act
	clauses, err := AtMostK(allocator, 0, literals, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, clauses, 4)
	for i, clause := range clauses {
		assert.Equal(t, []int64{-literals[i]}, clause)
	}
	assert.Equal(t, 0, allocator.CountKind(KindCounter))
}

func TestAtMostKAuxiliaryVariableCount(t *testing.T) {
	for m := 2; m <= 7; m++ {
		for k := 1; k < m; k++ {
			// Arrange
			allocator := NewAllocator()
			literals := make([]int64, m)
			for i := range literals {
				literals[i] = allocator.Var(NodeKey(i))
			}

			// Act
			_, err := AtMostK(allocator, 3, literals, k)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, (m-1)*k, allocator.CountKind(KindCounter), "m=%v k=%v", m, k)
		}
	}
}

// Exhaustively checks equisatisfiability: an assignment of the base literals
// extends to the auxiliary counters iff at most k literals are true.
func TestAtMostKSemantics(t *testing.T) {
	for m := 1; m <= 5; m++ {
		for k := 1; k < m; k++ {
			// Arrange: literals take ids 1..m, counters the ids above them
			allocator := NewAllocator()
			literals := make([]int64, m)
			for i := range literals {
				literals[i] = allocator.Var(NodeKey(i))
			}

			// Act
			clauses, err := AtMostK(allocator, 5, literals, k)
			require.NoError(t, err)

			// Assert
			aux := int(allocator.Count()) - m
			for base := 0; base < 1<<m; base++ {
				expected := bits.OnesCount(uint(base)) <= k

				satisfiable := false
				for extension := 0; extension < 1<<aux && !satisfiable; extension++ {
					assignment := make([]bool, int(allocator.Count())+1)
					for i := 0; i < m; i++ {
						assignment[i+1] = base>>i&1 == 1
					}
					for i := 0; i < aux; i++ {
						assignment[m+i+1] = extension>>i&1 == 1
					}
					satisfiable = satisfiesAll(clauses, assignment)
				}

				assert.Equal(t, expected, satisfiable, "m=%v k=%v literals=%b", m, k, base)
			}
		}
	}
}

func TestAtMostKWorksOnNegatedLiterals(t *testing.T) {
	// Arrange: at most 1 of {-x1, -x2, -x3} true, i.e. at least 2 of the
	// variables true
	allocator := NewAllocator()
	variables := make([]int64, 3)
	literals := make([]int64, 3)
	for i := range variables {
		variables[i] = allocator.Var(NodeKey(i))
		literals[i] = -variables[i]
	}

	// Act
	clauses, err := AtMostK(allocator, 1, literals, 1)
	require.NoError(t, err)

	// Assert
	aux := int(allocator.Count()) - 3
	for base := 0; base < 1<<3; base++ {
		expected := bits.OnesCount(uint(base)) >= 2

		satisfiable := false
		for extension := 0; extension < 1<<aux && !satisfiable; extension++ {
			assignment := make([]bool, int(allocator.Count())+1)
			for i := 0; i < 3; i++ {
				assignment[i+1] = base>>i&1 == 1
			}
			for i := 0; i < aux; i++ {
				assignment[3+i+1] = extension>>i&1 == 1
			}
			satisfiable = satisfiesAll(clauses, assignment)
		}

		assert.Equal(t, expected, satisfiable, "variables=%b", base)
	}
}

func satisfiesAll(clauses [][]int64, assignment []bool) bool {
	for _, clause := range clauses {
		satisfied := false
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if (literal > 0) == assignment[variable] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
