package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDIMACS(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 3,
		Clauses: [][]int64{
			{1, -2},
			{-1, 2, 3},
			{-3},
		},
	}

	// Act
	dimacs := instance.ToDIMACS()

	// Assert
	assert.Equal(t, "p cnf 3 3\n1 -2 0\n-1 2 3 0\n-3 0\n", dimacs)
}

func TestToDIMACSEmptyFormula(t *testing.T) {
	assert.Equal(t, "p cnf 0 0\n", SAT{}.ToDIMACS())
}
