package partition

import (
	"testing"

	"graphpartition/internal/sat"

	. "github.com/onsi/gomega"
)

// Round-trips hand-picked satisfiable instances: the constructed model must
// satisfy every emitted clause, and decoding it must reproduce the partition.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("Two disjoint edges, no crossing allowed", func(t *testing.T) {
		g := NewWithT(t)

		// Arrange
		encoding, err := Encode([]Edge{{0, 1}, {2, 3}}, 2, 0)
		g.Expect(err).NotTo(HaveOccurred())

		// Act
		solution := modelFor(encoding, map[int]bool{0: true, 1: true})
		g.Expect(sat.AssertSATSolution(encoding.SAT, solution)).To(BeTrue())

		result, err := Decode(solution, encoding)

		// Assert
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result.Satisfiable).To(BeTrue())
		g.Expect(result.U).To(Equal([]int{0, 1}))
		g.Expect(result.W).To(Equal([]int{2, 3}))
		g.Expect(result.Crossing).To(BeEmpty())
	})

	t.Run("Complete graph on four nodes crosses exactly four edges", func(t *testing.T) {
		g := NewWithT(t)

		// Arrange
		edges := []Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
		encoding, err := Encode(edges, 2, 4)
		g.Expect(err).NotTo(HaveOccurred())

		// Act: any balanced split works, crossing count is invariant
		for _, split := range []map[int]bool{
			{0: true, 1: true},
			{0: true, 2: true},
			{0: true, 3: true},
		} {
			solution := modelFor(encoding, split)
			g.Expect(sat.AssertSATSolution(encoding.SAT, solution)).To(BeTrue())

			result, err := Decode(solution, encoding)

			// Assert
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(result.U).To(HaveLen(2))
			g.Expect(result.W).To(HaveLen(2))
			g.Expect(result.Crossing).To(HaveLen(4))
		}
	})

	t.Run("Single edge over two nodes is unsatisfiable", func(t *testing.T) {
		g := NewWithT(t)

		// Arrange: both partition sets get one node, so the edge must cross,
		// but k=0 forbids it
		encoding, err := Encode([]Edge{{0, 1}}, 1, 0)
		g.Expect(err).NotTo(HaveOccurred())

		// Act: exhaust every assignment over the formula's variables
		variables := int(encoding.SAT.Variables)
		satisfiable := false
		for mask := 0; mask < 1<<variables && !satisfiable; mask++ {
			assignment := make([]bool, variables+1)
			for i := 0; i < variables; i++ {
				assignment[i+1] = mask>>i&1 == 1
			}
			satisfiable = satisfiesAll(encoding.SAT.Clauses, assignment)
		}

		// Assert
		g.Expect(satisfiable).To(BeFalse())
	})
}
