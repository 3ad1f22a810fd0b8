package sat

const kissatName = "kissat"

type kissatSolver struct{}

func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(instance SAT) (SATSolution, error) {
	return runSolver(kissatName, instance, "-q", "--relaxed")
}
