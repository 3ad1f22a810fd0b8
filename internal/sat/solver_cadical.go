package sat

const cadicalName = "cadical"

type cadicalSolver struct{}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(instance SAT) (SATSolution, error) {
	return runSolver(cadicalName, instance, "-q")
}
