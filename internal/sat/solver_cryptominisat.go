package sat

const cryptominisatName = "cryptominisat"

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(instance SAT) (SATSolution, error) {
	return runSolver(cryptominisatName, instance, "--verb", "0")
}
