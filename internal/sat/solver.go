package sat

// SATSolver runs an external solving engine on a SAT instance. Solve returns
// a nil solution iff the instance is unsatisfiable; an unavailable solver
// binary is reported as an error, never as unsatisfiability.
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}
