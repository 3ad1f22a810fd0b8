package sat

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

const glucoseName = "glucose"

type glucoseSolver struct{}

func NewGlucoseSolver() SATSolver {
	return &glucoseSolver{}
}

// Glucose does not read from standard input, so the instance goes through a
// temporary file.
func (solver *glucoseSolver) Solve(instance SAT) (SATSolution, error) {
	path, err := executablePath(glucoseName)
	if err != nil {
		return nil, err
	}

	file, err := os.CreateTemp("", "partition-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("cannot create formula file: %w", err)
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(instance.ToDIMACS()); err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot write formula file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("cannot write formula file: %w", err)
	}

	cmd := exec.Command(path, "-model", "-verb=0", file.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err = cmd.Run()
	// Exit-code 10 stands for satisfiable and exit-code 20 for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", glucoseName, err, stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
