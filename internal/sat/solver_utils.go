package sat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional json file mapping solver names to
// executable paths. Solvers missing from the config are looked up on $PATH.
var ConfigPath = "config.json"

func parseSolution(solverOutput string) SATSolution {
	return lo.FilterMap(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 1 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) (int64, bool) {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0 // Drop the trailing terminator
		},
	)
}

func executablePath(solver string) (string, error) {
	if raw, err := os.ReadFile(ConfigPath); err == nil {
		var configJson map[string]any
		if err := json.Unmarshal(raw, &configJson); err != nil {
			return "", fmt.Errorf("cannot read %v: %w", ConfigPath, err)
		}

		var config map[string]string
		mapstructure.Decode(configJson, &config)

		if path, ok := config[solver]; ok {
			return path, nil
		}
	}

	path, err := exec.LookPath(solver)
	if err != nil {
		return "", fmt.Errorf("solver %q is not available: %w", solver, err)
	}
	return path, nil
}

// runSolver feeds the instance to the solver's standard input and interprets
// the SAT-competition exit codes (10 stands for satisfiable, 20 for
// unsatisfiable).
func runSolver(solver string, instance SAT, args ...string) (SATSolution, error) {
	path, err := executablePath(solver)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader(instance.ToDIMACS())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err = cmd.Run()
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver, err, stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
