package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"graphpartition/internal/graphio"
	"graphpartition/internal/partition"
	"graphpartition/internal/sat"
)

var (
	validSolvers = []string{"kissat", "cadical", "cryptominisat", "glucose"}
	solvers      = map[string]func() sat.SATSolver{
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"glucose":       sat.NewGlucoseSolver,
	}
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the instance file (simple \"n k\" format or DIMACS graph format)")
	nPtr := flag.Int("n", -1, "Half the number of nodes (inline instance input)")
	kPtr := flag.Int("k", -1, "Maximum number of crossing edges (inline instance input)")
	edgesPtr := flag.String("edges", "", `Edges as "u1,v1 u2,v2 ..." (inline instance input)`)
	solverPtr := flag.String("solver", "kissat", "SAT-Solver to use. Allowed values are: \"kissat\", \"cadical\", \"cryptominisat\", \"glucose\", where \"kissat\" is the default")
	outPtr := flag.String("out", "", "Path to the file where the DIMACS CNF formula will be written; if empty, no formula file is written")
	printCNFPtr := flag.Bool("print-cnf", false, "Print the CNF formula in DIMACS format")
	statsPtr := flag.Bool("stats", false, "Print statistics about the encoding")
	flag.Parse()
	filePath := *filePtr
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" && (*nPtr < 0 || *kPtr < 0) {
		log.Fatal("an instance must be specified, either with -file or with -n, -k and -edges")
	}

	// Extract input
	var instance graphio.Instance
	var err error
	if filePath != "" {
		instance, err = graphio.ReadInstance(filePath)
		if err != nil {
			log.Fatalf("cannot parse instance file: %v", err)
		}
	} else {
		edges, err := graphio.ParseEdgeList(*edgesPtr)
		if err != nil {
			log.Fatalf("cannot parse edge list: %v", err)
		}
		instance = graphio.Instance{Edges: edges, N: *nPtr, K: *kPtr}
	}

	// Encode the problem
	encoding, err := partition.Encode(instance.Edges, instance.N, instance.K)
	if err != nil {
		log.Fatalf("an error occurred during encoding: %v", err)
	}

	if *printCNFPtr {
		fmt.Print(encoding.SAT.ToDIMACS())
	}

	if *statsPtr {
		printStats(instance, encoding)
	}

	if *outPtr != "" {
		if err := os.WriteFile(*outPtr, []byte(encoding.SAT.ToDIMACS()), 0666); err != nil {
			log.Fatalf("an error occurred while writing the formula file: %v", err)
		}
	}

	// Solve SAT instance
	solver := solvers[solverStr]()
	solution, err := solver.Solve(encoding.SAT)
	if err != nil {
		log.Fatalf("an error occurred during solver execution: %v", err)
	}

	// Decode solution
	result, err := partition.Decode(solution, encoding)
	if err != nil {
		log.Fatalf("an error occurred while decoding the model: %v", err)
	}

	if !result.Satisfiable {
		fmt.Println("UNSATISFIABLE")
		os.Exit(20)
	}

	fmt.Println("SATISFIABLE")
	fmt.Printf("U: %v\n", result.U)
	fmt.Printf("W: %v\n", result.W)
	fmt.Printf("Crossing edges (%v/%v allowed):\n", len(result.Crossing), instance.K)
	if len(result.Crossing) == 0 {
		fmt.Println("  (none)")
	}
	for _, edge := range result.Crossing {
		fmt.Printf("  %v -- %v\n", edge.U, edge.V)
	}
	os.Exit(10)
}

func printStats(instance graphio.Instance, encoding *partition.Encoding) {
	fmt.Println("Graph:")
	fmt.Printf("  Nodes: %v\n", 2*instance.N)
	fmt.Printf("  Edges: %v\n", len(encoding.Edges))
	fmt.Printf("  Max crossing edges (k): %v\n", instance.K)
	fmt.Println("CNF Formula:")
	fmt.Printf("  Variables: %v\n", encoding.SAT.Variables)
	fmt.Printf("  Clauses: %v\n", len(encoding.SAT.Clauses))
	fmt.Println("Variable breakdown:")
	fmt.Printf("  Node variables: %v\n", encoding.Allocator.CountKind(partition.KindNode))
	fmt.Printf("  Edge variables: %v\n", encoding.Allocator.CountKind(partition.KindEdge))
	fmt.Printf("  Counter variables: %v\n", encoding.Allocator.CountKind(partition.KindCounter))
}
