// Package graphio reads graph-partition instances from their textual
// formats and hands the core a plain (edges, n, k) triple.
package graphio

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"graphpartition/internal/partition"
)

// Instance is a raw problem statement: a graph on 2n nodes and a crossing
// budget k. Edges are not yet normalized.
type Instance struct {
	Edges []partition.Edge
	N     int
	K     int
}

type format int

const (
	formatSimple format = iota
	formatEdge
	formatCNF
)

// ErrCNFInput is returned for DIMACS CNF input: the reduction only runs
// from graphs to formulas, never back.
var ErrCNFInput = errors.New("reading CNF files is not supported, this tool only writes CNF output")

// ReadInstance loads an instance file, autodetecting the simple format
// ("n k" header then "u v" lines) and the DIMACS graph format ("p edge"
// header, "e u v" lines with 1-indexed nodes).
func ReadInstance(path string) (Instance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}
	return ParseInstance(string(raw))
}

func ParseInstance(text string) (Instance, error) {
	lines := strings.Split(text, "\n")

	switch detectFormat(lines) {
	case formatCNF:
		return Instance{}, ErrCNFInput
	case formatEdge:
		return parseDIMACSGraph(lines)
	default:
		return parseSimple(lines)
	}
}

// ParseEdgeList parses an inline edge list given as "u1,v1 u2,v2 ...".
func ParseEdgeList(spec string) ([]partition.Edge, error) {
	edges := make([]partition.Edge, 0)

	for _, pair := range strings.Fields(spec) {
		endpoints := strings.Split(pair, ",")
		if len(endpoints) != 2 {
			return nil, fmt.Errorf("invalid edge %q, expected \"u,v\"", pair)
		}

		u, err := strconv.Atoi(endpoints[0])
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", pair, err)
		}
		v, err := strconv.Atoi(endpoints[1])
		if err != nil {
			return nil, fmt.Errorf("invalid edge %q: %w", pair, err)
		}

		edges = append(edges, partition.Edge{U: u, V: v})
	}

	return edges, nil
}

func detectFormat(lines []string) format {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "p cnf") {
			return formatCNF
		} else if strings.HasPrefix(line, "p edge") {
			return formatEdge
		} else if line != "" && !strings.HasPrefix(line, "c") && !strings.HasPrefix(line, "#") {
			return formatSimple
		}
	}
	return formatSimple
}

func parseSimple(lines []string) (Instance, error) {
	var instance Instance
	header := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if !header {
			if len(fields) < 2 {
				return Instance{}, fmt.Errorf("invalid header line %q, expected \"n k\"", line)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Instance{}, fmt.Errorf("invalid n in header: %w", err)
			}
			k, err := strconv.Atoi(fields[1])
			if err != nil {
				return Instance{}, fmt.Errorf("invalid k in header: %w", err)
			}
			instance.N, instance.K = n, k
			header = true
			continue
		}

		if len(fields) < 2 {
			continue
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return Instance{}, fmt.Errorf("invalid edge line %q: %w", line, err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return Instance{}, fmt.Errorf("invalid edge line %q: %w", line, err)
		}
		instance.Edges = append(instance.Edges, partition.Edge{U: u, V: v})
	}

	if !header {
		return Instance{}, errors.New("instance file contains no header line")
	}
	return instance, nil
}

func parseDIMACSGraph(lines []string) (Instance, error) {
	var instance Instance
	nodes, n, k := -1, -1, -1

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)

		// Metadata comments "c n <n>" and "c k <k>" carry the partition
		// parameters, which the plain DIMACS graph format has no room for
		if fields[0] == "c" {
			if len(fields) >= 3 {
				value, err := strconv.Atoi(fields[2])
				if err == nil && fields[1] == "n" {
					n = value
				} else if err == nil && fields[1] == "k" {
					k = value
				}
			}
			continue
		}

		if fields[0] == "p" && len(fields) >= 3 && fields[1] == "edge" {
			value, err := strconv.Atoi(fields[2])
			if err != nil {
				return Instance{}, fmt.Errorf("invalid problem line %q: %w", line, err)
			}
			nodes = value
			continue
		}

		if fields[0] == "e" {
			if len(fields) < 3 {
				return Instance{}, fmt.Errorf("invalid edge line %q", line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return Instance{}, fmt.Errorf("invalid edge line %q: %w", line, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return Instance{}, fmt.Errorf("invalid edge line %q: %w", line, err)
			}
			// Convert 1-indexed to 0-indexed
			instance.Edges = append(instance.Edges, partition.Edge{U: u - 1, V: v - 1})
		}
	}

	if n < 0 && nodes >= 0 {
		n = nodes / 2
	}
	if n < 0 {
		return Instance{}, errors.New("could not determine n from DIMACS file")
	}
	if k < 0 {
		k = len(instance.Edges)
	}

	instance.N, instance.K = n, k
	return instance, nil
}
