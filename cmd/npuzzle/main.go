// Command npuzzle is the CLI collaborator for the solver package: it reads
// a start and target board from file, resolves a heuristic by name, runs
// the core search, and prints the move list and complexity counters.
//
// Usage:
//
//	npuzzle <start-file> <target-file> [heuristic]
//
// heuristic is one of manhattan, dijkstra, euclidean, miss_placed,
// out_of_raw; an unrecognized or omitted name falls back to manhattan.
package main

import (
	"fmt"
	"os"

	"github.com/nsolver/npuzzle/board"
	"github.com/nsolver/npuzzle/heuristic"
	"github.com/nsolver/npuzzle/puzzleio"
	"github.com/nsolver/npuzzle/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: npuzzle <start-file> <target-file> [heuristic]")
	}

	start, err := readBoard(args[0])
	if err != nil {
		return fmt.Errorf("start board: %w", err)
	}

	target, err := readBoard(args[1])
	if err != nil {
		return fmt.Errorf("target board: %w", err)
	}

	name := "manhattan"
	if len(args) >= 3 {
		name = args[2]
	}

	s, err := solver.New(start, target)
	if err != nil {
		return err
	}

	result, err := s.Solve(buildHeuristic(name, target))
	if err != nil {
		return err
	}

	printResult(result)

	return nil
}

func readBoard(path string) (board.Board, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, err
	}

	return puzzleio.Parse(string(content))
}

// buildHeuristic resolves a heuristic by name, falling back to Manhattan
// for any name it does not recognize — including an empty string.
func buildHeuristic(name string, target board.Board) heuristic.Heuristic {
	switch name {
	case "dijkstra":
		return heuristic.NewDijkstra(target)
	case "euclidean":
		return heuristic.NewEuclidean(target)
	case "miss_placed":
		return heuristic.NewMissPlaced(target)
	case "out_of_raw":
		return heuristic.NewOutOfRaw(target)
	case "manhattan":
		return heuristic.NewManhattan(target)
	default:
		return heuristic.NewManhattan(target)
	}
}

func printResult(result solver.Result) {
	fmt.Printf("memory complexity: %d\n", result.MaxFrontier)
	fmt.Printf("time complexity: %d\n", result.Expansions)
	fmt.Printf("moves count: %d\n", len(result.Moves))
	fmt.Printf("moves: %v\n", result.Moves)
}
