// Command epdtool runs an EPD test suite's "Dn" perft-count operations
// against chesscore's move generator, reporting any mismatch. It
// supplements chego's single perft CLI (chego has no EPD support at all)
// with the outer surface SPEC_FULL.md's DOMAIN STACK section wires
// github.com/spf13/cobra into, the CLI framework seen across the retrieved
// pack's own tooling (Mgrdich-TermChess and others).
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dunmovin/chesscore"
	"github.com/dunmovin/chesscore/internal/perft"
)

func main() {
	root := &cobra.Command{
		Use:   "epdtool",
		Short: "Run EPD perft (Dn) assertions against chesscore's move generator",
	}
	root.AddCommand(newPerftSuiteCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newPerftSuiteCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "suite <file.epd>",
		Short: "Verify every Dn operation in an EPD file against computed perft counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(args[0], maxDepth)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 6, "skip Dn operations whose depth exceeds this")
	return cmd
}

func runSuite(path string, maxDepth int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line, positions, failures := 0, 0, 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		record, err := chesscore.ParseEPD(text)
		if err != nil {
			fmt.Printf("line %d: %v\n", line, err)
			failures++
			continue
		}
		positions++

		depths := depthsIn(record)
		for _, depth := range depths {
			if depth > maxDepth {
				continue
			}
			want, _ := record.PerftDepth(depth)
			board := record.Board
			got := perft.Count(&board, depth)
			if got != want {
				fmt.Printf("line %d D%d: want %d got %d fen=%s\n", line, depth, want, got, record.Board.FEN())
				failures++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d perft mismatch(es)", failures)
	}
	fmt.Printf("%d position(s) verified\n", positions)
	return nil
}

func depthsIn(e chesscore.EPD) []int {
	var depths []int
	for opcode := range e.Ops {
		if len(opcode) < 2 || opcode[0] != 'D' {
			continue
		}
		n, err := strconv.Atoi(opcode[1:])
		if err == nil {
			depths = append(depths, n)
		}
	}
	sort.Ints(depths)
	return depths
}
