// Command perft runs the move-generation self-test from the command line,
// grounded in chego's main.go/internal/perft CLI (flag + log + runtime/pprof
// for CPU profiling of the hot recursive path).
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dunmovin/chesscore"
	"github.com/dunmovin/chesscore/internal/perft"
)

func main() {
	fen := flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to walk")
	depth := flag.Int("depth", 5, "perft depth")
	verbose := flag.Bool("verbose", false, "print the move-kind breakdown")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("perft: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	board, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	start := time.Now()
	if *verbose {
		r := perft.Verbose(&board, *depth)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d double_checks=%d checkmates=%d elapsed=%s",
			*depth, r.Nodes, r.Captures, r.EnPassant, r.Castles, r.Promotions, r.Checks, r.DoubleChecks, r.Checkmates, time.Since(start))
		return
	}

	nodes := perft.Count(&board, *depth)
	log.Printf("depth=%d nodes=%d elapsed=%s", *depth, nodes, time.Since(start))
}
