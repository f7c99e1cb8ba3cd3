// Package perft implements the move-generation self-test described in
// spec.md §6/§8: a recursive leaf-node count plus a breakdown by move kind,
// grounded in chego's internal/perft/perft.go (recursive copy-position walk,
// the same result{nodes,captures,epCaptures,castles,promotions,checks,
// doubleChecks,checkmates} breakdown), adapted to call chesscore's
// fully-legal generator instead of chego's copy-make generator.
package perft

import "github.com/dunmovin/chesscore"

// Result is the breakdown of a perft run at a given depth.
type Result struct {
	Nodes        uint64
	Captures     uint64
	EnPassant    uint64
	Castles      uint64
	Promotions   uint64
	Checks       uint64
	DoubleChecks uint64
	Checkmates   uint64
}

// Count returns just the leaf-node count at the given depth, the number
// spec.md's TESTABLE PROPERTIES section matches against reference values.
func Count(b *chesscore.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := chesscore.GenerateLegalMoves(b)
	if depth == 1 {
		return uint64(legal.Count)
	}
	var nodes uint64
	for i := 0; i < legal.Count; i++ {
		next := *b
		next.MakeMove(legal.Moves[i])
		nodes += Count(&next, depth-1)
	}
	return nodes
}

// Verbose returns the full move-kind breakdown at the given depth.
func Verbose(b *chesscore.Board, depth int) Result {
	var r Result
	walk(b, depth, &r)
	return r
}

func walk(b *chesscore.Board, depth int, r *Result) {
	legal := chesscore.GenerateLegalMoves(b)

	if depth == 1 {
		for i := 0; i < legal.Count; i++ {
			m := legal.Moves[i]
			r.Nodes++
			if m.IsCapture() {
				r.Captures++
			}
			if m.Flag() == chesscore.FlagEnPassant {
				r.EnPassant++
			}
			if m.IsCastle() {
				r.Castles++
			}
			if m.IsPromotion() {
				r.Promotions++
			}

			next := *b
			next.MakeMove(m)
			if next.InCheck() {
				r.Checks++
				if next.Checkers().PopCount() >= 2 {
					r.DoubleChecks++
				}
				if chesscore.GenerateLegalMoves(&next).Count == 0 {
					r.Checkmates++
				}
			}
		}
		return
	}

	for i := 0; i < legal.Count; i++ {
		next := *b
		next.MakeMove(legal.Moves[i])
		walk(&next, depth-1, r)
	}
}
