// pawns.go implements the structural pawn analysis of spec.md §4.8: a set
// of pure functions deriving doubled/open-file/isolated/rammed/passed/
// outpost/weak/connected/duo/distant-neighbour/backward/candidate-passed
// bitboards from a Board's pawn placement. chego has no evaluator and no
// equivalent of this at all (its calculateMaterial only sums piece values
// for insufficient-material detection); this is built fresh from the
// Kogge-Stone-style fill idiom bitboard.go already uses for frontSpan/
// rearSpan/fileFill, in the bit-arithmetic manner the teacher's attack
// generators are written in.
//
// "passed" is implemented literally as spec.md directs — frontSpan(c,sq)
// union attackSpan(c,sq), disjoint from enemy pawns — rather than mirroring
// original_source's eval/pst.rs inlined variant, which unions a slightly
// different span; see DESIGN.md for that Open Question decision.
package chesscore

// PawnStructure holds every structural pawn bitboard for both colors,
// computed once per position.
type PawnStructure struct {
	Pawns [2]Bitboard

	Doubled          [2]Bitboard
	Isolated         [2]Bitboard
	Rammed           [2]Bitboard
	Passed           [2]Bitboard
	Weak             [2]Bitboard
	Connected        [2]Bitboard
	Duos             [2]Bitboard
	DistantNeighbors [2]Bitboard
	Backward         [2]Bitboard
	CandidatePassed  [2]Bitboard
	Outposts         [2]Bitboard

	OpenFiles Bitboard
	HalfOpen  [2]Bitboard
}

// attackSpan returns every square a pawn of color c on any bit of b could
// ever capture on, now or after advancing: the front span (inclusive of
// the starting rank) of its two adjacent files.
func attackSpan(c Color, b Bitboard) Bitboard {
	adjacent := b.shiftE() | b.shiftW()
	return adjacent | frontSpan(c, adjacent)
}

// attackSpanAll returns every square any pawn in pawns currently defends.
func attackSpanAll(c Color, pawns Bitboard) Bitboard {
	var attacked Bitboard
	for sq := range pawns.Squares() {
		attacked |= PawnAttacks(c, sq)
	}
	return attacked
}

// AnalyzePawns computes the full PawnStructure for b.
func AnalyzePawns(b *Board) PawnStructure {
	var ps PawnStructure
	ps.Pawns[White] = b.Pieces(Pawn, White)
	ps.Pawns[Black] = b.Pieces(Pawn, Black)

	for f := 0; f < 8; f++ {
		fileHasWhite := ps.Pawns[White]&FileMask(f) != 0
		fileHasBlack := ps.Pawns[Black]&FileMask(f) != 0
		switch {
		case !fileHasWhite && !fileHasBlack:
			ps.OpenFiles |= FileMask(f)
		case !fileHasWhite:
			ps.HalfOpen[White] |= FileMask(f)
		case !fileHasBlack:
			ps.HalfOpen[Black] |= FileMask(f)
		}
	}

	// Outposts and Doubled are both whole-file/whole-board formulas over the
	// two static pawn bitboards, independent of the per-square loop below;
	// precompute them for both colors first since Weak (computed per square
	// in the loop) needs the *opponent's* Outposts region, which the
	// single-pass-per-color loop below has not reached yet when it is
	// White's turn to be analyzed.
	for c := White; c <= Black; c++ {
		own := ps.Pawns[c]
		enemy := ps.Pawns[c.Other()]

		ps.Outposts[c] = attackSpanAll(c, own) &^ attackSpan(c.Other(), enemy)

		if c == White {
			ps.Doubled[c] = fillNorth(own).shiftN() & own
		} else {
			ps.Doubled[c] = fillSouth(own).shiftS() & own
		}
	}

	for c := White; c <= Black; c++ {
		own := ps.Pawns[c]
		enemy := ps.Pawns[c.Other()]

		for sq := range own.Squares() {
			sqb := sq.Bitboard()
			file := sq.File()

			var adjacentFiles Bitboard
			if file > 0 {
				adjacentFiles |= FileMask(file - 1)
			}
			if file < 7 {
				adjacentFiles |= FileMask(file + 1)
			}
			if own&adjacentFiles == 0 {
				ps.Isolated[c] = ps.Isolated[c].Set(sq)
			}

			ahead := NoSquare
			if c == White && sq.Rank() < 7 {
				ahead = Square(int(sq) + 8)
			} else if c == Black && sq.Rank() > 0 {
				ahead = Square(int(sq) - 8)
			}
			if ahead != NoSquare && enemy.Has(ahead) {
				ps.Rammed[c] = ps.Rammed[c].Set(sq)
			}

			if (frontSpan(c, sqb)|attackSpan(c, sqb))&enemy == 0 {
				ps.Passed[c] = ps.Passed[c].Set(sq)
			}

			defenders := PawnAttacks(c.Other(), sq) & own
			if defenders != 0 {
				ps.Connected[c] = ps.Connected[c].Set(sq)
			}

			sameRankNeighbors := RankMask(sq.Rank()) & adjacentFiles & own
			if sameRankNeighbors != 0 {
				ps.Duos[c] = ps.Duos[c].Set(sq)
			}

			var distantFiles Bitboard
			if file > 1 {
				distantFiles |= FileMask(file - 2)
			}
			if file < 6 {
				distantFiles |= FileMask(file + 2)
			}
			if RankMask(sq.Rank())&distantFiles&own != 0 {
				ps.DistantNeighbors[c] = ps.DistantNeighbors[c].Set(sq)
			}

			// Weak: cannot be defended by another pawn, and its stop-square
			// lies in the opponent's outpost region (spec.md §4.8's literal
			// wording) — not merely "currently attacked by an enemy pawn".
			if defenders == 0 && ahead != NoSquare && ps.Outposts[c.Other()].Has(ahead) {
				ps.Weak[c] = ps.Weak[c].Set(sq)
			}

			if defenders == 0 && !ps.Duos[c].Has(sq) && ahead != NoSquare {
				stopAttackers := PawnAttacks(c.Other(), ahead) & enemy
				stopDefenders := attackSpan(c, sqb) & own &^ sqb
				if stopAttackers != 0 && stopDefenders == 0 {
					ps.Backward[c] = ps.Backward[c].Set(sq)
				}
			}

			if !ps.Passed[c].Has(sq) {
				attackersAhead := (attackSpan(c, sqb) & enemy).PopCount()
				defendersAhead := (attackSpan(c.Other(), sqb) & own).PopCount()
				if defendersAhead >= attackersAhead {
					ps.CandidatePassed[c] = ps.CandidatePassed[c].Set(sq)
				}
			}
		}
	}

	return ps
}
