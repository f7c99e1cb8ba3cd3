// makemove.go implements the 8-step MakeMove algorithm of spec.md §4.6,
// keeping the teacher's placePiece/removePiece XOR-toggle style from
// position.go, extended to also XOR the incremental Zobrist hash and to
// support the null move, which chego has no equivalent of.
package chesscore

// MakeMove applies m to the board in place. The caller is responsible for
// keeping a copy of the prior Board if undo is needed — Board is a value
// type and copying it (pos := before) is the documented way to snapshot it,
// the same pattern chego's BenchmarkMakeMove exercises.
//
// m must be a legal move in the current position; MakeMove does not
// re-validate legality. Use GenerateLegalMoves or BareMove.Augment to
// obtain a move guaranteed legal in this position.
func (b *Board) MakeMove(m Move) {
	c := b.turn
	h := DefaultHasher
	pre := *b
	b.hash ^= h.HashMove(m, &pre)

	b.epSquare = NoSquare

	if m.IsNull() {
		b.turn = c.Other()
		b.halfmove++
		if c == Black {
			b.fullmove++
		}
		b.invalidateCaches()
		return
	}

	from, to := m.From(), m.To()
	mover, _, _ := b.PieceAt(from)

	// Step 2: remove any captured piece (normal capture or en passant).
	capturedSq := to
	capturedPiece := NoPieceType
	if m.Flag() == FlagEnPassant {
		if c == White {
			capturedSq = Square(int(to) - 8)
		} else {
			capturedSq = Square(int(to) + 8)
		}
		capturedPiece = Pawn
	} else if m.IsCapture() {
		capturedPiece, _, _ = b.PieceAt(to)
	}
	if capturedPiece != NoPieceType {
		b.remove(capturedPiece, c.Other(), capturedSq)
	}

	// Step 3: move the piece off its origin square.
	b.remove(mover, c, from)

	// Step 4: place the piece (or its promoted form) on the destination.
	placed := mover
	if m.IsPromotion() {
		placed = m.PromotionPiece()
	}
	b.put(placed, c, to)

	// Step 5: move the rook on castling.
	if m.IsCastle() {
		var rookFrom, rookTo Square
		switch {
		case m.Flag() == FlagCastleKingside && c == White:
			rookFrom, rookTo = H1, F1
		case m.Flag() == FlagCastleKingside && c == Black:
			rookFrom, rookTo = H8, F8
		case m.Flag() == FlagCastleQueenside && c == White:
			rookFrom, rookTo = A1, D1
		default: // FlagCastleQueenside, Black
			rookFrom, rookTo = A8, D8
		}
		b.remove(Rook, c, rookFrom)
		b.put(Rook, c, rookTo)
	}

	// Step 6: update castling rights — a king or rook moving away, or a
	// rook being captured on its home square, forfeits the associated right.
	lost := rightsLostFromSquare(from) | rightsLostFromSquare(to)
	b.castling &^= lost

	// Step 7: set a new en passant target on a double pawn push.
	if m.Flag() == FlagDoublePawnPush {
		if c == White {
			b.epSquare = Square(int(from) + 8)
		} else {
			b.epSquare = Square(int(from) - 8)
		}
	}

	// Step 8: clocks and side to move.
	if mover == Pawn || capturedPiece != NoPieceType {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if c == Black {
		b.fullmove++
	}
	b.turn = c.Other()

	b.invalidateCaches()
}
