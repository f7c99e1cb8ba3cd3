// movegen.go implements the fully-legal move generator from spec.md §4.5:
// checkers/pinned/discoverer analysis first, then direct legal-move
// emission with no pseudo-legal filter pass. This replaces chego's
// movegen.go algorithm (pseudo-legal generation followed by a full
// copy-make-and-recheck per candidate move in GenLegalMoves) while reusing
// its magic-attack lookups and popLSB-style iteration idiom throughout.
// Grounded in original_source's src/board/movegen.rs and src/board/rules.rs.
package chesscore

// MoveList stores generated moves in a fixed-size array sized to the known
// maximum of 218 legal moves in any reachable chess position, the same
// preallocation chego's types.go MoveList uses to avoid heap churn in the
// hot move-generation path.
type MoveList struct {
	Moves [218]Move
	Count int
}

func (l *MoveList) push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// GenerateLegalMoves returns every legal move for the side to move.
func GenerateLegalMoves(b *Board) MoveList {
	var list MoveList

	c := b.turn
	king := b.King(c)
	checkers := b.Checkers()
	checkersCount := checkers.PopCount()
	own := b.ColorBitboard(c)
	enemy := b.ColorBitboard(c.Other())
	occ := b.Occupancy()

	genKingMoves(b, &list, c, king, own)

	if checkersCount >= 2 {
		// Double check: only the king may move.
		return list
	}

	checkMask := allSquares
	if checkersCount == 1 {
		checkerSq := checkers.LSB()
		checkMask = Between(king, checkerSq) | checkerSq.Bitboard()
	}

	pinned, pinRay, _ := PinnedAndDiscoverers(b, c)

	genPawnMoves(b, &list, c, king, checkMask, pinned, pinRay, checkersCount)
	genLeaperMoves(b, &list, Knight, func(sq Square) Bitboard { return KnightAttacks(sq) },
		c, own, enemy, checkMask, pinned, pinRay)
	genSliderMoves(b, &list, Bishop, c, own, enemy, occ, checkMask, pinned, pinRay)
	genSliderMoves(b, &list, Rook, c, own, enemy, occ, checkMask, pinned, pinRay)
	genSliderMoves(b, &list, Queen, c, own, enemy, occ, checkMask, pinned, pinRay)

	if checkersCount == 0 {
		genCastlingMoves(b, &list, c, occ)
	}

	return list
}

func genKingMoves(b *Board, list *MoveList, c Color, king Square, own Bitboard) {
	destinations := KingAttacks(king) &^ own
	enemy := b.ColorBitboard(c.Other())
	for dest := range destinations.Squares() {
		if AttacksIgnoringKing(b, c.Other(), king).Has(dest) {
			continue
		}
		flag := FlagQuiet
		if enemy.Has(dest) {
			flag = FlagCapture
		}
		list.push(NewMove(king, dest, flag))
	}
}

func genLeaperMoves(b *Board, list *MoveList, pt PieceType, attacksOf func(Square) Bitboard,
	c Color, own, enemy, checkMask, pinned Bitboard, pinRay [64]Bitboard) {

	for sq := range b.Pieces(pt, c).Squares() {
		allowed := allSquares
		if pinned.Has(sq) {
			allowed = pinRay[sq]
		}
		destinations := attacksOf(sq) &^ own & allowed & checkMask
		for dest := range destinations.Squares() {
			flag := FlagQuiet
			if enemy.Has(dest) {
				flag = FlagCapture
			}
			list.push(NewMove(sq, dest, flag))
		}
	}
}

func sliderAttacksOf(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	default:
		return QueenAttacks(sq, occ)
	}
}

func genSliderMoves(b *Board, list *MoveList, pt PieceType, c Color, own, enemy, occ, checkMask, pinned Bitboard, pinRay [64]Bitboard) {
	for sq := range b.Pieces(pt, c).Squares() {
		allowed := allSquares
		if pinned.Has(sq) {
			allowed = pinRay[sq]
		}
		destinations := sliderAttacksOf(pt, sq, occ) &^ own & allowed & checkMask
		for dest := range destinations.Squares() {
			flag := FlagQuiet
			if enemy.Has(dest) {
				flag = FlagCapture
			}
			list.push(NewMove(sq, dest, flag))
		}
	}
}

func genPawnMoves(b *Board, list *MoveList, c Color, king Square, checkMask, pinned Bitboard, pinRay [64]Bitboard, checkersCount int) {
	occ := b.Occupancy()
	enemy := b.ColorBitboard(c.Other())
	pawns := b.Pieces(Pawn, c)

	promoRank := 7
	startRank := 1
	forward := 8
	if c == Black {
		promoRank = 0
		startRank = 6
		forward = -8
	}

	for sq := range pawns.Squares() {
		allowed := allSquares
		if pinned.Has(sq) {
			allowed = pinRay[sq]
		}

		one := Square(int(sq) + forward)
		if one >= A1 && one <= H8 && !occ.Has(one) {
			if allowed.Has(one) && checkMask.Has(one) {
				emitPawnAdvance(list, sq, one, promoRank, false)
			}
			if sq.Rank() == startRank {
				two := Square(int(sq) + 2*forward)
				if !occ.Has(two) && allowed.Has(two) && checkMask.Has(two) {
					list.push(NewMove(sq, two, FlagDoublePawnPush))
				}
			}
		}

		for dest := range (PawnAttacks(c, sq) & enemy).Squares() {
			if !allowed.Has(dest) || !checkMask.Has(dest) {
				continue
			}
			emitPawnAdvance(list, sq, dest, promoRank, true)
		}

		if ep := b.EnPassant(); ep != NoSquare && PawnAttacks(c, sq).Has(ep) {
			capturedSq := Square(int(ep) - forward)
			resolvesCheck := checkMask.Has(ep) || (checkersCount == 1 && checkMask.Has(capturedSq))
			if allowed.Has(ep) && resolvesCheck && legalEnPassant(b, c, sq, capturedSq, king) {
				list.push(NewMove(sq, ep, FlagEnPassant))
			}
		}
	}
}

func emitPawnAdvance(list *MoveList, from, to Square, promoRank int, capture bool) {
	if to.Rank() == promoRank {
		for pt := Knight; pt <= Queen; pt++ {
			list.push(NewMove(from, to, promotionFlag(pt, capture)))
		}
		return
	}
	flag := FlagQuiet
	if capture {
		flag = FlagCapture
	}
	list.push(NewMove(from, to, flag))
}

// legalEnPassant re-checks the classic horizontal-discovered-check edge
// case: removing both the capturing and captured pawns from the same rank
// as the king can expose a rook/queen check that no ordinary pin detection
// catches, since neither pawn was individually pinned.
func legalEnPassant(b *Board, c Color, from, capturedSq, king Square) bool {
	occAfter := b.Occupancy().Clear(from).Clear(capturedSq)
	enemyRooksQueens := b.Pieces(Rook, c.Other()) | b.Pieces(Queen, c.Other())
	return RookAttacks(king, occAfter)&enemyRooksQueens == 0
}

func genCastlingMoves(b *Board, list *MoveList, c Color, occ Bitboard) {
	king := b.King(c)
	attacked := AttackedBy(b, c.Other())

	if b.Castling().Has(kingsideRight(c)) {
		var path, throughSquares Bitboard
		var rookFrom, kingTo Square
		if c == White {
			path, throughSquares, rookFrom, kingTo = 0x60, 0x70, H1, G1
		} else {
			path, throughSquares, rookFrom, kingTo = 0x6000000000000000, 0x7000000000000000, H8, G8
		}
		if occ&path == 0 && attacked&throughSquares == 0 && b.Pieces(Rook, c).Has(rookFrom) {
			list.push(NewMove(king, kingTo, FlagCastleKingside))
		}
	}

	if b.Castling().Has(queensideRight(c)) {
		var emptyPath, throughSquares Bitboard
		var rookFrom, kingTo Square
		if c == White {
			emptyPath, throughSquares, rookFrom, kingTo = 0xE, 0x1C, A1, C1
		} else {
			emptyPath, throughSquares, rookFrom, kingTo = 0x0E00000000000000, 0x1C00000000000000, A8, C8
		}
		if occ&emptyPath == 0 && attacked&throughSquares == 0 && b.Pieces(Rook, c).Has(rookFrom) {
			list.push(NewMove(king, kingTo, FlagCastleQueenside))
		}
	}
}
