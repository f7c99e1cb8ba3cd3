// san.go formats and parses moves in Standard Algebraic Notation. Formatting
// keeps chego's san.go disambiguation logic verbatim (file-then-rank
// fallback); parsing is new — the teacher only formats — grounded in
// original_source's src/mv.rs SAN-parse path, which matches legal moves by
// destination square and piece kind the same way Move2SAN's disambiguation
// does in reverse.
package chesscore

import "strings"

// MoveToSAN formats m, legal in board b, as Standard Algebraic Notation.
// Check/checkmate suffixes (+/#) are appended by checking the resulting
// position, matching chego's san.go convention.
func MoveToSAN(b *Board, m Move) string {
	if m.IsCastle() {
		san := "O-O"
		if m.Flag() == FlagCastleQueenside {
			san = "O-O-O"
		}
		return san + checkSuffix(b, m)
	}

	mover, c, _ := b.PieceAt(m.From())
	var sb strings.Builder

	if mover != Pawn {
		sb.WriteByte(mover.Letter())
		sb.WriteString(disambiguate(b, m, mover, c))
	} else if m.IsCapture() {
		sb.WriteByte(m.From().String()[0])
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To().String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.PromotionPiece().Letter())
	}

	sb.WriteString(checkSuffix(b, m))
	return sb.String()
}

// disambiguate returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type to the same
// destination, trying file first, then rank, then the full origin square —
// chego's san.go disambiguate() order.
func disambiguate(b *Board, m Move, mover PieceType, c Color) string {
	legal := GenerateLegalMoves(b)
	var sameFile, sameRank, any int
	for i := 0; i < legal.Count; i++ {
		other := legal.Moves[i]
		if other.To() != m.To() || other.From() == m.From() {
			continue
		}
		pt, oc, ok := b.PieceAt(other.From())
		if !ok || pt != mover || oc != c {
			continue
		}
		any++
		if other.From().File() == m.From().File() {
			sameFile++
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank++
		}
	}
	if any == 0 {
		return ""
	}
	if sameFile == 0 {
		return string(m.From().String()[0])
	}
	if sameRank == 0 {
		return string(m.From().String()[1])
	}
	return m.From().String()
}

func checkSuffix(b *Board, m Move) string {
	after := *b
	after.MakeMove(m)
	if !after.InCheck() {
		return ""
	}
	if GenerateLegalMoves(&after).Count == 0 {
		return "#"
	}
	return "+"
}

// MoveFromSAN parses a SAN move string against board b, returning the
// fully-encoded legal Move it corresponds to.
func MoveFromSAN(b *Board, san string) (Move, error) {
	text := strings.TrimRight(san, "+#")
	legal := GenerateLegalMoves(b)

	if text == "O-O" || text == "0-0" {
		return matchCastle(b, legal, FlagCastleKingside, san)
	}
	if text == "O-O-O" || text == "0-0-0" {
		return matchCastle(b, legal, FlagCastleQueenside, san)
	}

	for i := 0; i < legal.Count; i++ {
		m := legal.Moves[i]
		if MoveToSAN(b, m) == san {
			return m, nil
		}
	}
	for i := 0; i < legal.Count; i++ {
		m := legal.Moves[i]
		if moveMatchesLooseSAN(b, m, text) {
			return m, nil
		}
	}
	return 0, newParseError("san", san, "no legal move matches")
}

func matchCastle(b *Board, legal MoveList, flag MoveFlag, san string) (Move, error) {
	for i := 0; i < legal.Count; i++ {
		if legal.Moves[i].Flag() == flag {
			return legal.Moves[i], nil
		}
	}
	return 0, newParseError("san", san, "castling is not legal here")
}

// moveMatchesLooseSAN tolerates an unambiguous SAN string that omits
// disambiguation chego's formatter would have included (e.g. "Nf3" when a
// second knight could technically reach f3 but via an illegal path) or a
// promotion string without rank disambiguation — a permissive parser is
// friendlier to hand-typed EPD "bm" fields than chego's round-trip-only use.
func moveMatchesLooseSAN(b *Board, m Move, text string) bool {
	mover, _, _ := b.PieceAt(m.From())
	letter := byte(0)
	rest := text
	if mover != Pawn {
		letter = text[0]
		rest = text[1:]
	}
	if mover != Pawn && letter != mover.Letter() {
		return false
	}
	rest = strings.TrimPrefix(rest, "x")
	if idx := strings.IndexByte(rest, 'x'); idx >= 0 {
		rest = rest[idx+1:]
	}
	promo := ""
	if idx := strings.IndexByte(rest, '='); idx >= 0 {
		promo = rest[idx+1:]
		rest = rest[:idx]
	}
	if len(rest) < 2 {
		return false
	}
	dest := rest[len(rest)-2:]
	if dest != m.To().String() {
		return false
	}
	if promo != "" {
		if !m.IsPromotion() || string(m.PromotionPiece().Letter()) != promo {
			return false
		}
	}
	return true
}
