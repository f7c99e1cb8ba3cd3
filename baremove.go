// baremove.go implements BareMove from spec.md §4.7: a from/to/promotion
// triple with no board context, as arrives over UCI, plus its Augment
// validator that recovers the full Move encoding by matching against the
// position's legal moves. chego has no equivalent — its uci.go only
// formats an already-generated Move, it never parses one from outside a
// move list. Grounded in original_source's src/mv.rs Move::parse_uci
// validation order.
package chesscore

import "fmt"

// BareMove is an unvalidated from/to/promotion triple, the shape a UCI
// "position moves ..." command or a BareMove text box hands chesscore.
type BareMove struct {
	From, To  Square
	Promotion PieceType // NoPieceType if not a promotion
}

func (m BareMove) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseBareMove parses UCI long algebraic notation ("e2e4", "e7e8q") into a
// BareMove, without reference to any board.
func ParseBareMove(s string) (BareMove, error) {
	if len(s) != 4 && len(s) != 5 {
		return BareMove{}, newParseError("uci", s, "expected 4 or 5 characters")
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return BareMove{}, newParseError("uci", s, "invalid origin square: "+err.Error())
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return BareMove{}, newParseError("uci", s, "invalid destination square: "+err.Error())
	}
	promo := NoPieceType
	if len(s) == 5 {
		pt, _, ok := pieceFromLetter(s[4])
		if !ok || pt == Pawn || pt == King {
			return BareMove{}, newParseError("uci", s, "invalid promotion piece letter")
		}
		promo = pt
	}
	return BareMove{From: from, To: to, Promotion: promo}, nil
}

// Augment validates bm against b's legal moves and returns the fully
// encoded, board-dependent Move it corresponds to. It returns an
// *IllegalMoveError if no legal move matches.
func (bm BareMove) Augment(b *Board) (Move, error) {
	if err := bm.validate(); err != nil {
		return 0, &IllegalMoveError{Move: bm, Reason: err.Error()}
	}
	legal := GenerateLegalMoves(b)
	for i := 0; i < legal.Count; i++ {
		m := legal.Moves[i]
		if m.From() != bm.From || m.To() != bm.To {
			continue
		}
		if m.IsPromotion() {
			if bm.Promotion == NoPieceType || m.PromotionPiece() != bm.Promotion {
				continue
			}
		} else if bm.Promotion != NoPieceType {
			continue
		}
		return m, nil
	}
	return 0, &IllegalMoveError{Move: bm, Reason: "no legal move matches this from/to/promotion triple"}
}

// validate is a lightweight, board-free geometric sanity check that Augment
// runs before consulting the move generator, mirroring the "quick reject" step original_source's
// parse_uci performs before consulting the move generator.
func (bm BareMove) validate() error {
	if bm.From < A1 || bm.From > H8 || bm.To < A1 || bm.To > H8 {
		return fmt.Errorf("square out of range")
	}
	if bm.From == bm.To {
		return fmt.Errorf("from and to squares must differ")
	}
	return nil
}
