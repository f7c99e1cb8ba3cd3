// move.go implements the Move encoding from spec.md: a 16-bit board-dependent
// value of {from:6, to:6, flag:4}, re-laid-out from the teacher's
// {to:6,from:6,promo:2,type:2} scheme (chego's types.go) onto the literal
// spec bit order since nothing else reads the raw bits. The 4-bit flag
// folds move-type and promotion piece into one field, the scheme used by
// most didactic bitboard engines in the retrieved pack.
package chesscore

import "fmt"

// Move is an immutable, board-dependent move: the mover and any captured
// piece are recovered by reading the Board, not stored in the Move itself.
type Move uint16

// MoveFlag occupies bits 12-15 of a Move.
type MoveFlag uint16

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePawnPush
	FlagCastleKingside
	FlagCastleQueenside
	FlagCapture
	FlagEnPassant
	_reservedFlag6
	_reservedFlag7
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoCaptureKnight
	FlagPromoCaptureBishop
	FlagPromoCaptureRook
	FlagPromoCaptureQueen
)

// NewMove encodes a move from its components.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint16(from)&0x3F | (uint16(to)&0x3F)<<6 | uint16(flag)<<12)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0xF) }

// IsCapture reports whether the move's flag denotes any capture, including
// en passant and promotion-captures.
func (m Move) IsCapture() bool {
	f := m.Flag()
	return f == FlagCapture || f == FlagEnPassant || (f >= FlagPromoCaptureKnight && f <= FlagPromoCaptureQueen)
}

// IsPromotion reports whether the move's flag denotes a promotion.
func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPromoKnight && f <= FlagPromoCaptureQueen
}

// IsCastle reports whether the move's flag denotes a castling move.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagCastleKingside || f == FlagCastleQueenside
}

// IsNull reports whether m is the null move (from == to), used by the
// search-facing null-move pruning technique; MakeMove special-cases it per
// spec §4.6 to flip the side to move and clear the en passant square without
// touching any piece.
func (m Move) IsNull() bool { return m.From() == m.To() }

// NullMove constructs the null move.
func NullMove() Move { return NewMove(A1, A1, FlagQuiet) }

// PromotionPiece returns the piece type a promotion move promotes to. It
// panics if called on a non-promoting move — callers must check
// IsPromotion first, matching the teacher's "caller validates" contract.
func (m Move) PromotionPiece() PieceType {
	switch m.Flag() {
	case FlagPromoKnight, FlagPromoCaptureKnight:
		return Knight
	case FlagPromoBishop, FlagPromoCaptureBishop:
		return Bishop
	case FlagPromoRook, FlagPromoCaptureRook:
		return Rook
	case FlagPromoQueen, FlagPromoCaptureQueen:
		return Queen
	default:
		panic("chesscore: PromotionPiece called on a non-promotion move")
	}
}

func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(pieceTypeLetters[m.PromotionPiece()] + ('a' - 'A'))
	}
	return s
}

// GoString implements fmt.GoStringer for readable test failure output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s, flag=%d)", m.String(), m.Flag())
}

// promoFlagsCapture/NonCapture index promotion flags by PieceType (Knight..Queen).
var promoFlagNonCapture = [4]MoveFlag{FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen}
var promoFlagCapture = [4]MoveFlag{FlagPromoCaptureKnight, FlagPromoCaptureBishop, FlagPromoCaptureRook, FlagPromoCaptureQueen}

func promotionFlag(pt PieceType, capture bool) MoveFlag {
	idx := int(pt) - int(Knight)
	if capture {
		return promoFlagCapture[idx]
	}
	return promoFlagNonCapture[idx]
}
