// board.go implements the Board type from spec.md §3/§4.3: a value type
// carrying pieces[6]/colors[2] bitboards plus game-state fields, immutable
// by convention (MakeMove is called on a copy the caller already took — see
// chego's position_test.go "pos := before; pos.MakeMove(...)" pattern) with
// interior lazy caches guarded by sentinel values instead of a dirty bool,
// matching the concurrency model's single-threaded-per-Board contract.
package chesscore

import (
	"strconv"
	"strings"
)

// invalidCache is the sentinel used for not-yet-computed Bitboard caches
// (checkers/pinned), chosen as all-ones since it can never be a legitimate
// checkers or pinned mask (both sides' kings are never simultaneously
// attacked by all 64 squares).
const invalidCache Bitboard = allSquares

// Board is the complete, self-contained state of a chess position.
type Board struct {
	pieces [6]Bitboard // indexed by PieceType
	colors [2]Bitboard // indexed by Color

	turn     Color
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int

	hash uint64

	checkersCache Bitboard
	pinnedCache   Bitboard
}

// NewEmptyBoard returns a Board with no pieces, White to move, no castling
// rights and no en passant target — a valid starting point for manual
// construction in tests.
func NewEmptyBoard() Board {
	return Board{
		turn:          White,
		epSquare:      NoSquare,
		fullmove:      1,
		checkersCache: invalidCache,
		pinnedCache:   invalidCache,
	}
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Board {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(&InvariantError{Message: "embedded starting FEN failed to parse: " + err.Error()})
	}
	return b
}

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the current en passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.epSquare }

// HalfmoveClock returns the fifty-move-rule halfmove counter.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the current fullmove number.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Hash returns the board's Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// Occupancy returns every occupied square.
func (b *Board) Occupancy() Bitboard { return b.colors[White] | b.colors[Black] }

// ColorBitboard returns every square occupied by a piece of color c.
func (b *Board) ColorBitboard(c Color) Bitboard { return b.colors[c] }

// PieceBitboard returns every square occupied by a piece of type pt,
// irrespective of color.
func (b *Board) PieceBitboard(pt PieceType) Bitboard { return b.pieces[pt] }

// Pieces returns every square occupied by a piece of type pt and color c.
func (b *Board) Pieces(pt PieceType, c Color) Bitboard { return b.pieces[pt] & b.colors[c] }

// PieceAt returns the piece type and color occupying sq, and false if sq is
// empty.
func (b *Board) PieceAt(sq Square) (PieceType, Color, bool) {
	if !b.Occupancy().Has(sq) {
		return NoPieceType, White, false
	}
	c := White
	if b.colors[Black].Has(sq) {
		c = Black
	}
	for pt := Pawn; pt <= King; pt++ {
		if b.pieces[pt].Has(sq) {
			return pt, c, true
		}
	}
	panic(&InvariantError{Message: "occupied square " + sq.String() + " has no piece type bit set"})
}

// King returns the square of color c's king.
func (b *Board) King(c Color) Square {
	return (b.pieces[King] & b.colors[c]).LSB()
}

// put places a piece on sq without updating the hash — callers own hash
// maintenance (FEN parsing recomputes it once at the end; MakeMove applies
// the whole Hasher.HashMove delta once before its put/remove calls).
func (b *Board) put(pt PieceType, c Color, sq Square) {
	b.pieces[pt] = b.pieces[pt].Set(sq)
	b.colors[c] = b.colors[c].Set(sq)
}

func (b *Board) remove(pt PieceType, c Color, sq Square) {
	b.pieces[pt] = b.pieces[pt].Clear(sq)
	b.colors[c] = b.colors[c].Clear(sq)
}

func (b *Board) invalidateCaches() {
	b.checkersCache = invalidCache
	b.pinnedCache = invalidCache
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Board. Unlike
// chego's ParseFEN (fen.go), which panics on malformed halfmove/fullmove
// fields, this returns a *ParseError per spec.md §7: FEN text arrives at a
// system boundary and malformed input there is not a programming bug.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, newParseError("fen", fen, "expected 6 space-separated fields")
	}

	b := NewEmptyBoard()

	rank, file := 7, 0
	for _, ch := range []byte(fields[0]) {
		switch {
		case ch == '/':
			if file != 8 {
				return Board{}, newParseError("fen", fen, "rank does not sum to 8 files")
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			if file >= 8 || rank < 0 {
				return Board{}, newParseError("fen", fen, "piece placement overflows the board")
			}
			pt, c, ok := pieceFromLetter(ch)
			if !ok {
				return Board{}, newParseError("fen", fen, "unrecognized piece letter '"+string(ch)+"'")
			}
			b.put(pt, c, Square(rank*8+file))
			file++
		}
	}
	if rank != 0 || file != 8 {
		return Board{}, newParseError("fen", fen, "piece placement does not cover all 8 ranks")
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return Board{}, newParseError("fen", fen, "active color must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			default:
				return Board{}, newParseError("fen", fen, "invalid castling rights character '"+string(ch)+"'")
			}
		}
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return Board{}, newParseError("fen", fen, "invalid en passant target: "+err.Error())
	}
	b.epSquare = ep

	b.halfmove, err = strconv.Atoi(fields[4])
	if err != nil || b.halfmove < 0 {
		return Board{}, newParseError("fen", fen, "invalid halfmove clock")
	}

	b.fullmove, err = strconv.Atoi(fields[5])
	if err != nil || b.fullmove < 1 {
		return Board{}, newParseError("fen", fen, "invalid fullmove number")
	}

	b.hash = DefaultHasher.Hash(&b)
	b.invalidateCaches()
	return b, nil
}

// FEN serializes the Board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var out strings.Builder
	out.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pt, c, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte('0' + byte(empty))
				empty = 0
			}
			out.WriteByte(Symbol(pt, c))
		}
		if empty > 0 {
			out.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}

	out.WriteByte(' ')
	if b.turn == White {
		out.WriteByte('w')
	} else {
		out.WriteByte('b')
	}

	out.WriteByte(' ')
	out.WriteString(b.castling.String())

	out.WriteByte(' ')
	out.WriteString(b.epSquare.String())

	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(b.halfmove))
	out.WriteByte(' ')
	out.WriteString(strconv.Itoa(b.fullmove))

	return out.String()
}

func (b *Board) String() string { return b.FEN() }

// ColorFlip returns a Board with White and Black swapped: every bitboard is
// mirrored across the board's horizontal midline and reassigned to the
// other color, the side to move and castling rights are swapped, and the en
// passant target (if any) is mirrored to the corresponding rank. This is
// the color-flip symmetry spec.md §8 tests against: flipping twice returns
// the original position, and the two flipped positions always have the
// same legal-move count.
func (b *Board) ColorFlip() Board {
	var out Board
	for pt := Pawn; pt <= King; pt++ {
		out.pieces[pt] = b.pieces[pt].FlipVertical()
	}
	out.colors[White] = b.colors[Black].FlipVertical()
	out.colors[Black] = b.colors[White].FlipVertical()

	out.turn = b.turn.Other()
	out.castling = b.castling.Flip()
	out.epSquare = NoSquare
	if b.epSquare != NoSquare {
		out.epSquare = Square(int(b.epSquare) ^ 56)
	}
	out.halfmove = b.halfmove
	out.fullmove = b.fullmove

	out.hash = DefaultHasher.Hash(&out)
	out.invalidateCaches()
	return out
}
