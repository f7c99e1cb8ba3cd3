package chesscore

import "strconv"

// Square indexes one of the 64 board squares, a1=0 .. h8=63, matching the
// little-endian rank-file mapping used throughout PreCalc and Bitboard.
type Square int

// NoSquare is the sentinel used for "no en passant target" and similar
// absent-square cases.
const NoSquare Square = -1

// Square constants, a1=0 through h8=63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return int(s) >> 3 }

// Bitboard returns the single-bit Bitboard for this square.
func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

// squareNames maps each square to its algebraic string, shared by FEN, SAN
// and UCI formatting the way the teacher's Square2String table is.
var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

func (s Square) String() string {
	if s < A1 || s > H8 {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses an algebraic square string ("e4") into a Square.
// "-" parses to NoSquare, matching FEN's convention for an absent en
// passant target.
func ParseSquare(str string) (Square, error) {
	if str == "-" {
		return NoSquare, nil
	}
	if len(str) != 2 {
		return NoSquare, newParseError("square", str, "must be two characters")
	}
	file := str[0]
	if file < 'a' || file > 'h' {
		return NoSquare, newParseError("square", str, "file out of range a-h")
	}
	rank, err := strconv.Atoi(str[1:])
	if err != nil || rank < 1 || rank > 8 {
		return NoSquare, newParseError("square", str, "rank out of range 1-8")
	}
	return Square(int(file-'a') + (rank-1)*8), nil
}
