// hasher.go implements the Zobrist hashing contract from spec.md §4.2.
// chego's zobrist.go/init.go build the same key tables but fill them from
// the unseeded global math/rand/v2 source, so two processes (or two runs)
// never agree on a hash. The spec requires hash values to be a deterministic
// function of a published seed, so the keys here are drawn from a seeded
// math/rand/v2 PCG source instead — same table shapes, same fill order,
// now reproducible.
package chesscore

import "math/rand/v2"

// DefaultZobristSeed is the published seed used by [DefaultHasher]. Any
// two processes constructing a Hasher with this seed compute identical
// hashes for identical positions.
const DefaultZobristSeed uint64 = 0x9E3779B97F4A7C15

// Hasher holds the Zobrist key tables used to compute and incrementally
// update Board.hash. It is a process-wide singleton the same way PreCalc's
// attack tables are: stateless after construction, safe to share across
// goroutines each owning their own Board.
type Hasher struct {
	pieceKeys    [6][2][64]uint64
	castlingKeys [16]uint64
	epFileKeys   [8]uint64
	turnKey      uint64
}

// NewHasher builds a Hasher whose keys are a deterministic function of seed.
func NewHasher(seed uint64) *Hasher {
	src := rand.New(rand.NewPCG(seed, seed))
	h := &Hasher{}
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			for sq := 0; sq < 64; sq++ {
				h.pieceKeys[pt][c][sq] = src.Uint64()
			}
		}
	}
	for i := range h.castlingKeys {
		h.castlingKeys[i] = src.Uint64()
	}
	for i := range h.epFileKeys {
		h.epFileKeys[i] = src.Uint64()
	}
	h.turnKey = src.Uint64()
	return h
}

// DefaultHasher is the process-wide Hasher built from DefaultZobristSeed,
// the way PreCalc's tables are computed once in init().
var DefaultHasher = NewHasher(DefaultZobristSeed)

// Piece returns the key for a piece of type pt and color c standing on sq.
func (h *Hasher) Piece(pt PieceType, c Color, sq Square) uint64 {
	return h.pieceKeys[pt][c][sq]
}

// Castling returns the key for a given castling-rights mask.
func (h *Hasher) Castling(cr CastlingRights) uint64 { return h.castlingKeys[cr] }

// EnPassant returns the key for an en passant target on the given file. Pass
// -1 (via NoSquare.File() being meaningless) only through EnPassantSquare.
func (h *Hasher) EnPassant(file int) uint64 { return h.epFileKeys[file] }

// EnPassantSquare returns the key contributed by the board's en passant
// target square, or 0 if there is none.
func (h *Hasher) EnPassantSquare(ep Square) uint64 {
	if ep == NoSquare {
		return 0
	}
	return h.epFileKeys[ep.File()]
}

// Turn returns the key XORed in only when Black is to move, matching chego's
// "colorKey used only when black is the active color" convention.
func (h *Hasher) Turn() uint64 { return h.turnKey }

// HashMove returns the XOR delta MakeMove applies to pre.Hash() when m is
// played against pre: pre.Hash() ^ h.HashMove(m, pre) == post.Hash(), per
// spec.md §4.2's hash_move contract. MakeMove calls HashMove on a copy of
// the pre-move board to update its hash; HashMove only reads pre, so callers
// (e.g. search) can also get the post-move hash without constructing the
// post-move Board.
func (h *Hasher) HashMove(m Move, pre *Board) uint64 {
	c := pre.turn
	var delta uint64

	delta ^= h.EnPassantSquare(pre.epSquare)

	if m.IsNull() {
		delta ^= h.Turn()
		return delta
	}

	from, to := m.From(), m.To()
	mover, _, _ := pre.PieceAt(from)

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
		capturedPiece, _, _ = pre.PieceAt(to)
	}
	if capturedPiece != NoPieceType {
		delta ^= h.Piece(capturedPiece, c.Other(), capturedSq)
	}

	delta ^= h.Piece(mover, c, from)
	placed := mover
	if m.IsPromotion() {
		placed = m.PromotionPiece()
	}
	delta ^= h.Piece(placed, c, to)

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
		delta ^= h.Piece(Rook, c, rookFrom)
		delta ^= h.Piece(Rook, c, rookTo)
	}

	lost := rightsLostFromSquare(from) | rightsLostFromSquare(to)
	if lost&pre.castling != 0 {
		delta ^= h.Castling(pre.castling)
		delta ^= h.Castling(pre.castling &^ lost)
	}

	if m.Flag() == FlagDoublePawnPush {
		var epSq Square
		if c == White {
			epSq = Square(int(from) + 8)
		} else {
			epSq = Square(int(from) - 8)
		}
		delta ^= h.EnPassantSquare(epSq)
	}

	delta ^= h.Turn()
	return delta
}

// Hash computes the Zobrist hash of b from scratch. Used to initialize
// Board.hash on construction/FEN parse and to cross-check the incremental
// updates MakeMove performs.
func (h *Hasher) Hash(b *Board) uint64 {
	var key uint64
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			bb := b.pieces[pt] & b.colors[c]
			for sq := range bb.Squares() {
				key ^= h.Piece(pt, c, sq)
			}
		}
	}
	key ^= h.Castling(b.castling)
	key ^= h.EnPassantSquare(b.epSquare)
	if b.turn == Black {
		key ^= h.Turn()
	}
	return key
}
