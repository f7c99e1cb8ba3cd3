package chesscore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFENRoundTrip(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range cases {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		got := b.FEN()
		if got != fen {
			t.Fatalf("round trip mismatch: got %q want %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"not a fen string at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",
		"zzzzzzzz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q) should have failed", fen)
		}
	}
}

func TestHashMatchesFromScratchRecompute(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := []Move{
		NewMove(E2, E4, FlagDoublePawnPush),
		NewMove(E7, E5, FlagDoublePawnPush),
		NewMove(G1, F3, FlagQuiet),
	}
	for _, m := range moves {
		b.MakeMove(m)
		want := DefaultHasher.Hash(&b)
		if b.Hash() != want {
			t.Fatalf("incremental hash %d does not match recomputed hash %d after %s", b.Hash(), want, m)
		}
	}
}

func TestCastlingRightsMonotonicallyShrink(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	before := b.Castling()
	b.MakeMove(NewMove(A1, A2, FlagQuiet))
	after := b.Castling()
	if after&^before != 0 {
		t.Fatalf("castling rights gained bits: before=%v after=%v", before, after)
	}
	if after == before {
		t.Fatalf("expected moving the a1 rook to lose white queenside rights")
	}
}

// TestColorFlipTwiceReproducesExactBoard compares the round-tripped Board
// structurally (not just its FEN rendering) against the original, ignoring
// the lazy checkers/pinned caches, which are allowed to differ in fill
// state between two otherwise-identical Boards.
func TestColorFlipTwiceReproducesExactBoard(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	roundTripped := b.ColorFlip().ColorFlip()

	diff := cmp.Diff(&b, &roundTripped,
		cmp.AllowUnexported(Board{}),
		cmpopts.IgnoreFields(Board{}, "checkersCache", "pinnedCache"))
	if diff != "" {
		t.Fatalf("double color-flip should reproduce the exact board (-want +got):\n%s", diff)
	}
}

func TestColorFlipSymmetry(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R2Pp1k/8/6P1/8 b - e3 0 1",
	}
	for _, fen := range cases {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}

		flipped := b.ColorFlip()
		roundTripped := flipped.ColorFlip()
		if roundTripped.FEN() != b.FEN() {
			t.Fatalf("double color-flip should be the identity: got %q want %q", roundTripped.FEN(), b.FEN())
		}

		moves := GenerateLegalMoves(&b)
		flippedMoves := GenerateLegalMoves(&flipped)
		if moves.Count != flippedMoves.Count {
			t.Fatalf("color-flipped positions should have the same legal move count, got %d and %d", moves.Count, flippedMoves.Count)
		}
	}
}
