package chesscore

import "testing"

// TestMakeMove mirrors chego's position_test.go TestMakeMove table, adapted
// to chesscore's Move flag encoding, and confirms the same before/after FEN
// pairs.
func TestMakeMove(t *testing.T) {
	cases := []struct {
		name     string
		before   string
		after    string
		move     Move
	}{
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			"rnbqkbnr/ppp1pppp/8/3P4/2B5/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
			NewMove(E4, D5, FlagCapture),
		},
		{
			"white en passant",
			"rnbqkbnr/ppp1pppp/8/1Pp5/8/5N2/P1PP1PPP/RNBQK2R w KQkq c6 0 1",
			"rnbqkbnr/ppp1pppp/2P5/8/8/5N2/P1PP1PPP/RNBQK2R b KQkq - 0 1",
			NewMove(B5, C6, FlagEnPassant),
		},
		{
			"capture promotion",
			"rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1",
			"rRbqkbnr/pp2pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R b KQkq - 0 1",
			NewMove(C7, B8, promotionFlag(Rook, true)),
		},
		{
			"white O-O",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b kq - 1 1",
			NewMove(E1, G1, FlagCastleKingside),
		},
		{
			"black O-O-O",
			"r3kbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b KQkq - 0 1",
			"2kr1bnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 w KQ - 1 2",
			NewMove(E8, C8, FlagCastleQueenside),
		},
		{
			"rook move loses castling rights",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			NewMove(A1, B1, FlagQuiet),
		},
		{
			"white double pawn push",
			"4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			NewMove(E2, E4, FlagDoublePawnPush),
		},
		{
			"black double pawn push",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			"4k3/8/8/4p3/4P3/8/8/4K3 w - e6 0 2",
			NewMove(E7, E5, FlagDoublePawnPush),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.before)
			if err != nil {
				t.Fatalf("ParseFEN(before) failed: %v", err)
			}
			b.MakeMove(tc.move)
			got := b.FEN()
			if got != tc.after {
				t.Fatalf("after MakeMove: got %q want %q", got, tc.after)
			}
		})
	}
}

func BenchmarkMakeMove(b *testing.B) {
	before, err := ParseFEN("rnbqkbnr/pppppppp/8/8/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")
	if err != nil {
		b.Fatal(err)
	}
	m := NewMove(E1, G1, FlagCastleKingside)
	for i := 0; i < b.N; i++ {
		pos := before
		pos.MakeMove(m)
	}
}
