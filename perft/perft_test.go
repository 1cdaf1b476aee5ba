package perft

import (
	"sort"
	"testing"

	"github.com/Ncn914491/solo-chess-master/rules"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	enPassant = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	promotion = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
)

// perftCases holds published node counts. deep marks the counts that take
// long enough to skip under -short.
var perftCases = []struct {
	name  string
	fen   string
	depth int
	want  uint64
	deep  bool
}{
	{"initial d1", rules.StartFEN, 1, 20, false},
	{"initial d2", rules.StartFEN, 2, 400, false},
	{"initial d3", rules.StartFEN, 3, 8902, false},
	{"initial d4", rules.StartFEN, 4, 197281, true},
	{"kiwipete d1", kiwipete, 1, 48, false},
	{"kiwipete d2", kiwipete, 2, 2039, false},
	{"kiwipete d3", kiwipete, 3, 97862, true},
	{"position3 d1", position3, 1, 14, false},
	{"position3 d2", position3, 2, 191, false},
	{"position3 d3", position3, 3, 2812, false},
	{"position3 d4", position3, 4, 43238, true},
	{"position4 d1", position4, 1, 6, false},
	{"position4 d2", position4, 2, 264, false},
	{"position4 d3", position4, 3, 9467, true},
	{"position5 d1", position5, 1, 44, false},
	{"position5 d2", position5, 2, 1486, false},
	{"position5 d3", position5, 3, 62379, true},
	{"en passant d1", enPassant, 1, 5, false},
	{"en passant d2", enPassant, 2, 19, false},
	{"promotion d1", promotion, 1, 11, false},
}

func mustFEN(t testing.TB, fen string) rules.GameState {
	t.Helper()
	s, err := rules.FromFEN(fen, rules.Advanced, rules.ModeTwoPlayer)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return s
}

func TestPerftKnownCounts(t *testing.T) {
	for _, tc := range perftCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.deep && testing.Short() {
				t.Skip("deep perft skipped in -short mode")
			}
			state := mustFEN(t, tc.fen)
			got := Perft(state, tc.depth)
			if got != tc.want {
				// Diagnostics: the divide at this depth narrows down the bad subtree.
				div := Divide(state, tc.depth)
				keys := make([]string, 0, len(div))
				for k := range div {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					t.Logf("  %s: %d", k, div[k])
				}
				t.Fatalf("perft(%d) of %q: got %d want %d", tc.depth, tc.fen, got, tc.want)
			}
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	state := rules.NewGame(rules.Advanced, rules.ModeTwoPlayer)
	if got := Perft(state, 0); got != 1 {
		t.Fatalf("perft(0): got %d want 1", got)
	}
	if div := Divide(state, 0); len(div) != 0 {
		t.Fatalf("divide(0): got %d entries want 0", len(div))
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	state := mustFEN(t, kiwipete)
	div := Divide(state, 2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide total: got %d want 2039", sum)
	}
	// Castling shows up as a king move of two files.
	for _, mv := range []string{"e1g1", "e1c1"} {
		if _, ok := div[mv]; !ok {
			t.Errorf("divide is missing castling move %s", mv)
		}
	}
}

func TestDivideListsUnderPromotions(t *testing.T) {
	div := Divide(mustFEN(t, promotion), 1)
	for _, mv := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8q", "a7b8r", "a7b8b", "a7b8n"} {
		if div[mv] != 1 {
			t.Errorf("divide[%s]: got %d want 1", mv, div[mv])
		}
	}
}

func TestPerftLeavesStateUntouched(t *testing.T) {
	state := mustFEN(t, position4)
	before := rules.ToFEN(state)
	_ = Perft(state, 2)
	if after := rules.ToFEN(state); after != before {
		t.Fatalf("perft modified its input: %q became %q", before, after)
	}
}
