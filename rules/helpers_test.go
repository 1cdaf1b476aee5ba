package rules

import (
	"strings"
	"testing"
)

func pos(t testing.TB, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("parse square %q: %v", s, err)
	}
	return p
}

// playMoves applies coordinate moves one by one, failing on the first one
// that ApplyMove rejects.
func playMoves(t testing.TB, s GameState, moves ...string) GameState {
	t.Helper()
	for _, text := range moves {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("parse move %q: %v", text, err)
		}
		next := ApplyMove(s, m)
		if len(next.MoveHistory) != len(s.MoveHistory)+1 {
			t.Fatalf("move %s rejected in %s; legal from %s: %v", text, ToFEN(s), m.From, LegalMoves(s, m.From))
		}
		s = next
	}
	return s
}

func mustFEN(t testing.TB, fen string) GameState {
	t.Helper()
	s, err := FromFEN(fen, Advanced, ModeTwoPlayer)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return s
}

func containsPos(list []Position, p Position) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func movesString(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
