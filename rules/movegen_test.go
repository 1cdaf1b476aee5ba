package rules

import "testing"

func TestOpeningMoveCount(t *testing.T) {
	s := NewGame(Beginner, ModeVsComputer)
	moves := AllLegalMoves(s)
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves at the start, got %d: %s", len(moves), movesString(moves))
	}
	var pawn, knight int
	for _, m := range moves {
		switch m.Piece.Type {
		case Pawn:
			pawn++
		case Knight:
			knight++
		default:
			t.Fatalf("unexpected mover %v in %s", m.Piece, m)
		}
	}
	if pawn != 16 || knight != 4 {
		t.Fatalf("by piece: pawns=%d knights=%d, want 16 and 4", pawn, knight)
	}
	if got := CountLegalMoves(s); got != 20 {
		t.Fatalf("CountLegalMoves = %d, want 20", got)
	}
}

func TestLegalMovesRejectsBadInput(t *testing.T) {
	s := NewGame(Beginner, ModeVsComputer)
	cases := []struct {
		name string
		pos  Position
	}{
		{"off board", Position{Row: -1, Col: 0}},
		{"off board high", Position{Row: 3, Col: 8}},
		{"empty square", pos(t, "e4")},
		{"opponent piece", pos(t, "e7")},
	}
	for _, tc := range cases {
		if got := LegalMoves(s, tc.pos); len(got) != 0 {
			t.Fatalf("%s: expected no moves, got %v", tc.name, got)
		}
	}
}

func TestPawnPushes(t *testing.T) {
	s := NewGame(Beginner, ModeVsComputer)
	got := LegalMoves(s, pos(t, "e2"))
	if len(got) != 2 || !containsPos(got, pos(t, "e3")) || !containsPos(got, pos(t, "e4")) {
		t.Fatalf("e2 pawn moves: got %v, want [e3 e4]", got)
	}

	// A blocked pawn cannot jump over the blocker.
	s = mustFEN(t, "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	if got := LegalMoves(s, pos(t, "e2")); len(got) != 0 {
		t.Fatalf("blocked pawn: expected no moves, got %v", got)
	}
}

func TestIsSquareAttacked(t *testing.T) {
	s := NewGame(Beginner, ModeVsComputer)
	cases := []struct {
		sq   string
		by   Color
		want bool
	}{
		{"e3", White, true},
		{"f3", White, true},
		{"e4", White, false},
		{"e6", Black, true},
		{"e5", Black, false},
		{"d1", White, true},
		{"e2", Black, false},
	}
	for _, tc := range cases {
		if got := IsSquareAttacked(s, pos(t, tc.sq), tc.by); got != tc.want {
			t.Fatalf("IsSquareAttacked(%s, %s) = %v, want %v", tc.sq, tc.by, got, tc.want)
		}
	}
	if IsSquareAttacked(s, Position{Row: 8, Col: 0}, White) {
		t.Fatalf("off-board square reported attacked")
	}

	// Sliders stop at the first blocker.
	s = mustFEN(t, "4k3/8/8/8/r2P3K/8/8/8 w - - 0 1")
	if !IsSquareAttacked(s, pos(t, "d4"), Black) {
		t.Fatalf("rook on a4 should attack d4")
	}
	if IsSquareAttacked(s, pos(t, "e4"), Black) {
		t.Fatalf("rook on a4 should be blocked by d4")
	}
}

func TestCastling(t *testing.T) {
	s := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	got := LegalMoves(s, pos(t, "e1"))
	if !containsPos(got, pos(t, "g1")) || !containsPos(got, pos(t, "c1")) {
		t.Fatalf("expected both castles from e1, got %v", got)
	}

	next := playMoves(t, s, "e1g1")
	if next.Board.At(pos(t, "g1")) != (Piece{Type: King, Color: White}) ||
		next.Board.At(pos(t, "f1")) != (Piece{Type: Rook, Color: White}) ||
		!next.Board.At(pos(t, "h1")).IsEmpty() {
		t.Fatalf("king-side castle left board %s", ToFEN(next))
	}
	last := next.MoveHistory[len(next.MoveHistory)-1]
	if !last.IsCastling {
		t.Fatalf("castle not flagged: %+v", last)
	}
	if next.CastlingRights.WhiteKingSide || next.CastlingRights.WhiteQueenSide {
		t.Fatalf("white castling rights survived a king move: %+v", next.CastlingRights)
	}
	if next.WhiteKingPosition != pos(t, "g1") {
		t.Fatalf("king cache %s, want g1", next.WhiteKingPosition)
	}

	next = playMoves(t, s, "e1c1")
	if next.Board.At(pos(t, "d1")) != (Piece{Type: Rook, Color: White}) || !next.Board.At(pos(t, "a1")).IsEmpty() {
		t.Fatalf("queen-side castle left board %s", ToFEN(next))
	}
}

func TestCastlingBlockedByAttackOrPieces(t *testing.T) {
	// The f2 rook covers f1, so only the queen side remains.
	s := mustFEN(t, "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	got := LegalMoves(s, pos(t, "e1"))
	if containsPos(got, pos(t, "g1")) {
		t.Fatalf("castled through an attacked square: %v", got)
	}
	if !containsPos(got, pos(t, "c1")) {
		t.Fatalf("queen-side castle missing: %v", got)
	}

	// No castling out of check.
	s = mustFEN(t, "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	got = LegalMoves(s, pos(t, "e1"))
	if containsPos(got, pos(t, "g1")) || containsPos(got, pos(t, "c1")) {
		t.Fatalf("castled out of check: %v", got)
	}

	// A piece between king and rook blocks, even if it is not on the king path.
	s = mustFEN(t, "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	if got := LegalMoves(s, pos(t, "e1")); containsPos(got, pos(t, "c1")) {
		t.Fatalf("castled over the b1 knight: %v", got)
	}

	// Moving a rook clears only that side.
	s = playMoves(t, mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), "h1h2", "a8a7")
	if s.CastlingRights.WhiteKingSide || !s.CastlingRights.WhiteQueenSide {
		t.Fatalf("after h1h2: %+v", s.CastlingRights)
	}
	if s.CastlingRights.BlackQueenSide || !s.CastlingRights.BlackKingSide {
		t.Fatalf("after a8a7: %+v", s.CastlingRights)
	}
}

func TestCapturedRookKeepsStaleRight(t *testing.T) {
	s := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	s = playMoves(t, s, "a1a8")
	if !s.CastlingRights.BlackQueenSide {
		t.Fatalf("capturing the a8 rook cleared black's recorded right")
	}
	if EffectiveCastlingRights(s).BlackQueenSide {
		t.Fatalf("effective rights still report a8 castling")
	}
	if containsPos(LegalMoves(s, pos(t, "e8")), pos(t, "c8")) {
		t.Fatalf("black may castle without a rook")
	}
}

func TestEnPassantWindow(t *testing.T) {
	s := playMoves(t, NewGame(Beginner, ModeTwoPlayer), "e2e4", "a7a6", "e4e5", "d7d5")
	if !s.HasEnPassant || s.EnPassantTarget != pos(t, "d6") {
		t.Fatalf("expected en passant target d6, got %v %s", s.HasEnPassant, s.EnPassantTarget)
	}
	if !containsPos(LegalMoves(s, pos(t, "e5")), pos(t, "d6")) {
		t.Fatalf("e5xd6 missing: %v", LegalMoves(s, pos(t, "e5")))
	}

	taken := playMoves(t, s, "e5d6")
	last := taken.MoveHistory[len(taken.MoveHistory)-1]
	if !last.IsEnPassant || last.Captured != (Piece{Type: Pawn, Color: Black}) {
		t.Fatalf("en passant capture not recorded: %+v", last)
	}
	if !taken.Board.At(pos(t, "d5")).IsEmpty() {
		t.Fatalf("captured pawn still on d5: %s", ToFEN(taken))
	}
	if taken.HasEnPassant {
		t.Fatalf("en passant target survived a capture")
	}

	// One intervening ply closes the window.
	later := playMoves(t, s, "h2h3", "a6a5")
	if containsPos(LegalMoves(later, pos(t, "e5")), pos(t, "d6")) {
		t.Fatalf("en passant still available two plies later")
	}
}

func TestPromotion(t *testing.T) {
	s := mustFEN(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")

	queen := playMoves(t, s, "a7a8")
	if queen.Board.At(pos(t, "a8")) != (Piece{Type: Queen, Color: White}) {
		t.Fatalf("default promotion: got %v", queen.Board.At(pos(t, "a8")))
	}
	last := queen.MoveHistory[0]
	if !last.IsPromotion || last.PromotionPiece != Queen || last.Piece.Type != Pawn {
		t.Fatalf("promotion record: %+v", last)
	}
	if !queen.IsCheck {
		t.Fatalf("queen on a8 should check the a1 king")
	}

	knight := playMoves(t, s, "a7a8n")
	if knight.Board.At(pos(t, "a8")) != (Piece{Type: Knight, Color: White}) {
		t.Fatalf("under-promotion: got %v", knight.Board.At(pos(t, "a8")))
	}
	if knight.IsCheck {
		t.Fatalf("knight on a8 does not check a1")
	}
}

func TestThreatenedSquares(t *testing.T) {
	if got := ThreatenedSquares(NewGame(Beginner, ModeVsComputer)); len(got) != 0 {
		t.Fatalf("nothing is threatened at the start, got %v", got)
	}

	s := mustFEN(t, "4k3/8/8/3p4/8/8/8/3RK3 b - - 0 1")
	got := ThreatenedSquares(s)
	if len(got) != 1 || got[0] != pos(t, "d5") {
		t.Fatalf("expected [d5], got %v", got)
	}

	// A pinned attacker still threatens.
	s = mustFEN(t, "k3r3/8/8/8/8/5p2/4B3/4K3 b - - 0 1")
	got = ThreatenedSquares(s)
	if len(got) != 1 || got[0] != pos(t, "f3") {
		t.Fatalf("pinned e2 bishop should threaten f3, got %v", got)
	}
}
