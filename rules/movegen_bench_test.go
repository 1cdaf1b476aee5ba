package rules

import "testing"

func benchAllLegalMoves(b *testing.B, fen string) {
	state, err := FromFEN(fen, Advanced, ModeTwoPlayer)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = AllLegalMoves(state)
	}
}

func BenchmarkAllLegalMoves_Initial(b *testing.B) {
	benchAllLegalMoves(b, StartFEN)
}

func BenchmarkAllLegalMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchAllLegalMoves(b, fen)
}

func BenchmarkAllLegalMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchAllLegalMoves(b, fen)
}

func BenchmarkApplyMove(b *testing.B) {
	state := NewGame(Advanced, ModeTwoPlayer)
	m := Move{From: Position{Row: 6, Col: 4}, To: Position{Row: 4, Col: 4}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ApplyMove(state, m)
	}
}

func BenchmarkHash(b *testing.B) {
	state := NewGame(Advanced, ModeTwoPlayer)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Hash(state)
	}
}
