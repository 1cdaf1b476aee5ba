package perft

import (
	"testing"

	"github.com/Ncn914491/solo-chess-master/rules"
)

func benchPerft(b *testing.B, fen string, depth int) {
	state, err := rules.FromFEN(fen, rules.Advanced, rules.ModeTwoPlayer)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Perft(state, depth)
	}
}

func BenchmarkPerft_Initial_D3(b *testing.B) {
	benchPerft(b, rules.StartFEN, 3)
}

func BenchmarkPerft_Kiwipete_D2(b *testing.B) {
	benchPerft(b, kiwipete, 2)
}
