// Package perft counts leaf nodes of the legal move tree. Matching the
// published counts for a handful of well known positions is the standard
// check that castling, en passant and promotion are generated correctly.
package perft

import (
	"github.com/Ncn914491/solo-chess-master/rules"
)

// underPromotions are the extra pieces a promotion request can name.
// AllLegalMoves only requests the queen.
var underPromotions = [...]rules.PieceType{rules.Rook, rules.Bishop, rules.Knight}

// Perft returns the number of leaf nodes depth plies below state.
func Perft(state rules.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range expand(rules.AllLegalMoves(state)) {
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(rules.ApplyLegalMove(state, m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by its
// coordinate text ("e2e4", "e7e8n").
func Divide(state rules.GameState, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range expand(rules.AllLegalMoves(state)) {
		div[m.String()] = Perft(rules.ApplyLegalMove(state, m), depth-1)
	}
	return div
}

// expand turns each queen promotion request into all four choices.
func expand(moves []rules.Move) []rules.Move {
	out := moves
	for _, m := range moves {
		if !m.IsPromotion {
			continue
		}
		for _, pt := range underPromotions {
			under := m
			under.PromotionPiece = pt
			out = append(out, under)
		}
	}
	return out
}
