package engine

import (
	"github.com/Ncn914491/solo-chess-master/rules"
)

// ===== MATERIAL =====

// pieceValue is indexed by rules.PieceType. The king carries no material.
var pieceValue = [7]int32{
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   0,
}

// PieceValue returns the material value of a piece type in centipawns.
func PieceValue(t rules.PieceType) int32 { return pieceValue[t] }

// ===== PIECE-SQUARE TABLES =====
// Written from white's side with rank 8 first, so a white piece on (row, col)
// reads pst[type][row*8+col] and a black piece reads the mirrored row.

var pst = [7][64]int32{
	rules.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	rules.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	rules.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	rules.Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	rules.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	rules.King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// ===== WEIGHTS =====

// MobilityBonus is awarded per legal move of the side to move.
var MobilityBonus int32 = 2

// PawnShieldBonus is awarded per own pawn on the three squares directly in
// front of the king.
var PawnShieldBonus int32 = 10

// pstIndex maps a square to its table index for the given color.
func pstIndex(p rules.Position, c rules.Color) int {
	row := p.Row
	if c == rules.Black {
		row = 7 - row
	}
	return row*8 + p.Col
}

// Evaluate scores the position in centipawns from the side to move's point of view.
func Evaluate(state rules.GameState) int32 {
	us := state.CurrentPlayer
	var score int32

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			sq := rules.Position{Row: r, Col: c}
			p := state.Board.At(sq)
			if p.IsEmpty() {
				continue
			}
			v := pieceValue[p.Type] + pst[p.Type][pstIndex(sq, p.Color)]
			if p.Color == us {
				score += v
			} else {
				score -= v
			}
		}
	}

	score += MobilityBonus * int32(rules.CountLegalMoves(state))
	score += PawnShieldBonus * (pawnShield(state, us) - pawnShield(state, us.Opposite()))
	return score
}

// pawnShield counts the color's pawns on the rank in front of its king, on the
// king's file and the two adjacent ones.
func pawnShield(state rules.GameState, c rules.Color) int32 {
	king := state.KingPosition(c)
	row := king.Row - 1
	if c == rules.Black {
		row = king.Row + 1
	}
	pawn := rules.Piece{Type: rules.Pawn, Color: c}
	var n int32
	for dc := -1; dc <= 1; dc++ {
		if state.Board.At(rules.Position{Row: row, Col: king.Col + dc}) == pawn {
			n++
		}
	}
	return n
}
