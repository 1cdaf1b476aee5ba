package rules

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
)

var knightOffsets = [8]Position{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var (
	bishopDirections = []Position{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirections   = []Position{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	queenDirections  = append(append([]Position{}, bishopDirections...), rookDirections...)
)

func offset(p, d Position) Position { return Position{Row: p.Row + d.Row, Col: p.Col + d.Col} }

// IsSquareAttacked reports whether any piece of byColor could move to pos,
// regardless of whose turn it is. Pawns attack by their capture geometry only.
func IsSquareAttacked(state GameState, pos Position, byColor Color) bool {
	if !pos.Valid() {
		return false
	}
	return boardAttacked(&state.Board, pos, byColor)
}

func boardAttacked(b *Board, pos Position, by Color) bool {
	// A pawn of `by` attacks pos from one row behind pos, relative to its own direction.
	pawnRow := pos.Row - pawnDirection(by)
	for _, dc := range [2]int{-1, 1} {
		if b.At(Position{Row: pawnRow, Col: pos.Col + dc}) == (Piece{Type: Pawn, Color: by}) {
			return true
		}
	}
	for _, d := range knightOffsets {
		if b.At(offset(pos, d)) == (Piece{Type: Knight, Color: by}) {
			return true
		}
	}
	for _, d := range kingOffsets {
		if b.At(offset(pos, d)) == (Piece{Type: King, Color: by}) {
			return true
		}
	}

	// Sliders: the magic tables give every square a rook/bishop on pos could
	// reach, first blocker included, so the blockers are the only candidates.
	sq := squareIndex(pos)
	occ := b.occupied
	orthogonal := dragontoothmg.CalculateRookMoveBitboard(sq, occ) & occ
	for orthogonal != 0 {
		p := b.At(positionOf(popLSB(&orthogonal)))
		if p.Color == by && (p.Type == Rook || p.Type == Queen) {
			return true
		}
	}
	diagonal := dragontoothmg.CalculateBishopMoveBitboard(sq, occ) & occ
	for diagonal != 0 {
		p := b.At(positionOf(popLSB(&diagonal)))
		if p.Color == by && (p.Type == Bishop || p.Type == Queen) {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether the king of the given color is attacked.
func IsKingInCheck(state GameState, color Color) bool {
	return boardAttacked(&state.Board, kingPositionOf(state, color), color.Opposite())
}

// kingPositionOf returns the cached king square, panicking when the cache and
// the board disagree: that is an engine defect, not a caller error.
func kingPositionOf(state GameState, color Color) Position {
	pos := state.KingPosition(color)
	if state.Board.At(pos) != (Piece{Type: King, Color: color}) {
		panic(fmt.Sprintf("rules: %s king not found at cached position %s", color, pos))
	}
	return pos
}
