package rules

import "math/bits"

// Board is the 8x8 grid plus an occupancy bitboard kept in step with it.
// It is a plain value: assigning a Board copies every square, which is how
// states and scratch simulations get their own snapshot.
type Board struct {
	squares  [8][8]Piece
	occupied uint64
}

// ==========================
// Square indexing
// ==========================

// squareIndex maps a Position onto the little-endian bitboard layout used by
// dragontoothmg (a1 = 0, h1 = 7, a8 = 56).
func squareIndex(p Position) uint8 { return uint8((7-p.Row)*8 + p.Col) }

// positionOf is the inverse of squareIndex.
func positionOf(sq int) Position { return Position{Row: 7 - sq/8, Col: sq % 8} }

// bb returns a bitboard with the given position set.
func bb(p Position) uint64 { return uint64(1) << squareIndex(p) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// ==========================
// Board access
// ==========================

// At returns the piece on p, or NoPiece for empty or off-board positions.
func (b *Board) At(p Position) Piece {
	if !p.Valid() {
		return NoPiece
	}
	return b.squares[p.Row][p.Col]
}

// Occupancy returns the bitboard of all occupied squares.
func (b *Board) Occupancy() uint64 { return b.occupied }

// set places (or clears, for NoPiece) a piece and keeps occupancy in sync.
func (b *Board) set(p Position, pc Piece) {
	b.squares[p.Row][p.Col] = pc
	if pc.IsEmpty() {
		b.occupied &^= bb(p)
	} else {
		b.occupied |= bb(p)
	}
}

func (b *Board) clear(p Position) { b.set(p, NoPiece) }

// Count returns how many pieces of the given kind are on the board.
func (b *Board) Count(pc Piece) int {
	n := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.squares[r][c] == pc {
				n++
			}
		}
	}
	return n
}

// findKing scans the grid for the king of the given color.
func (b *Board) findKing(c Color) (Position, bool) {
	king := Piece{Type: King, Color: c}
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			if b.squares[r][col] == king {
				return Position{Row: r, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Validate checks the occupancy cache against the grid.
func (b *Board) Validate() bool {
	var occ uint64
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if !b.squares[r][c].IsEmpty() {
				occ |= bb(Position{Row: r, Col: c})
			}
		}
	}
	return occ == b.occupied
}

// ==========================
// Initial setup
// ==========================

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func initialBoard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b.set(Position{Row: 0, Col: col}, Piece{Type: backRank[col], Color: Black})
		b.set(Position{Row: 1, Col: col}, Piece{Type: Pawn, Color: Black})
		b.set(Position{Row: 6, Col: col}, Piece{Type: Pawn, Color: White})
		b.set(Position{Row: 7, Col: col}, Piece{Type: backRank[col], Color: White})
	}
	return b
}

// homeRow is the back rank of the given color.
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnDirection is the row delta of a forward pawn step.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow is the row pawns of the given color start on.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRow is the farthest rank for the given color.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}
