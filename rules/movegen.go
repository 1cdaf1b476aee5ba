package rules

// PseudoLegalMoves returns every destination the piece on pos could reach by
// its movement pattern, ignoring whether the mover's own king is left attacked.
func PseudoLegalMoves(state GameState, pos Position) []Position {
	if !pos.Valid() {
		return nil
	}
	piece := state.Board.At(pos)
	switch piece.Type {
	case Pawn:
		return pawnMoves(&state, pos, piece.Color)
	case Knight:
		return stepMoves(&state.Board, pos, piece.Color, knightOffsets[:])
	case Bishop:
		return slidingMoves(&state.Board, pos, piece.Color, bishopDirections)
	case Rook:
		return slidingMoves(&state.Board, pos, piece.Color, rookDirections)
	case Queen:
		return slidingMoves(&state.Board, pos, piece.Color, queenDirections)
	case King:
		moves := stepMoves(&state.Board, pos, piece.Color, kingOffsets[:])
		return append(moves, castlingMoves(&state, pos, piece.Color)...)
	}
	return nil
}

func pawnMoves(state *GameState, pos Position, color Color) []Position {
	b := &state.Board
	dir := pawnDirection(color)
	moves := make([]Position, 0, 4)

	one := Position{Row: pos.Row + dir, Col: pos.Col}
	if one.Valid() && b.At(one).IsEmpty() {
		moves = append(moves, one)
		two := Position{Row: pos.Row + 2*dir, Col: pos.Col}
		if pos.Row == pawnStartRow(color) && b.At(two).IsEmpty() {
			moves = append(moves, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		target := Position{Row: pos.Row + dir, Col: pos.Col + dc}
		if !target.Valid() {
			continue
		}
		victim := b.At(target)
		if !victim.IsEmpty() && victim.Color != color {
			moves = append(moves, target)
		} else if state.HasEnPassant && target == state.EnPassantTarget &&
			b.At(Position{Row: pos.Row, Col: target.Col}) == (Piece{Type: Pawn, Color: color.Opposite()}) {
			moves = append(moves, target)
		}
	}
	return moves
}

// stepMoves handles the fixed-offset movers (knight, king).
func stepMoves(b *Board, pos Position, color Color, offsets []Position) []Position {
	moves := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		target := offset(pos, d)
		if !target.Valid() {
			continue
		}
		if p := b.At(target); p.IsEmpty() || p.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

// slidingMoves ray-casts in each direction, stopping on (and including) the
// first enemy piece, or just before the first friendly one.
func slidingMoves(b *Board, pos Position, color Color, directions []Position) []Position {
	moves := make([]Position, 0, 14)
	for _, d := range directions {
		for target := offset(pos, d); target.Valid(); target = offset(target, d) {
			p := b.At(target)
			if p.IsEmpty() {
				moves = append(moves, target)
				continue
			}
			if p.Color != color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// castleSide describes one castling option for a color.
type castleSide struct {
	rookCol  int
	kingTo   int
	rookTo   int
	between  []int // must be empty
	kingPath []int // must not be attacked, origin included
}

var castleSides = [2]castleSide{
	{rookCol: 7, kingTo: 6, rookTo: 5, between: []int{5, 6}, kingPath: []int{4, 5, 6}},
	{rookCol: 0, kingTo: 2, rookTo: 3, between: []int{1, 2, 3}, kingPath: []int{4, 3, 2}},
}

func castlingRight(cr CastlingRights, color Color, kingSide bool) bool {
	switch {
	case color == White && kingSide:
		return cr.WhiteKingSide
	case color == White:
		return cr.WhiteQueenSide
	case kingSide:
		return cr.BlackKingSide
	default:
		return cr.BlackQueenSide
	}
}

func castlingMoves(state *GameState, pos Position, color Color) []Position {
	row := homeRow(color)
	if pos != (Position{Row: row, Col: 4}) {
		return nil
	}
	b := &state.Board
	var moves []Position
	for i, side := range castleSides {
		if !castlingRight(state.CastlingRights, color, i == 0) {
			continue
		}
		if b.At(Position{Row: row, Col: side.rookCol}) != (Piece{Type: Rook, Color: color}) {
			continue
		}
		empty := true
		for _, col := range side.between {
			if !b.At(Position{Row: row, Col: col}).IsEmpty() {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		safe := true
		for _, col := range side.kingPath {
			if boardAttacked(b, Position{Row: row, Col: col}, color.Opposite()) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, Position{Row: row, Col: side.kingTo})
		}
	}
	return moves
}
