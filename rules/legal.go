package rules

// LegalMoves returns the destinations the current player's piece on pos may
// move to. Invalid positions, empty squares and opponent pieces yield nil.
func LegalMoves(state GameState, pos Position) []Position {
	if !pos.Valid() {
		return nil
	}
	piece := state.Board.At(pos)
	if piece.IsEmpty() || piece.Color != state.CurrentPlayer {
		return nil
	}
	return legalFrom(&state, pos, piece.Color)
}

// legalFrom filters the pseudo-legal moves of the piece on pos by simulating
// each one on a scratch copy of the state.
func legalFrom(state *GameState, pos Position, color Color) []Position {
	pseudo := PseudoLegalMoves(*state, pos)
	legal := pseudo[:0]
	for _, to := range pseudo {
		if !leavesKingAttacked(state, pos, to, color) {
			legal = append(legal, to)
		}
	}
	return legal
}

func leavesKingAttacked(state *GameState, from, to Position, color Color) bool {
	scratch := *state
	play(&scratch, Move{From: from, To: to})
	return boardAttacked(&scratch.Board, scratch.KingPosition(color), color.Opposite())
}

// HasAnyLegalMove reports whether the side to move can make at least one move.
func HasAnyLegalMove(state GameState) bool {
	color := state.CurrentPlayer
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			pos := Position{Row: r, Col: c}
			p := state.Board.At(pos)
			if p.IsEmpty() || p.Color != color {
				continue
			}
			if len(legalFrom(&state, pos, color)) > 0 {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves enumerates every legal move of the side to move in row-major
// order of the moving piece. Each request carries Piece and Captured (en
// passant included) so callers can order them; promotions request a queen.
func AllLegalMoves(state GameState) []Move {
	color := state.CurrentPlayer
	moves := make([]Move, 0, 40)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			from := Position{Row: r, Col: c}
			piece := state.Board.At(from)
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			for _, to := range legalFrom(&state, from, color) {
				moves = append(moves, describe(&state, from, to, piece))
			}
		}
	}
	return moves
}

// CountLegalMoves is len(AllLegalMoves(state)) without building the requests.
func CountLegalMoves(state GameState) int {
	color := state.CurrentPlayer
	n := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			from := Position{Row: r, Col: c}
			p := state.Board.At(from)
			if p.IsEmpty() || p.Color != color {
				continue
			}
			n += len(legalFrom(&state, from, color))
		}
	}
	return n
}

// describe fills in the pre-application facts of a move request.
func describe(state *GameState, from, to Position, piece Piece) Move {
	m := Move{From: from, To: to, Piece: piece, Captured: state.Board.At(to)}
	if piece.Type == Pawn {
		if m.Captured.IsEmpty() && from.Col != to.Col {
			m.Captured = state.Board.At(Position{Row: from.Row, Col: to.Col})
			m.IsEnPassant = true
		}
		if to.Row == promotionRow(piece.Color) {
			m.IsPromotion = true
			m.PromotionPiece = Queen
		}
	}
	if piece.Type == King && (to.Col-from.Col == 2 || from.Col-to.Col == 2) {
		m.IsCastling = true
	}
	return m
}

// ThreatenedSquares lists the squares holding the current player's pieces that
// some opponent piece could move to pseudo-legally, in row-major order. Pins
// on the opponent's pieces are ignored: a pinned attacker still threatens.
func ThreatenedSquares(state GameState) []Position {
	me := state.CurrentPlayer
	view := state
	view.CurrentPlayer = me.Opposite()

	var hit [8][8]bool
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			from := Position{Row: r, Col: c}
			p := view.Board.At(from)
			if p.IsEmpty() || p.Color == me {
				continue
			}
			for _, to := range PseudoLegalMoves(view, from) {
				if q := view.Board.At(to); !q.IsEmpty() && q.Color == me {
					hit[to.Row][to.Col] = true
				}
			}
		}
	}

	var threatened []Position
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if hit[r][c] {
				threatened = append(threatened, Position{Row: r, Col: c})
			}
		}
	}
	return threatened
}
