package rules

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NewGame returns the standard initial position with an empty history.
func NewGame(difficulty Difficulty, mode GameMode, opts ...Option) GameState {
	options := Options{ShowCoordinates: true, HighlightMoves: true}
	for _, opt := range opts {
		opt(&options)
	}
	return GameState{
		Board:             initialBoard(),
		CurrentPlayer:     White,
		WhiteKingPosition: Position{Row: 7, Col: 4}, // e1
		BlackKingPosition: Position{Row: 0, Col: 4}, // e8
		CastlingRights:    AllCastlingRights,
		Difficulty:        difficulty,
		Mode:              mode,
		Options:           options,
	}
}

// ApplyMove plays a move request and returns the resulting state. Requests
// that are not legal for the side to move leave the state unchanged.
func ApplyMove(state GameState, move Move) GameState {
	if !move.From.Valid() || !move.To.Valid() {
		return state
	}
	piece := state.Board.At(move.From)
	if piece.IsEmpty() || piece.Color != state.CurrentPlayer {
		return state
	}
	if !slices.Contains(legalFrom(&state, move.From, piece.Color), move.To) {
		return state
	}
	return ApplyLegalMove(state, move)
}

// ApplyLegalMove is ApplyMove without validation. The caller guarantees that
// move.To is in LegalMoves(state, move.From); search and replay use this path.
func ApplyLegalMove(state GameState, move Move) GameState {
	next := state
	played := play(&next, move)

	next.CurrentPlayer = state.CurrentPlayer.Opposite()
	next.IsCheck = IsKingInCheck(next, next.CurrentPlayer)
	next.IsCheckmate = false
	next.IsStalemate = false
	if !HasAnyLegalMove(next) {
		if next.IsCheck {
			next.IsCheckmate = true
		} else {
			next.IsStalemate = true
		}
	}
	played.IsCheck = next.IsCheck
	played.IsCheckmate = next.IsCheckmate

	n := len(state.MoveHistory)
	next.MoveHistory = append(state.MoveHistory[:n:n], played)
	return next
}

// play mutates next (a private copy) with the board side of a move: piece
// relocation, castling rights, en passant, promotion and the castling rook.
// It returns the move annotated with everything but check status.
func play(next *GameState, m Move) Move {
	b := &next.Board
	piece := b.At(m.From)
	if piece.IsEmpty() {
		panic(fmt.Sprintf("rules: no piece on %s", m.From))
	}
	color := piece.Color

	m.Piece = piece
	m.Captured = b.At(m.To)
	m.IsCheck, m.IsCheckmate = false, false
	m.IsPromotion, m.IsCastling, m.IsEnPassant = false, false, false
	promo := m.PromotionPiece
	m.PromotionPiece = NoPieceType

	b.clear(m.From)

	// Castling rights. A rook captured on its home square keeps the opponent's
	// flag set; castlingMoves re-checks the rook, so the board stays correct.
	cr := &next.CastlingRights
	switch {
	case piece.Type == King && color == White:
		cr.WhiteKingSide, cr.WhiteQueenSide = false, false
	case piece.Type == King:
		cr.BlackKingSide, cr.BlackQueenSide = false, false
	case piece.Type == Rook && m.From.Row == homeRow(color):
		switch {
		case m.From.Col == 0 && color == White:
			cr.WhiteQueenSide = false
		case m.From.Col == 7 && color == White:
			cr.WhiteKingSide = false
		case m.From.Col == 0:
			cr.BlackQueenSide = false
		case m.From.Col == 7:
			cr.BlackKingSide = false
		}
	}

	prevTarget, hadTarget := next.EnPassantTarget, next.HasEnPassant
	next.EnPassantTarget, next.HasEnPassant = Position{}, false

	if piece.Type == Pawn {
		if d := m.To.Row - m.From.Row; d == 2 || d == -2 {
			next.EnPassantTarget = Position{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
			next.HasEnPassant = true
		}
		if hadTarget && m.To == prevTarget && m.Captured.IsEmpty() {
			victim := Position{Row: m.From.Row, Col: m.To.Col}
			m.Captured = b.At(victim)
			b.clear(victim)
			m.IsEnPassant = true
		}
		if m.To.Row == promotionRow(color) {
			switch promo {
			case Queen, Rook, Bishop, Knight:
			default:
				promo = Queen
			}
			piece = Piece{Type: promo, Color: color}
			m.IsPromotion = true
			m.PromotionPiece = promo
		}
	}

	if piece.Type == King {
		if d := m.To.Col - m.From.Col; d == 2 || d == -2 {
			side := castleSides[0]
			if d < 0 {
				side = castleSides[1]
			}
			row := m.From.Row
			rook := b.At(Position{Row: row, Col: side.rookCol})
			b.clear(Position{Row: row, Col: side.rookCol})
			b.set(Position{Row: row, Col: side.rookTo}, rook)
			m.IsCastling = true
		}
		if color == White {
			next.WhiteKingPosition = m.To
		} else {
			next.BlackKingPosition = m.To
		}
	}

	b.set(m.To, piece)
	return m
}

// Undo rebuilds the state without its last move by replaying the history
// from the game's origin. An empty history returns the state unchanged.
func Undo(state GameState) GameState {
	return UndoN(state, 1)
}

// UndoN takes back n plies (fewer if the history is shorter).
func UndoN(state GameState, n int) GameState {
	if n <= 0 || len(state.MoveHistory) == 0 {
		return state
	}
	keep := len(state.MoveHistory) - n
	if keep < 0 {
		keep = 0
	}
	return Replay(origin(state), state.MoveHistory[:keep])
}

// Replay applies moves to start in order, recomputing every annotation.
func Replay(start GameState, moves []Move) GameState {
	s := start
	for _, m := range moves {
		s = ApplyLegalMove(s, Move{From: m.From, To: m.To, PromotionPiece: m.PromotionPiece})
	}
	return s
}

// origin reconstructs the state the game started from, with the same configuration.
func origin(state GameState) GameState {
	if state.StartFEN == "" {
		s := NewGame(state.Difficulty, state.Mode)
		s.Options = state.Options
		return s
	}
	s, err := FromFEN(state.StartFEN, state.Difficulty, state.Mode)
	if err != nil {
		panic(fmt.Sprintf("rules: stored start position no longer parses: %v", err))
	}
	s.Options = state.Options
	return s
}
