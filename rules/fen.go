package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN sets up a game from a FEN string. The clocks are validated but not
// tracked. The returned state remembers fen so Undo can replay from it.
func FromFEN(fen string, difficulty Difficulty, mode GameMode, opts ...Option) (GameState, error) {
	state := NewGame(difficulty, mode, opts...)
	state.Board = Board{}
	state.StartFEN = fen

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return GameState{}, fmt.Errorf("not enough fields: %w", ErrInvalidFEN)
	}

	// 1. Piece placement; the first rank listed is rank 8, which is row 0.
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return GameState{}, fmt.Errorf("incorrect number of ranks: %w", ErrInvalidFEN)
	}
	for row, desc := range rows {
		col := 0
		for i := 0; i < len(desc); i++ {
			ch := desc[i]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece, ok := pieceFromLetter(ch)
			if !ok {
				return GameState{}, fmt.Errorf("unrecognized piece character %q: %w", ch, ErrInvalidFEN)
			}
			if col >= 8 {
				return GameState{}, fmt.Errorf("too many squares in rank %q: %w", desc, ErrInvalidFEN)
			}
			state.Board.set(Position{Row: row, Col: col}, piece)
			col++
		}
		if col != 8 {
			return GameState{}, fmt.Errorf("rank %q does not have 8 columns: %w", desc, ErrInvalidFEN)
		}
	}
	for _, c := range [2]Color{White, Black} {
		if n := state.Board.Count(Piece{Type: King, Color: c}); n != 1 {
			return GameState{}, fmt.Errorf("%d %s kings: %w", n, c, ErrInvalidFEN)
		}
	}
	state.WhiteKingPosition, _ = state.Board.findKing(White)
	state.BlackKingPosition, _ = state.Board.findKing(Black)

	// 2. Side to move
	switch fields[1] {
	case "w":
		state.CurrentPlayer = White
	case "b":
		state.CurrentPlayer = Black
	default:
		return GameState{}, fmt.Errorf("side to move must be 'w' or 'b': %w", ErrInvalidFEN)
	}

	// 3. Castling rights
	state.CastlingRights = CastlingRights{}
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				state.CastlingRights.WhiteKingSide = true
			case 'Q':
				state.CastlingRights.WhiteQueenSide = true
			case 'k':
				state.CastlingRights.BlackKingSide = true
			case 'q':
				state.CastlingRights.BlackQueenSide = true
			default:
				return GameState{}, fmt.Errorf("invalid castling rights character %q: %w", ch, ErrInvalidFEN)
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		target, err := ParsePosition(fields[3])
		if err != nil {
			return GameState{}, fmt.Errorf("en passant square: %w", ErrInvalidFEN)
		}
		if target.Row != 2 && target.Row != 5 {
			return GameState{}, fmt.Errorf("en passant square %s not on rank 3 or 6: %w", target, ErrInvalidFEN)
		}
		state.EnPassantTarget = target
		state.HasEnPassant = true
	}

	// 5-6. Clocks
	for i, name := range []string{"halfmove clock", "fullmove number"} {
		if len(fields) > 4+i {
			if _, err := strconv.Atoi(fields[4+i]); err != nil {
				return GameState{}, fmt.Errorf("%s is not a number: %w", name, ErrInvalidFEN)
			}
		}
	}

	if IsKingInCheck(state, state.CurrentPlayer.Opposite()) {
		return GameState{}, fmt.Errorf("side not to move is in check: %w", ErrInvalidFEN)
	}
	state.IsCheck = IsKingInCheck(state, state.CurrentPlayer)
	if !HasAnyLegalMove(state) {
		state.IsCheckmate = state.IsCheck
		state.IsStalemate = !state.IsCheck
	}
	return state, nil
}

// ToFEN renders the position as FEN. Only castling rights that are still
// usable (king and rook on their home squares) are written. The halfmove
// clock is not tracked and is always 0.
func ToFEN(state GameState) string {
	var sb strings.Builder

	// 1. Piece placement
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := state.Board.At(Position{Row: row, Col: col})
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if state.CurrentPlayer == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	cr := EffectiveCastlingRights(state)
	if cr == (CastlingRights{}) {
		sb.WriteByte('-')
	} else {
		if cr.WhiteKingSide {
			sb.WriteByte('K')
		}
		if cr.WhiteQueenSide {
			sb.WriteByte('Q')
		}
		if cr.BlackKingSide {
			sb.WriteByte('k')
		}
		if cr.BlackQueenSide {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	if state.HasEnPassant {
		sb.WriteString(state.EnPassantTarget.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	// 5-6. Clocks
	sb.WriteString("0 ")
	sb.WriteString(strconv.Itoa(1 + len(state.MoveHistory)/2))
	return sb.String()
}

// EffectiveCastlingRights masks the recorded flags with the board: a flag only
// counts while the king and the matching rook stand on their home squares.
func EffectiveCastlingRights(state GameState) CastlingRights {
	home := func(c Color, rookCol int) bool {
		row := homeRow(c)
		return state.Board.At(Position{Row: row, Col: 4}) == (Piece{Type: King, Color: c}) &&
			state.Board.At(Position{Row: row, Col: rookCol}) == (Piece{Type: Rook, Color: c})
	}
	cr := state.CastlingRights
	cr.WhiteKingSide = cr.WhiteKingSide && home(White, 7)
	cr.WhiteQueenSide = cr.WhiteQueenSide && home(White, 0)
	cr.BlackKingSide = cr.BlackKingSide && home(Black, 7)
	cr.BlackQueenSide = cr.BlackQueenSide && home(Black, 0)
	return cr
}
