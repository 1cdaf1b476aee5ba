// Package notation renders moves for people: the compact coordinate form
// used by the move list, numbered move pairs, and standard algebraic
// notation through github.com/notnil/chess.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/Ncn914491/solo-chess-master/rules"
)

// ErrNotation is returned when a move cannot be expressed in algebraic
// notation, which only happens for moves that are not legal in the position.
var ErrNotation = errors.New("notation: move not legal in position")

// FormatMove renders a played move as "e2-e4", "d4xe5", "f7-f8+" or "d8xh4#".
// A checkmate is marked with '#' alone.
func FormatMove(m rules.Move) string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	switch {
	case m.IsCheckmate:
		sb.WriteByte('#')
	case m.IsCheck:
		sb.WriteByte('+')
	}
	return sb.String()
}

// MovePair is one numbered row of the move list.
type MovePair struct {
	Number int
	White  string
	Black  string // empty while black has not replied
}

// MovePairs groups a move history into numbered white/black rows.
func MovePairs(moves []rules.Move) []MovePair {
	pairs := make([]MovePair, 0, (len(moves)+1)/2)
	for i := 0; i < len(moves); i += 2 {
		p := MovePair{Number: i/2 + 1, White: FormatMove(moves[i])}
		if i+1 < len(moves) {
			p.Black = FormatMove(moves[i+1])
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// String renders the row as "1. e2-e4 e7-e5".
func (p MovePair) String() string {
	if p.Black == "" {
		return fmt.Sprintf("%d. %s", p.Number, p.White)
	}
	return fmt.Sprintf("%d. %s %s", p.Number, p.White, p.Black)
}

// SAN returns the standard algebraic notation of m played from state.
func SAN(state rules.GameState, m rules.Move) (string, error) {
	fen, err := chess.FEN(rules.ToFEN(state))
	if err != nil {
		return "", fmt.Errorf("notation: %v", err)
	}
	pos := chess.NewGame(fen).Position()
	mv, err := chess.UCINotation{}.Decode(pos, m.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w", m, ErrNotation)
	}
	return chess.AlgebraicNotation{}.Encode(pos, mv), nil
}

// Game replays state's history into a notnil/chess game that starts from the
// same origin. The returned game is a fresh copy owned by the caller.
func Game(state rules.GameState) (*chess.Game, error) {
	start := state.StartFEN
	if start == "" {
		start = rules.StartFEN
	}
	fen, err := chess.FEN(start)
	if err != nil {
		return nil, fmt.Errorf("notation: %v", err)
	}
	game := chess.NewGame(fen)
	for i, m := range state.MoveHistory {
		mv, err := chess.UCINotation{}.Decode(game.Position(), m.String())
		if err != nil {
			return nil, fmt.Errorf("ply %d %s: %w", i+1, m, ErrNotation)
		}
		if err := game.Move(mv); err != nil {
			return nil, fmt.Errorf("ply %d %s: %w", i+1, m, ErrNotation)
		}
	}
	return game, nil
}

// History returns the standard algebraic notation of every move played.
func History(state rules.GameState) ([]string, error) {
	game, err := Game(state)
	if err != nil {
		return nil, err
	}
	positions := game.Positions()
	moves := game.Moves()
	san := make([]string, len(moves))
	for i, mv := range moves {
		san[i] = chess.AlgebraicNotation{}.Encode(positions[i], mv)
	}
	return san, nil
}
