// Package session drives one interactive game: the human's moves, the
// computer's replies, undo, restart and the difficulty setting.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/Ncn914491/solo-chess-master/engine"
	"github.com/Ncn914491/solo-chess-master/rules"
)

var (
	ErrIllegalMove = errors.New("session: illegal move")
	ErrNotYourTurn = errors.New("session: not your turn")
	ErrGameOver    = errors.New("session: game is over")
)

// Session owns the current state of one game. It is not safe for concurrent
// use; a UI serializes its calls.
type Session struct {
	ID uuid.UUID

	state  rules.GameState
	human  rules.Color
	opts   []rules.Option
	engine *engine.SearchContext
	logger *log.Logger
}

// Option configures a new session.
type Option func(*Session)

// WithHumanColor sets the side the human plays against the computer.
func WithHumanColor(c rules.Color) Option {
	return func(s *Session) { s.human = c }
}

// WithEngine sets the search context used for the computer and for hints.
func WithEngine(sc *engine.SearchContext) Option {
	return func(s *Session) { s.engine = sc }
}

// WithLogger sets where game events (check, mate, undo, ...) are reported.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithDisplay sets the display flags of every game the session starts.
func WithDisplay(opts ...rules.Option) Option {
	return func(s *Session) { s.opts = append(s.opts, opts...) }
}

// New starts a session with a fresh game.
func New(difficulty rules.Difficulty, mode rules.GameMode, opts ...Option) *Session {
	s := &Session{ID: uuid.New(), human: rules.White}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.engine == nil {
		s.engine = engine.NewSearchContext(engine.WithLogger(s.logger))
	}
	s.state = rules.NewGame(difficulty, mode, s.opts...)
	return s
}

// State returns the current game state.
func (s *Session) State() rules.GameState { return s.state }

// Human returns the color the human plays against the computer.
func (s *Session) Human() rules.Color { return s.human }

// ComputerToMove reports whether the next move belongs to the computer.
func (s *Session) ComputerToMove() bool {
	return s.state.Mode == rules.ModeVsComputer && !s.state.IsOver() && s.state.CurrentPlayer != s.human
}

// LegalMoves lists the destinations of the piece on pos for the side to move.
func (s *Session) LegalMoves(pos rules.Position) []rules.Position {
	return rules.LegalMoves(s.state, pos)
}

// Play makes a move for the side to move. Against the computer only the
// human's side may be played through Play.
func (s *Session) Play(m rules.Move) (rules.Move, error) {
	if s.state.IsOver() {
		return rules.Move{}, ErrGameOver
	}
	if s.ComputerToMove() {
		return rules.Move{}, ErrNotYourTurn
	}
	if !slices.Contains(rules.LegalMoves(s.state, m.From), m.To) {
		return rules.Move{}, fmt.Errorf("%s: %w", m, ErrIllegalMove)
	}
	return s.apply(m), nil
}

// PlayText parses a coordinate move ("e2e4", "e7e8n") and plays it.
func (s *Session) PlayText(text string) (rules.Move, error) {
	m, err := rules.ParseMove(text)
	if err != nil {
		return rules.Move{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return s.Play(m)
}

// RespondAI lets the computer move if it is its turn. It reports false when
// there was nothing to do.
func (s *Session) RespondAI() (rules.Move, bool) {
	if !s.ComputerToMove() {
		return rules.Move{}, false
	}
	m, ok := s.engine.SelectMove(s.state)
	if !ok {
		return rules.Move{}, false
	}
	return s.apply(m), true
}

func (s *Session) apply(m rules.Move) rules.Move {
	s.state = rules.ApplyMove(s.state, m)
	played := s.state.MoveHistory[len(s.state.MoveHistory)-1]
	s.logger.Printf("%s played %s", played.Piece.Color, played)
	switch {
	case s.state.IsCheckmate:
		s.logger.Printf("checkmate: %s wins", s.state.CurrentPlayer.Opposite())
	case s.state.IsStalemate:
		s.logger.Printf("stalemate: the game is a draw")
	case s.state.IsCheck:
		s.logger.Printf("check: %s king is in check", s.state.CurrentPlayer)
	}
	return played
}

// Undo takes back the last move. Against the computer it keeps going until
// the human is to move again, so the computer's reply and the human's move
// go together. It reports false when there was nothing to undo.
func (s *Session) Undo() bool {
	if len(s.state.MoveHistory) == 0 {
		return false
	}
	plies := 1
	if s.state.Mode == rules.ModeVsComputer {
		n := len(s.state.MoveHistory)
		if s.state.CurrentPlayer == s.human && n >= 2 {
			plies = 2
		}
	}
	s.state = rules.UndoN(s.state, plies)
	s.logger.Printf("undo: %d ply taken back", plies)
	return true
}

// Restart begins a new game at the current difficulty.
func (s *Session) Restart() {
	s.state = rules.NewGame(s.state.Difficulty, s.state.Mode, s.opts...)
	s.engine.Reset()
	s.logger.Printf("restart: new %s game at %s", s.state.Mode, s.state.Difficulty)
}

// SetDifficulty changes the computer's tier. Like the settings dialog it
// restarts the game.
func (s *Session) SetDifficulty(d rules.Difficulty) {
	s.state.Difficulty = d
	s.Restart()
}

// Hint suggests a move for the side to move at the session's difficulty.
func (s *Session) Hint() (rules.Move, bool) {
	if s.state.IsOver() {
		return rules.Move{}, false
	}
	return s.engine.SelectMove(s.state)
}

// Threats lists the side to move's pieces that the opponent attacks.
func (s *Session) Threats() []rules.Position {
	return rules.ThreatenedSquares(s.state)
}

// Status is the one-line headline of the game.
func (s *Session) Status() string {
	return Status(s.state)
}

// Status describes state the way the board header does.
func Status(state rules.GameState) string {
	switch {
	case state.IsCheckmate:
		return fmt.Sprintf("Checkmate! %s wins!", title(state.CurrentPlayer.Opposite()))
	case state.IsStalemate:
		return "Stalemate! The game is a draw."
	case state.IsCheck:
		return fmt.Sprintf("%s to move. Check!", title(state.CurrentPlayer))
	}
	return fmt.Sprintf("%s to move", title(state.CurrentPlayer))
}

func title(c rules.Color) string {
	if c == rules.White {
		return "White"
	}
	return "Black"
}
