package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Ncn914491/solo-chess-master/engine"
	"github.com/Ncn914491/solo-chess-master/notation"
	"github.com/Ncn914491/solo-chess-master/rules"
	"github.com/Ncn914491/solo-chess-master/session"
)

func main() {
	difficulty := flag.String("difficulty", "beginner", "Computer strength: beginner, intermediate, advanced or expert")
	twoPlayer := flag.Bool("twoplayer", false, "Both sides are played from the keyboard")
	black := flag.Bool("black", false, "Play the black pieces against the computer")
	verbose := flag.Bool("verbose", false, "Print search and game events to stderr")
	flag.Parse()

	d, ok := rules.ParseDifficulty(strings.ToLower(*difficulty))
	if !ok {
		log.Fatalf("unknown difficulty %q", *difficulty)
	}
	mode := rules.ModeVsComputer
	if *twoPlayer {
		mode = rules.ModeTwoPlayer
	}
	human := rules.White
	if *black {
		human = rules.Black
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "info string ", log.Lshortfile)
	}
	s := session.New(d, mode,
		session.WithHumanColor(human),
		session.WithLogger(logger),
		session.WithEngine(engine.NewSearchContext(engine.WithLogger(logger))),
		session.WithDisplay(rules.WithFlippedBoard(human == rules.Black)),
	)
	playLoop(os.Stdin, os.Stdout, s)
}

// playLoop reads one command per line until quit or end of input.
func playLoop(in io.Reader, out io.Writer, s *session.Session) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, renderBoard(s.State()))
	respond(out, s)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit", "exit":
			return
		case "board", "d":
			fmt.Fprintln(out, renderBoard(s.State()))
		case "moves":
			if len(tokens) < 2 {
				fmt.Fprintln(out, "usage: moves <square>")
				continue
			}
			from, err := rules.ParsePosition(tokens[1])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintln(out, joinPositions(s.LegalMoves(from)))
		case "move", "m":
			if len(tokens) < 2 {
				fmt.Fprintln(out, "usage: move <from><to>[q|r|b|n]")
				continue
			}
			played, err := s.PlayText(tokens[1])
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "played %s\n", notation.FormatMove(played))
			respond(out, s)
		case "go":
			// Let the engine play the side to move; in two-player mode this is
			// the only way the computer moves.
			if s.ComputerToMove() {
				respond(out, s)
				continue
			}
			m, ok := s.Hint()
			if !ok {
				fmt.Fprintln(out, s.Status())
				continue
			}
			if _, err := s.Play(m); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "played %s\n", notation.FormatMove(s.State().MoveHistory[len(s.State().MoveHistory)-1]))
			respond(out, s)
		case "hint":
			m, ok := s.Hint()
			if !ok {
				fmt.Fprintln(out, "no move available")
				continue
			}
			if san, err := notation.SAN(s.State(), m); err == nil {
				fmt.Fprintf(out, "hint %s (%s)\n", m, san)
			} else {
				fmt.Fprintf(out, "hint %s\n", m)
			}
		case "undo":
			if !s.Undo() {
				fmt.Fprintln(out, "nothing to undo")
				continue
			}
			fmt.Fprintln(out, renderBoard(s.State()))
			// Taking back the computer's opening move hands it the turn again.
			respond(out, s)
		case "restart", "new":
			s.Restart()
			fmt.Fprintln(out, renderBoard(s.State()))
			respond(out, s)
		case "difficulty":
			if len(tokens) < 2 {
				fmt.Fprintf(out, "difficulty %s\n", s.State().Difficulty)
				continue
			}
			d, ok := rules.ParseDifficulty(strings.ToLower(tokens[1]))
			if !ok {
				fmt.Fprintf(out, "unknown difficulty %q\n", tokens[1])
				continue
			}
			s.SetDifficulty(d)
			fmt.Fprintf(out, "difficulty %s, new game\n", d)
			respond(out, s)
		case "threats":
			fmt.Fprintln(out, joinPositions(s.Threats()))
		case "fen":
			fmt.Fprintln(out, rules.ToFEN(s.State()))
		case "history":
			san, err := notation.History(s.State())
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			for i, p := range notation.MovePairs(s.State().MoveHistory) {
				line := p.String()
				if 2*i < len(san) {
					line += "   " + strings.Join(san[2*i:min(2*i+2, len(san))], " ")
				}
				fmt.Fprintln(out, line)
			}
		case "status":
			fmt.Fprintln(out, s.Status())
		case "help":
			fmt.Fprintln(out, "commands: board, moves <sq>, move <uci>, go, hint, undo, restart, difficulty <tier>, threats, fen, history, status, quit")
		default:
			fmt.Fprintf(out, "unknown command %q\n", tokens[0])
		}
	}
}

// respond lets the computer move when it is its turn and prints the result.
func respond(out io.Writer, s *session.Session) {
	if m, ok := s.RespondAI(); ok {
		fmt.Fprintf(out, "computer played %s\n", notation.FormatMove(m))
		fmt.Fprintln(out, renderBoard(s.State()))
	}
	if s.State().IsOver() || s.State().IsCheck {
		fmt.Fprintln(out, s.Status())
	}
}

func joinPositions(list []rules.Position) string {
	if len(list) == 0 {
		return "(none)"
	}
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// renderBoard draws the position as text, rank 8 on top unless the board is
// flipped. Threatened pieces are bracketed when the option is on.
func renderBoard(state rules.GameState) string {
	var threatened map[rules.Position]bool
	if state.Options.ShowThreats {
		threatened = make(map[rules.Position]bool)
		for _, p := range rules.ThreatenedSquares(state) {
			threatened[p] = true
		}
	}

	var sb strings.Builder
	for i := 0; i < 8; i++ {
		row := i
		if state.Options.FlipBoard {
			row = 7 - i
		}
		if state.Options.ShowCoordinates {
			fmt.Fprintf(&sb, "%d ", 8-row)
		}
		for j := 0; j < 8; j++ {
			col := j
			if state.Options.FlipBoard {
				col = 7 - j
			}
			pos := rules.Position{Row: row, Col: col}
			letter := state.Board.At(pos).Letter()
			if threatened[pos] {
				fmt.Fprintf(&sb, "[%c]", letter)
			} else {
				fmt.Fprintf(&sb, " %c ", letter)
			}
		}
		sb.WriteByte('\n')
	}
	if state.Options.ShowCoordinates {
		files := "abcdefgh"
		sb.WriteString("  ")
		for j := 0; j < 8; j++ {
			f := files[j]
			if state.Options.FlipBoard {
				f = files[7-j]
			}
			fmt.Fprintf(&sb, " %c ", f)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(session.Status(state))
	return sb.String()
}
