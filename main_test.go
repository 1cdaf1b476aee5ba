package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ncn914491/solo-chess-master/engine"
	"github.com/Ncn914491/solo-chess-master/rules"
	"github.com/Ncn914491/solo-chess-master/session"
)

func runScript(t *testing.T, s *session.Session, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	playLoop(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, s)
	return out.String()
}

func testSession(mode rules.GameMode, opts ...session.Option) *session.Session {
	sc := engine.NewSearchContext(engine.WithSeed(11), engine.WithConfig(func() engine.Config {
		cfg := engine.DefaultConfig()
		cfg.TTSizeMB = 1
		return cfg
	}()))
	return session.New(rules.Beginner, mode, append([]session.Option{session.WithEngine(sc)}, opts...)...)
}

func TestPlayLoopTwoPlayerMate(t *testing.T) {
	out := runScript(t, testSession(rules.ModeTwoPlayer),
		"moves e2",
		"move f2f3", "move e7e5", "move g2g4", "move d8h4",
		"history",
		"fen",
		"quit",
		"board", // never reached
	)
	for _, want := range []string{
		"e3 e4",
		"played d8-h4#",
		"Checkmate! Black wins!",
		"1. f2-f3 e7-e5   f3 e5",
		"2. g2-g4 d8-h4#   g4 Qh4#",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestPlayLoopComputerReplies(t *testing.T) {
	out := runScript(t, testSession(rules.ModeVsComputer), "move e2e4", "undo", "fen")
	if !strings.Contains(out, "computer played") {
		t.Fatalf("computer did not reply:\n%s", out)
	}
	if !strings.Contains(out, rules.StartFEN) {
		t.Fatalf("undo did not return to the start position:\n%s", out)
	}
}

func TestPlayLoopUndoAsBlack(t *testing.T) {
	s := testSession(rules.ModeVsComputer, session.WithHumanColor(rules.Black))
	out := runScript(t, s, "undo", "move e7e5", "go")
	if strings.Contains(out, "not your turn") {
		t.Fatalf("game stuck after undoing the computer's opening:\n%s", out)
	}
	if n := strings.Count(out, "computer played"); n != 4 {
		t.Fatalf("computer moves: got %d want 4\n%s", n, out)
	}
	st := s.State()
	if len(st.MoveHistory) != 5 || st.CurrentPlayer != rules.Black {
		t.Fatalf("after script: %d plies, %s to move", len(st.MoveHistory), st.CurrentPlayer)
	}
	if got := st.MoveHistory[1].String(); got != "e7e5" {
		t.Fatalf("black's first move: got %s want e7e5", got)
	}
}

func TestPlayLoopErrors(t *testing.T) {
	out := runScript(t, testSession(rules.ModeTwoPlayer),
		"move e2e5", "moves", "moves z9", "difficulty grandmaster", "undo", "xyzzy")
	for _, want := range []string{
		"illegal move",
		"usage: moves <square>",
		"invalid square",
		`unknown difficulty "grandmaster"`,
		"nothing to undo",
		`unknown command "xyzzy"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestPlayLoopDifficultyAndHint(t *testing.T) {
	s := testSession(rules.ModeTwoPlayer)
	out := runScript(t, s, "move e2e4", "difficulty intermediate", "hint")
	if s.State().Difficulty != rules.Intermediate || len(s.State().MoveHistory) != 0 {
		t.Fatalf("difficulty change did not restart: %s, %d plies", s.State().Difficulty, len(s.State().MoveHistory))
	}
	if !strings.Contains(out, "hint ") {
		t.Fatalf("no hint printed:\n%s", out)
	}
}

func TestRenderBoard(t *testing.T) {
	st := rules.NewGame(rules.Beginner, rules.ModeTwoPlayer)
	lines := strings.Split(renderBoard(st), "\n")
	if lines[0] != "8  r  n  b  q  k  b  n  r " {
		t.Fatalf("top rank: got %q", lines[0])
	}
	if lines[8] != "   a  b  c  d  e  f  g  h " {
		t.Fatalf("file labels: got %q", lines[8])
	}

	flipped := rules.NewGame(rules.Beginner, rules.ModeTwoPlayer, rules.WithFlippedBoard(true), rules.WithCoordinates(false))
	lines = strings.Split(renderBoard(flipped), "\n")
	if lines[0] != " R  N  B  K  Q  B  N  R " {
		t.Fatalf("flipped top rank: got %q", lines[0])
	}
}
