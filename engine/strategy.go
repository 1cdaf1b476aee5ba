package engine

import (
	"fmt"
	"sync"

	"github.com/Ncn914491/solo-chess-master/rules"
)

// strategyFunc picks a move for the side to move. It may panic; SelectMove
// recovers and falls back to the first legal move.
type strategyFunc func(sc *SearchContext, state rules.GameState) (rules.Move, bool)

// strategies maps each difficulty tier to its move picker.
var strategies = map[rules.Difficulty]strategyFunc{
	rules.Beginner:     beginnerMove,
	rules.Intermediate: intermediateMove,
	rules.Advanced:     advancedMove,
	rules.Expert:       expertMove,
}

// SelectMove picks a move for the side to move using the tier stored in state.
func (sc *SearchContext) SelectMove(state rules.GameState) (rules.Move, bool) {
	return sc.SelectMoveAt(state, state.Difficulty)
}

// SelectMoveAt picks a move using the given tier. Unknown tiers play like a
// beginner. It returns false only when the side to move has no legal move.
func (sc *SearchContext) SelectMoveAt(state rules.GameState, difficulty rules.Difficulty) (move rules.Move, ok bool) {
	strategy, known := strategies[difficulty]
	if !known {
		strategy = beginnerMove
	}

	defer func() {
		if r := recover(); r != nil {
			sc.logger.Printf("%s search failed: %v; playing first legal move", difficulty, r)
			move, ok = firstLegalMove(state)
		}
	}()
	return strategy(sc, state)
}

// firstLegalMove is the fallback of every tier. A state too broken to
// enumerate moves yields no move rather than a second panic.
func firstLegalMove(state rules.GameState) (move rules.Move, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			move, ok = rules.Move{}, false
		}
	}()
	moves := rules.AllLegalMoves(state)
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	return moves[0], true
}

// beginnerMove picks uniformly from a pool where every capture appears
// CaptureWeight times and every other move once.
func beginnerMove(sc *SearchContext, state rules.GameState) (rules.Move, bool) {
	moves := rules.AllLegalMoves(state)
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	weight := Max(sc.cfg.CaptureWeight, 1)

	pool := make([]int, 0, len(moves)*2)
	for i, m := range moves {
		if !m.IsCapture() {
			pool = append(pool, i)
		}
	}
	for w := 0; w < weight; w++ {
		for i, m := range moves {
			if m.IsCapture() {
				pool = append(pool, i)
			}
		}
	}
	return moves[pool[sc.rng.Intn(len(pool))]], true
}

// intermediateMove is a one-ply greedy search: every reply is scored with
// Evaluate and the opponent's answer is not considered. Mating moves win
// outright and stalemating moves score as a draw.
func intermediateMove(sc *SearchContext, state rules.GameState) (rules.Move, bool) {
	moves := rules.AllLegalMoves(state)
	if len(moves) == 0 {
		return rules.Move{}, false
	}
	best := moves[0]
	bestScore := -MaxScore - 1
	for _, m := range moves {
		next := rules.ApplyLegalMove(state, m)
		var score int32
		switch {
		case next.IsCheckmate:
			score = MaxScore
		case next.IsStalemate:
			score = DrawScore
		default:
			score = -Evaluate(next)
		}
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, true
}

// advancedMove runs a fixed-depth search from a cleared table.
func advancedMove(sc *SearchContext, state rules.GameState) (rules.Move, bool) {
	sc.Reset()
	res := sc.Minimax(state, sc.cfg.AdvancedDepth, -MaxScore, MaxScore, true, sc.keys.Hash(state))
	if sc.cfg.CutStats {
		sc.dumpCutStats()
	}
	return res.BestMove, res.HasMove
}

// expertMove deepens iteratively from a cleared table until the budget is
// spent, returning the move of the deepest completed depth.
func expertMove(sc *SearchContext, state rules.GameState) (rules.Move, bool) {
	sc.Reset()
	res, depth := sc.IterativeDeepening(state, sc.cfg.ExpertMaxDepth, sc.cfg.ExpertBudget)
	if sc.cfg.CutStats {
		sc.dumpCutStats()
	}
	if !res.HasMove {
		return rules.Move{}, false
	}
	sc.logger.Printf("bestmove %s depth %d", res.BestMove, depth)
	return res.BestMove, true
}

// ===== PACKAGE-LEVEL ENGINE =====

var (
	defaultMu  sync.Mutex
	defaultCtx *SearchContext
)

func withDefault[T any](f func(sc *SearchContext) T) T {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCtx == nil {
		defaultCtx = NewSearchContext()
	}
	return f(defaultCtx)
}

type moveChoice struct {
	move rules.Move
	ok   bool
}

// SelectAIMove picks the computer's move for state at its difficulty, using a
// shared process-wide search context. Calls are serialized.
func SelectAIMove(state rules.GameState) (rules.Move, bool) {
	c := withDefault(func(sc *SearchContext) moveChoice {
		m, ok := sc.SelectMove(state)
		return moveChoice{m, ok}
	})
	return c.move, c.ok
}

// SuggestMove proposes a move for the side to move (the hint feature). It uses
// the same tier as the computer opponent.
func SuggestMove(state rules.GameState) (rules.Move, bool) {
	return SelectAIMove(state)
}

// SetDefaultContext replaces the shared context used by SelectAIMove.
func SetDefaultContext(sc *SearchContext) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = sc
}

// String describes a search result the way the info lines do.
func (r SearchResult) String() string {
	if !r.HasMove {
		return fmt.Sprintf("score %s (no move)", getMateOrCPScore(r.Score))
	}
	return fmt.Sprintf("score %s bestmove %s", getMateOrCPScore(r.Score), r.BestMove)
}
