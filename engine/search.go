package engine

import (
	"time"

	"github.com/Ncn914491/solo-chess-master/rules"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0

	// MaxDepth bounds the ply of any node, quiescence included.
	MaxDepth = 100
)

// MaxQuiescenceDepth caps how many capture plies quiescence may add.
var MaxQuiescenceDepth int8 = 8

// SearchResult is the outcome of a Minimax call. HasMove is false when the
// position has no legal move.
type SearchResult struct {
	Score    int32
	BestMove rules.Move
	HasMove  bool
}

// Minimax searches state to depth with alpha-beta pruning. Scores are from the
// maximizing side's point of view; maximizing says whether that side is to
// move in state. hash must be the key of state under this context's table.
func (sc *SearchContext) Minimax(state rules.GameState, depth int8, alpha, beta int32, maximizing bool, hash uint64) SearchResult {
	if maximizing {
		score, best, ok := sc.alphabeta(state, hash, depth, 0, alpha, beta)
		return SearchResult{Score: score, BestMove: best, HasMove: ok}
	}
	score, best, ok := sc.alphabeta(state, hash, depth, 0, -beta, -alpha)
	return SearchResult{Score: -score, BestMove: best, HasMove: ok}
}

// QuiescenceSearch resolves captures (and check evasions) until the position
// is quiet. Scores follow the same convention as Minimax.
func (sc *SearchContext) QuiescenceSearch(state rules.GameState, alpha, beta int32, maximizing bool) int32 {
	if maximizing {
		return sc.quiescence(state, alpha, beta, 0, 0)
	}
	return -sc.quiescence(state, -beta, -alpha, 0, 0)
}

// alphabeta is the negamax core: scores are from the side to move's point of view.
func (sc *SearchContext) alphabeta(state rules.GameState, hash uint64, depth int8, ply int8, alpha, beta int32) (int32, rules.Move, bool) {
	sc.nodes++

	if ply >= MaxDepth {
		return Evaluate(state), rules.Move{}, false
	}

	// Terminal positions
	if state.IsCheckmate {
		return -MaxScore + int32(ply), rules.Move{}, false
	}
	if state.IsStalemate {
		return DrawScore, rules.Move{}, false
	}

	if depth <= 0 {
		return sc.quiescence(state, alpha, beta, ply, 0), rules.Move{}, false
	}

	/*
		TRANSPOSITION TABLE LOOKUP
		The stored move is searched first whether or not the entry is deep enough.
	*/
	origAlpha := alpha
	var ttMove rules.Move
	var hasTTMove bool
	if entry, hit := sc.tt.Probe(hash); hit {
		ttMove, hasTTMove = entry.BestMove()
		if ply > 0 {
			score, cutoff, a, b := useEntry(entry, depth, ply, alpha, beta)
			if cutoff {
				sc.stats.TTCutoffs++
				return score, ttMove, hasTTMove
			}
			alpha, beta = a, b
		}
	}

	moveList := scoreMovesList(rules.AllLegalMoves(state), ttMove, hasTTMove, sc.killers.KillerMoves[ply])
	if len(moveList.moves) == 0 {
		// Only reachable for hand-built states whose flags were not set.
		if rules.IsKingInCheck(state, state.CurrentPlayer) {
			return -MaxScore + int32(ply), rules.Move{}, false
		}
		return DrawScore, rules.Move{}, false
	}

	bestScore := -MaxScore
	var bestMove rules.Move
	hasBest := false

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move
		if index == 0 && hasTTMove && sameMove(move, ttMove) {
			sc.stats.TTMoveFirst++
		}

		child := rules.ApplyLegalMove(state, move)
		score, _, _ := sc.alphabeta(child, sc.keys.Hash(child), depth-1, ply+1, -beta, -alpha)
		score = -score

		if !hasBest || score > bestScore {
			bestScore, bestMove, hasBest = score, move, true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			sc.stats.BetaCutoffs++
			if !move.IsCapture() {
				sc.killers.InsertKiller(move, ply)
			}
			break
		}
	}

	// Store in transposition table
	ttFlag := ExactFlag
	if bestScore <= origAlpha {
		ttFlag = AlphaFlag
	} else if bestScore >= beta {
		ttFlag = BetaFlag
	}
	sc.tt.Store(hash, depth, ply, bestMove, hasBest, bestScore, ttFlag)

	return bestScore, bestMove, hasBest
}

// quiescence is fail-hard: its result always lies within [alpha, beta].
func (sc *SearchContext) quiescence(state rules.GameState, alpha, beta int32, ply int8, qdepth int8) int32 {
	sc.nodes++

	if state.IsCheckmate {
		return Clamp(-MaxScore+int32(ply), alpha, beta)
	}
	if state.IsStalemate {
		return Clamp(DrawScore, alpha, beta)
	}

	inCheck := state.IsCheck
	standpat := Evaluate(state)

	// Stand-pat (not when in check: some evasion must be played)
	if !inCheck {
		if standpat >= beta {
			sc.stats.QStandPatCutoffs++
			return beta
		}
		if standpat > alpha {
			alpha = standpat
		}
	}

	if qdepth >= MaxQuiescenceDepth || ply >= MaxDepth {
		sc.stats.QDepthLimit++
		if inCheck {
			return Clamp(standpat, alpha, beta)
		}
		return alpha
	}

	// All moves when in check, only captures otherwise
	var moveList moveList
	if inCheck {
		moveList = scoreMovesList(rules.AllLegalMoves(state), rules.Move{}, false, [2]ttMove{})
	} else {
		var anyCaptures bool
		moveList, anyCaptures = scoreMovesListCaptures(rules.AllLegalMoves(state))
		if !anyCaptures {
			return alpha
		}
	}

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		child := rules.ApplyLegalMove(state, moveList.moves[index].move)
		score := -sc.quiescence(child, -beta, -alpha, ply+1, qdepth+1)

		if score >= beta {
			sc.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// IterativeDeepening searches depth 1, 2, ... up to maxDepth, checking the
// budget only between completed depths. The result always comes from the
// deepest completed depth, which is also returned.
func (sc *SearchContext) IterativeDeepening(state rules.GameState, maxDepth int8, budget time.Duration) (SearchResult, int8) {
	var result SearchResult
	var reached int8
	hash := sc.keys.Hash(state)
	maxDepth = Min(maxDepth, int8(MaxDepth-1))
	sc.timer.StartTime(budget, sc.cfg.ExpertOverrun)

	for depth := int8(1); depth <= maxDepth; depth++ {
		if depth > 1 {
			if sc.timer.SoftTimeExceeded() || sc.timer.ShouldStopEarly() {
				break
			}
		}

		startTime := time.Now()
		r := sc.Minimax(state, depth, -MaxScore, MaxScore, true, hash)
		sc.timer.IterationDone(time.Since(startTime))
		if !r.HasMove {
			break
		}
		result, reached = r, depth

		sc.logger.Printf("info depth %d score %s nodes %d time %d pv%s",
			depth,
			getMateOrCPScore(r.Score),
			sc.nodes,
			sc.timer.Elapsed().Milliseconds(),
			getPVLineString(sc.principalVariation(state, depth)),
		)

		// A forced mate will not change with more depth
		if r.Score > Checkmate || r.Score < -Checkmate {
			break
		}
	}
	return result, reached
}
