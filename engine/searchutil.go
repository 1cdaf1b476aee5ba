package engine

import (
	"fmt"

	"github.com/Ncn914491/solo-chess-master/rules"
)

func getPVLineString(pv []rules.Move) (theMoves string) {
	for _, move := range pv {
		theMoves += " "
		theMoves += move.String()
	}
	return theMoves
}

// getMateOrCPScore renders a score as "cp N" or, for mate scores, "mate N"
// in moves (negative when the side to move is getting mated).
func getMateOrCPScore(score int32) string {
	if Abs(score) < Checkmate {
		return fmt.Sprintf("cp %d", score)
	}
	moves := (Max(MaxScore-Abs(score), 0) + 1) / 2
	if score < 0 {
		moves = -moves
	}
	return fmt.Sprintf("mate %d", moves)
}

// principalVariation follows the stored best moves from state, stopping at
// the first missing entry or at a move that is no longer legal.
func (sc *SearchContext) principalVariation(state rules.GameState, maxLen int8) []rules.Move {
	var pv []rules.Move
	s := state
	for i := int8(0); i < maxLen; i++ {
		entry, ok := sc.tt.Probe(sc.keys.Hash(s))
		if !ok {
			break
		}
		m, ok := entry.BestMove()
		if !ok {
			break
		}
		next := rules.ApplyMove(s, m)
		if len(next.MoveHistory) == len(s.MoveHistory) {
			break
		}
		pv = append(pv, next.MoveHistory[len(next.MoveHistory)-1])
		s = next
	}
	return pv
}
