package engine

import (
	"github.com/Ncn914491/solo-chess-master/rules"
)

type move struct {
	move  rules.Move
	score uint16
}
type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]uint16 = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 15, 14, 13, 12, 11, 10}, // victim Pawn
	{0, 25, 24, 23, 22, 21, 20}, // victim Knight
	{0, 35, 34, 33, 32, 31, 30}, // victim Bishop
	{0, 45, 44, 43, 42, 41, 40}, // victim Rook
	{0, 55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},       // victim King
}

/*
Move ordering offsets:
  - The stored table move goes first; it is the best move a previous search found here.
  - Captures next, most valuable victim first. Victims are grouped by tens in
    mvvLva so the victim always dominates the attacker.
  - Quiet promotions ahead of the remaining quiet moves.
  - Killers (quiet moves that cut off a sibling) before the other quiet moves.
*/
var ttMoveOffset uint16 = 25000
var captureOffset uint16 = 15000
var promotionOffset uint16 = 10000
var killerOffset uint16 = 2000

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

func sameMove(a, b rules.Move) bool { return a.From == b.From && a.To == b.To }

func scoreMovesList(moves []rules.Move, ttMove rules.Move, hasTTMove bool, killers [2]ttMove) (movesList moveList) {
	movesList.moves = make([]move, len(moves))
	for i, m := range moves {
		var moveEval uint16
		switch {
		case hasTTMove && sameMove(m, ttMove):
			moveEval = ttMoveOffset
		case m.IsCapture():
			moveEval = captureOffset + mvvLva[m.Captured.Type][m.Piece.Type]
		case m.IsPromotion:
			moveEval = promotionOffset
		case killers[0] != 0 && packMove(m) == killers[0]:
			moveEval = killerOffset + 200
		case killers[1] != 0 && packMove(m) == killers[1]:
			moveEval = killerOffset
		}
		movesList.moves[i].move = m
		movesList.moves[i].score = moveEval
	}
	return movesList
}

// scoreMovesListCaptures keeps only the captures, scored for quiescence.
func scoreMovesListCaptures(moves []rules.Move) (movesList moveList, anyCaptures bool) {
	movesList.moves = make([]move, 0, len(moves))
	for _, m := range moves {
		if !m.IsCapture() {
			continue
		}
		movesList.moves = append(movesList.moves, move{
			move:  m,
			score: mvvLva[m.Captured.Type][m.Piece.Type],
		})
	}
	return movesList, len(movesList.moves) > 0
}
