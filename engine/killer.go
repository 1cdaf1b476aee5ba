package engine

import (
	"github.com/Ncn914491/solo-chess-master/rules"
)

// KillerStruct remembers, per ply, the last two quiet moves that caused a
// beta cutoff. Siblings at the same ply often refute the same way.
type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]ttMove
}

func (k *KillerStruct) InsertKiller(move rules.Move, ply int8) {
	packed := packMove(move)
	if packed != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = packed
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply] = [2]ttMove{}
	}
}
