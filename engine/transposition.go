package engine

import (
	"unsafe"

	"github.com/Ncn914491/solo-chess-master/rules"
)

const (
	// Flags; zero marks an empty slot. AlphaFlag is an upper bound (nothing
	// raised alpha), BetaFlag a lower bound (a move failed high).
	AlphaFlag int8 = iota + 1
	BetaFlag
	ExactFlag

	clusterSize = 4
)

// ttMove is a move request packed into 16 bits: from (6), to (6), promotion (3).
// The zero value never names a real move since from and to would coincide.
type ttMove uint16

func packMove(m rules.Move) ttMove {
	from := m.From.Row*8 + m.From.Col
	to := m.To.Row*8 + m.To.Col
	return ttMove(from | to<<6 | int(m.PromotionPiece)<<12)
}

func (tm ttMove) unpack() rules.Move {
	from, to := int(tm)&63, int(tm>>6)&63
	return rules.Move{
		From:           rules.Position{Row: from / 8, Col: from % 8},
		To:             rules.Position{Row: to / 8, Col: to % 8},
		PromotionPiece: rules.PieceType(tm >> 12),
	}
}

// TTEntry is one cached search result.
type TTEntry struct {
	Hash  uint64
	Score int32
	Move  ttMove
	Depth int8
	Flag  int8
}

// BestMove returns the stored move, if the entry has one.
func (e TTEntry) BestMove() (rules.Move, bool) {
	if e.Move == 0 {
		return rules.Move{}, false
	}
	return e.Move.unpack(), true
}

// TransTable is a clustered transposition table keyed by position hash.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

// NewTransTable sizes a table to roughly sizeMB megabytes.
func NewTransTable(sizeMB int) *TransTable {
	tt := &TransTable{}
	tt.init(sizeMB)
	return tt
}

func (tt *TransTable) init(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, tt.clusterCount*clusterSize)
}

// Clear empties the table without releasing its memory.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Probe returns the entry stored for hash, if any.
func (tt *TransTable) Probe(hash uint64) (TTEntry, bool) {
	base := int(hash%tt.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		if e := tt.entries[base+i]; e.Hash == hash && e.Flag != 0 {
			return e, true
		}
	}
	return TTEntry{}, false
}

// Store records a search result. Mate scores arrive relative to the root and
// are stored relative to this node (ply added back on probe). An existing
// entry is only replaced by a search at least as deep.
func (tt *TransTable) Store(hash uint64, depth int8, ply int8, move rules.Move, hasMove bool, score int32, flag int8) {
	base := int(hash%tt.clusterCount) * clusterSize

	if score > Checkmate {
		score += int32(ply)
	} else if score < -Checkmate {
		score -= int32(ply)
	}

	targetIdx := -1

	// Prefer updating existing entry
	for i := 0; i < clusterSize; i++ {
		idx := base + i
		if tt.entries[idx].Hash == hash && !tt.isEmpty(idx) {
			if depth < tt.entries[idx].Depth {
				return
			}
			targetIdx = idx
			break
		}
	}

	// Next look for an empty slot
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.isEmpty(base + i) {
				targetIdx = base + i
				break
			}
		}
	}

	// Otherwise the shallowest entry, if we searched at least as deep
	if targetIdx == -1 {
		targetIdx = base
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < tt.entries[targetIdx].Depth {
				targetIdx = base + i
			}
		}
		if depth < tt.entries[targetIdx].Depth {
			return
		}
	}

	entry := &tt.entries[targetIdx]
	entry.Hash = hash
	entry.Depth = depth
	entry.Flag = flag
	entry.Score = score
	entry.Move = 0
	if hasMove {
		entry.Move = packMove(move)
	}
}

// isEmpty reports whether slot idx was never written.
func (tt *TransTable) isEmpty(idx int) bool { return tt.entries[idx].Flag == 0 }

// useEntry applies a probed entry to the window. It returns a score when the
// entry settles the node outright, otherwise the (possibly narrowed) window.
func useEntry(e TTEntry, depth int8, ply int8, alpha, beta int32) (score int32, cutoff bool, newAlpha, newBeta int32) {
	if e.Depth < depth {
		return 0, false, alpha, beta
	}
	norm := e.Score
	if norm > Checkmate {
		norm -= int32(ply)
	} else if norm < -Checkmate {
		norm += int32(ply)
	}
	switch e.Flag {
	case ExactFlag:
		return norm, true, alpha, beta
	case BetaFlag:
		if norm > alpha {
			alpha = norm
		}
	case AlphaFlag:
		if norm < beta {
			beta = norm
		}
	}
	if alpha >= beta {
		return norm, true, alpha, beta
	}
	return 0, false, alpha, beta
}
