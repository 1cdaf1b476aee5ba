package rules

import (
	"math/rand"
	"sync"
)

// zobristSeed is fixed so hashes are reproducible across runs and in tests.
const zobristSeed = 0xC0DE

// noEnPassant is the en-passant key index used when no target is set.
const noEnPassant = 8

// ZobristKeys holds the random keys a position hash is built from. A table is
// never modified once built, so it is safe to share between goroutines.
type ZobristKeys struct {
	pieces    [6][2][64]uint64 // [type-1][color][row*8+col]
	blackMove uint64
	castling  [16]uint64 // indexed by CastlingRights.Index
	enPassant [9]uint64  // file of the target, or noEnPassant
}

// NewZobristKeys builds a key table from the given seed.
func NewZobristKeys(seed int64) *ZobristKeys {
	rnd := rand.New(rand.NewSource(seed))
	k := &ZobristKeys{}

	// Piece keys
	for t := range k.pieces {
		for c := range k.pieces[t] {
			for sq := range k.pieces[t][c] {
				k.pieces[t][c][sq] = rnd.Uint64()
			}
		}
	}

	// Castling rights keys
	for i := range k.castling {
		k.castling[i] = rnd.Uint64()
	}

	// En passant file keys, plus the "none" slot
	for i := range k.enPassant {
		k.enPassant[i] = rnd.Uint64()
	}

	// Side to move key
	k.blackMove = rnd.Uint64()
	return k
}

var (
	defaultKeys     *ZobristKeys
	defaultKeysOnce sync.Once
)

// DefaultKeys returns the process-wide key table, building it on first use.
func DefaultKeys() *ZobristKeys {
	defaultKeysOnce.Do(func() {
		defaultKeys = NewZobristKeys(zobristSeed)
	})
	return defaultKeys
}

// Hash computes the position key of state from scratch. It depends only on
// placement, side to move, castling rights and the en-passant file, so two
// move orders reaching the same position hash the same.
func (k *ZobristKeys) Hash(state GameState) uint64 {
	var key uint64

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := state.Board.squares[r][c]
			if p.IsEmpty() {
				continue
			}
			key ^= k.pieces[p.Type-1][p.Color][r*8+c]
		}
	}

	if state.CurrentPlayer == Black {
		key ^= k.blackMove
	}

	key ^= k.castling[state.CastlingRights.Index()]

	if state.HasEnPassant {
		key ^= k.enPassant[state.EnPassantTarget.Col]
	} else {
		key ^= k.enPassant[noEnPassant]
	}
	return key
}

// Hash computes the position key of state with the default key table.
func Hash(state GameState) uint64 {
	return DefaultKeys().Hash(state)
}
