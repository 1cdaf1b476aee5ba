package engine

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/Ncn914491/solo-chess-master/rules"
)

// Config holds the per-tier search settings.
type Config struct {
	// AdvancedDepth is the fixed search depth of the advanced tier.
	AdvancedDepth int8
	// ExpertMaxDepth caps iterative deepening in the expert tier.
	ExpertMaxDepth int8
	// ExpertBudget is the wall-clock budget checked between completed depths.
	ExpertBudget time.Duration
	// ExpertOverrun stops deepening when the next depth is predicted to end
	// later than ExpertOverrun times the budget. Zero disables the prediction.
	ExpertOverrun float64
	// CaptureWeight is how many times a capture enters the beginner pool.
	CaptureWeight int
	// TTSizeMB sizes the transposition table.
	TTSizeMB int
	// CutStats logs the cut statistics after every top-level search.
	CutStats bool
}

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() Config {
	return Config{
		AdvancedDepth:  3,
		ExpertMaxDepth: 6,
		ExpertBudget:   time.Second,
		ExpertOverrun:  1.5,
		CaptureWeight:  3,
		TTSizeMB:       16,
	}
}

// Option customises a SearchContext.
type Option func(*SearchContext)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(sc *SearchContext) { sc.cfg = cfg }
}

// WithSeed seeds the generator used by the beginner tier.
func WithSeed(seed int64) Option {
	return func(sc *SearchContext) { sc.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the generator used by the beginner tier.
func WithRand(rng *rand.Rand) Option {
	return func(sc *SearchContext) { sc.rng = rng }
}

// WithLogger sends search progress ("info depth ...") to logger.
func WithLogger(logger *log.Logger) Option {
	return func(sc *SearchContext) { sc.logger = logger }
}

// WithKeys uses a specific Zobrist key table instead of the default one.
func WithKeys(keys *rules.ZobristKeys) Option {
	return func(sc *SearchContext) { sc.keys = keys }
}

// SearchContext is everything a search needs besides the position: the key
// table, the transposition table, statistics and settings. It is not safe for
// concurrent use; give each goroutine its own.
type SearchContext struct {
	cfg    Config
	keys   *rules.ZobristKeys
	tt     *TransTable
	rng    *rand.Rand
	logger *log.Logger
	timer  TimeHandler

	killers KillerStruct

	nodes uint64
	stats CutStatistics
}

// NewSearchContext builds a context with DefaultConfig and the given options.
func NewSearchContext(opts ...Option) *SearchContext {
	sc := &SearchContext{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.keys == nil {
		sc.keys = rules.DefaultKeys()
	}
	if sc.rng == nil {
		sc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sc.logger == nil {
		sc.logger = log.New(io.Discard, "", 0)
	}
	sc.tt = NewTransTable(sc.cfg.TTSizeMB)
	return sc
}

// Reset clears the transposition table and the counters. Every top-level
// search starts with it.
func (sc *SearchContext) Reset() {
	sc.tt.Clear()
	sc.killers.ClearKillers()
	sc.nodes = 0
	sc.resetCutStats()
}

// Config returns the active settings.
func (sc *SearchContext) Config() Config { return sc.cfg }

// Nodes returns how many nodes the last search visited.
func (sc *SearchContext) Nodes() uint64 { return sc.nodes }

// Stats returns the cut statistics of the last search.
func (sc *SearchContext) Stats() CutStatistics { return sc.stats }

// Table exposes the transposition table.
func (sc *SearchContext) Table() *TransTable { return sc.tt }

// Hash fingerprints state with this context's key table.
func (sc *SearchContext) Hash(state rules.GameState) uint64 { return sc.keys.Hash(state) }
