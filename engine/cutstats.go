package engine

// CutStatistics collects counts for each cutoff mechanism.
type CutStatistics struct {
	TTCutoffs        uint64
	TTMoveFirst      uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	QDepthLimit      uint64
}

func (sc *SearchContext) resetCutStats() {
	sc.stats = CutStatistics{}
}

func (sc *SearchContext) dumpCutStats() {
	sc.logger.Println("Cut statistics:")
	sc.logger.Printf("  TT cutoffs: %d", sc.stats.TTCutoffs)
	sc.logger.Printf("  TT move searched first: %d", sc.stats.TTMoveFirst)
	sc.logger.Printf("  Beta cutoffs: %d", sc.stats.BetaCutoffs)
	sc.logger.Printf("  QStandPat cutoffs: %d", sc.stats.QStandPatCutoffs)
	sc.logger.Printf("  QBeta cutoffs: %d", sc.stats.QBetaCutoffs)
	sc.logger.Printf("  Q depth limit hits: %d", sc.stats.QDepthLimit)
}
