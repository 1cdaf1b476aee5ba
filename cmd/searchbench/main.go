package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/Ncn914491/solo-chess-master/engine"
	"github.com/Ncn914491/solo-chess-master/rules"
)

func main() {
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	difficultyFlag := flag.String("difficulty", "expert", "tier to run: beginner, intermediate, advanced or expert")
	depthFlag := flag.Int("depth", 0, "override the advanced depth / expert depth cap (0 = default)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	seedFlag := flag.Int64("seed", 1, "random seed for the beginner tier")
	verbose := flag.Bool("verbose", false, "print info lines and cut statistics")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	difficulty, ok := rules.ParseDifficulty(*difficultyFlag)
	if !ok {
		log.Fatalf("unknown difficulty %q", *difficultyFlag)
	}
	if *repeatFlag <= 0 {
		log.Fatalf("repeat must be positive, got %d", *repeatFlag)
	}

	fen := rules.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	state, err := rules.FromFEN(fen, difficulty, rules.ModeVsComputer)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
		}()
	}

	cfg := engine.DefaultConfig()
	cfg.CutStats = *verbose
	if *depthFlag > 0 {
		cfg.AdvancedDepth = int8(*depthFlag)
		cfg.ExpertMaxDepth = int8(*depthFlag)
	}
	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "info string ", log.Lshortfile)
	}

	fmt.Printf("searchbench: fen=%q difficulty=%s repeat=%d\n", fen, difficulty, *repeatFlag)

	startAll := time.Now()
	var totalNodes uint64
	for i := 0; i < *repeatFlag; i++ {
		// Fresh context per run so the table starts cold each time.
		sc := engine.NewSearchContext(
			engine.WithConfig(cfg),
			engine.WithSeed(*seedFlag+int64(i)),
			engine.WithLogger(logger),
		)
		iterStart := time.Now()
		best, ok := sc.SelectMove(state)
		iterElapsed := time.Since(iterStart)
		totalNodes += sc.Nodes()
		if !ok {
			fmt.Printf("iteration %d: no legal move\n", i+1)
			continue
		}
		fmt.Printf("iteration %d: bestmove %s  nodes=%d  time=%v\n", i+1, best, sc.Nodes(), iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v  nodes: %d\n", totalElapsed, totalNodes)
}
