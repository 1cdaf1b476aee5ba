package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/Ncn914491/solo-chess-master/perft"
	"github.com/Ncn914491/solo-chess-master/rules"
)

func main() {
	fen := flag.String("fen", rules.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	check := flag.Bool("check", false, "Cross-check the node count against dragontoothmg")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	state, err := rules.FromFEN(*fen, rules.Beginner, rules.ModeTwoPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := perft.Divide(state, *depth)
		keys := make([]string, 0, len(div))
		var sum uint64
		for m, n := range div {
			keys = append(keys, m)
			sum += n
		}
		sort.Strings(keys)
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m, div[m])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes = perft.Perft(state, *depth)
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%d \t%d \t\t%s \t%.0f\n", *depth, nodes, elapsed, nps)

	if *check {
		board := dragontoothmg.ParseFen(*fen)
		want := referencePerft(&board, *depth)
		if want != nodes {
			fmt.Printf("MISMATCH: dragontoothmg counts %d\n", want)
			os.Exit(1)
		}
		fmt.Println("dragontoothmg agrees")
	}
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}
