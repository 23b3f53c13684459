// perft counts the legal move tree below a position, for checking move
// generation against published node counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/engine"
)

func main() {
	fen := flag.String("fen", engine.InitialFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report the total")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	if *repeat < 1 {
		*repeat = 1
	}

	pos, err := engine.NewPositionFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		var sum uint64
		for _, e := range engine.PerftDivide(pos, *depth) {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
			sum += e.Nodes
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes += engine.Perft(pos, *depth)
	}
	elapsed := time.Since(start)

	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth %d\tnodes %d\ttime %s\tnps %.0f\n", *depth, nodes, elapsed, nps)
}
