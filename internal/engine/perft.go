package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoveList(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := pos.Copy()
		commitMove(child, m.From, m.To, m.Promotion)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// PerftDivide returns the perft count below each root move, sorted by the
// move's coordinate notation.
func PerftDivide(pos *chess.Position, depth int) []DivideEntry {
	counts := make(map[string]uint64)
	for _, m := range LegalMoveList(pos) {
		child := pos.Copy()
		commitMove(child, m.From, m.To, m.Promotion)
		counts[m.UCI()] = Perft(child, depth-1)
	}

	keys := maps.Keys(counts)
	slices.Sort(keys)

	entries := make([]DivideEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, DivideEntry{Move: k, Nodes: counts[k]})
	}
	return entries
}
