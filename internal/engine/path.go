package engine

import "github.com/jrosengarden/Claude-Chess-sub000/internal/chess"

// Step and ray directions as (row, col) deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// stepTargets returns the on-board squares one offset away from from.
func stepTargets(from chess.Square, offsets [][2]int) []chess.Square {
	targets := make([]chess.Square, 0, len(offsets))
	for _, d := range offsets {
		if sq := from.Offset(d[0], d[1]); sq.Valid() {
			targets = append(targets, sq)
		}
	}
	return targets
}

// rayTargets walks each direction until the edge or the first occupied
// square, which is included whatever its colour.
func rayTargets(board *chess.Board, from chess.Square, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, d := range dirs {
		for sq := from.Offset(d[0], d[1]); sq.Valid(); sq = sq.Offset(d[0], d[1]) {
			targets = append(targets, sq)
			if !board.IsEmpty(sq) {
				break
			}
		}
	}
	return targets
}

// withoutOwn drops the squares occupied by pieces of the given colour.
func withoutOwn(board *chess.Board, targets []chess.Square, colour chess.Colour) []chess.Square {
	kept := targets[:0]
	for _, sq := range targets {
		p := board.Get(sq)
		if p.IsEmpty() || p.Colour != colour {
			kept = append(kept, sq)
		}
	}
	return kept
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	for sq := from.Offset(rowDir, colDir); sq != to; sq = sq.Offset(rowDir, colDir) {
		if !sq.Valid() {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}
