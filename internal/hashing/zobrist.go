package hashing

import (
	"math/rand"

	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// zobristSeed fixes the key table so that hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

var (
	pieceKeys    [2][7][chess.BoardSize][chess.BoardSize]uint64
	sideKey      uint64
	castlingKeys [2][2]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for r := 0; r < chess.BoardSize; r++ {
				for f := 0; f < chess.BoardSize; f++ {
					pieceKeys[c][t][r][f] = rng.Uint64()
				}
			}
		}
	}
	sideKey = rng.Uint64()
	for c := range castlingKeys {
		castlingKeys[c][chess.Kingside] = rng.Uint64()
		castlingKeys[c][chess.Queenside] = rng.Uint64()
	}
	for f := range epFileKeys {
		epFileKeys[f] = rng.Uint64()
	}
}

// Key returns the Zobrist hash of a position. Two positions share a key when
// they have the same placement, side to move, castling rights and en passant
// file; the clocks are ignored.
func Key(pos *chess.Position) uint64 {
	if pos == nil {
		return 0
	}
	h := BoardKey(&pos.Board)
	if pos.ToMove == chess.Black {
		h ^= sideKey
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range []int{chess.Kingside, chess.Queenside} {
			if pos.CanCastle(c, side) {
				h ^= castlingKeys[c][side]
			}
		}
	}
	if pos.EnPassant && pos.EPSquare.Valid() {
		h ^= epFileKeys[pos.EPSquare.Col]
	}
	return h
}

// BoardKey hashes the piece placement only.
func BoardKey(board *chess.Board) uint64 {
	var h uint64
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		h ^= pieceKeys[p.Colour][p.Type][sq.Row][sq.Col]
	})
	return h
}

// WeakHash is a cheap additive hash of the placement, used as a second
// check when two Zobrist keys collide.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		h += uint32(p.Type)*31 + uint32(p.Colour)*7 + uint32(sq.Row*chess.BoardSize+sq.Col)*131
	})
	return h
}
