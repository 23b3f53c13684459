// Package hashing provides position keys, repetition counting and duplicate
// game detection.
package hashing

import (
	"github.com/jrosengarden/Claude-Chess-sub000/internal/chess"
)

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	counts map[uint64]int
	keys   []uint64
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Push records a position and returns how many times it has now been seen.
func (t *RepetitionTable) Push(pos *chess.Position) int {
	k := Key(pos)
	t.keys = append(t.keys, k)
	t.counts[k]++
	return t.counts[k]
}

// Pop forgets the most recently pushed position.
func (t *RepetitionTable) Pop() {
	if len(t.keys) == 0 {
		return
	}
	k := t.keys[len(t.keys)-1]
	t.keys = t.keys[:len(t.keys)-1]
	if t.counts[k] <= 1 {
		delete(t.counts, k)
	} else {
		t.counts[k]--
	}
}

// Count returns how many times pos has been recorded.
func (t *RepetitionTable) Count(pos *chess.Position) int {
	return t.counts[Key(pos)]
}

// Len returns the number of recorded positions.
func (t *RepetitionTable) Len() int {
	return len(t.keys)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
	t.keys = t.keys[:0]
}

// DuplicateDetector tracks finished games for duplicate detection.
type DuplicateDetector struct {
	// hashTable maps a final position key to the games that ended there
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal move counts
	useExactMatch  bool
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// WeakHash is a second placement hash for collisions
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the table.
// final is the position the game ended in. Returns true for a duplicate.
func (d *DuplicateDetector) CheckAndAdd(game *chess.Game, final *chess.Position) bool {
	if final == nil {
		return false
	}

	sig := GameSignature{
		Hash:     Key(final),
		WeakHash: WeakHash(&final.Board),
	}
	if game != nil {
		sig.MoveCount = game.PlyCount()
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
