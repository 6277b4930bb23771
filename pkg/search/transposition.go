package search

import (
	"context"
	"fmt"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
	"github.com/seekerror/logw"
)

// Bound qualifies a stored score relative to the window it was produced under.
type Bound uint8

const (
	NoBound Bound = iota
	ExactBound
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// Size is the fixed transposition table slot count: 2^22 entries.
const Size = 1 << 22

const mask = Size - 1

// entry is one transposition table slot. Kept as plain value fields -- the table is never
// accessed concurrently, so there is no need for atomics or pointer swaps.
type entry struct {
	hash  board.ZobristHash
	depth int8
	bound Bound
	value int16 // narrowed: every Score fits comfortably in [-20000,20000].
	best  board.Move
	gen   uint8
}

// TranspositionTable caches search results keyed by zobrist hash, with generation-aged,
// depth-preferred replacement. It is a process-lifetime singleton from the engine's point of
// view: callers bump the generation once per root call instead of clearing memory.
type TranspositionTable struct {
	slots [Size]entry
	gen   uint8
}

// NewTranspositionTable allocates a zeroed table.
func NewTranspositionTable(ctx context.Context) *TranspositionTable {
	logw.Infof(ctx, "Allocating domino TT with %v entries", Size)
	return &TranspositionTable{}
}

// NewGeneration bumps the aging counter. Call once at the start of every choose_move call;
// stale entries are naturally evicted by the replacement rule in Store, no memory is cleared.
func (t *TranspositionTable) NewGeneration() {
	t.gen++
}

// Probe looks up hash. found is false if the slot is empty or holds a different hash.
// Otherwise the stored best move is always returned as an ordering hint, and score is usable
// (ok=true) iff the stored depth is at least the requested depth and the bound permits
// resolving the window: EXACT always, LOWER if value >= beta, UPPER if value <= alpha.
func (t *TranspositionTable) Probe(hash board.ZobristHash, depth int, alpha, beta eval.Score) (best board.Move, score eval.Score, ok bool, found bool) {
	e := &t.slots[uint64(hash)&mask]
	if e.bound == NoBound || e.hash != hash {
		return board.NoMove, 0, false, false
	}

	best = e.best
	found = true

	if int(e.depth) >= depth {
		val := eval.Score(e.value)
		switch {
		case e.bound == ExactBound:
			score, ok = val, true
		case e.bound == LowerBound && val >= beta:
			score, ok = val, true
		case e.bound == UpperBound && val <= alpha:
			score, ok = val, true
		}
	}
	return best, score, ok, found
}

// Store writes an entry iff the slot is empty, from an older generation, or the incoming
// depth is at least the stored depth (same-generation depth-preferred replacement).
func (t *TranspositionTable) Store(hash board.ZobristHash, depth int, bound Bound, value eval.Score, best board.Move) {
	e := &t.slots[uint64(hash)&mask]

	if e.bound == NoBound || e.gen != t.gen || depth >= int(e.depth) {
		e.hash = hash
		e.depth = int8(depth)
		e.bound = bound
		e.value = int16(value)
		e.best = best
		e.gen = t.gen
	}
}

func (t *TranspositionTable) String() string {
	return fmt.Sprintf("TT[%v entries]", Size)
}

// SnapshotEntry is one exported TT slot, used to warm-start a fresh table from a persisted
// cache (see pkg/ttstore). Generation is deliberately not part of the snapshot: every
// restored entry is installed under the table's own current generation.
type SnapshotEntry struct {
	Hash  board.ZobristHash
	Depth int8
	Bound Bound
	Value int16
	Best  board.Move
}

// Snapshot returns every occupied slot at or above minDepth, in slot order. Shallow entries
// churn too fast across positions to be worth persisting.
func (t *TranspositionTable) Snapshot(minDepth int) []SnapshotEntry {
	var out []SnapshotEntry
	for i := range t.slots {
		e := &t.slots[i]
		if e.bound == NoBound || int(e.depth) < minDepth {
			continue
		}
		out = append(out, SnapshotEntry{Hash: e.hash, Depth: e.depth, Bound: e.bound, Value: e.value, Best: e.best})
	}
	return out
}

// Restore installs previously-snapshotted entries into the table under its current
// generation, subject to the ordinary Store replacement rule.
func (t *TranspositionTable) Restore(entries []SnapshotEntry) {
	for _, e := range entries {
		t.Store(e.Hash, int(e.Depth), e.Bound, eval.Score(e.Value), e.Best)
	}
}
