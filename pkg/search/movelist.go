package search

import (
	"fmt"

	"github.com/herohde/dominoengine/pkg/board"
)

// Priority is a move ordering score. Spec mandates insertion sort over a plain slice
// instead of a heap: move lists are tiny (at most ~14 entries), so insertion sort is
// both simpler and faster than heap maintenance, and it lets the caller swap a TT hint move
// into position 0 for free.
type Priority float64

// MoveList is one node's move list, ordered descending by priority via insertion sort.
// Each list holds its own copy of the moves, allocated per node; there is no shared
// per-ply arena.
type MoveList struct {
	moves []board.Move
	pri   []Priority
}

// NewMoveList scores moves with fn and sorts them descending. Lists of 2 or fewer entries
// skip ordering (not worth the overhead).
func NewMoveList(moves []board.Move, fn func(m board.Move) Priority) *MoveList {
	ml := &MoveList{
		moves: append([]board.Move(nil), moves...),
		pri:   make([]Priority, len(moves)),
	}
	for i, m := range ml.moves {
		ml.pri[i] = fn(m)
	}
	if len(ml.moves) > 2 {
		ml.insertionSort()
	}
	return ml
}

// insertionSort orders moves descending by priority. Optimal for the small lists this
// search ever produces; no allocation beyond the list itself.
func (ml *MoveList) insertionSort() {
	for i := 1; i < len(ml.moves); i++ {
		m, p := ml.moves[i], ml.pri[i]
		j := i
		for j > 0 && ml.pri[j-1] < p {
			ml.moves[j] = ml.moves[j-1]
			ml.pri[j] = ml.pri[j-1]
			j--
		}
		ml.moves[j] = m
		ml.pri[j] = p
	}
}

// PutFirst moves m to the front of the list, if present, preserving the relative order of
// the rest. Used to install a transposition-table move hint ahead of heuristic ordering.
func (ml *MoveList) PutFirst(m board.Move) {
	for i, cur := range ml.moves {
		if cur.Equals(m) {
			if i == 0 {
				return
			}
			movedP := ml.pri[i]
			copy(ml.moves[1:i+1], ml.moves[0:i])
			copy(ml.pri[1:i+1], ml.pri[0:i])
			ml.moves[0] = m
			ml.pri[0] = movedP
			return
		}
	}
}

// Len returns the number of moves remaining.
func (ml *MoveList) Len() int {
	return len(ml.moves)
}

// At returns the move at index i, in current order.
func (ml *MoveList) At(i int) board.Move {
	return ml.moves[i]
}

func (ml *MoveList) String() string {
	if ml.Len() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.moves[0], ml.Len())
}
