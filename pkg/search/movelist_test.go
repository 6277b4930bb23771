package search_test

import (
	"testing"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestMoveListSortsDescending(t *testing.T) {
	moves := []board.Move{{Tile: 0, End: 0}, {Tile: 1, End: 0}, {Tile: 2, End: 0}}
	priorities := map[board.Move]search.Priority{
		moves[0]: 1,
		moves[1]: 100,
		moves[2]: 50,
	}

	ml := search.NewMoveList(moves, func(m board.Move) search.Priority { return priorities[m] })

	assert.Equal(t, moves[1], ml.At(0))
	assert.Equal(t, moves[2], ml.At(1))
	assert.Equal(t, moves[0], ml.At(2))
}

func TestMoveListPutFirst(t *testing.T) {
	moves := []board.Move{{Tile: 0, End: 0}, {Tile: 1, End: 0}, {Tile: 2, End: 0}}
	ml := search.NewMoveList(moves, func(m board.Move) search.Priority { return 0 })

	ml.PutFirst(board.Move{Tile: 2, End: 0})
	assert.Equal(t, board.Move{Tile: 2, End: 0}, ml.At(0))
	assert.Equal(t, 3, ml.Len())
}

func TestMoveListPutFirstMissingIsNoop(t *testing.T) {
	moves := []board.Move{{Tile: 0, End: 0}, {Tile: 1, End: 0}}
	ml := search.NewMoveList(moves, func(m board.Move) search.Priority { return 0 })

	ml.PutFirst(board.Move{Tile: 9, End: 1})
	assert.Equal(t, moves[0], ml.At(0))
}
