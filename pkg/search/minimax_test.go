package search_test

import (
	"context"
	"testing"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/search"
	"github.com/stretchr/testify/assert"
)

func newSearch(t *testing.T, ai, human board.Hand, left, right board.End, toMove board.Side) *search.Search {
	t.Helper()
	zt := board.NewZobristTable()
	pos := board.NewPosition(zt, ai, human, left, right, toMove, 0)
	tt := search.NewTranspositionTable(context.Background())
	return search.NewSearch(pos, tt)
}

func TestChooseMoveDominoWinScenario(t *testing.T) {
	// ai = {(0,1)}, human = {(6,6)}, left=0, right=3.
	ai := board.Hand(1) << board.TileIDToIndex(0, 1)
	human := board.Hand(1) << board.TileIDToIndex(6, 6)

	s := newSearch(t, ai, human, 0, 3, board.AI)
	s.TT.NewGeneration()

	clock := fakeClock(1000)
	pv := s.RunIterativeDeepening(context.Background(), 1000, clock)

	assert.True(t, pv.Move.IsValid())
	assert.EqualValues(t, board.TileIDToIndex(0, 1), pv.Move.Tile)
	assert.EqualValues(t, 0, pv.Move.End)
	assert.EqualValues(t, 12, pv.Score)
	assert.GreaterOrEqual(t, pv.Depth, 1)
}

func TestChooseMoveNoLegalMovesReturnsNoMove(t *testing.T) {
	// Both hands hold only suit-1 tiles; board ends are suit 0, absent from both hands.
	hand := board.SuitMask[1] &^ board.SuitMask[0]
	s := newSearch(t, hand, 0, 0, 0, board.AI)
	s.TT.NewGeneration()

	clock := fakeClock(100)
	pv := s.RunIterativeDeepening(context.Background(), 100, clock)

	assert.False(t, pv.Move.IsValid())
	assert.Equal(t, 0, pv.Depth)
}

func TestMinimaxSymmetricPositionNearZero(t *testing.T) {
	ai := board.Hand(0b111)
	human := board.Hand(0b111000)

	s := newSearch(t, ai, human, board.EmptyEnd, board.EmptyEnd, board.AI)
	s.TT.NewGeneration()

	clock := fakeClock(200)
	pv := s.RunIterativeDeepening(context.Background(), 200, clock)

	assert.True(t, pv.Score <= 200 && pv.Score >= -200)
}

func fakeClock(budgetMs int64) search.Clock {
	t := int64(0)
	return func() int64 {
		t += budgetMs
		return t
	}
}
