package search_test

import (
	"context"
	"testing"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
	"github.com/herohde/dominoengine/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestTranspositionStoreAndProbe(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background())
	tt.NewGeneration()

	hash := board.ZobristHash(0x12345678)
	tt.Store(hash, 5, search.ExactBound, 42, board.Move{Tile: 3, End: 1})

	best, score, ok, found := tt.Probe(hash, 5, -1000, 1000)
	assert.True(t, found)
	assert.True(t, ok)
	assert.EqualValues(t, 3, best.Tile)
	assert.EqualValues(t, 1, best.End)
	assert.EqualValues(t, 42, score)
}

func TestTranspositionDepthInsufficient(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background())
	tt.NewGeneration()

	hash := board.ZobristHash(0xABCDEF01)
	tt.Store(hash, 3, search.ExactBound, 10, board.Move{Tile: 2, End: 0})

	best, _, ok, found := tt.Probe(hash, 5, -1000, 1000)
	assert.True(t, found)
	assert.False(t, ok)
	assert.EqualValues(t, 2, best.Tile)
}

func TestTranspositionLowerBoundCutoff(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background())
	tt.NewGeneration()

	hash := board.ZobristHash(0x11111111)
	tt.Store(hash, 4, search.LowerBound, 50, board.Move{Tile: 1, End: 0})

	_, score, ok, _ := tt.Probe(hash, 4, 30, 40)
	assert.True(t, ok)
	assert.EqualValues(t, 50, score)

	_, _, ok2, _ := tt.Probe(hash, 4, 30, 60)
	assert.False(t, ok2)
}

func TestTranspositionGenerationReplacement(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background())
	tt.NewGeneration()

	hash := board.ZobristHash(0x22222222)
	tt.Store(hash, 10, search.ExactBound, 100, board.Move{Tile: 5, End: 1})

	tt.NewGeneration()
	tt.Store(hash, 2, search.ExactBound, 200, board.Move{Tile: 6, End: 0})

	best, score, ok, _ := tt.Probe(hash, 2, -1000, 1000)
	assert.True(t, ok)
	assert.EqualValues(t, 6, best.Tile)
	assert.EqualValues(t, eval.Score(200), score)
}
