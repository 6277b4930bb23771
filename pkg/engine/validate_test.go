package engine

import (
	"testing"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestValidateMoveExactMatch(t *testing.T) {
	chosen := board.Move{Tile: int8(board.TileIDToIndex(2, 5)), End: 0}
	legal := []LegalMove{
		{TileLow: 2, TileHigh: 5, End: "left"},
		{TileLow: 2, TileHigh: 5, End: "right"},
	}

	tileID, end, ok := validateMove(chosen, legal)
	assert.True(t, ok)
	assert.Equal(t, "2-5", tileID)
	assert.Equal(t, "left", end)
}

func TestValidateMoveSameTileDifferentEnd(t *testing.T) {
	chosen := board.Move{Tile: int8(board.TileIDToIndex(2, 5)), End: 1}
	legal := []LegalMove{
		{TileLow: 2, TileHigh: 5, End: "left"},
	}

	tileID, end, ok := validateMove(chosen, legal)
	assert.True(t, ok)
	assert.Equal(t, "2-5", tileID)
	assert.Equal(t, "left", end)
}

func TestValidateMoveFallsBackToFirstLegal(t *testing.T) {
	chosen := board.Move{Tile: int8(board.TileIDToIndex(0, 0)), End: 0}
	legal := []LegalMove{
		{TileLow: 4, TileHigh: 6, End: "right"},
	}

	tileID, end, ok := validateMove(chosen, legal)
	assert.True(t, ok)
	assert.Equal(t, "4-6", tileID)
	assert.Equal(t, "right", end)
}

func TestValidateMoveNoLegalMovesIsInvalid(t *testing.T) {
	var noMove board.Move

	tileID, end, ok := validateMove(noMove, nil)
	assert.False(t, ok)
	assert.Equal(t, "", tileID)
	assert.Equal(t, "left", end)
}
