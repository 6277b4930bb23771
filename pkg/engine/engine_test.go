package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/dominoengine/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func int8p(v int8) *int8 { return &v }

// Scenario 1: ai={(0,1)}, human={(6,6)}, left=0, right=3 -> chosen "0-1" left, score 12.
func TestChooseMoveDominoWinScenario(t *testing.T) {
	e := engine.New(context.Background())

	req := engine.Request{
		AITiles:    []engine.TilePair{{Low: 0, High: 1}},
		HumanTiles: []engine.TilePair{{Low: 6, High: 6}},
		BoardEmpty: false,
		Left:       int8p(0),
		Right:      int8p(3),
		LegalMoves: []engine.LegalMove{
			{TileLow: 0, TileHigh: 1, End: "left"},
		},
		TimeBudget: 1000,
	}

	resp := e.ChooseMove(context.Background(), req)

	assert.Equal(t, "0-1", resp.TileID)
	assert.Equal(t, "left", resp.End)
	assert.Equal(t, 12, resp.BestScore)
	assert.GreaterOrEqual(t, resp.Depth, 1)
}

// Scenario 3: empty board, 14 tiles each -> non-empty analysis, tt_probes > 0.
func TestChooseMoveEmptyBoardAnalysisNonEmpty(t *testing.T) {
	e := engine.New(context.Background())

	ai := make([]engine.TilePair, 0, 14)
	human := make([]engine.TilePair, 0, 14)
	legal := make([]engine.LegalMove, 0, 14)
	n := 0
	for low := int8(0); low <= 6 && n < 28; low++ {
		for high := low; high <= 6 && n < 28; high++ {
			if n < 14 {
				ai = append(ai, engine.TilePair{Low: low, High: high})
				legal = append(legal, engine.LegalMove{TileLow: low, TileHigh: high, End: "left"})
			} else {
				human = append(human, engine.TilePair{Low: low, High: high})
			}
			n++
		}
	}

	req := engine.Request{
		AITiles:    ai,
		HumanTiles: human,
		BoardEmpty: true,
		LegalMoves: legal,
		TimeBudget: 100,
	}

	resp := e.ChooseMove(context.Background(), req)

	assert.NotEmpty(t, resp.TileID)
	assert.NotEmpty(t, resp.Analysis)
	assert.Greater(t, resp.TTProbes, int64(0))
}

// Scenario 6: forced block -- both hands hold only suit-1 tiles, ends are suit 0 (absent
// from both hands), so generate_moves returns 0 for both sides and the response degrades
// to the empty-tile/"left" fallback (no legal_moves supplied either).
func TestChooseMoveForcedBlockNoLegalMoves(t *testing.T) {
	e := engine.New(context.Background())

	req := engine.Request{
		AITiles:    []engine.TilePair{{Low: 1, High: 1}},
		HumanTiles: []engine.TilePair{{Low: 1, High: 2}},
		BoardEmpty: false,
		Left:       int8p(0),
		Right:      int8p(0),
		LegalMoves: nil,
		TimeBudget: 100,
	}

	resp := e.ChooseMove(context.Background(), req)

	assert.Equal(t, "", resp.TileID)
	assert.Equal(t, "left", resp.End)
	assert.Equal(t, 0, resp.Depth)
}

func TestChooseMoveNoLegalMovesButOneSupplied(t *testing.T) {
	e := engine.New(context.Background())

	req := engine.Request{
		AITiles:    []engine.TilePair{{Low: 1, High: 1}},
		HumanTiles: []engine.TilePair{{Low: 1, High: 2}},
		BoardEmpty: false,
		Left:       int8p(0),
		Right:      int8p(0),
		LegalMoves: []engine.LegalMove{{TileLow: 2, TileHigh: 3, End: "right"}},
		TimeBudget: 100,
	}

	resp := e.ChooseMove(context.Background(), req)

	// No legal moves for the ai hand against these ends; falls back to the first
	// externally-supplied legal move.
	assert.Equal(t, "2-3", resp.TileID)
	assert.Equal(t, "right", resp.End)
}

func TestSeedPuppeteerIgnoredOnEmptyHistory(t *testing.T) {
	e := engine.New(context.Background())

	req := engine.Request{
		AITiles:     []engine.TilePair{{Low: 0, High: 1}},
		HumanTiles:  []engine.TilePair{{Low: 6, High: 6}},
		Left:        int8p(0),
		Right:       int8p(3),
		MoveHistory: nil,
		LegalMoves:  []engine.LegalMove{{TileLow: 0, TileHigh: 1, End: "left"}},
		TimeBudget:  100,
	}

	resp := e.ChooseMove(context.Background(), req)
	assert.NotEmpty(t, resp.TileID)
}

func TestChooseMoveWithMoveHistorySeedsPuppeteer(t *testing.T) {
	e := engine.New(context.Background())

	req := engine.Request{
		AITiles:    []engine.TilePair{{Low: 0, High: 1}},
		HumanTiles: []engine.TilePair{{Low: 6, High: 6}},
		Left:       int8p(0),
		Right:      int8p(3),
		MoveHistory: []engine.HistoryEntry{
			{Player: "human", Pass: false, TileLow: 3, TileHigh: 3, BoardLeft: 3, BoardRight: 3},
			{Player: "ai", Pass: false, TileLow: 0, TileHigh: 3, BoardLeft: 0, BoardRight: 3},
		},
		LegalMoves: []engine.LegalMove{{TileLow: 0, TileHigh: 1, End: "left"}},
		TimeBudget: 100,
	}

	resp := e.ChooseMove(context.Background(), req)
	assert.NotEmpty(t, resp.TileID)
}
