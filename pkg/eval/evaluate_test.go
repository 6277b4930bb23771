package eval_test

import (
	"testing"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateFiniteOnOpeningHands(t *testing.T) {
	aiHand := board.Hand(0b111111111)       // first 9 tiles
	humanHand := board.Hand(0x0FFFFFFF) &^ aiHand
	score := eval.Evaluate(aiHand, humanHand, board.EmptyEnd, board.EmptyEnd, 0)
	assert.True(t, score >= eval.MinScore && score <= eval.MaxScore)
}

func TestEvaluateFewerTilesFavorsAI(t *testing.T) {
	aiHand := board.Hand(1 << 0)
	humanHand := board.Hand(1<<1) | board.Hand(1<<2) | board.Hand(1<<3) | board.Hand(1<<27)
	score := eval.Evaluate(aiHand, humanHand, 0, 0, 0)
	assert.True(t, score > 0, "AI with a lot fewer tiles should score positively")
}

func TestEvaluateMatchDiffChangesScore(t *testing.T) {
	aiHand := board.Hand(0b111)
	humanHand := board.Hand(0b111000)
	neutral := eval.Evaluate(aiHand, humanHand, 0, 1, 0)
	leading := eval.Evaluate(aiHand, humanHand, 0, 1, 100)
	trailing := eval.Evaluate(aiHand, humanHand, 0, 1, -100)
	assert.NotEqual(t, leading, trailing)
	_ = neutral
}

func TestEvaluateLockInBothEndsBonus(t *testing.T) {
	// AI holds every tile in suits 0 and 1; human holds none in either suit.
	aiHand := board.SuitMask[0] | board.SuitMask[1]
	humanHand := board.Hand(1 << 20) // some tile outside suits 0/1
	withLock := eval.Evaluate(aiHand, humanHand, 0, 1, 0)

	// Compare against ends that don't engage suit control (empty board).
	withoutLock := eval.Evaluate(aiHand, humanHand, board.EmptyEnd, board.EmptyEnd, 0)
	assert.NotEqual(t, withLock, withoutLock)
}
