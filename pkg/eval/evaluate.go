package eval

import "github.com/herohde/dominoengine/pkg/board"

// Evaluate computes the static heuristic score of a non-terminal position from the AI's
// perspective: positive favors AI. It combines seven terms — pip advantage, mobility, tile
// count, suit control with lock-in detection, the ghost-13 bonus, a double-tile
// penalty/bonus, and phase- and match-score-dependent weight scaling — exactly mirroring
// the terminal scorers' pip/ghost-13 conventions in pips.go.
func Evaluate(aiHand, humanHand board.Hand, left, right board.End, matchDiff int) Score {
	bothHands := aiHand | humanHand

	aiPips := TotalPips(aiHand, bothHands)
	humanPips := TotalPips(humanHand, bothHands)
	pipScore := float64(humanPips-aiPips) * wPip

	aiMob := board.CountMoves(aiHand, left, right)
	humanMob := board.CountMoves(humanHand, left, right)
	mobScore := float64(aiMob-humanMob) * wMobility

	aiCount := aiHand.PopCount()
	humanCount := humanHand.PopCount()
	tileScore := float64(humanCount-aiCount) * wTile

	suitScore := suitControlScore(aiHand, humanHand, left, right)

	ghost := 0.0
	if bothHands&board.ZeroSuitNo00 == 0 {
		if humanHand&board.Tile00Bit != 0 {
			ghost = wGhost
		}
		if aiHand&board.Tile00Bit != 0 {
			ghost -= wGhost
		}
	}

	doublePen := doublePenalty(aiHand, humanHand)

	totalRemaining := aiCount + humanCount
	phasePip, phaseMob, phaseSuit, phaseDbl := phaseWeights(totalRemaining)
	phasePip, phaseSuit, phaseMob = matchAdjust(matchDiff, phasePip, phaseSuit, phaseMob)

	total := pipScore*phasePip +
		mobScore*phaseMob +
		tileScore +
		suitScore*phaseSuit +
		ghost +
		doublePen*phaseDbl

	return Clamp(Score(total))
}

// suitControlScore scores who controls the open suits at each board end, with bonuses for
// locking the opponent out of a suit entirely (both ends locked scores an extra bonus on
// top of the two per-end lock-in bonuses).
func suitControlScore(aiHand, humanHand board.Hand, left, right board.End) float64 {
	if left == board.EmptyEnd {
		return 0
	}

	if left == right {
		aiL := (board.SuitMask[left] & aiHand).PopCount()
		humanL := (board.SuitMask[left] & humanHand).PopCount()
		score := float64(aiL-humanL) * wSuit * 2.0
		if humanL == 0 {
			score += wLockin*2.0 + wLockinBoth
		}
		return score
	}

	aiL := (board.SuitMask[left] & aiHand).PopCount()
	aiR := (board.SuitMask[right] & aiHand).PopCount()
	humanL := (board.SuitMask[left] & humanHand).PopCount()
	humanR := (board.SuitMask[right] & humanHand).PopCount()

	score := float64(aiL+aiR-humanL-humanR) * wSuit
	if humanL == 0 {
		score += wLockin
	}
	if humanR == 0 {
		score += wLockin
	}
	if humanL == 0 && humanR == 0 {
		score += wLockinBoth
	}
	return score
}

// doublePenalty charges a side for holding onto double tiles (they are dead weight until an
// end matching their suit opens), scaled by the tile's own pip value.
func doublePenalty(aiHand, humanHand board.Hand) float64 {
	pen := 0.0
	for h := aiHand & board.DoubleMask; h != 0; {
		idx, rest, _ := h.Next()
		pen -= (float64(board.TilePips[idx]) + 2.0) * wDouble
		h = rest
	}
	for h := humanHand & board.DoubleMask; h != 0; {
		idx, rest, _ := h.Next()
		pen += (float64(board.TilePips[idx]) + 2.0) * wDouble
		h = rest
	}
	return pen
}

// phaseWeights returns the (pip, mobility, suit, double) multipliers for the given number of
// tiles remaining across both hands: opening favors mobility/suit control, endgame favors
// pip counting, midgame is balanced.
func phaseWeights(totalRemaining int) (pip, mob, suit, dbl float64) {
	switch {
	case totalRemaining >= 20:
		return 0.7, 1.5, 1.3, 1.3
	case totalRemaining < 8:
		return 1.5, 0.6, 1.5, 1.0
	default:
		return 1.0, 1.0, 1.0, 1.0
	}
}

// matchAdjust further scales the pip/suit/mobility multipliers by the running match score
// differential: a comfortably leading side plays defensively (pips, low suit risk); a side
// trailing by a lot plays aggressively (suit control, mobility).
func matchAdjust(matchDiff int, pip, suit, mob float64) (float64, float64, float64) {
	switch {
	case matchDiff >= 50:
		return pip * 1.4, suit * 0.6, mob
	case matchDiff <= -50:
		return pip * 0.7, suit * 1.5, mob * 1.3
	default:
		return pip, suit, mob
	}
}
