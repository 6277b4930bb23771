package eval

import "github.com/herohde/dominoengine/pkg/board"

// DominoScore scores a position where winner just emptied its hand: the magnitude is the
// loser's pip count (ghost-13 applied against the loser's own hand, since the winner's hand
// is empty), signed positive if AI won, negative if human won.
func DominoScore(winner board.Side, loserHand board.Hand) Score {
	pips := Score(TotalPips(loserHand, loserHand))
	if winner == board.Human {
		pips = -pips
	}
	return pips
}

// DetectAggressor implements the puppeteer rule: the default aggressor is whoever placed
// last (p1.Who). If the placer before that (p2) existed and p1 played a tile, we rebuild
// p1's hand before that tile and check whether, against the board p2 left, it held exactly
// one legal tile (p2's placement forced p1's reply). If p1 was not forced, or if the forced
// tile, in at least one orientation it was legal in, would have left someone (the other side
// or p1's own remaining hand) a legal reply, p2 remains blameless — the aggressor stays p1.
// Otherwise p2 is the puppeteer: the true aggressor.
func DetectAggressor(p1, p2 board.Placer, lastPlacerHand, otherHand board.Hand) board.Side {
	if !p2.Valid || p1.Tile < 0 {
		return p1.Who
	}

	// Reconstruct p1's hand before it played p1.Tile.
	forcedHand := lastPlacerHand.With(int(p1.Tile))

	var legalMask board.Hand
	switch {
	case p2.Left == board.EmptyEnd:
		legalMask = forcedHand
	case p2.Left == p2.Right:
		legalMask = board.SuitMask[p2.Left] & forcedHand
	default:
		legalMask = (board.SuitMask[p2.Left] | board.SuitMask[p2.Right]) & forcedHand
	}

	if legalMask.PopCount() != 1 {
		return p1.Who
	}

	tileIdx, _, _ := legalMask.Next()
	lo := board.End(board.TileLow[tileIdx])
	hi := board.End(board.TileHigh[tileIdx])

	canLeft := p2.Left == board.EmptyEnd || lo == p2.Left || hi == p2.Left
	var canRight bool
	switch {
	case p2.Left == board.EmptyEnd:
		canRight = false
	case p2.Left == p2.Right && canLeft:
		canRight = false
	default:
		canRight = lo == p2.Right || hi == p2.Right
	}

	// forcedHandAfter is p1's hand after playing the forced tile, which is lastPlacerHand
	// itself.
	forcedHandAfter := lastPlacerHand

	if canLeft {
		var newL, newR board.End
		if p2.Left == board.EmptyEnd {
			newL = board.End(board.NewEndLeft[tileIdx*8+7])
			newR = board.End(board.NewEndRight[tileIdx*8+7])
		} else {
			newL = board.End(board.NewEndLeft[tileIdx*8+int(p2.Left)])
			newR = p2.Right
		}
		if board.CountMoves(otherHand, newL, newR) > 0 || board.CountMoves(forcedHandAfter, newL, newR) > 0 {
			return p1.Who
		}
	}
	if canRight {
		newR2 := board.End(board.NewEndRight[tileIdx*8+int(p2.Right)])
		newL2 := p2.Left
		if board.CountMoves(otherHand, newL2, newR2) > 0 || board.CountMoves(forcedHandAfter, newL2, newR2) > 0 {
			return p1.Who
		}
	}

	return p2.Who
}

// BlockScore scores a blocked game (both sides out of legal moves): the aggressor is found
// via DetectAggressor, pip totals use ghost-13 against the union of both hands, and:
//   - if the aggressor's pips <= the opponent's pips, the score magnitude is 2x the
//     opponent's pips (the aggressor "won" the block cheaply);
//   - otherwise the magnitude is the sum of both pip totals and the sign flips (the
//     aggressor is penalized for blocking while holding more pips).
func BlockScore(aiHand, humanHand board.Hand, puppeteer board.Puppeteer) Score {
	var lastPlacerHand, otherHand board.Hand
	if puppeteer.P1.Who == board.AI {
		lastPlacerHand, otherHand = aiHand, humanHand
	} else {
		lastPlacerHand, otherHand = humanHand, aiHand
	}

	aggressor := DetectAggressor(puppeteer.P1, puppeteer.P2, lastPlacerHand, otherHand)

	both := aiHand | humanHand
	aiPips := TotalPips(aiHand, both)
	humanPips := TotalPips(humanHand, both)

	var aggrPips, oppPips int
	if aggressor == board.AI {
		aggrPips, oppPips = aiPips, humanPips
	} else {
		aggrPips, oppPips = humanPips, aiPips
	}

	if aggrPips <= oppPips {
		pts := Score(2 * oppPips)
		if aggressor == board.Human {
			pts = -pts
		}
		return pts
	}

	pts := Score(aiPips + humanPips)
	if aggressor == board.AI {
		pts = -pts
	}
	return pts
}
