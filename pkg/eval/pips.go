package eval

import "github.com/herohde/dominoengine/pkg/board"

// TotalPips sums TilePips over hand, applying the ghost-13 rule: if hand holds the (0,0)
// tile and every other zero-suit tile ((0,1)..(0,6)) has been played by both sides (i.e. is
// absent from bothHands), the (0,0) tile counts as 13 pips instead of 0.
func TotalPips(hand, bothHands board.Hand) int {
	ghost13 := hand&board.Tile00Bit != 0 && bothHands&board.ZeroSuitNo00 == 0

	sum := 0
	for h := hand; h != 0; {
		idx, rest, _ := h.Next()
		if idx == 0 && ghost13 {
			sum += 13
		} else {
			sum += int(board.TilePips[idx])
		}
		h = rest
	}
	return sum
}
