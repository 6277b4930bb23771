package engine

import "github.com/herohde/dominoengine/pkg/board"

// validateMove maps the engine's chosen move onto the externally supplied legal-move list,
// per spec: prefer an exact (tile,end) match; else any entry with the same tile (copying its
// end); else the first legal move. If legalMoves is empty, the chosen move is invalid.
func validateMove(chosen board.Move, legalMoves []LegalMove) (tileID string, end string, ok bool) {
	if len(legalMoves) == 0 {
		return "", "left", false
	}

	if chosen.IsValid() {
		chosenLow, chosenHigh := board.TileLow[chosen.Tile], board.TileHigh[chosen.Tile]
		wantEnd := endString(chosen.End)

		for _, lm := range legalMoves {
			if sameTile(lm, chosenLow, chosenHigh) && lm.End == wantEnd {
				return tileIDFromPair(lm.TileLow, lm.TileHigh), lm.End, true
			}
		}
		for _, lm := range legalMoves {
			if sameTile(lm, chosenLow, chosenHigh) {
				return tileIDFromPair(lm.TileLow, lm.TileHigh), lm.End, true
			}
		}
	}

	first := legalMoves[0]
	return tileIDFromPair(first.TileLow, first.TileHigh), first.End, true
}

func sameTile(lm LegalMove, low, high int8) bool {
	return (lm.TileLow == low && lm.TileHigh == high) || (lm.TileLow == high && lm.TileHigh == low)
}

func tileIDFromPair(low, high int8) string {
	idx := board.TileIDToIndex(low, high)
	return tileIDString(int8(idx))
}
