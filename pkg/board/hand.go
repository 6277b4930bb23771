package board

import "math/bits"

// Hand is a set of tile indices encoded as a 28-bit mask.
type Hand uint32

// PopCount returns the number of tiles in the hand.
func (h Hand) PopCount() int {
	return bits.OnesCount32(uint32(h))
}

// IsSet reports whether the tile at idx is present in the hand.
func (h Hand) IsSet(idx int) bool {
	return h&(Hand(1)<<uint(idx)) != 0
}

// With returns the hand with the tile at idx added.
func (h Hand) With(idx int) Hand {
	return h | (Hand(1) << uint(idx))
}

// Without returns the hand with the tile at idx removed.
func (h Hand) Without(idx int) Hand {
	return h &^ (Hand(1) << uint(idx))
}

// Next returns the lowest-index tile in the hand and the hand with that tile removed, or
// ok=false if the hand is empty.
func (h Hand) Next() (idx int, rest Hand, ok bool) {
	if h == 0 {
		return 0, h, false
	}
	bit := h & -h
	idx = bits.TrailingZeros32(uint32(bit))
	return idx, h &^ bit, true
}
