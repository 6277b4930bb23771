package board

// GenerateMoves enumerates the legal (tile,end) moves for hand against the given board ends.
// left == EmptyEnd means the board is empty. When left == right (a non-empty, single-value
// board), a tile matching that one value is emitted once, not once per end.
func GenerateMoves(hand Hand, left, right End) []Move {
	moves := make([]Move, 0, 14)

	if left == EmptyEnd {
		for h := hand; h != 0; {
			idx, rest, _ := h.Next()
			moves = append(moves, Move{Tile: int8(idx), End: 0})
			h = rest
		}
		return moves
	}

	leftMask := SuitMask[left] & hand
	for h := leftMask; h != 0; {
		idx, rest, _ := h.Next()
		moves = append(moves, Move{Tile: int8(idx), End: 0})
		h = rest
	}

	rightMask := SuitMask[right] & hand
	if left != right {
		for h := rightMask; h != 0; {
			idx, rest, _ := h.Next()
			moves = append(moves, Move{Tile: int8(idx), End: 1})
			h = rest
		}
	} else {
		for h := rightMask &^ leftMask; h != 0; {
			idx, rest, _ := h.Next()
			moves = append(moves, Move{Tile: int8(idx), End: 1})
			h = rest
		}
	}
	return moves
}

// CountMoves returns the number of distinct tiles in hand that can be played against the given
// board ends, without allocating a move list. A tile matching both ends counts once, so when
// left != right this can be less than len(GenerateMoves(hand, left, right)).
func CountMoves(hand Hand, left, right End) int {
	if left == EmptyEnd {
		return hand.PopCount()
	}
	leftMask := SuitMask[left] & hand
	rightMask := SuitMask[right] & hand
	if left == right {
		return leftMask.PopCount()
	}
	return (leftMask | rightMask).PopCount()
}

// NewEnds returns the board ends that result from playing move m against (left,right).
func NewEnds(m Move, left, right End) (End, End) {
	if left == EmptyEnd {
		return End(TileLow[m.Tile]), End(TileHigh[m.Tile])
	}
	if m.End == 0 {
		return End(NewEndLeft[int(m.Tile)*8+int(left)]), right
	}
	return left, End(NewEndRight[int(m.Tile)*8+int(right)])
}

// Position is the single logical "current position" the search kernel mutates in place:
// both hands, the board ends, the running zobrist hash, the ply, the consecutive-pass
// counter, the match-score differential and the puppeteer history.
type Position struct {
	ZT *ZobristTable

	AIHand, HumanHand Hand
	Left, Right       End
	Hash              ZobristHash
	Ply               int
	ConsPass          int
	MatchDiff         int
	ToMove            Side

	Puppeteer Puppeteer
}

// NewPosition builds the root position and computes its hash from scratch.
func NewPosition(zt *ZobristTable, ai, human Hand, left, right End, toMove Side, matchDiff int) *Position {
	p := &Position{
		ZT:        zt,
		AIHand:    ai,
		HumanHand: human,
		Left:      left,
		Right:     right,
		ToMove:    toMove,
		MatchDiff: matchDiff,
	}
	p.Hash = zt.ComputeRootHash(ai, human, left, right, toMove == AI, 0)
	return p
}

// HandOf returns the hand of the given side.
func (p *Position) HandOf(side Side) Hand {
	if side == AI {
		return p.AIHand
	}
	return p.HumanHand
}

func (p *Position) setHand(side Side, h Hand) {
	if side == AI {
		p.AIHand = h
	} else {
		p.HumanHand = h
	}
}

// Undo captures everything Push mutates, for exact restoration by Pop.
type Undo struct {
	snapshot Position
}

// Push applies a placement by side, updating hands, ends, hash, pass counter and puppeteer
// history in place. Returns an Undo that restores every mutated field.
func (p *Position) Push(side Side, m Move) Undo {
	u := Undo{snapshot: *p}

	newLeft, newRight := NewEnds(m, p.Left, p.Right)

	h := p.ZT.xorTile(p.Hash, int(m.Tile), side)
	h = h ^ p.ZT.left[p.Left] ^ p.ZT.right[p.Right]
	h = h ^ p.ZT.left[newLeft] ^ p.ZT.right[newRight]
	h = p.ZT.xorSide(h)
	h = p.ZT.xorConsPassCrossing(h, p.ConsPass, 0)

	p.setHand(side, p.HandOf(side).Without(int(m.Tile)))
	p.Left, p.Right = newLeft, newRight
	p.Hash = h
	p.ConsPass = 0
	p.ToMove = side.Opponent()
	p.Ply++

	p.Puppeteer.Push(side, m.Tile, newLeft, newRight)

	return u
}

// PushPass applies a pass by side (no legal move), updating the side to move, the pass
// counter and the hash in place.
func (p *Position) PushPass(side Side) Undo {
	u := Undo{snapshot: *p}

	h := p.ZT.xorSide(p.Hash)
	h = p.ZT.xorConsPassCrossing(h, p.ConsPass, p.ConsPass+1)

	p.Hash = h
	p.ConsPass++
	p.ToMove = side.Opponent()
	p.Ply++

	return u
}

// Pop restores the position to the state captured by u.
func (p *Position) Pop(u Undo) {
	*p = u.snapshot
}
