package search

import (
	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
)

// NodeCap is the hard emergency cap on interior+leaf nodes visited within one root iteration.
// Exceeding it aborts the iteration via a soft static-eval return rather than an error --
// see Search.aborted.
const NodeCap = 2e7

// MaxPly is the nominal bound on recursion/extension depth. No storage is sized by it:
// killer slots use MaxDepthSlots and move lists are allocated per node.
const MaxPly = 64

// Search holds the mutable state shared by one root choose_move call: the position being
// searched in place, the transposition table (persists across calls), and the killer/history
// ordering tables (reset every call). It is not safe for concurrent use -- per spec, the
// engine is strictly single-threaded.
type Search struct {
	Pos      *board.Position
	TT       *TranspositionTable
	Ordering *Ordering

	Nodes   int64
	aborted bool

	TTProbes, TTHits, TTCutoffs, TTHints int64

	// MaxDepth, if set (nonzero), caps root iterative deepening below MaxIterativeDepth.
	MaxDepth int
}

// NewSearch wires a position to a (persistent) transposition table and a fresh ordering state.
func NewSearch(pos *board.Position, tt *TranspositionTable) *Search {
	return &Search{
		Pos:      pos,
		TT:       tt,
		Ordering: NewOrdering(),
	}
}

// ResetNodeCount zeroes the node counter and clears the abort flag. Call at the start of
// every root iteration.
func (s *Search) ResetNodeCount() {
	s.Nodes = 0
	s.aborted = false
	s.TTProbes, s.TTHits, s.TTCutoffs, s.TTHints = 0, 0, 0, 0
}

// Aborted reports whether the node cap was hit during the current iteration.
func (s *Search) Aborted() bool {
	return s.aborted
}

// maxExtension bounds quiescence-style depth extensions: the fewer tiles remain, the more
// the search is allowed to extend to resolve forced sequences exactly.
func maxExtension(totalRemaining int) int {
	ext := 12 - totalRemaining
	if ext < 0 {
		ext = 0
	}
	return 6 + ext
}

// Minimax searches the interior of the game tree rooted at the current position (mutated in
// place via Push/PushPass/Pop). isAI selects whether the side to move is the maximizer (AI)
// or minimizer (human). ext counts quiescence-style extensions already spent along this line.
func (s *Search) Minimax(isAI bool, depth int, alpha, beta eval.Score, ext int) eval.Score {
	s.Nodes++
	if s.Nodes > NodeCap {
		s.aborted = true
		return s.evaluate()
	}

	side := board.Human
	if isAI {
		side = board.AI
	}

	hand := s.Pos.HandOf(side)
	moves := board.GenerateMoves(hand, s.Pos.Left, s.Pos.Right)

	if len(moves) == 0 {
		return s.searchPass(side, isAI, depth, alpha, beta, ext)
	}

	totalRemaining := s.Pos.AIHand.PopCount() + s.Pos.HumanHand.PopCount()
	if depth <= 0 {
		extended, newDepth := s.tryExtend(moves, side, ext, totalRemaining)
		if !extended {
			return s.evaluate()
		}
		depth = newDepth
		ext++
	}

	hash := s.Pos.Hash
	s.TTProbes++
	hint, score, ok, found := s.TT.Probe(hash, depth, alpha, beta)
	if found {
		s.TTHits++
	}
	if ok {
		s.TTCutoffs++
		return score
	}

	ml := s.orderMoves(moves, side, isAI, depth)
	if found {
		s.TTHints++
		ml.PutFirst(hint)
	}
	return s.searchMoves(ml, side, isAI, depth, alpha, beta, ext, hash)
}

// searchPass handles a side with zero legal moves: a pass, or -- if this is the second
// consecutive pass -- a block.
func (s *Search) searchPass(side board.Side, isAI bool, depth int, alpha, beta eval.Score, ext int) eval.Score {
	if s.Pos.ConsPass+1 >= 2 {
		return eval.Clamp(eval.BlockScore(s.Pos.AIHand, s.Pos.HumanHand, s.Pos.Puppeteer))
	}

	u := s.Pos.PushPass(side)
	score := s.Minimax(!isAI, depth, alpha, beta, ext)
	s.Pos.Pop(u)
	return score
}

// tryExtend decides whether a depth-exhausted node may extend one more ply to resolve a
// forced/quiet sequence, per the quiescence gate.
func (s *Search) tryExtend(moves []board.Move, side board.Side, ext, totalRemaining int) (bool, int) {
	maxExt := maxExtension(totalRemaining)
	if ext >= maxExt {
		return false, 0
	}

	oneLegalMove := len(moves) == 1
	inPassSequence := s.Pos.ConsPass > 0

	nearEnd := false
	if totalRemaining <= 8 {
		oppHand := s.Pos.HandOf(side.Opponent())
		if board.CountMoves(oppHand, s.Pos.Left, s.Pos.Right) <= 1 {
			nearEnd = true
		}
	}

	if oneLegalMove || inPassSequence || nearEnd {
		return true, 1
	}
	return false, 0
}

// orderMoves scores and sorts candidate moves at the given node.
func (s *Search) orderMoves(moves []board.Move, side board.Side, isAI bool, depth int) *MoveList {
	myHand := s.Pos.HandOf(side)
	oppHand := s.Pos.HandOf(side.Opponent())
	left, right := s.Pos.Left, s.Pos.Right

	return NewMoveList(moves, func(m board.Move) Priority {
		return s.Ordering.Score(m, depth, isAI, myHand, oppHand, left, right)
	})
}

// searchMoves iterates an ordered move list, descending into children and maintaining
// alpha/beta, then stores the result in the transposition table.
func (s *Search) searchMoves(ml *MoveList, side board.Side, isAI bool, depth int, alpha, beta eval.Score, ext int, hash board.ZobristHash) eval.Score {
	origAlpha, origBeta := alpha, beta

	var best eval.Score
	var bestMove board.Move
	if isAI {
		best = eval.NegInf
	} else {
		best = eval.Inf
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		value := s.searchChild(m, side, isAI, depth, alpha, beta, ext)

		if isAI {
			if value > best {
				best, bestMove = value, m
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best, bestMove = value, m
			}
			if best < beta {
				beta = best
			}
		}

		if beta <= alpha {
			s.Ordering.RecordKiller(depth, m)
			s.Ordering.RecordHistory(m, depth)
			break
		}
	}

	bound := ExactBound
	switch {
	case best >= origBeta:
		bound = LowerBound
	case best <= origAlpha:
		bound = UpperBound
	}
	s.TT.Store(hash, depth, bound, eval.Clamp(best), bestMove)

	return best
}

// searchChild makes move m, evaluates or recurses into the resulting position per the
// terminal shortcuts (domino win, block), and unmakes it before returning.
func (s *Search) searchChild(m board.Move, side board.Side, isAI bool, depth int, alpha, beta eval.Score, ext int) eval.Score {
	u := s.Pos.Push(side, m)
	defer s.Pos.Pop(u)

	mover := s.Pos.HandOf(side)
	if mover == 0 {
		return eval.Clamp(eval.DominoScore(side, s.Pos.HandOf(side.Opponent())))
	}

	left, right := s.Pos.Left, s.Pos.Right
	if board.CountMoves(s.Pos.AIHand, left, right) == 0 && board.CountMoves(s.Pos.HumanHand, left, right) == 0 {
		return eval.Clamp(eval.BlockScore(s.Pos.AIHand, s.Pos.HumanHand, s.Pos.Puppeteer))
	}

	return s.Minimax(!isAI, depth-1, alpha, beta, ext)
}

// evaluate returns the static heuristic value of the current position.
func (s *Search) evaluate() eval.Score {
	return eval.Evaluate(s.Pos.AIHand, s.Pos.HumanHand, s.Pos.Left, s.Pos.Right, s.Pos.MatchDiff)
}
