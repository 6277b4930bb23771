package search

import (
	"context"
	"time"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// MaxIterativeDepth bounds root iterative deepening.
const MaxIterativeDepth = 50

// DefaultTimeBudgetMs is used when the caller supplies no explicit budget.
const DefaultTimeBudgetMs = 5000

// Clock returns the current wall-clock time in milliseconds. Supplied by the caller so the
// search kernel never depends on a concrete time source -- the host clock is an external
// collaborator, per spec.
type Clock func() int64

// AdaptiveBudget scales the nominal time budget by how many tiles remain: more uncertainty
// early on earns a larger allowance; late in the game, with few lines left to read, the
// budget shrinks towards a hard ceiling.
func AdaptiveBudget(budgetMs, totalRemaining int) int {
	switch {
	case totalRemaining >= 24:
		return int(2.0 * float64(budgetMs))
	case totalRemaining >= 18:
		return int(1.2 * float64(budgetMs))
	case totalRemaining >= 12:
		return budgetMs
	default:
		if budgetMs < 1000 {
			return budgetMs
		}
		return 1000
	}
}

// aspirationRadius returns the aspiration window half-width for the given iteration depth.
// Depth 1 searches the full range (no prior score to center on); shallow iterations use a
// wide window, deep ones narrow it.
func aspirationRadius(depth int) eval.Score {
	switch {
	case depth <= 1:
		return 0 // signals "use [-inf,+inf]"
	case depth >= 6:
		return 15
	default:
		return 30
	}
}

// RunIterativeDeepening runs root iterative deepening with aspiration windows and root PVS
// until the position is solved, 75% of the adaptive time budget has elapsed, or
// MaxIterativeDepth is reached. Returns the last fully committed PV.
func (s *Search) RunIterativeDeepening(ctx context.Context, budgetMs int, clock Clock) PV {
	start := clock()
	root := s.Pos.ToMove
	isAI := root == board.AI

	totalRemaining := s.Pos.AIHand.PopCount() + s.Pos.HumanHand.PopCount()
	budget := AdaptiveBudget(budgetMs, totalRemaining)
	deadline := start + int64(float64(budget)*0.75)

	var committed PV
	var prevScore eval.Score

	moves := board.GenerateMoves(s.Pos.HandOf(root), s.Pos.Left, s.Pos.Right)
	if len(moves) == 0 {
		return PV{Move: board.NoMove, Depth: 0}
	}

	limit := MaxIterativeDepth
	if s.MaxDepth > 0 && s.MaxDepth < limit {
		limit = s.MaxDepth
	}

	s.Ordering.Clear()

	for depth := 1; depth <= limit; depth++ {
		if contextx.IsCancelled(ctx) {
			break
		}

		iterStart := clock()
		s.ResetNodeCount()

		ml := s.orderMoves(moves, root, isAI, depth)
		if hint, _, _, found := s.TT.Probe(s.Pos.Hash, depth, eval.NegInf, eval.Inf); found {
			ml.PutFirst(hint)
		}

		best, bestMove, analysis := s.searchRootAspirated(ml, root, isAI, depth, prevScore)

		iter := PV{
			Depth:     depth,
			Move:      bestMove,
			Score:     best,
			Nodes:     s.Nodes,
			Time:      time.Duration(clock()-iterStart) * time.Millisecond,
			Analysis:  analysis,
			TTProbes:  s.TTProbes,
			TTHits:    s.TTHits,
			TTCutoffs: s.TTCutoffs,
			TTHints:   s.TTHints,
		}

		if !s.Aborted() {
			committed = iter
			prevScore = best
			s.TT.Store(s.Pos.Hash, depth, ExactBound, eval.Clamp(best), bestMove)
			logw.Debugf(ctx, "Searched %v: %v", s.Pos.Hash, iter)
		} else if bestMove.Equals(committed.Move) || best > 500 {
			// Heuristic override: an aborted iteration is still trustworthy if it agrees
			// with the last committed move, or if it found something decisively winning.
			committed = iter
			prevScore = best
		} else {
			logw.Debugf(ctx, "discarding aborted iteration at depth=%v: %v", depth, iter)
			break
		}

		if depth >= totalRemaining && !s.Aborted() {
			break // fully solved
		}
		if clock() >= deadline {
			break
		}
	}

	return committed
}

// searchRootAspirated performs the aspiration-window retry loop (widening up to 3 times on
// either side) around one depth's root PVS pass.
func (s *Search) searchRootAspirated(ml *MoveList, root board.Side, isAI bool, depth int, prevScore eval.Score) (eval.Score, board.Move, []MoveScore) {
	radius := aspirationRadius(depth)

	var alpha, beta eval.Score
	if radius == 0 {
		alpha, beta = eval.NegInf, eval.Inf
	} else {
		alpha, beta = prevScore-radius, prevScore+radius
	}

	for attempt := 0; attempt < 4; attempt++ {
		best, bestMove, analysis := s.searchRootPVS(ml, root, isAI, depth, alpha, beta)

		failedLow := best <= alpha && alpha != eval.NegInf
		failedHigh := best >= beta && beta != eval.Inf

		if !failedLow && !failedHigh {
			return best, bestMove, analysis
		}
		if attempt == 3 {
			return best, bestMove, analysis
		}
		if failedLow {
			alpha = eval.NegInf
		}
		if failedHigh {
			beta = eval.Inf
		}
	}

	// Unreachable, but keeps the compiler happy about control flow.
	return s.searchRootPVS(ml, root, isAI, depth, eval.NegInf, eval.Inf)
}

// searchRootPVS searches the ordered root move list with principal-variation search: the
// first move gets the full window, the rest a null window with a full re-search on fail-high.
func (s *Search) searchRootPVS(ml *MoveList, root board.Side, isAI bool, depth int, alpha, beta eval.Score) (eval.Score, board.Move, []MoveScore) {
	var best eval.Score
	if isAI {
		best = eval.NegInf
	} else {
		best = eval.Inf
	}
	var bestMove board.Move
	analysis := make([]MoveScore, 0, ml.Len())

	a, b := alpha, beta

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)

		var value eval.Score
		if i == 0 {
			value = s.searchChild(m, root, isAI, depth, a, b, 0)
		} else if isAI {
			value = s.searchChild(m, root, isAI, depth, a, a+1, 0)
			if value > a && value < b {
				value = s.searchChild(m, root, isAI, depth, a, b, 0)
			}
		} else {
			value = s.searchChild(m, root, isAI, depth, b-1, b, 0)
			if value > a && value < b {
				value = s.searchChild(m, root, isAI, depth, a, b, 0)
			}
		}

		analysis = append(analysis, MoveScore{Move: m, Score: value})

		if isAI {
			if value > best {
				best, bestMove = value, m
			}
			if best > a {
				a = best
			}
		} else {
			if value < best {
				best, bestMove = value, m
			}
			if best < b {
				b = best
			}
		}
		if b <= a {
			break
		}
	}

	sortAnalysisDesc(analysis)
	return best, bestMove, analysis
}

// sortAnalysisDesc orders the root analysis list by score, descending -- insertion sort,
// same reasoning as MoveList: these lists are never more than ~14 entries long.
func sortAnalysisDesc(a []MoveScore) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i
		for j > 0 && a[j-1].Score < v.Score {
			a[j] = a[j-1]
			j--
		}
		a[j] = v
	}
}
