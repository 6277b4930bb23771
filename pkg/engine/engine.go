package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// TimeBudgetMs is the default wall-clock budget per choose_move call, in milliseconds.
	// If zero, search.DefaultTimeBudgetMs is used.
	TimeBudgetMs int
	// Clock supplies "current time in milliseconds". Defaults to the host wall clock; the
	// engine never depends on a concrete time source directly, per spec.
	Clock search.Clock
	// DepthLimit, if set, caps root iterative deepening below its default bound. Zero value
	// (unset) means no cap.
	DepthLimit lang.Optional[int]
}

func (o Options) String() string {
	if v, ok := o.DepthLimit.V(); ok {
		return fmt.Sprintf("{timeBudgetMs=%v depthLimit=%v}", o.TimeBudgetMs, v)
	}
	return fmt.Sprintf("{timeBudgetMs=%v}", o.TimeBudgetMs)
}

// Option is an engine creation option.
type Option func(*Options)

// WithTimeBudget overrides the default per-call time budget.
func WithTimeBudget(ms int) Option {
	return func(o *Options) {
		o.TimeBudgetMs = ms
	}
}

// WithClock overrides the host clock source, e.g. for deterministic tests.
func WithClock(clock search.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithDepthLimit caps root iterative deepening at depth, e.g. for fast/debug searches.
func WithDepthLimit(depth int) Option {
	return func(o *Options) {
		o.DepthLimit = lang.Some(depth)
	}
}

// Engine owns the process-lifetime search state -- the zobrist table and the transposition
// table -- and exposes the single public entry point, ChooseMove. Not safe for concurrent
// use: per spec, the core is strictly single-threaded.
type Engine struct {
	zt *board.ZobristTable
	tt *search.TranspositionTable

	opts Options
}

func wallClockMs() int64 {
	return time.Now().UnixMilli()
}

// New constructs an engine with a fresh zobrist table and an empty, process-lifetime
// transposition table.
func New(ctx context.Context, opts ...Option) *Engine {
	o := Options{
		TimeBudgetMs: search.DefaultTimeBudgetMs,
		Clock:        wallClockMs,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.TimeBudgetMs <= 0 {
		o.TimeBudgetMs = search.DefaultTimeBudgetMs
	}

	e := &Engine{
		zt:   board.NewZobristTable(),
		tt:   search.NewTranspositionTable(ctx),
		opts: o,
	}

	logw.Infof(ctx, "Initialized dominoai engine %v, options=%v", version, o)
	return e
}

// TT exposes the engine's transposition table, for a caller that wants to persist/warm-start
// it across invocations (see pkg/ttstore). Never accessed concurrently with ChooseMove.
func (e *Engine) TT() *search.TranspositionTable {
	return e.tt
}

// ChooseMove is the core's single public entry point: it converts req into search state,
// runs iterative deepening to find the AI's best move, and converts the result back into
// the external response envelope, validating the chosen move against req.LegalMoves.
func (e *Engine) ChooseMove(ctx context.Context, req Request) Response {
	aiHand := handToMask(req.AITiles)
	humanHand := handToMask(req.HumanTiles)
	left := endFromPtr(req.BoardEmpty, req.Left)
	right := endFromPtr(req.BoardEmpty, req.Right)
	matchDiff := req.MatchScore.AI - req.MatchScore.Human

	pos := board.NewPosition(e.zt, aiHand, humanHand, left, right, board.AI, matchDiff)
	pos.Puppeteer = seedPuppeteer(req.MoveHistory)

	if board.CountMoves(aiHand, left, right) == 0 {
		logw.Debugf(ctx, "ChooseMove: no legal moves for ai_hand=%v against (%v,%v)", aiHand, left, right)
		return emptyResponse(req.LegalMoves)
	}

	budget := req.TimeBudget
	if budget <= 0 {
		budget = e.opts.TimeBudgetMs
	}

	e.tt.NewGeneration()
	s := search.NewSearch(pos, e.tt)
	if d, ok := e.opts.DepthLimit.V(); ok {
		s.MaxDepth = d
	}
	pv := s.RunIterativeDeepening(ctx, budget, e.opts.Clock)

	logw.Infof(ctx, "ChooseMove: %v", pv)

	tileID, end, ok := validateMove(pv.Move, req.LegalMoves)
	if !ok {
		return emptyResponse(req.LegalMoves)
	}

	analysis := make([]AnalysisEntry, 0, len(pv.Analysis))
	for _, ms := range pv.Analysis {
		analysis = append(analysis, AnalysisEntry{
			TileID: tileIDString(ms.Move.Tile),
			End:    endString(ms.Move.End),
			Score:  int(ms.Score),
		})
	}

	return Response{
		TileID:    tileID,
		End:       end,
		BestScore: int(pv.Score),
		Depth:     pv.Depth,
		Nodes:     pv.Nodes,
		Analysis:  analysis,
		TTProbes:  pv.TTProbes,
		TTHits:    pv.TTHits,
		TTCutoffs: pv.TTCutoffs,
		TTHints:   pv.TTHints,
	}
}

func emptyResponse(legalMoves []LegalMove) Response {
	if len(legalMoves) == 0 {
		return Response{TileID: "", End: "left"}
	}
	first := legalMoves[0]
	return Response{TileID: tileIDFromPair(first.TileLow, first.TileHigh), End: first.End}
}

// seedPuppeteer reconstructs P1/P2 by scanning move_history in reverse for the last two
// non-pass placements; P1 is the most recent.
func seedPuppeteer(history []HistoryEntry) board.Puppeteer {
	var placements []HistoryEntry
	for i := len(history) - 1; i >= 0 && len(placements) < 2; i-- {
		e := history[i]
		if e.Pass {
			continue
		}
		placements = append(placements, e)
	}

	var pup board.Puppeteer
	for i := len(placements) - 1; i >= 0; i-- {
		e := placements[i]
		who := board.AI
		if e.Player == "human" {
			who = board.Human
		}
		tile := int8(board.TileIDToIndex(e.TileLow, e.TileHigh))
		pup.Push(who, tile, board.End(e.BoardLeft), board.End(e.BoardRight))
	}
	return pup
}
