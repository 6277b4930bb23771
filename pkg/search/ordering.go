package search

import "github.com/herohde/dominoengine/pkg/board"

// Move ordering bonuses, as named constants per the heuristic's 7 components.
const (
	moDomino    Priority = 1000.0
	moKiller1   Priority = 5000.0
	moKiller2   Priority = 4500.0
	moDouble    Priority = 12.0
	moPipMult   Priority = 1.5
	moForcePass Priority = 25.0
	moGhost     Priority = 15.0
)

// MaxDepthSlots bounds killer-table storage; search never recurses past this ply.
const MaxDepthSlots = 64

// Ordering carries the killer and history move-ordering state for a single root search.
// Re-zeroed at the start of every root call -- unlike the transposition table, this state
// does not persist across calls.
type Ordering struct {
	killer  [MaxDepthSlots * 2]board.Move
	history [board.NumTiles][3]int32
}

// NewOrdering returns a freshly zeroed ordering state.
func NewOrdering() *Ordering {
	o := &Ordering{}
	o.Clear()
	return o
}

// Clear resets killer and history tables. Call once per root search.
func (o *Ordering) Clear() {
	for i := range o.killer {
		o.killer[i] = board.NoMove
	}
	for i := range o.history {
		o.history[i] = [3]int32{}
	}
}

// RecordKiller records a beta-cutoff move at depth, shifting any existing slot-0 occupant
// into slot-1. A no-op if the move is already the current slot-0 occupant.
func (o *Ordering) RecordKiller(depth int, m board.Move) {
	if depth < 0 || depth >= MaxDepthSlots {
		return
	}
	kd := depth * 2
	if o.killer[kd].Equals(m) {
		return
	}
	o.killer[kd+1] = o.killer[kd]
	o.killer[kd] = m
}

// Killers returns the two killer-slot moves recorded at depth (board.NoMove if empty).
func (o *Ordering) Killers(depth int) [2]board.Move {
	if depth < 0 || depth >= MaxDepthSlots {
		return [2]board.Move{board.NoMove, board.NoMove}
	}
	kd := depth * 2
	return [2]board.Move{o.killer[kd], o.killer[kd+1]}
}

// HistoryScore returns the current history score recorded for move m.
func (o *Ordering) HistoryScore(m board.Move) int32 {
	return o.history[m.Tile][m.End+1]
}

// RecordHistory adds depth^2 to the move's history score, saturating at 10000.
func (o *Ordering) RecordHistory(m board.Move, depth int) {
	hv := o.history[m.Tile][m.End+1] + int32(depth*depth)
	if hv > 10000 {
		hv = 10000
	}
	o.history[m.Tile][m.End+1] = hv
}

// Score computes the ordering priority of move m at the given ply/depth for the side to
// move (myHand, the mover's hand; oppHand, the opponent's), against board ends left/right.
func (o *Ordering) Score(m board.Move, depth int, isAI bool, myHand, oppHand board.Hand, left, right board.End) Priority {
	var s Priority

	if myHand.PopCount() == 1 {
		s += moDomino
	}

	if depth >= 0 && depth < MaxDepthSlots {
		kd := depth * 2
		switch {
		case o.killer[kd].Equals(m):
			s += moKiller1
		case o.killer[kd+1].Equals(m):
			s += moKiller2
		}
	}

	s += Priority(o.history[m.Tile][m.End+1])

	if board.TileIsDouble[m.Tile] {
		s += moDouble
	}

	s += Priority(board.TilePips[m.Tile]) * moPipMult

	newLeft, newRight := board.NewEnds(m, left, right)
	if board.CountMoves(oppHand, newLeft, newRight) == 0 {
		s += moForcePass
	}

	if isAI && oppHand&board.Tile00Bit != 0 {
		newBoth := (myHand.Without(int(m.Tile))) | oppHand
		if newBoth&board.ZeroSuitNo00 == 0 {
			s += moGhost
		}
	}

	return s
}
