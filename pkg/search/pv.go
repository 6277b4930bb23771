package search

import (
	"fmt"
	"time"

	"github.com/herohde/dominoengine/pkg/board"
	"github.com/herohde/dominoengine/pkg/eval"
)

// MoveScore pairs a root candidate with its searched score, for the response's analysis list.
type MoveScore struct {
	Move  board.Move
	Score eval.Score
}

// PV is the result committed by one completed root iteration.
type PV struct {
	Depth    int
	Move     board.Move
	Score    eval.Score
	Nodes    int64
	Time     time.Duration
	Analysis []MoveScore

	TTProbes, TTHits, TTCutoffs, TTHints int64
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v move=%v score=%v nodes=%v time=%v", p.Depth, p.Move, p.Score, p.Nodes, p.Time)
}
