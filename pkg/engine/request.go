// Package engine wires the core search kernel (pkg/search, pkg/eval, pkg/board) to the
// external JSON request/response envelope: tile-index<->pip-pair naming, legal-move
// validation, fallback move selection and the host clock, all treated as collaborators at
// the core's boundary rather than part of the search kernel itself.
package engine

import (
	"strconv"

	"github.com/herohde/dominoengine/pkg/board"
)

// TilePair is a tile named by its two pip values, as the envelope represents hands.
type TilePair struct {
	Low  int8 `json:"low"`
	High int8 `json:"high"`
}

// HistoryEntry is one chronological move_history record (most recent last).
type HistoryEntry struct {
	Player     string `json:"player"` // "ai" | "human"
	Pass       bool   `json:"pass"`
	TileLow    int8   `json:"tile_low"`
	TileHigh   int8   `json:"tile_high"`
	BoardLeft  int8   `json:"board_left"`
	BoardRight int8   `json:"board_right"`
}

// LegalMove is one externally-supplied legal move, used to validate the engine's choice.
type LegalMove struct {
	TileLow  int8   `json:"tile_low"`
	TileHigh int8   `json:"tile_high"`
	End      string `json:"end"` // "left" | "right"
}

// MatchScore is the running match score, ai vs human.
type MatchScore struct {
	AI    int `json:"ai"`
	Human int `json:"human"`
}

// Request is the full external input envelope to choose_move.
type Request struct {
	AITiles     []TilePair     `json:"ai_tiles"`
	HumanTiles  []TilePair     `json:"human_tiles"`
	BoardEmpty  bool           `json:"board_empty"`
	Left        *int8          `json:"left,omitempty"`
	Right       *int8          `json:"right,omitempty"`
	MoveHistory []HistoryEntry `json:"move_history"`
	LegalMoves  []LegalMove    `json:"legal_moves"`
	MatchScore  MatchScore     `json:"match_score"`
	TimeBudget  int            `json:"time_budget"`
}

// AnalysisEntry is one root candidate's searched score, in the response's analysis list.
type AnalysisEntry struct {
	TileID string `json:"tile_id"`
	End    string `json:"end"`
	Score  int    `json:"score"`
}

// Response is the full external output envelope from choose_move.
type Response struct {
	TileID    string          `json:"tile_id"`
	End       string          `json:"end"`
	BestScore int             `json:"best_score"`
	Depth     int             `json:"depth"`
	Nodes     int64           `json:"nodes"`
	Analysis  []AnalysisEntry `json:"analysis"`

	TTProbes  int64 `json:"tt_probes"`
	TTHits    int64 `json:"tt_hits"`
	TTCutoffs int64 `json:"tt_cutoffs"`
	TTHints   int64 `json:"tt_hints"`
}

// handToMask converts a list of {low,high} tile pairs into a 28-bit hand mask.
func handToMask(tiles []TilePair) board.Hand {
	var h board.Hand
	for _, t := range tiles {
		idx := board.TileIDToIndex(t.Low, t.High)
		h = h.With(idx)
	}
	return h
}

// endFromPtr converts an optional 0..6 end pointer to a board.End, treating a nil/empty
// board as board.EmptyEnd.
func endFromPtr(boardEmpty bool, v *int8) board.End {
	if boardEmpty || v == nil {
		return board.EmptyEnd
	}
	return board.End(*v)
}

// tileIDString formats a tile index as the envelope's "L-H" id.
func tileIDString(idx int8) string {
	return strconv.Itoa(int(board.TileLow[idx])) + "-" + strconv.Itoa(int(board.TileHigh[idx]))
}

func endString(end int8) string {
	if end == 1 {
		return "right"
	}
	return "left"
}
