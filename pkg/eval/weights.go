package eval

// Base evaluation weights for the 7-term static evaluator. Units are evaluation points, not
// pips or move counts; they only make sense relative to each other and to the phase/match
// multipliers applied in Evaluate.
const (
	wPip        = 2.0
	wMobility   = 4.0
	wTile       = 5.0
	wSuit       = 3.0
	wLockin     = 8.0
	wLockinBoth = 15.0
	wGhost      = 10.0
	wDouble     = 1.5
)
