package eval

import "github.com/corvidchess/corvid/pkg/chess"

// MaterialValue is the nominal value of a role in centipawns, exported
// for move-ordering heuristics (MVV-LVA) that need it outside this
// package's own evaluation loop.
func MaterialValue(r chess.Role) Score {
	return materialValue(r)
}

// materialValue is the nominal value of a role in centipawns.
func materialValue(r chess.Role) Score {
	switch r {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 0
	default:
		return 0
	}
}
