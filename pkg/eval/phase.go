package eval

import (
	"math"

	"github.com/corvidchess/corvid/pkg/chess"
)

// Phase blends a position between opening and endgame piece-square tables.
// Opening and Endgame always sum to 1.
type Phase struct {
	Opening, Endgame float64
}

// phaseWeight is how much a role contributes to material_sum, per spec:
// knight=1, bishop=1, rook=2, queen=4. Pawns and kings don't count.
func phaseWeight(r chess.Role) float64 {
	switch r {
	case chess.Knight, chess.Bishop:
		return 1
	case chess.Rook:
		return 2
	case chess.Queen:
		return 4
	default:
		return 0
	}
}

// maxMaterialSum is phaseWeight summed over both colors' full starting
// non-pawn, non-king material: 2*(1+1+1+1+2+2+4) == 24.
const maxMaterialSum = 24

// ComputePhase derives the game phase from remaining non-king, non-pawn
// material. It is evaluated once per Evaluate call.
func ComputePhase(pos chess.Position) Phase {
	var sum float64
	pos.ForEachPiece(func(_ chess.Square, _ chess.Color, r chess.Role) {
		sum += phaseWeight(r)
	})

	opening := math.Pow(sum/maxMaterialSum, 1.5)
	if opening > 1 {
		opening = 1
	}
	return Phase{Opening: opening, Endgame: 1 - opening}
}

// blend linearly interpolates a midgame and endgame value by phase,
// rounding to the nearest centipawn.
func blend(mg, eg Score, p Phase) Score {
	v := float64(mg)*p.Opening + float64(eg)*p.Endgame
	if v >= 0 {
		return Score(v + 0.5)
	}
	return Score(v - 0.5)
}
