package eval

import "github.com/corvidchess/corvid/pkg/chess"

// Evaluate returns the static score of pos from the perspective of the side
// to move. It is deterministic, pure and holds no state of its own.
//
// ply is the distance from the search root; it is threaded through purely
// so a detected checkmate can be encoded with MateIn(ply) -- see Score.
func Evaluate(pos chess.Position, ply int) Score {
	switch pos.Outcome() {
	case chess.Checkmate:
		return MateIn(ply)
	case chess.Stalemate, chess.InsufficientMaterial, chess.FiftyMoveRule:
		return 0
	}
	return evaluateNonTerminal(pos)
}

func evaluateNonTerminal(pos chess.Position) Score {
	turn := pos.SideToMove()
	phase := ComputePhase(pos)

	var score Score
	pos.ForEachPiece(func(sq chess.Square, c chess.Color, r chess.Role) {
		s := materialValue(r) + positional(r, c, sq, phase)
		if c == turn {
			score += s
		} else {
			score -= s
		}
	})
	return score
}
