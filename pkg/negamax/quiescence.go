package negamax

import (
	"context"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Quiescence searches only captures from pos, starting from the static
// evaluation as a floor (stand-pat), to avoid the horizon effect where a
// search cut off mid-exchange misjudges a position. ply still threads
// through so a checkmate found inside quiescence is scored consistently
// with one found by Negamax proper.
func Quiescence(ctx context.Context, pos chess.Position, alpha, beta eval.Score, ply int, nodes *uint64) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	*nodes++

	standPat := eval.Evaluate(pos, ply)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	if pos.IsGameOver() {
		return standPat
	}

	moves := pos.CaptureMoves()
	order.Order(moves, 0)

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			return alpha
		}

		child := pos.Apply(m)
		score := -Quiescence(ctx, child, -beta, -alpha, ply+1, nodes)

		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
