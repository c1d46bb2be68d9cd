// Package negamax implements alpha-beta search under the negamax
// formulation (max(a,b) = -min(-a,-b)): both sides maximize from their own
// perspective, and the recursive call simply negates the window and the
// result.
package negamax

import (
	"context"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Negamax returns the score of pos in the side-to-move frame, searching
// depth plies (plus a quiescence tail) with the alpha-beta window
// [alpha, beta]. ply is the distance from the search root, used for mate
// scoring. hash is the Zobrist key of pos, passed in to avoid
// recomputing it. nodes is incremented once per node visited.
func Negamax(ctx context.Context, table *tt.Table, pos chess.Position, depth int, alpha, beta eval.Score, ply int, nodes *uint64, hash chess.ZobristHash) eval.Score {
	var ttMove chess.Move
	if entry, ok := table.Lookup(hash); ok && entry.Depth >= depth {
		switch {
		case entry.Bound == tt.Exact:
			return entry.Score
		case entry.Bound == tt.Lower && entry.Score >= beta:
			return entry.Score
		case entry.Bound == tt.Upper && entry.Score <= alpha:
			return entry.Score
		}
		ttMove = entry.Move
	}

	*nodes++

	if depth == 0 || pos.IsGameOver() {
		return Quiescence(ctx, pos, alpha, beta, ply, nodes)
	}

	// pos.IsGameOver() is false here, so LegalMoves() is guaranteed
	// non-empty -- Outcome() derives Checkmate/Stalemate from exactly
	// this emptiness.
	moves := pos.LegalMoves()
	start := order.PutFirst(moves, ttMove)
	order.Order(moves, start)

	alphaInitial := alpha
	bestScore := eval.Min
	var bestMove chess.Move

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			return 0
		}

		child := pos.Apply(m)
		childHash := pos.HashAfterMove(hash, m)

		score := -Negamax(ctx, table, child, depth-1, -beta, -alpha, ply+1, nodes, childHash)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	var bound tt.Bound
	switch {
	case bestScore <= alphaInitial:
		bound = tt.Upper
	case bestScore >= beta:
		bound = tt.Lower
	default:
		bound = tt.Exact
	}
	table.Store(hash, bestScore, depth, bound, bestMove)

	return bestScore
}
