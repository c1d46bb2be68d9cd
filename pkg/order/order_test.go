package order

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func move(kind chess.Kind, role chess.Role, from, to chess.Square, capture, promo chess.Role) chess.Move {
	return chess.Move{Kind: kind, Role: role, From: from, To: to, Capture: capture, Promotion: promo}
}

func TestOrderBucketPrecedence(t *testing.T) {
	regular := move(chess.Normal, chess.Knight, chess.NewSquare(1, 0), chess.NewSquare(2, 2), chess.NoRole, chess.NoRole)
	put := move(chess.Put, chess.Pawn, chess.NoSquare, chess.NewSquare(0, 3), chess.NoRole, chess.NoRole)
	castle := move(chess.Castle, chess.King, chess.NewSquare(4, 0), chess.NewSquare(7, 0), chess.NoRole, chess.NoRole)
	enPassant := move(chess.EnPassant, chess.Pawn, chess.NewSquare(4, 4), chess.NewSquare(5, 5), chess.NoRole, chess.NoRole)
	capture := move(chess.Normal, chess.Knight, chess.NewSquare(1, 0), chess.NewSquare(2, 2), chess.Pawn, chess.NoRole)
	promote := move(chess.Normal, chess.Pawn, chess.NewSquare(0, 6), chess.NewSquare(0, 7), chess.NoRole, chess.Queen)
	captureAndPromote := move(chess.Normal, chess.Pawn, chess.NewSquare(0, 6), chess.NewSquare(1, 7), chess.Rook, chess.Queen)

	moves := []chess.Move{put, regular, castle, capture, enPassant, promote, captureAndPromote}
	Order(moves, 0)

	assert.Equal(t, captureAndPromote, moves[0])
	assert.Equal(t, promote, moves[1])
	assert.Equal(t, enPassant, moves[2])
	assert.Equal(t, capture, moves[3])
	assert.Equal(t, castle, moves[4])
	assert.Equal(t, regular, moves[5])
	assert.Equal(t, put, moves[6])
}

func TestOrderMVVLVAWithinCaptureBucket(t *testing.T) {
	pawnTakesQueen := move(chess.Normal, chess.Pawn, chess.NewSquare(3, 3), chess.NewSquare(4, 4), chess.Queen, chess.NoRole)
	queenTakesPawn := move(chess.Normal, chess.Queen, chess.NewSquare(0, 0), chess.NewSquare(0, 6), chess.Pawn, chess.NoRole)
	knightTakesRook := move(chess.Normal, chess.Knight, chess.NewSquare(2, 2), chess.NewSquare(3, 4), chess.Rook, chess.NoRole)

	moves := []chess.Move{queenTakesPawn, knightTakesRook, pawnTakesQueen}
	Order(moves, 0)

	assert.Equal(t, pawnTakesQueen, moves[0])
	assert.Equal(t, knightTakesRook, moves[1])
	assert.Equal(t, queenTakesPawn, moves[2])
}

func TestOrderPreservesPrefix(t *testing.T) {
	pinned := move(chess.Normal, chess.Bishop, chess.NewSquare(2, 0), chess.NewSquare(4, 2), chess.NoRole, chess.NoRole)
	capture := move(chess.Normal, chess.Knight, chess.NewSquare(1, 0), chess.NewSquare(2, 2), chess.Queen, chess.NoRole)
	regular := move(chess.Normal, chess.Knight, chess.NewSquare(6, 0), chess.NewSquare(5, 2), chess.NoRole, chess.NoRole)

	moves := []chess.Move{pinned, regular, capture}
	Order(moves, 1)

	require.Equal(t, pinned, moves[0], "prefix before start index must be untouched")
	assert.Equal(t, capture, moves[1])
	assert.Equal(t, regular, moves[2])
}

func TestPutFirst(t *testing.T) {
	a := move(chess.Normal, chess.Pawn, chess.NewSquare(0, 1), chess.NewSquare(0, 2), chess.NoRole, chess.NoRole)
	b := move(chess.Normal, chess.Pawn, chess.NewSquare(1, 1), chess.NewSquare(1, 2), chess.NoRole, chess.NoRole)
	c := move(chess.Normal, chess.Pawn, chess.NewSquare(2, 1), chess.NewSquare(2, 2), chess.NoRole, chess.NoRole)

	moves := []chess.Move{a, b, c}
	start := PutFirst(moves, c)

	assert.Equal(t, 1, start)
	assert.Equal(t, c, moves[0])
	assert.ElementsMatch(t, []chess.Move{a, b}, moves[1:])
}

func TestPutFirstNotFound(t *testing.T) {
	a := move(chess.Normal, chess.Pawn, chess.NewSquare(0, 1), chess.NewSquare(0, 2), chess.NoRole, chess.NoRole)
	missing := move(chess.Normal, chess.Knight, chess.NewSquare(1, 0), chess.NewSquare(2, 2), chess.NoRole, chess.NoRole)

	moves := []chess.Move{a}
	start := PutFirst(moves, missing)

	assert.Equal(t, 0, start)
	assert.Equal(t, a, moves[0])
}
