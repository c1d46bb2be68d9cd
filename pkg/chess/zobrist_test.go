package chess_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/stretchr/testify/require"
)

func TestHashAfterMoveMatchesFullHash(t *testing.T) {
	pos, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)
	h := pos.Hash()

	for _, m := range pos.LegalMoves() {
		got := pos.HashAfterMove(h, m)
		want := pos.Apply(m).Hash()
		require.Equal(t, want, got, "move %v", m)
	}
}

func TestCastlingAndEnPassantHashIncremental(t *testing.T) {
	// White has just pushed e2e4, giving Black an en-passant target on e3.
	pos, err := chess.DecodeFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)
	h := pos.Hash()

	for _, m := range pos.LegalMoves() {
		require.Equal(t, pos.Apply(m).Hash(), pos.HashAfterMove(h, m), "move %v", m)
	}
}

func TestCheckmateDetection(t *testing.T) {
	// Fool's mate.
	pos, err := chess.DecodeFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)
	require.Equal(t, chess.Checkmate, pos.Outcome())
	require.Empty(t, pos.LegalMoves())
}
