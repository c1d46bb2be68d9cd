package chess_test

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		chess.Initial,
		"r1b1kb1r/pppp1ppp/5q2/4n3/3KP3/2N3PN/PPP4P/R1BQ1B1R b kq - 0 1",
		"4k3/8/8/8/3q4/8/4Q3/4K3 w - - 0 1",
	} {
		pos, err := chess.DecodeFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, chess.EncodeFEN(pos))
	}
}

func TestInitialPositionLegalMoveCount(t *testing.T) {
	pos, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)
	require.Len(t, pos.LegalMoves(), 20)
	require.Equal(t, chess.Ongoing, pos.Outcome())
}
