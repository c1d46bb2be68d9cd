package eval

import (
	"testing"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateColorSymmetry(t *testing.T) {
	fens := []string{
		chess.Initial,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkb1r/ppp2ppp/3p1n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4",
		"8/8/8/4k3/8/4K3/8/3R4 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := chess.DecodeFEN(fen)
		require.NoError(t, err, fen)

		mirrored, err := chess.DecodeFEN(mirrorFEN(fen))
		require.NoError(t, err, fen)

		assert.Equal(t, Evaluate(pos, 0), Evaluate(mirrored, 0), "fen=%s", fen)
	}
}

// mirrorFEN swaps the side to move and piece colors of a FEN board field,
// producing the color-flipped mirror position used by the symmetry test.
func mirrorFEN(fen string) string {
	pos, err := chess.DecodeFEN(fen)
	if err != nil {
		panic(err)
	}

	var placements []chess.Placement
	pos.ForEachPiece(func(sq chess.Square, c chess.Color, r chess.Role) {
		opp := chess.White
		if c == chess.White {
			opp = chess.Black
		}
		placements = append(placements, chess.Placement{Square: sq.Mirror(), Color: opp, Role: r})
	})

	turn := chess.Black
	if pos.SideToMove() == chess.Black {
		turn = chess.White
	}

	mirrored := chess.NewPosition(placements, turn, chess.Castling(0), chess.NoSquare, pos.HalfmoveClock(), pos.FullmoveNumber())
	return chess.EncodeFEN(mirrored)
}

func TestComputePhaseBoundaries(t *testing.T) {
	start, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)
	full := ComputePhase(start)
	assert.InDelta(t, 1.0, full.Opening, 1e-9)
	assert.InDelta(t, 0.0, full.Endgame, 1e-9)

	bare, err := chess.DecodeFEN("8/8/8/4k3/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	empty := ComputePhase(bare)
	assert.InDelta(t, 0.0, empty.Opening, 1e-9)
	assert.InDelta(t, 1.0, empty.Endgame, 1e-9)
}

func TestEvaluateTerminalPositions(t *testing.T) {
	mate, err := chess.DecodeFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
	require.NoError(t, err)
	require.Equal(t, chess.Checkmate, mate.Outcome())
	assert.Equal(t, MateIn(0), Evaluate(mate, 0))

	stalemate, err := chess.DecodeFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Equal(t, chess.Stalemate, stalemate.Outcome())
	assert.Equal(t, Score(0), Evaluate(stalemate, 0))
}

func TestScoreMateRoundTrip(t *testing.T) {
	s := MateIn(3)
	d, ok := MateDistance(s)
	require.True(t, ok)
	assert.Equal(t, 3, d)

	neg := -s
	d2, ok := MateDistance(neg)
	require.True(t, ok)
	assert.Equal(t, 3, d2)
}
