package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(key uint64, moveBits, weight uint16) []byte {
	var rec [16]byte
	binary.BigEndian.PutUint64(rec[0:8], key)
	binary.BigEndian.PutUint16(rec[8:10], moveBits)
	binary.BigEndian.PutUint16(rec[10:12], weight)
	return rec[:]
}

// e2e4 in Polyglot bit layout: to=e4 (28), from=e2 (12).
func TestLoadReaderProbeFindsE2E4FromInitialPosition(t *testing.T) {
	pos, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)
	hash := pos.Hash()

	from := chess.NewSquare(4, 1) // e2
	to := chess.NewSquare(4, 3)   // e4
	moveBits := uint16(to) | uint16(from)<<6

	b, err := LoadReader(bytes.NewReader(record(uint64(hash), moveBits, 10)))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Size())

	m, ok := b.Probe(pos, hash)
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestProbeMissReturnsFalse(t *testing.T) {
	pos, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)

	m, ok := Empty.Probe(pos, pos.Hash())
	assert.False(t, ok)
	assert.True(t, m.IsZero())
}

func TestProbeSkipsStaleEntryNotInLegalMoves(t *testing.T) {
	pos, err := chess.DecodeFEN(chess.Initial)
	require.NoError(t, err)
	hash := pos.Hash()

	// e2e5 is not a legal pawn move from the initial position.
	from := chess.NewSquare(4, 1)
	to := chess.NewSquare(4, 4)
	moveBits := uint16(to) | uint16(from)<<6

	b, err := LoadReader(bytes.NewReader(record(uint64(hash), moveBits, 5)))
	require.NoError(t, err)

	_, ok := b.Probe(pos, hash)
	assert.False(t, ok)
}
