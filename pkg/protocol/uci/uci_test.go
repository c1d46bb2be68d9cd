package uci

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverScriptedSession(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "corvid", "test", engine.Options{HashBits: 12, Workers: 1})

	in := make(chan string, 8)
	d, out := NewDriver(ctx, e, in, 2*time.Second)

	in <- "uci"
	in <- "isready"
	in <- "position startpos"
	in <- "go depth 2"

	var lines []string
	deadline := time.After(10 * time.Second)
	sawBestMove := false
	for !sawBestMove {
		select {
		case line, ok := <-out:
			require.True(t, ok, "output channel closed before bestmove")
			lines = append(lines, line)
			if strings.HasPrefix(line, "bestmove") {
				sawBestMove = true
			}
		case <-deadline:
			t.Fatalf("timed out waiting for bestmove, got: %v", lines)
		}
	}

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "id name corvid")
	assert.Contains(t, joined, "id author test")
	assert.Contains(t, joined, "uciok")
	assert.Contains(t, joined, "readyok")
	assert.Contains(t, joined, "info depth 1")
	assert.Contains(t, joined, "info depth 2")

	in <- "quit"
	<-d.Closed()
}
