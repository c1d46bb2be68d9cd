// Package uci is a line-oriented driver for the Universal Chess Interface
// protocol, translating text commands into pkg/engine calls and
// pkg/search events back into text.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// ProtocolName is the first line a GUI sends to switch the engine into
// UCI mode.
const ProtocolName = "uci"

// Driver runs a UCI session against an engine.Engine until "quit" or the
// input stream closes.
type Driver struct {
	e                *engine.Engine
	out              chan<- string
	defaultTimeLimit time.Duration

	quit   chan struct{}
	closed atomic.Bool
}

// NewDriver starts processing in on a separate goroutine and returns the
// driver plus the channel of lines it emits. defaultTimeLimit is used for
// every "go" that gives neither depth nor movetime; wtime, btime, winc,
// binc and movestogo are read past and do not affect the budget.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string, defaultTimeLimit time.Duration) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:                e,
		out:              out,
		defaultTimeLimit: defaultTimeLimit,
		quit:             make(chan struct{}),
	}
	go d.process(ctx, in)
	return d, out
}

// Close idempotently signals the driver to stop.
func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

// Closed returns a channel closed once the driver has exited.
func (d *Driver) Closed() <-chan struct{} { return d.quit }

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "option name Hash type spin default 64 min 1 max 4096"
	d.out <- "option name Threads type spin default 1 min 1 max 64"
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "input stream closed, exiting")
				return
			}
			if quit := d.dispatch(ctx, line); quit {
				return
			}
		case <-d.quit:
			return
		}
	}
}

func (d *Driver) dispatch(ctx context.Context, line string) (quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "isready":
		d.out <- "readyok"
	case "ucinewgame":
		d.e.Reset(ctx)
	case "position":
		d.handlePosition(ctx, args, line)
	case "go":
		d.handleGo(ctx, args)
	case "stop":
		d.e.Stop()
	case "setoption":
		logw.Debugf(ctx, "ignoring setoption: %v", line)
	case "ponderhit", "debug", "register":
		// Acknowledged implicitly; no behavior change in this adapter.
	case "quit":
		d.e.Quit()
		return true
	default:
		logw.Warnf(ctx, "unknown command %q: %v", cmd, line)
	}
	return false
}

func (d *Driver) handlePosition(ctx context.Context, args []string, line string) {
	if len(args) == 0 {
		logw.Warnf(ctx, "malformed position command: %q", line)
		return
	}

	fenStr := ""
	i := 0
	switch args[0] {
	case "startpos":
		i = 1
	case "fen":
		if len(args) < 7 {
			logw.Warnf(ctx, "malformed position command: %q", line)
			return
		}
		fenStr = strings.Join(args[1:7], " ")
		i = 7
	default:
		logw.Warnf(ctx, "malformed position command: %q", line)
		return
	}
	if fenStr == "" {
		fenStr = chess.Initial
	}

	var moves []string
	if i < len(args) {
		if args[i] != "moves" {
			logw.Warnf(ctx, "malformed position command: %q", line)
			return
		}
		moves = args[i+1:]
	}

	if err := d.e.SetPosition(ctx, fenStr, moves); err != nil {
		logw.Warnf(ctx, "illegal position command %q: %v", line, err)
	}
}

func (d *Driver) handleGo(ctx context.Context, args []string) {
	var control search.Control

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			n, ok := intArg(ctx, args, i)
			if !ok {
				return
			}
			control = search.ToDepth(n)
		case "movetime":
			i++
			n, ok := intArg(ctx, args, i)
			if !ok {
				return
			}
			control = search.TimeLimit(time.Duration(n) * time.Millisecond)
		case "wtime", "btime", "winc", "binc", "movestogo", "mate", "nodes":
			i++ // consumed, not modeled beyond depth/movetime in this adapter
		case "searchmoves", "ponder", "infinite":
			// not modeled; falls through to the default control below
		}
	}

	if control == nil {
		control = search.TimeLimit(d.defaultTimeLimit)
	}

	go d.forward(d.e.Go(ctx, control))
}

func (d *Driver) forward(events <-chan search.Event) {
	for e := range events {
		switch e := e.(type) {
		case search.InfoEvent:
			d.out <- formatInfo(e)
		case search.BestMoveEvent:
			d.out <- formatBestMove(e)
		}
	}
}

func intArg(ctx context.Context, args []string, i int) (int, bool) {
	if i >= len(args) {
		logw.Warnf(ctx, "missing argument in go command: %v", args)
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		logw.Warnf(ctx, "invalid integer argument %q: %v", args[i], err)
		return 0, false
	}
	return n, true
}

func formatInfo(e search.InfoEvent) string {
	parts := []string{"info", fmt.Sprintf("depth %d", e.Depth)}

	if d, ok := eval.MateDistance(e.Score); ok {
		moves := (d + 1) / 2
		if e.Score < 0 {
			moves = -moves
		}
		parts = append(parts, fmt.Sprintf("score mate %d", moves))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %d", int(e.Score)))
	}

	parts = append(parts, fmt.Sprintf("nodes %d", e.Nodes))
	if len(e.PV) > 0 {
		pv := make([]string, len(e.PV))
		for i, m := range e.PV {
			pv[i] = m.String()
		}
		parts = append(parts, "pv", strings.Join(pv, " "))
	}
	return strings.Join(parts, " ")
}

func formatBestMove(e search.BestMoveEvent) string {
	if e.Move.IsZero() {
		return "bestmove 0000"
	}
	return fmt.Sprintf("bestmove %v", e.Move)
}
