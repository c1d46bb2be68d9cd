package search

import (
	"context"
	"sync"
	"time"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/negamax"
	"github.com/corvidchess/corvid/pkg/order"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/seekerror/logw"
)

// maxIterativeDepth bounds a TimeLimit search with no explicit depth so
// the iterative-deepening loop cannot run away on a position the search
// solves instantly -- a depth this deep is never reached before a
// realistic time budget expires.
const maxIterativeDepth = 64

// Coordinator owns a transposition table and drives iterative-deepening
// searches over pkg/negamax in response to commands received on its input
// channel, reporting progress and results on its output channel. A single
// Coordinator is not safe for concurrent calls to Run; the channels
// themselves are the concurrency boundary.
type Coordinator struct {
	table   *tt.Table
	workers int

	commands chan Command
	events   chan Event
}

// NewCoordinator returns a Coordinator sharing table and, when workers > 1,
// fanning root moves of each iteration across that many goroutines (see
// spec's optional root split).
func NewCoordinator(table *tt.Table, workers int) *Coordinator {
	if workers < 1 {
		workers = 1
	}
	return &Coordinator{
		table:    table,
		workers:  workers,
		commands: make(chan Command, 4),
		events:   make(chan Event, 64),
	}
}

// Commands returns the channel callers send Command values on.
func (c *Coordinator) Commands() chan<- Command { return c.commands }

// Events returns the channel callers receive Event values from. Closed
// when the coordinator quits.
func (c *Coordinator) Events() <-chan Event { return c.events }

// Run is the coordinator's state machine: Idle, blocked on the command
// channel, until a StartCmd moves it to Searching; Searching returns to
// Idle on completion or Stop, or to Exit on Quit. It returns when the
// coordinator has quit or ctx is done.
func (c *Coordinator) Run(ctx context.Context) {
	defer close(c.events)

	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-c.commands:
			if !ok {
				return
			}
			switch cmd := cmd.(type) {
			case StartCmd:
				pending := &cmd
				for pending != nil {
					next, quit := c.search(ctx, *pending)
					if quit {
						return
					}
					pending = next
				}
			case StopCmd:
				// No search in flight while Idle; nothing to do.
			case ResetCmd:
				c.table.Clear()
			case QuitCmd:
				return
			}
		}
	}
}

// root holds the best move/score found so far at the current, or last
// fully-completed, iteration.
type root struct {
	move  chess.Move
	score eval.Score
}

// search runs one StartCmd to completion (or interruption), emitting Info
// events per finished iteration and a final BestMove. It returns a pending
// StartCmd that preempted this one (to be launched immediately after, per
// spec's "a Start received mid-search implicitly stops the current one
// first") and whether a QuitCmd was observed.
func (c *Coordinator) search(ctx context.Context, cmd StartCmd) (next *StartCmd, quit bool) {
	pos := cmd.Position
	if pos.IsGameOver() {
		return nil, false
	}

	hash := pos.Hash()
	legal := pos.LegalMoves()

	best := root{move: legal[0], score: eval.Min + 1}

	maxDepth, timeLimit := resolveControl(cmd.Control)
	deadline := time.Now().Add(timeLimit)

	// poll treats an expired time budget like a Stop, so it is also
	// checked before every root move, not only between iterations.
	poll := func() interrupt {
		if timeLimit > 0 && time.Now().After(deadline) {
			return interrupt{stopped: true}
		}
		return c.pollInterrupt()
	}

	for depth := 1; depth <= maxDepth; depth++ {
		iterStart := time.Now()

		moves := pos.LegalMoves()
		hint, _ := c.table.BestMove(hash)
		start := order.PutFirst(moves, hint)
		order.Order(moves, start)

		iter := root{move: moves[0], score: eval.Min + 1}
		var nodes uint64
		var mu sync.Mutex

		searchMove := func(m chess.Move) {
			mu.Lock()
			beta := -iter.score
			mu.Unlock()

			child := pos.Apply(m)
			childHash := pos.HashAfterMove(hash, m)
			var local uint64
			score := -negamax.Negamax(ctx, c.table, child, depth-1, eval.Min+1, beta, 1, &local, childHash)

			mu.Lock()
			nodes += local
			if score > iter.score {
				iter = root{move: m, score: score}
			}
			mu.Unlock()
		}

		stopped := c.runRootMoves(ctx, moves, searchMove, poll)
		if stopped.quit {
			return nil, true
		}
		if stopped.pending != nil {
			next = stopped.pending
		}
		if stopped.stopped {
			break
		}

		best = iter
		c.table.Store(hash, best.score, depth, tt.Exact, best.move)

		pv := c.table.PV(pos, hash, best.move, depth)
		c.emit(InfoEvent{Depth: depth, PV: pv, Score: best.score, Nodes: nodes})

		logw.Debugf(ctx, "search depth=%v completed in %v: %v", depth, time.Since(iterStart), best.score)

		if timeLimit > 0 && time.Now().After(deadline) {
			break
		}
	}

	c.emit(BestMoveEvent{Move: best.move})
	return next, false
}

// interrupt summarizes what the coordinator observed while polling the
// command channel mid-search.
type interrupt struct {
	stopped bool
	quit    bool
	pending *StartCmd
}

// runRootMoves searches each of moves via searchMove, polling for
// interrupts between every root move (sequentially when c.workers == 1, or
// fanned across c.workers goroutines otherwise -- spec's optional root
// split). It returns as soon as an interrupt is observed or every move has
// been searched.
func (c *Coordinator) runRootMoves(ctx context.Context, moves []chess.Move, searchMove func(chess.Move), poll func() interrupt) interrupt {
	if c.workers <= 1 {
		for _, m := range moves {
			if in := poll(); in.stopped || in.quit {
				return in
			}
			searchMove(m)
		}
		return interrupt{}
	}

	jobs := make(chan chess.Move)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				searchMove(m)
			}
		}()
	}

	var result interrupt
loop:
	for _, m := range moves {
		if in := poll(); in.stopped || in.quit {
			result = in
			break loop
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			break loop
		}
	}
	close(jobs)
	wg.Wait()

	return result
}

// pollInterrupt non-blockingly checks for a Stop, Quit or preempting Start
// on the command channel, per spec's "between root moves, the coordinator
// polls the command channel non-blockingly".
func (c *Coordinator) pollInterrupt() interrupt {
	select {
	case cmd := <-c.commands:
		switch cmd := cmd.(type) {
		case StopCmd:
			return interrupt{stopped: true}
		case QuitCmd:
			return interrupt{quit: true}
		case StartCmd:
			return interrupt{stopped: true, pending: &cmd}
		case ResetCmd:
			// Reset is only valid while Idle; ignore it mid-search.
			return interrupt{}
		}
	default:
	}
	return interrupt{}
}

func (c *Coordinator) emit(e Event) {
	c.events <- e
}

// resolveControl translates a Control into an iterative-deepening depth
// ceiling and a time budget. A ToDepth control has no time budget; a
// TimeLimit control runs until maxIterativeDepth or the clock, whichever
// comes first.
func resolveControl(ctl Control) (maxDepth int, timeLimit time.Duration) {
	switch c := ctl.(type) {
	case ToDepth:
		return int(c), 0
	case TimeLimit:
		return maxIterativeDepth, time.Duration(c)
	default:
		return maxIterativeDepth, 0
	}
}
