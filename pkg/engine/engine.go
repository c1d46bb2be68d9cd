// Package engine is the facade a protocol adapter drives: it owns the
// current position, process-scoped options, the opening book
// and the search coordinator goroutine, translating caller intent (set
// position, go, stop, reset, quit) into coordinator commands and exposing
// its events back out.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvidchess/corvid/pkg/book"
	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/tt"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are process-scoped engine configuration, set once at startup.
type Options struct {
	// HashBits is the transposition table size as log2(slot count).
	HashBits uint
	// Workers is the number of goroutines the coordinator fans root moves
	// across. One means no parallelism.
	Workers int
	// Book, if non-nil, is consulted before every search.
	Book *book.Book
}

func (o Options) String() string {
	return fmt.Sprintf("{hashBits=%v, workers=%v, book=%v entries}", o.HashBits, o.Workers, o.Book.Size())
}

// Engine is the stateful facade around a search.Coordinator: the piece a
// protocol adapter (pkg/protocol/uci) drives directly.
type Engine struct {
	name, author string
	opts         Options
	book         *book.Book

	coordinator *search.Coordinator
	cancel      context.CancelFunc

	mu  sync.Mutex
	pos chess.Position
}

// New starts a coordinator goroutine and returns an Engine set to the
// standard starting position.
func New(ctx context.Context, name, author string, opts Options) *Engine {
	table := tt.New(ctx, opts.HashBits)
	coordinator := search.NewCoordinator(table, opts.Workers)

	cctx, cancel := context.WithCancel(ctx)
	go coordinator.Run(cctx)

	b := opts.Book
	if b == nil {
		b = book.Empty
	}

	e := &Engine{
		name:        name,
		author:      author,
		opts:        opts,
		book:        b,
		coordinator: coordinator,
		cancel:      cancel,
	}
	pos, err := chess.DecodeFEN(chess.Initial)
	if err != nil {
		panic(fmt.Sprintf("engine: invalid built-in initial position: %v", err))
	}
	e.pos = pos

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position's FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return chess.EncodeFEN(e.pos)
}

// SetPosition replaces the current position with fen, then replays moves
// (in coordinate notation) against it. On the first illegal move, the
// position is left exactly as it was before the call.
func (e *Engine) SetPosition(ctx context.Context, fen string, moves []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := chess.DecodeFEN(fen)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}

	for _, mv := range moves {
		candidate, err := chess.ParseMove(mv)
		if err != nil {
			return fmt.Errorf("invalid move %q: %w", mv, err)
		}
		resolved, ok := pos.Resolve(candidate)
		if !ok {
			return fmt.Errorf("illegal move %q in position %q", mv, fen)
		}
		pos = pos.Apply(resolved)
	}

	e.pos = pos
	logw.Debugf(ctx, "SetPosition: %v", chess.EncodeFEN(e.pos))
	return nil
}

// Go starts a search on the current position under control, first
// consulting the opening book. On a book hit, the coordinator is bypassed
// entirely and the returned channel carries a single BestMoveEvent.
func (e *Engine) Go(ctx context.Context, control search.Control) <-chan search.Event {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	if m, ok := e.book.Probe(pos, pos.Hash()); ok {
		logw.Infof(ctx, "Book hit for %v: %v", chess.EncodeFEN(pos), m)
		out := make(chan search.Event, 1)
		out <- search.BestMoveEvent{Move: m}
		close(out)
		return out
	}

	e.coordinator.Commands() <- search.StartCmd{Position: pos, Control: control}
	return e.coordinator.Events()
}

// Stop abandons the active search, if any.
func (e *Engine) Stop() {
	e.coordinator.Commands() <- search.StopCmd{}
}

// Reset clears the transposition table and returns the engine to the
// standard starting position. Only meaningful while Idle -- callers must
// not call Reset while a Go is outstanding.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	e.pos, _ = chess.DecodeFEN(chess.Initial)
	e.mu.Unlock()

	e.coordinator.Commands() <- search.ResetCmd{}
	logw.Infof(ctx, "Reset to initial position")
}

// Quit terminates the coordinator goroutine. The Engine must not be used
// afterward.
func (e *Engine) Quit() {
	e.coordinator.Commands() <- search.QuitCmd{}
	e.cancel()
}
