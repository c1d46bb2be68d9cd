// Package search implements the engine's search coordinator: it owns the
// transposition table, drives iterative deepening over pkg/negamax, and
// communicates with callers exclusively through a command channel (in) and
// an event channel (out), never through direct method calls into a running
// search.
package search

import (
	"fmt"
	"time"

	"github.com/corvidchess/corvid/pkg/chess"
)

// Control bounds how deep or how long a search runs.
type Control interface {
	fmt.Stringer
	isControl()
}

// ToDepth limits a search to a fixed number of iterative-deepening plies.
type ToDepth uint8

func (d ToDepth) isControl() {}
func (d ToDepth) String() string { return fmt.Sprintf("depth=%v", uint8(d)) }

// TimeLimit limits a search to a wall-clock budget.
type TimeLimit time.Duration

func (t TimeLimit) isControl() {}
func (t TimeLimit) String() string { return fmt.Sprintf("time=%v", time.Duration(t)) }

// Command is the tagged union of messages the coordinator accepts on its
// input channel.
type Command interface {
	isCommand()
}

// StartCmd begins a new search from position under control, implicitly
// stopping any search already in progress.
type StartCmd struct {
	Position chess.Position
	Control  Control
}

func (StartCmd) isCommand() {}

// StopCmd abandons the current search, if any, without quitting the
// coordinator.
type StopCmd struct{}

func (StopCmd) isCommand() {}

// QuitCmd terminates the coordinator. Valid from Idle or Searching.
type QuitCmd struct{}

func (QuitCmd) isCommand() {}

// ResetCmd clears the transposition table. Only valid while Idle.
type ResetCmd struct{}

func (ResetCmd) isCommand() {}
