package search

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
)

// Event is the tagged union of messages the coordinator emits on its output
// channel.
type Event interface {
	isEvent()
}

// InfoEvent reports the result of one completed iterative-deepening
// iteration.
type InfoEvent struct {
	Depth int
	PV    []chess.Move
	Score eval.Score
	Nodes uint64
}

func (InfoEvent) isEvent() {}

func (i InfoEvent) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v pv=%v", i.Depth, i.Score, i.Nodes, i.PV)
}

// BestMoveEvent is the terminal message of a search: exactly one per
// StartCmd, emitted after that search's last InfoEvent.
type BestMoveEvent struct {
	Move chess.Move
}

func (BestMoveEvent) isEvent() {}
