// Package tt implements the engine's transposition table: a fixed-size,
// hash-indexed cache from Zobrist key to previously-computed search
// results, safe to share across any number of worker goroutines without
// external locking.
package tt

import (
	"math/bits"

	"context"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// Entry is a decoded transposition table record.
type Entry struct {
	Score eval.Score
	Depth int
	Bound Bound
	Move  chess.Move
}

// slot is one table cell. A conforming 128-bit atomic cell would make a
// reader's torn-write problem impossible by construction; absent a native
// 128-bit atomic in Go, this uses a seqlock instead: a writer waits for an
// even version and claims it with a CAS to odd (so concurrent writers to
// one slot take turns), writes key and payload, then bumps version to
// even, and readers retry if they observe an odd version or the version
// changes mid-read.
// The net effect is the same as the spec's single-cell design -- a
// reader never observes a half-updated slot -- at the cost of a retry
// loop instead of a single load.
type slot struct {
	version atomic.Uint32
	key     atomic.Uint64
	payload atomic.Uint64
}

func (s *slot) load() (key uint64, payload uint64) {
	for {
		v1 := s.version.Load()
		if v1&1 == 1 {
			continue // writer in flight
		}
		key = s.key.Load()
		payload = s.payload.Load()
		v2 := s.version.Load()
		if v1 == v2 {
			return key, payload
		}
	}
}

func (s *slot) store(key, payload uint64) {
	for {
		v := s.version.Load()
		if v&1 == 0 && s.version.CAS(v, v+1) {
			break
		}
	}
	s.key.Store(key)
	s.payload.Store(payload)
	s.version.Inc()
}

// Table is a fixed-size transposition table of 2^bits slots, indexed by
// the top bits of the Zobrist key.
type Table struct {
	slots []slot
	shift uint
	used  atomic.Uint64 // best-effort; races are tolerated, not corrected
}

// New allocates a table with 2^logSlots slots.
func New(ctx context.Context, logSlots uint) *Table {
	if logSlots == 0 {
		logSlots = 1
	}
	n := uint64(1) << logSlots
	t := &Table{
		slots: make([]slot, n),
		shift: 64 - logSlots,
	}
	logw.Infof(ctx, "allocating TT with %v slots (%v bytes)", n, t.SizeBytes())
	return t
}

// NewFromBytes allocates a table sized to use approximately size bytes,
// rounding down to the nearest power-of-two slot count.
func NewFromBytes(ctx context.Context, size uint64) *Table {
	const slotBytes = 24 // 2 uint64 + uint32, rounded up for alignment
	slots := size / slotBytes
	if slots < 2 {
		slots = 2
	}
	return New(ctx, uint(bits.Len64(slots)-1))
}

func (t *Table) index(key chess.ZobristHash) uint64 {
	return uint64(key) >> t.shift
}

// SizeBytes returns the table's memory footprint.
func (t *Table) SizeBytes() uint64 {
	return uint64(len(t.slots)) * 24
}

// Used returns the fraction of slots written since the last Clear, in
// [0, 1]. Best-effort under concurrent writes.
func (t *Table) Used() float64 {
	return float64(t.used.Load()) / float64(len(t.slots))
}

// Lookup returns the entry stored for key, if the slot's key matches.
func (t *Table) Lookup(key chess.ZobristHash) (Entry, bool) {
	s := &t.slots[t.index(key)]
	storedKey, payload := s.load()
	if storedKey != uint64(key) {
		return Entry{}, false
	}
	return Entry{
		Score: unpackScore(payload),
		Depth: unpackDepth(payload),
		Bound: unpackBound(payload),
		Move:  unpackMove(payload),
	}, true
}

// Store unconditionally writes key's slot (always-replace policy: no
// aging, no depth preference -- deeper entries are re-stored naturally
// by iterative deepening).
func (t *Table) Store(key chess.ZobristHash, score eval.Score, depth int, bound Bound, move chess.Move) {
	s := &t.slots[t.index(key)]

	existingKey, _ := s.load()
	s.store(uint64(key), packPayload(score, move, bound, depth))
	if existingKey == 0 {
		t.used.Inc()
	}
}

// BestMove is a convenience wrapper around Lookup.
func (t *Table) BestMove(key chess.ZobristHash) (chess.Move, bool) {
	e, ok := t.Lookup(key)
	if !ok {
		return chess.Move{}, false
	}
	return e.Move, true
}

// Clear zeroes every slot. Callers must ensure no search is in flight --
// it is meant for the coordinator's Idle-state reset, not for use as a
// hot-path operation alongside concurrent Lookup/Store.
func (t *Table) Clear() {
	t.slots = make([]slot, len(t.slots))
	t.used.Store(0)
}

// PV walks the table to extract a principal variation of length at most
// maxDepth: it plays bestMove from position, then repeatedly looks up the
// resulting position's hash for the next move, stopping when depth is
// exhausted or no entry is found.
func (t *Table) PV(position chess.Position, hash chess.ZobristHash, bestMove chess.Move, maxDepth int) []chess.Move {
	if bestMove.IsZero() || maxDepth <= 0 {
		return nil
	}

	pv := make([]chess.Move, 0, maxDepth)
	pv = append(pv, bestMove)

	pos := position.Apply(bestMove)
	h := position.HashAfterMove(hash, bestMove)

	seen := map[chess.ZobristHash]bool{hash: true}
	for len(pv) < maxDepth {
		if seen[h] {
			break // avoid looping forever on a cyclic PV
		}
		seen[h] = true

		m, ok := t.BestMove(h)
		if !ok || m.IsZero() {
			break
		}
		// The packed move carries no captured role; resolve it against
		// the position to recover what Apply and HashAfterMove need.
		if m, ok = pos.Resolve(m); !ok {
			break
		}
		pv = append(pv, m)
		h = pos.HashAfterMove(h, m)
		pos = pos.Apply(m)
	}
	return pv
}
