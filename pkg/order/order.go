// Package order reorders legal move lists to search the most promising
// moves first, without ever discarding a move: alpha-beta's efficiency
// comes almost entirely from how quickly it finds a good move to raise
// alpha with, so putting likely-best moves first is the cheapest
// performance win available to the engine.
package order

import (
	"sort"

	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
)

// bucket is the coarse move classification. Lower sorts first.
type bucket int8

const (
	bucketCaptureAndPromote bucket = iota
	bucketPromote
	bucketEnPassant
	bucketCapture
	bucketCastle
	bucketRegular
	bucketPut
)

func classify(m chess.Move) bucket {
	switch m.Kind {
	case chess.EnPassant:
		return bucketEnPassant
	case chess.Castle:
		return bucketCastle
	case chess.Put:
		return bucketPut
	}

	switch {
	case m.IsCapture() && m.IsPromotion():
		return bucketCaptureAndPromote
	case m.IsPromotion():
		return bucketPromote
	case m.IsCapture():
		return bucketCapture
	default:
		return bucketRegular
	}
}

// mvvLVA is the within-bucket capture tie-break: victim value minus
// attacker value, descending, so a pawn taking a queen sorts ahead of a
// queen taking a pawn.
func mvvLVA(m chess.Move) int {
	return int(eval.MaterialValue(m.Capture)) - int(eval.MaterialValue(m.Role))
}

// Order sorts moves[start:] in descending order of promise, leaving
// moves[:start] untouched. It is used to pin a transposition-table best
// move at index 0 while still ordering the rest of the list.
func Order(moves []chess.Move, start int) {
	tail := moves[start:]
	sort.SliceStable(tail, func(i, j int) bool {
		bi, bj := classify(tail[i]), classify(tail[j])
		if bi != bj {
			return bi < bj
		}
		if bi == bucketCapture {
			return mvvLVA(tail[i]) > mvvLVA(tail[j])
		}
		return false
	})
}

// PutFirst moves m to index 0 of moves if present, shifting the rest
// down by one, and reports the index ordering should resume from. If m
// is not found, moves is left untouched and ordering resumes from 0.
func PutFirst(moves []chess.Move, m chess.Move) int {
	if m.IsZero() {
		return 0
	}
	for i, cand := range moves {
		if cand.Equals(m) {
			if i != 0 {
				copy(moves[1:i+1], moves[0:i])
				moves[0] = cand
			}
			return 1
		}
	}
	return 0
}
