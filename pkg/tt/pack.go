package tt

import (
	"github.com/corvidchess/corvid/pkg/chess"
	"github.com/corvidchess/corvid/pkg/eval"
)

// payload is the second 64-bit word of a slot, packing everything but the
// key fragment: score, move, bound and depth. Layout, low bit to high:
//
//	bits  0..31  score (int32 bit pattern)
//	bits 32..33  move kind
//	bits 34..36  move role
//	bits 37..42  move from-square
//	bits 43..48  move to-square
//	bits 49..51  move promotion role
//	bits 52..53  bound
//	bits 54..61  depth
//	bits 62..63  reserved, always zero
//
// The captured role is deliberately not packed: a reader that needs it
// already holds the position the move was played from and can derive it
// by replaying the move, which saves 3 bits and keeps the whole word
// under 64 bits without a second word for overflow.
func packPayload(score eval.Score, m chess.Move, b Bound, depth int) uint64 {
	var v uint64
	v |= uint64(uint32(score))
	v |= uint64(m.Kind) << 32
	v |= uint64(m.Role) << 34
	v |= uint64(uint8(m.From)) << 37
	v |= uint64(uint8(m.To)) << 43
	v |= uint64(m.Promotion) << 49
	v |= uint64(b) << 52
	v |= uint64(clampDepth(depth)) << 54
	return v
}

func clampDepth(depth int) uint8 {
	if depth < 0 {
		return 0
	}
	if depth > 255 {
		return 255
	}
	return uint8(depth)
}

func unpackScore(v uint64) eval.Score {
	return eval.Score(int32(uint32(v)))
}

func unpackMove(v uint64) chess.Move {
	kind := chess.Kind((v >> 32) & 0x3)
	role := chess.Role((v >> 34) & 0x7)
	from := chess.Square((v >> 37) & 0x3f)
	to := chess.Square((v >> 43) & 0x3f)
	promo := chess.Role((v >> 49) & 0x7)

	return chess.Move{Kind: kind, Role: role, From: from, To: to, Promotion: promo}
}

func unpackBound(v uint64) Bound {
	return Bound((v >> 52) & 0x3)
}

func unpackDepth(v uint64) int {
	return int((v >> 54) & 0xff)
}
