package chess

var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (p Position) IsAttacked(sq Square, by Color) bool {
	f, r := sq.File(), sq.Rank()

	for _, o := range knightOffsets {
		nf, nr := f+o[0], r+o[1]
		if onBoard(nf, nr) {
			if role, c, ok := p.PieceAt(NewSquare(nf, nr)); ok && c == by && role == Knight {
				return true
			}
		}
	}
	for _, o := range kingOffsets {
		nf, nr := f+o[0], r+o[1]
		if onBoard(nf, nr) {
			if role, c, ok := p.PieceAt(NewSquare(nf, nr)); ok && c == by && role == King {
				return true
			}
		}
	}
	for _, d := range bishopDirs {
		if p.rayHits(f, r, d[0], d[1], by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range rookDirs {
		if p.rayHits(f, r, d[0], d[1], by, Rook, Queen) {
			return true
		}
	}

	pawnRank := r - pawnDirection(by)
	for _, df := range [2]int{-1, 1} {
		nf := f + df
		if onBoard(nf, pawnRank) {
			if role, c, ok := p.PieceAt(NewSquare(nf, pawnRank)); ok && c == by && role == Pawn {
				return true
			}
		}
	}
	return false
}

func (p Position) rayHits(f, r, df, dr int, by Color, roles ...Role) bool {
	nf, nr := f+df, r+dr
	for onBoard(nf, nr) {
		sq := NewSquare(nf, nr)
		if role, c, ok := p.PieceAt(sq); ok {
			if c == by {
				for _, want := range roles {
					if role == want {
						return true
					}
				}
			}
			return false
		}
		nf += df
		nr += dr
	}
	return false
}

// pawnDirection returns the rank delta a pawn of the given color advances by.
func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// InCheck reports whether the side to move's king is attacked.
func (p Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.turn), p.turn.Opponent())
}
