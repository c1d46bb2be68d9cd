package chess

import "fmt"

// Square is a board square, 0 (a1) .. 63 (h8), rank-major.
type Square int8

const (
	NoSquare Square = -1
	NumSquares = 64
)

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

// Mirror returns the square as seen from the opponent's side -- rotating
// the board 180 degrees. Used to index piece-square tables for Black.
func (s Square) Mirror() Square {
	return 63 - s
}

func (s Square) IsValid() bool {
	return s >= 0 && s < NumSquares
}

func ParseSquare(file, rank rune) (Square, bool) {
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}
