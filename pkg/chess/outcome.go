package chess

// Outcome classifies why a game is over, or Ongoing if it is not.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "?"
	}
}

// Outcome reports whether the game is over for the side to move, and why.
// Note: this does not detect threefold repetition, which requires move
// history beyond a single Position -- see Game for that.
func (p Position) Outcome() Outcome {
	if len(p.LegalMoves()) == 0 {
		if p.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if p.halfmoveClock >= 100 {
		return FiftyMoveRule
	}
	if p.hasInsufficientMaterial() {
		return InsufficientMaterial
	}
	return Ongoing
}

// IsGameOver is a convenience wrapper around Outcome.
func (p Position) IsGameOver() bool {
	return p.Outcome() != Ongoing
}

func (p Position) hasInsufficientMaterial() bool {
	var minor [NumColors]int // knights + bishops
	var bishopSquareParity [NumColors]map[int]bool

	for c := White; c <= Black; c++ {
		bishopSquareParity[c] = map[int]bool{}
	}

	for sq := Square(0); sq < NumSquares; sq++ {
		r, c, ok := p.PieceAt(sq)
		if !ok || r == King {
			continue
		}
		switch r {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			minor[c]++
		case Bishop:
			minor[c]++
			bishopSquareParity[c][(sq.File()+sq.Rank())%2] = true
		}
	}

	total := minor[White] + minor[Black]
	switch {
	case total == 0:
		return true // K vs K
	case total == 1:
		return true // K+minor vs K
	case minor[White] == 1 && minor[Black] == 1 && len(bishopSquareParity[White]) == 1 && len(bishopSquareParity[Black]) == 1:
		// K+B vs K+B with same-colored bishops.
		for parity := range bishopSquareParity[White] {
			if bishopSquareParity[Black][parity] {
				return true
			}
		}
		return false
	default:
		return false
	}
}
