package chess

import "fmt"

// Game tracks a Position together with enough history to additionally
// detect threefold repetition, which a single Position cannot: it is the
// "board with history" counterpart to morlock's board.Board. Neither the
// search core nor the engine facade holds a Game: both work on plain
// Positions, so repetition is not detected during setup or search.
type Game struct {
	pos         Position
	hash        ZobristHash
	repetitions map[ZobristHash]int
	history     []Move
}

// NewGame starts a Game from a position.
func NewGame(pos Position) *Game {
	h := pos.Hash()
	return &Game{
		pos:         pos,
		hash:        h,
		repetitions: map[ZobristHash]int{h: 1},
	}
}

func (g *Game) Position() Position   { return g.pos }
func (g *Game) Hash() ZobristHash    { return g.hash }
func (g *Game) Turn() Color          { return g.pos.SideToMove() }
func (g *Game) History() []Move      { return g.history }

// Push applies a legal move. It returns an error if the move is not legal
// in the current position.
func (g *Game) Push(m Move) error {
	for _, legal := range g.pos.LegalMoves() {
		if legal.Equals(m) {
			g.hash = g.pos.HashAfterMove(g.hash, legal)
			g.pos = g.pos.Apply(legal)
			g.history = append(g.history, legal)
			g.repetitions[g.hash]++
			return nil
		}
	}
	return fmt.Errorf("chess: illegal move %v in position %v", m, EncodeFEN(g.pos))
}

// Outcome reports why the game is over, including threefold repetition,
// which Position.Outcome cannot see on its own.
func (g *Game) Outcome() Outcome {
	if g.repetitions[g.hash] >= 3 {
		return ThreefoldRepetition
	}
	return g.pos.Outcome()
}
