package sgf

import (
	"github.com/smessmer/go/board"
	"github.com/smessmer/go/game"
)

// Replay drives a fresh 19x19 Game through moves in order and returns
// it. It stops and returns the error from the first move that the
// rule engine rejects: the engine is the sole authority on move
// legality, and this package never second-guesses it.
func Replay(moves []Move) (*game.Game, error) {
	g := game.New(board.Size19)
	for _, move := range moves {
		if move.Pass {
			g.Pass()
			continue
		}
		if err := g.PlaceStone(board.NewPos(board.Size19, move.X, move.Y)); err != nil {
			return nil, err
		}
	}
	return &g, nil
}
