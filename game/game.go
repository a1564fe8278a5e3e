// Package game implements the move-application state machine: stone
// placement, the two-phase capture protocol, and prisoner counting.
// It is the only package that mutates a board.Board in response to a
// move.
package game

import (
	"github.com/smessmer/go/analysis"
	"github.com/smessmer/go/board"
)

// ErrCellOccupied is returned by PlaceStone when the target cell is
// already occupied. It is identical to board.ErrCellOccupied,
// re-exported here since callers of this package shouldn't need to
// import board just to compare errors.
var ErrCellOccupied = board.ErrCellOccupied

// Game is the state of one in-progress game on a fixed-size board:
// the board itself, the side to move, each side's prisoner count, and
// a cached Analysis of the current board. A Game is a plain value
// owned by one caller; distinct Games share no state and may be
// driven concurrently with no coordination.
type Game struct {
	board      board.Board
	sideToMove board.Player
	prisoners  [2]board.NumStones
	analysis   analysis.Analysis
}

func prisonersIndex(p board.Player) int {
	if p == board.Black {
		return 0
	}
	return 1
}

// New returns a fresh game on an empty board of the given size, Black
// to move.
func New(size board.Size) Game {
	b := board.New(size)
	return Game{
		board:      b,
		sideToMove: board.Black,
		analysis:   analysis.Analyze(&b),
	}
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() board.Player {
	return g.sideToMove
}

// Board returns the current board state.
func (g *Game) Board() *board.Board {
	return &g.board
}

// NumCapturedBy returns the number of stones player has captured so
// far (i.e. the opponent's stones removed from the board).
func (g *Game) NumCapturedBy(player board.Player) board.NumStones {
	return g.prisoners[prisonersIndex(player)]
}

// Pass flips the side to move without touching the board or the
// cached analysis. Two consecutive passes return the side to move to
// its original value.
func (g *Game) Pass() {
	g.sideToMove = g.sideToMove.Other()
}

// PlaceStone attempts to place a stone of the current side's color at
// pos, runs the capture protocol, and flips the side to move.
//
// If pos is already occupied, ErrCellOccupied is returned and the game
// is left completely unchanged: no board mutation, no analysis
// rebuild, no side flip.
func (g *Game) PlaceStone(pos board.Pos) error {
	if err := g.board.SetIfEmpty(pos, g.sideToMove); err != nil {
		return err
	}
	g.analysis = analysis.Analyze(&g.board)

	mover := g.sideToMove
	opponent := mover.Other()

	// Phase 1: capture the opponent's zero-liberty groups first. This
	// is what legalizes an apparently suicidal placement that actually
	// captures: phase 2 below re-examines the mover's own groups only
	// after these captures have (possibly) restored their liberties.
	g.captureZeroLibertyGroupsOwnedBy(opponent, mover)

	// The simplest correct way to refresh liberties after removing a
	// fully-enclosed group is to recompute the whole analysis; it would
	// also be valid to recompute liberties alone against the same
	// grouping, since removing a fully-enclosed group can't change any
	// other group's connectivity.
	g.analysis = analysis.Analyze(&g.board)

	// Phase 2: now check the mover's own groups.
	g.captureZeroLibertyGroupsOwnedBy(mover, opponent)

	g.sideToMove = mover.Other()
	return nil
}

// captureZeroLibertyGroupsOwnedBy removes every zero-liberty group
// owned by owner, crediting the removed stone count to creditTo's
// prisoner count. The set of groups to capture is decided from a
// single snapshot of the current analysis: captures within one phase
// don't re-examine each other's effects, since two groups of the same
// owner can never be adjacent (they'd already be one group).
func (g *Game) captureZeroLibertyGroupsOwnedBy(owner, creditTo board.Player) {
	for _, info := range g.analysis.Groups() {
		if info.Owner.IsNone() || info.Owner.Player() != owner {
			continue
		}
		if info.Liberties != board.ZeroStones {
			continue
		}
		var captured board.NumStones
		g.analysis.CaptureGroup(info.ID, func(pos board.Pos) {
			g.board.Set(pos, board.Empty)
			captured = captured.Add(1)
		})
		idx := prisonersIndex(creditTo)
		g.prisoners[idx] = g.prisoners[idx].Add(captured)
	}
}
