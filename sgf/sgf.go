// Package sgf is a hand-rolled reader for a practical subset of SGF
// (Smart Game Format): a linear sequence of B/W moves on a 19x19
// board, plus the historical outcome (RE property), which is parsed
// but never consulted by the rule engine. There is no verified
// third-party Go SGF library in this module's dependency set, so this
// package scans property text directly, the same way a hand-rolled SGF
// reader in the wider ecosystem does it: find the root node, pull out
// KEY[value] pairs, then walk the chain of child nodes one at a time.
//
// This package does not support game trees with variations (multiple
// branches); it replays one recorded line of play, and real game
// records are overwhelmingly linear.
package sgf

import "github.com/smessmer/go/board"

// Move is one entry of a parsed game's move sequence: either a pass,
// or a placement at (X, Y) in SGF's zero-based coordinate system.
type Move struct {
	Pass bool
	X, Y int
}

// OutcomeKind classifies how a recorded game ended.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
	OutcomeVoid
	OutcomeUnfinished
)

// MarginKind classifies how a win was decided.
type MarginKind int

const (
	MarginNone MarginKind = iota
	MarginResign
	MarginTime
	MarginForfeit
	MarginPoints
)

// Margin describes the margin of a win. PointsTimesTwo is only
// meaningful when Kind is MarginPoints, and is the point margin
// multiplied by two so that half-points (common under area scoring
// with an odd komi) can be represented as an integer.
type Margin struct {
	Kind           MarginKind
	PointsTimesTwo uint32
}

// Outcome is a recorded game's result, parsed from the SGF "RE"
// property. It is metadata only: the rule engine in package game never
// reads it.
type Outcome struct {
	Kind   OutcomeKind
	Winner board.Player // meaningful only when Kind == OutcomeWin
	Margin Margin
}

// Game is a fully parsed SGF record: its outcome and its linear move
// sequence.
type Game struct {
	Outcome Outcome
	Moves   []Move
}
