package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smessmer/go/board"
)

// Parse reads a single linear SGF game record and returns its outcome
// and move sequence. Only 19x19 games are accepted; a missing "SZ"
// property is treated as 19x19, per the SGF default.
func Parse(sgfText string) (*Game, error) {
	start := strings.Index(sgfText, "(;")
	if start == -1 {
		return nil, fmt.Errorf("sgf: missing game tree")
	}
	rootStart := start + 2
	rootEnd := nodeEnd(sgfText, rootStart)
	rootProps := extractProps(sgfText[rootStart:rootEnd])

	if size, ok := rootProps["SZ"]; ok && size != "19" {
		return nil, fmt.Errorf("sgf: expected a 19x19 board, got SZ[%s]", size)
	}

	outcome := Outcome{Kind: OutcomeUnknown}
	if re, ok := rootProps["RE"]; ok {
		parsed, err := parseOutcome(re)
		if err != nil {
			return nil, err
		}
		outcome = parsed
	}

	moves, err := parseMoves(sgfText, rootEnd)
	if err != nil {
		return nil, err
	}

	return &Game{Outcome: outcome, Moves: moves}, nil
}

// nodeEnd returns the index of the ';', '(' or ')' that ends the node
// starting at i, skipping over bracketed property values so that one
// of those characters inside a value (e.g. a comment) isn't mistaken
// for the end.
func nodeEnd(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ';', ')', '(':
			return i
		case '[':
			i = skipBracket(s, i)
			continue
		}
		i++
	}
	return len(s)
}

// skipBracket returns the index just past the closing ']' of the
// bracketed value starting at s[i] == '['.
func skipBracket(s string, i int) int {
	i++ // skip '['
	for i < len(s) && s[i] != ']' {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		i++
	}
	if i < len(s) {
		i++ // skip ']'
	}
	return i
}

// extractProps parses KEY[value] (possibly KEY[value1][value2]...)
// pairs out of one node's property text. Where a key repeats, the
// last value wins: this package only ever reads single-valued
// properties (SZ, RE, B, W).
func extractProps(node string) map[string]string {
	props := make(map[string]string)
	i := 0
	for i < len(node) {
		for i < len(node) && isSpace(node[i]) {
			i++
		}
		if i >= len(node) {
			break
		}
		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		for i < len(node) && node[i] == '[' {
			valStart := i + 1
			i = skipBracket(node, i)
			valEnd := i
			if valEnd > 0 && node[valEnd-1] == ']' {
				valEnd--
			}
			props[key] = node[valStart:valEnd]
		}
	}
	return props
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}

// parseMoves walks the linear chain of nodes following the root,
// alternating Black/White and rejecting anything that isn't a single
// B or W move property per node, including branches (a second '('
// before the closing ')' of the game tree), which this package does
// not support.
func parseMoves(s string, i int) ([]Move, error) {
	var moves []Move
	toMove := board.Black

	for i < len(s) && s[i] != ')' {
		if s[i] == '(' {
			return nil, fmt.Errorf("sgf: branching game trees are not supported")
		}
		if s[i] != ';' {
			return nil, fmt.Errorf("sgf: expected ';' to start a node at byte %d", i)
		}
		nodeStart := i + 1
		end := nodeEnd(s, nodeStart)
		props := extractProps(s[nodeStart:end])

		value, player, err := moveProperty(props)
		if err != nil {
			return nil, err
		}
		if player != toMove {
			return nil, fmt.Errorf("sgf: expected %v to move", toMove)
		}

		move, err := parsePoint(value)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
		toMove = toMove.Other()
		i = end
	}
	return moves, nil
}

func moveProperty(props map[string]string) (value string, player board.Player, err error) {
	b, hasB := props["B"]
	w, hasW := props["W"]
	switch {
	case hasB && hasW:
		return "", board.Black, fmt.Errorf("sgf: node has both a B and a W property")
	case hasB:
		return b, board.Black, nil
	case hasW:
		return w, board.White, nil
	default:
		return "", board.Black, fmt.Errorf("sgf: node has neither a B nor a W property")
	}
}

// parsePoint decodes an SGF point: two letters 'a'-'s' for a 19x19
// board, or the empty string for a pass.
func parsePoint(value string) (Move, error) {
	if value == "" {
		return Move{Pass: true}, nil
	}
	if len(value) != 2 {
		return Move{}, fmt.Errorf("sgf: invalid move coordinate %q", value)
	}
	x := int(value[0] - 'a')
	y := int(value[1] - 'a')
	if x < 0 || x > 18 || y < 0 || y > 18 {
		return Move{}, fmt.Errorf("sgf: move coordinate %q out of range for a 19x19 board", value)
	}
	return Move{X: x, Y: y}, nil
}

func parseOutcome(input string) (Outcome, error) {
	switch {
	case strings.HasPrefix(input, "W+"):
		margin, err := parseMargin(input[len("W+"):])
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeWin, Winner: board.White, Margin: margin}, nil
	case strings.HasPrefix(input, "B+"):
		margin, err := parseMargin(input[len("B+"):])
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: OutcomeWin, Winner: board.Black, Margin: margin}, nil
	case input == "Jigo":
		return Outcome{Kind: OutcomeDraw}, nil
	case input == "Void":
		return Outcome{Kind: OutcomeVoid}, nil
	case input == "Unfinished", input == "":
		return Outcome{Kind: OutcomeUnfinished}, nil
	case input == "Unknown", input == "?":
		return Outcome{Kind: OutcomeUnknown}, nil
	default:
		return Outcome{}, fmt.Errorf("sgf: unknown outcome %q", input)
	}
}

func parseMargin(input string) (Margin, error) {
	switch input {
	case "R", "Resign":
		return Margin{Kind: MarginResign}, nil
	case "T", "Time":
		return Margin{Kind: MarginTime}, nil
	case "F", "Forfeit":
		return Margin{Kind: MarginForfeit}, nil
	}
	points, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return Margin{}, fmt.Errorf("sgf: unknown outcome margin %q", input)
	}
	pointsTimesTwo := points * 2
	if rounded := float64(uint32(pointsTimesTwo)); rounded-pointsTimesTwo > 0.0001 || pointsTimesTwo-rounded > 0.0001 {
		return Margin{}, fmt.Errorf("sgf: invalid points value %q", input)
	}
	return Margin{Kind: MarginPoints, PointsTimesTwo: uint32(pointsTimesTwo)}, nil
}
