package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smessmer/go/board"
)

// vertexLetters gives the column letters used in coordinate notation,
// skipping 'I' to avoid confusion with '1': standard Go-board
// notation, also used by GTP.
const vertexLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// parseVertex parses a GTP-style coordinate such as "D4" (column D,
// row 4, both 1-indexed, row counted from the bottom) or "pass".
// Coordinates are converted to the board package's 0-indexed,
// top-down Pos space.
func parseVertex(size board.Size, input string) (pos board.Pos, isPass bool, err error) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "PASS" {
		return board.Pos{}, true, nil
	}
	if len(input) < 2 {
		return board.Pos{}, false, fmt.Errorf("invalid vertex %q", input)
	}
	col := strings.IndexByte(vertexLetters, input[0])
	if col < 0 {
		return board.Pos{}, false, fmt.Errorf("invalid column in vertex %q", input)
	}
	row, err := strconv.Atoi(input[1:])
	if err != nil {
		return board.Pos{}, false, fmt.Errorf("invalid row in vertex %q", input)
	}
	x := col
	y := int(size) - row
	if x < 0 || x >= int(size) || y < 0 || y >= int(size) {
		return board.Pos{}, false, fmt.Errorf("vertex %q is off the %v board", input, size)
	}
	return board.NewPos(size, x, y), false, nil
}
