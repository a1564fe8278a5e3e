package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/smessmer/go/board"
	"github.com/smessmer/go/game"
)

// driver holds the one game this process drives, plus the ambient
// logger. It is not safe for concurrent use: a single Game is owned by
// one caller, and this process only ever has one caller, whatever is
// on the other end of stdin.
type driver struct {
	game *game.Game
	size board.Size
	log  *log.Logger
}

func newDriver(size board.Size, logger *log.Logger) *driver {
	g := game.New(size)
	return &driver{game: &g, size: size, log: logger}
}

// handler implements one command. It returns the success payload, or
// a non-nil error to report back to the caller.
type handler func(d *driver, args []string) (string, error)

// handlers is intentionally a small, fixed command set: this is not a
// general GTP engine, just enough surface to drive the rule engine
// from a terminal or a test harness. Every AI-facing GTP command
// (genmove, time settings, and the rest) is out of scope: there is no
// move evaluator here.
var handlers = map[string]handler{
	"boardsize":   handleBoardSize,
	"clear_board": handleClearBoard,
	"play":        handlePlay,
	"showboard":   handleShowBoard,
	"quit":        handleQuit,
}

func handleBoardSize(d *driver, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("boardsize: expected exactly one argument")
	}
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
		return "", fmt.Errorf("boardsize: invalid size %q", args[0])
	}
	size := board.Size(n)
	if !size.Valid() {
		return "", fmt.Errorf("boardsize: unsupported size %d", n)
	}
	d.size = size
	g := game.New(size)
	d.game = &g
	return "", nil
}

func handleClearBoard(d *driver, args []string) (string, error) {
	g := game.New(d.size)
	d.game = &g
	return "", nil
}

func handlePlay(d *driver, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("play: expected a color and a vertex")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	if color != d.game.CurrentPlayer() {
		return "", fmt.Errorf("play: expected %v to move", d.game.CurrentPlayer())
	}
	pos, isPass, err := parseVertex(d.size, args[1])
	if err != nil {
		return "", err
	}
	if isPass {
		d.game.Pass()
		return "", nil
	}
	if err := d.game.PlaceStone(pos); err != nil {
		return "", err
	}
	return "", nil
}

func handleShowBoard(d *driver, args []string) (string, error) {
	return "\n" + d.game.Board().Text(), nil
}

func handleQuit(d *driver, args []string) (string, error) {
	return "", nil
}

func parseColor(input string) (board.Player, error) {
	switch strings.ToLower(input) {
	case "b", "black":
		return board.Black, nil
	case "w", "white":
		return board.White, nil
	default:
		return board.Black, fmt.Errorf("unknown color %q", input)
	}
}

// run reads one command per line from in and writes a GTP-flavored
// response ("= result" or "? error", each followed by a blank line)
// to out, until the "quit" command or end of input.
func run(d *driver, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		h, ok := handlers[cmd]
		if !ok {
			fmt.Fprintf(out, "? unknown command: %s\n\n", cmd)
			d.log.Printf("unknown command: %s", cmd)
			continue
		}

		result, err := h(d, args)
		if err != nil {
			fmt.Fprintf(out, "? %v\n\n", err)
			d.log.Printf("%s: %v", cmd, err)
			continue
		}
		fmt.Fprintf(out, "= %s\n\n", result)

		if cmd == "quit" {
			return scanner.Err()
		}
	}
	return scanner.Err()
}
