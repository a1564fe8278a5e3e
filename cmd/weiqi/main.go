// Command weiqi is a minimal line-oriented driver for the rule engine:
// it reads a small GTP-flavored command set from stdin and writes
// responses to stdout, optionally replaying a recorded SGF game first.
// It exists to exercise the engine from a terminal or a test harness;
// the TUI and any AI/move evaluator are out of scope.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/smessmer/go/board"
	"github.com/smessmer/go/sgf"
)

func main() {
	size := flag.Int("size", 19, "board size: one of 3, 5, 7, 9, 13, 19")
	sgfPath := flag.String("sgf", "", "replay this SGF file before reading commands")
	flag.Parse()

	logger := log.New(os.Stderr, "weiqi: ", log.Ltime)

	boardSize := board.Size(*size)
	if !boardSize.Valid() {
		logger.Fatalf("unsupported board size %d", *size)
	}

	d := newDriver(boardSize, logger)

	if *sgfPath != "" {
		data, err := os.ReadFile(*sgfPath)
		if err != nil {
			logger.Fatalf("reading %s: %v", *sgfPath, err)
		}
		parsed, err := sgf.Parse(string(data))
		if err != nil {
			logger.Fatalf("parsing %s: %v", *sgfPath, err)
		}
		replayed, err := sgf.Replay(parsed.Moves)
		if err != nil {
			logger.Fatalf("replaying %s: %v", *sgfPath, err)
		}
		d.game = replayed
		d.size = board.Size19
		fmt.Fprintf(os.Stdout, "replayed %d moves from %s\n", len(parsed.Moves), *sgfPath)
	}

	if err := run(d, os.Stdin, os.Stdout); err != nil {
		logger.Fatalf("%v", err)
	}
}
