package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/smessmer/go/board"
)

func newTestDriver(size board.Size) *driver {
	return newDriver(size, log.New(io.Discard, "", 0))
}

func runCommands(t *testing.T, d *driver, commands string) string {
	t.Helper()
	var out bytes.Buffer
	if err := run(d, strings.NewReader(commands), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestPlayAndShowBoard(t *testing.T) {
	d := newTestDriver(board.Size9)
	out := runCommands(t, d, "play black E5\nshowboard\nquit\n")
	if !strings.Contains(out, "= ") {
		t.Fatalf("expected a success response, got %q", out)
	}
	if d.game.CurrentPlayer() != board.White {
		t.Errorf("current player = %v, want White", d.game.CurrentPlayer())
	}
}

func TestPlayRejectsWrongColor(t *testing.T) {
	d := newTestDriver(board.Size9)
	out := runCommands(t, d, "play white E5\nquit\n")
	if !strings.Contains(out, "? ") {
		t.Fatalf("expected an error response for playing out of turn, got %q", out)
	}
}

func TestPlayRejectsOccupiedCell(t *testing.T) {
	d := newTestDriver(board.Size9)
	out := runCommands(t, d, "play black E5\nplay white E5\nquit\n")
	lines := strings.Split(strings.TrimSpace(out), "\n\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "? ") {
		t.Fatalf("expected the second play to fail, got %q", out)
	}
}

func TestPassIsAccepted(t *testing.T) {
	d := newTestDriver(board.Size9)
	runCommands(t, d, "play black pass\nquit\n")
	if d.game.CurrentPlayer() != board.White {
		t.Errorf("current player = %v, want White after a pass", d.game.CurrentPlayer())
	}
}

func TestUnknownCommand(t *testing.T) {
	d := newTestDriver(board.Size9)
	out := runCommands(t, d, "frobnicate\nquit\n")
	if !strings.Contains(out, "? unknown command") {
		t.Fatalf("expected an unknown-command error, got %q", out)
	}
}

func TestBoardSizeAndClearBoard(t *testing.T) {
	d := newTestDriver(board.Size9)
	runCommands(t, d, "boardsize 13\nplay black D4\nclear_board\nquit\n")
	if d.size != board.Size13 {
		t.Fatalf("size = %v, want 13", d.size)
	}
	for _, pos := range d.game.Board().Positions() {
		if d.game.Board().IsOccupied(pos) {
			t.Fatalf("clear_board should leave the board empty")
		}
	}
}
