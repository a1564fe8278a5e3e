package board

import (
	"fmt"
	"strings"
)

// FromText parses a whitespace-tolerant grid of Size rows of Size
// tokens, where "_" is empty, "○" is Black and "●" is White.
// Leading/trailing whitespace is ignored; any extra non-whitespace
// content after the grid, any wrong token count, or any unrecognized
// token is a parse error.
func FromText(size Size, s string) (Board, error) {
	if !size.Valid() {
		return Board{}, fmt.Errorf("board: unsupported board size %d", int(size))
	}
	b := New(size)
	fields := strings.Fields(s)
	want := size.Cells()
	if len(fields) < want {
		return Board{}, fmt.Errorf("board: expected %d tokens, got %d", want, len(fields))
	}
	if len(fields) > want {
		return Board{}, fmt.Errorf("board: unexpected extra content after board: %q", strings.Join(fields[want:], " "))
	}
	for i, tok := range fields {
		var value Stone
		switch tok {
		case "_":
			value = Empty
		case "○":
			value = StoneOf(Black)
		case "●":
			value = StoneOf(White)
		default:
			return Board{}, fmt.Errorf("board: unrecognized token %q at position %d", tok, i)
		}
		b.Set(PosFromIndex(size, i), value)
	}
	return b, nil
}

// Text renders the board in the same format FromText parses, one row
// per line with tokens separated by single spaces. FromText(Text(b))
// reproduces b exactly.
func (b *Board) Text() string {
	var sb strings.Builder
	size := int(b.size)
	for y := 0; y < size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			switch cell := b.Get(NewPos(b.size, x, y)); {
			case cell.IsEmpty():
				sb.WriteString("_")
			case cell.Player() == Black:
				sb.WriteString("○")
			default:
				sb.WriteString("●")
			}
		}
	}
	return sb.String()
}
