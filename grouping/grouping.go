package grouping

import "github.com/smessmer/go/board"

// Grouping assigns every cell of a board to a dense GroupID in
// [0, NumGroups), such that two cells share a GroupID iff they are
// connected by a chain of 4-adjacent cells holding the same value,
// including chains of empty cells, which form their own groups just
// like chains of stones.
type Grouping struct {
	size      board.Size
	ids       [board.MaxCells]GroupID
	numGroups GroupID
}

// Group computes the Grouping of a board's cells using a single
// row-major union-find pass, ported from the original's
// group_stones/algorithm.rs: for each cell in row-major order, compare
// it to its left and top neighbors (if any); if it matches one or both,
// join their group (merging the two groups if it matches both and they
// differ); otherwise start a new group rooted at the cell itself.
func Group(b *board.Board) Grouping {
	size := b.Size()
	uf := newUnionFind()

	for _, pos := range board.AllPositions(size) {
		current := b.Get(pos)

		leftPos, hasLeft := pos.Left()
		matchesLeft := hasLeft && b.Get(leftPos) == current

		topPos, hasTop := pos.Up()
		matchesTop := hasTop && b.Get(topPos) == current

		var groupRoot int
		switch {
		case !matchesLeft && !matchesTop:
			groupRoot = pos.Index()
		case matchesLeft && !matchesTop:
			groupRoot = uf.find(leftPos.Index())
		case !matchesLeft && matchesTop:
			groupRoot = uf.find(topPos.Index())
		default:
			leftRoot := uf.find(leftPos.Index())
			topRoot := uf.find(topPos.Index())
			if leftRoot == topRoot {
				groupRoot = leftRoot
			} else {
				groupRoot = uf.merge(leftRoot, topRoot)
			}
		}
		uf.addToGroup(pos.Index(), groupRoot)
	}

	ids, numGroups := uf.finalize(size)
	return Grouping{size: size, ids: ids, numGroups: numGroups}
}

// Size returns the board size this Grouping was computed for.
func (g Grouping) Size() board.Size {
	return g.size
}

// At returns the group id of the cell at pos.
func (g Grouping) At(pos board.Pos) GroupID {
	return g.ids[pos.Index()]
}

// NumGroups returns the number of distinct groups, i.e. one past the
// largest GroupID that At can return.
func (g Grouping) NumGroups() GroupID {
	return g.numGroups
}
