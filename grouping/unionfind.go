package grouping

import "github.com/smessmer/go/board"

// unionFind assigns each of a board's cells to a group, represented by
// the index of its root cell. Indices are plain int (not board.Pos)
// since the algorithm only ever needs the dense row-major index.
//
// Invariant A (ported from the original's union_find.rs): for every
// index i, parent[i] <= i. Every node's parent is either further up
// the board, or further left in the same row, or itself. This is what
// lets finalize assign dense consecutive group ids in a single
// row-major sweep: a cell's root is always discovered before the cell
// itself, because the root's index is never larger.
//
// union-by-rank/size is deliberately not used: it would pick roots by
// tree height rather than index and break invariant A.
type unionFind struct {
	parent [board.MaxCells]int
}

func newUnionFind() *unionFind {
	return &unionFind{}
}

// addToGroup assigns cell to the group rooted at root. root must
// already be a root (find(root) == root) and root <= cell, or
// invariant A is violated.
func (u *unionFind) addToGroup(cell, root int) {
	if root > cell {
		panic("grouping: invariant A violated: group root index exceeds member index")
	}
	u.parent[cell] = root
}

// find returns the root of cell's group, compressing the path from
// cell to the root by path splitting as it goes.
func (u *unionFind) find(cell int) int {
	parent := u.parent[cell]
	grandparent := u.parent[parent]
	for parent != cell {
		// cell is not the root yet: point it at its grandparent
		// (invariant A holds by transitivity of <=) and advance.
		u.parent[cell] = grandparent
		cell = parent
		parent = grandparent
		grandparent = u.parent[parent]
	}
	return cell
}

// merge merges the two groups rooted at lhsRoot and rhsRoot, returning
// the root of the merged group. The smaller index always wins, since
// union-by-rank/size would violate invariant A.
func (u *unionFind) merge(lhsRoot, rhsRoot int) int {
	if lhsRoot <= rhsRoot {
		u.parent[rhsRoot] = lhsRoot
		return lhsRoot
	}
	u.parent[lhsRoot] = rhsRoot
	return rhsRoot
}

// finalize assigns a dense GroupID in [0, numGroups) to every cell,
// such that two cells get the same id iff they are in the same group.
// Ids are assigned in row-major first-occurrence-of-root order, so the
// first group found is 0, the second is 1, and so on.
func (u *unionFind) finalize(size board.Size) (ids [board.MaxCells]GroupID, numGroups GroupID) {
	cells := size.Cells()
	var next GroupID
	for i := 0; i < cells; i++ {
		root := u.find(i)
		if root == i {
			ids[i] = next
			next++
		} else {
			ids[i] = ids[root]
		}
	}
	return ids, next
}
