// Package analysis enriches a grouping.Grouping with per-group owner
// and liberty-count information, and implements group capture.
package analysis

import (
	"github.com/smessmer/go/board"
	"github.com/smessmer/go/grouping"
)

type groupInfo struct {
	owner     board.Owner
	liberties board.NumStones
}

// Analysis pairs a Grouping with per-group {owner, liberties}.
// Liberties on the group(s) formed by empty cells are computed but
// semantically meaningless: nothing reads them.
type Analysis struct {
	size     board.Size
	grouping grouping.Grouping
	info     [board.MaxCells]groupInfo
}

// Analyze computes the Analysis of a board from scratch: groups its
// cells (grouping.Group), then scans every position once to fill in
// owner and liberties.
//
// For an occupied cell, the group's owner is set (or checked for
// consistency: a conflict is a programming error, since all cells of
// one occupied group must share a color). For an empty cell, every
// distinct group touching it (itself plus up to four neighbors) gets
// one liberty credited, using a fixed-capacity smallSet so an empty
// cell with two neighbors in the same group contributes only once.
func Analyze(b *board.Board) Analysis {
	size := b.Size()
	g := grouping.Group(b)

	a := Analysis{size: size, grouping: g}
	var touched smallSet
	for _, pos := range board.AllPositions(size) {
		gid := g.At(pos)
		cell := b.Get(pos)
		if cell.IsEmpty() {
			touched.reset()
			touched.insert(gid)
			for _, n := range pos.Neighbors() {
				touched.insert(g.At(n))
			}
			for _, id := range touched.values() {
				a.info[id.Int()].liberties = a.info[id.Int()].liberties.Add(1)
			}
			continue
		}
		owner := board.OwnerOf(cell.Player())
		if a.info[gid.Int()].owner.IsNone() {
			a.info[gid.Int()].owner = owner
		} else {
			a.info[gid.Int()].owner.AssertConsistentWith(owner)
		}
	}
	return a
}

// GroupAt returns the group id of the cell at pos.
func (a Analysis) GroupAt(pos board.Pos) grouping.GroupID {
	return a.grouping.At(pos)
}

// NumGroups returns the number of distinct groups.
func (a Analysis) NumGroups() grouping.GroupID {
	return a.grouping.NumGroups()
}

// Owner returns the owner of group g: NoOwner if g is an empty group.
func (a Analysis) Owner(g grouping.GroupID) board.Owner {
	return a.info[g.Int()].owner
}

// Liberties returns the number of distinct empty cells 4-adjacent to
// some cell of group g.
func (a Analysis) Liberties(g grouping.GroupID) board.NumStones {
	return a.info[g.Int()].liberties
}

// GroupInfo is one entry of Groups: a group id paired with its owner
// and liberty count.
type GroupInfo struct {
	ID        grouping.GroupID
	Owner     board.Owner
	Liberties board.NumStones
}

// Groups returns every group's info, indexed by GroupID.
func (a Analysis) Groups() []GroupInfo {
	n := a.grouping.NumGroups()
	result := make([]GroupInfo, n)
	for i := grouping.GroupID(0); i < n; i++ {
		result[i] = GroupInfo{ID: i, Owner: a.info[i].owner, Liberties: a.info[i].liberties}
	}
	return result
}

// CaptureGroup removes a fully-enclosed group g from the board: for
// every position belonging to g, it invokes onRemove(pos) (the caller
// is expected to empty the board cell there) and credits one liberty
// to every distinct neighboring group other than g. Afterwards g's
// owner becomes NoOwner, since the region it occupied is now empty.
//
// Precondition: g must not touch any empty group, i.e. g must
// already have zero liberties. This can't arise from the capture
// protocol in package game, which only ever calls CaptureGroup on
// zero-liberty groups; calling it otherwise is a programming error and
// panics.
func (a *Analysis) CaptureGroup(g grouping.GroupID, onRemove func(pos board.Pos)) {
	for _, pos := range board.AllPositions(a.size) {
		if a.grouping.At(pos) != g {
			continue
		}
		onRemove(pos)

		var touched smallSet
		for _, n := range pos.Neighbors() {
			ng := a.grouping.At(n)
			if ng == g || !touched.insert(ng) {
				continue
			}
			if a.info[ng.Int()].owner.IsNone() {
				panic("analysis: capture_group precondition violated: group touches an empty group")
			}
			a.info[ng.Int()].liberties = a.info[ng.Int()].liberties.Add(1)
		}
	}
	a.info[g.Int()].owner = board.NoOwner
}
