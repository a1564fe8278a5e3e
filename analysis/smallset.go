package analysis

import "github.com/smessmer/go/grouping"

// smallSet is a fixed-capacity, insertion-ordered set of GroupIDs, with
// no heap allocation behind it. It is sized for "one cell plus its up
// to four orthogonal neighbors" (5 elements), the only shape this
// package ever needs. Ported from the original's SmallSet<[u8; 5]>
// (utils/small_set.rs); Go has no const generics, so the capacity is
// hard-coded here instead of left as a type parameter.
type smallSet struct {
	items [5]grouping.GroupID
	len   int
}

// insert adds id if not already present, reporting whether it was
// newly added.
func (s *smallSet) insert(id grouping.GroupID) bool {
	if s.contains(id) {
		return false
	}
	s.items[s.len] = id
	s.len++
	return true
}

func (s *smallSet) contains(id grouping.GroupID) bool {
	for i := 0; i < s.len; i++ {
		if s.items[i] == id {
			return true
		}
	}
	return false
}

func (s *smallSet) reset() {
	s.len = 0
}

// values returns the distinct ids inserted so far, in insertion order.
func (s *smallSet) values() []grouping.GroupID {
	return s.items[:s.len]
}
