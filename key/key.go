// Package key implements the fixed-depth hierarchical identifier used to
// place a task within the progress tree, along with the adjacency queries
// both renderers use to draw tree-connector glyphs.
package key

import "fmt"

// ID identifies a single child slot within a parent. It is widened to 32
// bits relative to the original 16-bit slot (see DESIGN.md for the
// wraparound tradeoff this resolves); the wraparound limitation itself is
// kept, not engineered away.
type ID uint32

// MaxDepth is the maximum amount of path components a Key can represent.
const MaxDepth = 4

// Key is a path-like identifier of a task within the tree: up to four
// ordered slots, one per hierarchy level. The zero Key identifies the root
// and is never assigned to a live Item.
type Key struct {
	slots [MaxDepth]ID
	set   [MaxDepth]bool
}

// New builds a Key from its non-empty slots, in order. It panics if more
// than MaxDepth slots are given, mirroring the original's hard nesting
// limit.
func New(slots ...ID) Key {
	if len(slots) > MaxDepth {
		panic(fmt.Sprintf("key: depth %d exceeds max depth %d", len(slots), MaxDepth))
	}
	var k Key
	for i, s := range slots {
		k.slots[i] = s
		k.set[i] = true
	}
	return k
}

// Depth returns the number of non-empty levels, 0 through MaxDepth.
func (k Key) Depth() int {
	d := 0
	for i := 0; i < MaxDepth; i++ {
		if !k.set[i] {
			break
		}
		d++
	}
	return d
}

// At returns the slot at the given 1-based level and whether it is set.
func (k Key) At(level int) (ID, bool) {
	if level < 1 || level > MaxDepth {
		return 0, false
	}
	return k.slots[level-1], k.set[level-1]
}

// AddChild returns a new Key one level deeper than k, with childID in the
// new slot. If k is already at MaxDepth, the child is placed in the last
// slot instead (matching the original's "maximum nesting level reached,
// adding to current parent" fallback).
func (k Key) AddChild(childID ID) Key {
	depth := k.Depth()
	next := k
	if depth >= MaxDepth {
		next.slots[MaxDepth-1] = childID
		next.set[MaxDepth-1] = true
		return next
	}
	next.slots[depth] = childID
	next.set[depth] = true
	return next
}

// Parent returns the key with its last non-empty slot removed, and false if
// k is already the root.
func (k Key) Parent() (Key, bool) {
	depth := k.Depth()
	if depth == 0 {
		return Key{}, false
	}
	p := k
	p.slots[depth-1] = 0
	p.set[depth-1] = false
	return p, true
}

// Compare returns -1, 0, or 1 comparing k to other by lexicographic order of
// their slots. Unset slots sort before any set value, so a shorter key
// sorts before a longer key that shares its prefix.
func (k Key) Compare(other Key) int {
	for i := 0; i < MaxDepth; i++ {
		switch {
		case !k.set[i] && !other.set[i]:
			continue
		case !k.set[i]:
			return -1
		case !other.set[i]:
			return 1
		case k.slots[i] < other.slots[i]:
			return -1
		case k.slots[i] > other.slots[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether k sorts strictly before other. Traversal order is
// defined to be this lexicographic order.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// Equal reports whether k and other identify the same slot path.
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

// SharesParentWith reports whether k and other agree on every slot up to
// and including parentLevel (1-based). A parentLevel of 0 always returns
// true, matching the original's "no ancestry to check" base case.
func (k Key) SharesParentWith(other Key, parentLevel int) bool {
	if parentLevel < 1 {
		return true
	}
	for level := 1; level <= parentLevel; level++ {
		a, aok := k.At(level)
		b, bok := other.At(level)
		if !aok || !bok || a != b {
			return false
		}
	}
	return true
}

// String renders the key as a dot-separated path of its set slots, e.g.
// "0.2.1", or "" for the root.
func (k Key) String() string {
	s := ""
	for i := 0; i < MaxDepth; i++ {
		if !k.set[i] {
			break
		}
		if s != "" {
			s += "."
		}
		s += fmt.Sprintf("%d", k.slots[i])
	}
	return s
}
