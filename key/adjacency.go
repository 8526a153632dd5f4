package key

// SiblingLocation describes where, relative to a node at some level of the
// hierarchy, a sibling was found during traversal.
type SiblingLocation int

const (
	// NotFound means no sibling exists at this level in either direction.
	NotFound SiblingLocation = iota
	// Above means a sibling was found earlier in traversal order.
	Above
	// Below means a sibling was found later in traversal order.
	Below
	// AboveAndBelow means siblings were found on both sides.
	AboveAndBelow
)

// mergeAbove folds an Above finding into cur, matching the original's
// SiblingLocation::merge(Above).
func mergeAbove(cur SiblingLocation) SiblingLocation {
	switch cur {
	case NotFound:
		return Above
	case Below:
		return AboveAndBelow
	default:
		return cur
	}
}

// mergeBelow folds a Below finding into cur, matching the original's
// SiblingLocation::merge(Below).
func mergeBelow(cur SiblingLocation) SiblingLocation {
	switch cur {
	case NotFound:
		return Below
	case Above:
		return AboveAndBelow
	default:
		return cur
	}
}

// Adjacency holds, for each of the four possible levels, whether a sibling
// was found above, below, both, or neither. Index 0 corresponds to level 1.
type Adjacency [MaxDepth]SiblingLocation

// At returns the SiblingLocation for the given 1-based level, or NotFound if
// level is out of range.
func (a Adjacency) At(level int) SiblingLocation {
	if level < 1 || level > MaxDepth {
		return NotFound
	}
	return a[level-1]
}

// Sortable is the minimal shape of a snapshot entry Adjacency needs: a Key
// to compare by. tree.Entry satisfies this.
type Sortable interface {
	SortKey() Key
}

// search scans candidates for the nearest one, in iteration order, still
// inside key's subtree at level-1 (i.e. sharing every slot up to that
// level), and returns the position of the first one at the depth that
// counts as adjacent at level. At the node's own level, a candidate one
// level shallower (its would-be parent, printed immediately above or below
// it when it has no true sibling) counts as adjacent too. Candidates must
// already be ordered by proximity to the node (nearest first).
func search(candidates []Key, key Key, keyLevel, level int) (int, bool) {
	prefixLevel := level - 1
	for offset, other := range candidates {
		if !key.SharesParentWith(other, prefixLevel) {
			break
		}
		if level == keyLevel {
			if other.Depth() == keyLevel || other.Depth()+1 == keyLevel {
				return offset, true
			}
		} else if other.Depth() == level {
			return offset, true
		}
	}
	return 0, false
}

func saturatingSub(a, b int) int {
	if b > a {
		return 0
	}
	return a - b
}

func reversed(keys []Key) []Key {
	out := make([]Key, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}

// ComputeAdjacency computes the adjacency map for sorted[index]: for each
// level 1..depth of the entry's own key, whether a node belonging to the
// same subtree is found immediately above and/or below it in traversal
// order. Ported from the original's Key::adjacency (see DESIGN.md): level 1
// always counts as having a sibling above (the root, or any other node on
// level one, stands above every deeper node); every level strictly between
// 1 and the node's own depth collapses a one-sided finding down to
// NotFound, since a lone ancestor marker without a matching one on the
// other side isn't a real tree-connector junction. sorted must be sorted
// ascending by Key (see Key.Less).
func ComputeAdjacency[T Sortable](sorted []T, index int) Adjacency {
	var adj Adjacency
	if index < 0 || index >= len(sorted) {
		return adj
	}

	keys := make([]Key, len(sorted))
	for i, s := range sorted {
		keys[i] = s.SortKey()
	}
	k := keys[index]
	keyLevel := k.Depth()
	if keyLevel == 0 {
		return adj
	}

	aboveCursor := index
	for level := keyLevel; level >= 1; level-- {
		if level == 1 {
			adj[0] = mergeAbove(adj[0])
			continue
		}
		if offset, ok := search(reversed(keys[:aboveCursor]), k, keyLevel, level); ok {
			aboveCursor = saturatingSub(index, offset)
			adj[level-1] = mergeAbove(adj[level-1])
		}
	}

	belowCursor := index
	for level := keyLevel; level >= 1; level-- {
		if offset, ok := search(keys[belowCursor+1:], k, keyLevel, level); ok {
			belowCursor = index + offset
			adj[level-1] = mergeBelow(adj[level-1])
		}
	}

	for level := 1; level < keyLevel; level++ {
		if adj[level-1] != AboveAndBelow {
			adj[level-1] = NotFound
		}
	}
	return adj
}
