package tui

import (
	"strings"
	"testing"

	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// TestConnectorReflectsTreeShape mirrors scenario S2: Root->A, A->B, A->C,
// Root->D. A/B, being the first child with a sibling below at level 2,
// should render a continuing branch; A/C, the last child of A, should
// render a terminating branch; D, a top-level child with nothing below it,
// should also terminate.
func TestConnectorReflectsTreeShape(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	a := root.AddChild("A")
	a.AddChild("B")
	a.AddChild("C")
	root.AddChild("D")

	entries := root.SortedSnapshot(nil)
	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}

	connB := connector(entries, 1) // A/B
	connC := connector(entries, 2) // A/C
	connD := connector(entries, 3) // D

	if !strings.Contains(connB, "├─") {
		t.Fatalf("A/B connector = %q, want a continuing branch glyph", connB)
	}
	if !strings.Contains(connC, "└─") {
		t.Fatalf("A/C connector = %q, want a terminating branch glyph", connC)
	}
	if !strings.Contains(connD, "└─") {
		t.Fatalf("D connector = %q, want a terminating branch glyph", connD)
	}
}

// TestTaskRowFormatsBasicCounting mirrors scenario S1.
func TestTaskRowFormatsBasicCounting(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	item := root.AddChild("copy")
	max := uint64(100)
	item.Init(&max, unit.NewBytes())
	for i := 0; i < 4; i++ {
		item.IncBy(25)
	}

	entries := root.SortedSnapshot(nil)
	row := taskRow(entries, 0, 10, 80, false, 0, false)
	if !strings.Contains(row, "100.00%") {
		t.Fatalf("row = %q, want 100.00%%", row)
	}
}

func TestTaskRowTruncatesToColumns(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	root.AddChild(strings.Repeat("x", 50))
	entries := root.SortedSnapshot(nil)

	row := taskRow(entries, 0, 10, 20, false, 0, false)
	if len([]rune(row)) > 20 {
		t.Fatalf("row exceeds column width: %q", row)
	}
}
