package datasource

import (
	"testing"

	"tableflip.dev/clocker/pkg/timezone"
)

type fakeView struct {
	materialized []int
	opacity      map[int]float64
	removed      []int
	anims        []Animation
}

func newFakeView(rows ...int) *fakeView {
	return &fakeView{materialized: rows, opacity: map[int]float64{}}
}

func (v *fakeView) RemoveRow(row int, anim Animation) {
	v.removed = append(v.removed, row)
	v.anims = append(v.anims, anim)
}

func (v *fakeView) MaterializedRows() []int { return v.materialized }

func (v *fakeView) SetHighlightOpacity(row int, opacity float64) {
	v.opacity[row] = opacity
}

func TestHoverNoneDimsAllRows(t *testing.T) {
	view := newFakeView(0, 1, 2)
	ds := New([]*timezone.Entry{zoneEntry("a"), zoneEntry("b"), zoneEntry("c")}, WithView(view))
	ds.Hover(1)
	ds.Hover(NoRow)
	for _, r := range view.materialized {
		if view.opacity[r] != DimmedOpacity {
			t.Fatalf("row %d opacity = %v, want %v", r, view.opacity[r], DimmedOpacity)
		}
	}
	if ds.HoveredRow() != NoRow {
		t.Fatalf("expected no hovered row, got %d", ds.HoveredRow())
	}
}

func TestHoverHighlightsOnlyHoveredRow(t *testing.T) {
	view := newFakeView(3, 4, 5, 6)
	items := make([]*timezone.Entry, 8)
	for i := range items {
		items[i] = zoneEntry(string(rune('a' + i)))
	}
	ds := New(items, WithView(view))

	ds.Hover(5)
	for _, r := range view.materialized {
		want := DimmedOpacity
		if r == 5 {
			want = FullOpacity
		}
		if view.opacity[r] != want {
			t.Fatalf("row %d opacity = %v, want %v", r, view.opacity[r], want)
		}
	}
	if _, touched := view.opacity[0]; touched {
		t.Fatalf("non-materialized row was touched")
	}
}

func TestHoverRecomputesRecycledRows(t *testing.T) {
	view := newFakeView(0, 1)
	ds := New([]*timezone.Entry{zoneEntry("a"), zoneEntry("b"), zoneEntry("c")}, WithView(view))
	ds.Hover(0)

	// The view scrolled and recycled widgets; stale opacity must not survive.
	view.materialized = []int{1, 2}
	view.opacity[2] = FullOpacity
	ds.Hover(1)
	if view.opacity[1] != FullOpacity || view.opacity[2] != DimmedOpacity {
		t.Fatalf("unexpected opacities after recycle: %v", view.opacity)
	}
}

func TestHoveredRowUnchangedByDelete(t *testing.T) {
	h := newHarness(zoneEntry("a"), zoneEntry("b"))
	h.ds.Hover(1)
	h.ds.RequestDelete(1)
	if got := h.ds.HoveredRow(); got != 1 {
		t.Fatalf("hovered row = %d, want the stale index 1", got)
	}
}
