package help

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func stripANSI(s string) string {
	var b strings.Builder
	seq := false
	for _, r := range s {
		if r == ansi.Marker {
			seq = true
			continue
		}
		if seq {
			if ansi.IsTerminator(r) {
				seq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestHelpRendersKeys(t *testing.T) {
	m := New(80, 120, true)
	if err := m.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}
	view := stripANSI(m.View())
	for _, want := range []string{"Rows", "slider", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help missing %q:\n%s", want, view)
		}
	}
}

func TestHelpMinimumSize(t *testing.T) {
	m := New(5, 2, false)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("size = %dx%d, want 32x8", m.width, m.height)
	}
}
