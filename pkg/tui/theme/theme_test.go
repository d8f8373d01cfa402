package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestOptionsColorBlends(t *testing.T) {
	th := Default(true)
	full, ok := colorful.MakeColor(th.Row.OptionsColor(1))
	if !ok {
		t.Fatalf("full opacity colour not convertible")
	}
	if full.Hex() != th.Row.Options.Hex() {
		t.Fatalf("full opacity = %s, want %s", full.Hex(), th.Row.Options.Hex())
	}

	half, _ := colorful.MakeColor(th.Row.OptionsColor(0.5))
	if half.Hex() == full.Hex() {
		t.Fatalf("half opacity should differ from full")
	}
	if half.R >= full.R {
		t.Fatalf("dimmed colour should be darker on a dark background: %v vs %v", half, full)
	}

	none, _ := colorful.MakeColor(th.Row.OptionsColor(-1))
	if none.Hex() != "#000000" {
		t.Fatalf("zero opacity should equal background, got %s", none.Hex())
	}
}
