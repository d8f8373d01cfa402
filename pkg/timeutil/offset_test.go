package timeutil

import "testing"

func TestParseOffset(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"now":    0,
		"90":     90,
		"-90":    -90,
		"2h":     120,
		"+1h30m": 90,
		"-1h 15": -75,
		"1d":     1440,
		"-24h":   -1440,
	}
	for in, want := range cases {
		got, err := ParseOffset(in)
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOffset(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseOffsetErrors(t *testing.T) {
	for _, in := range []string{"-", "abc", "3w", "25h", "1d1m"} {
		if _, err := ParseOffset(in); err == nil {
			t.Fatalf("ParseOffset(%q) expected error", in)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	cases := map[int]string{0: "now", 45: "+45m", -60: "-1h", 135: "+2h15m"}
	for in, want := range cases {
		if got := FormatOffset(in); got != want {
			t.Fatalf("FormatOffset(%d) = %q, want %q", in, got, want)
		}
	}
}
