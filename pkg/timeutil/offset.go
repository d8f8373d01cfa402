package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxOffset bounds the slider to one day either side of now.
const MaxOffset = 24 * time.Hour

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitMap       = map[string]time.Duration{
		"":        time.Minute,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
	}
)

// ParseOffset parses a signed, human-friendly slider offset such as "90",
// "-2h", "+1h30m" or "1d" into whole minutes. Bare numbers are minutes.
// Empty input and "now" are zero.
func ParseOffset(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" || trimmed == "now" {
		return 0, nil
	}

	sign := time.Duration(1)
	switch trimmed[0] {
	case '-':
		sign = -1
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return 0, fmt.Errorf("invalid offset %q", input)
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += time.Duration(value) * base
		if total > MaxOffset {
			return 0, fmt.Errorf("offset %q exceeds %s", input, FormatOffset(int(MaxOffset/time.Minute)))
		}
		remaining = remaining[len(matches[0]):]
	}

	return int(sign * total / time.Minute), nil
}

// FormatOffset renders minutes as a compact signed offset, "now" for zero.
func FormatOffset(minutes int) string {
	if minutes == 0 {
		return "now"
	}
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%s%dm", sign, m)
	case m == 0:
		return fmt.Sprintf("%s%dh", sign, h)
	default:
		return fmt.Sprintf("%s%dh%02dm", sign, h, m)
	}
}
