package datasource

import "tableflip.dev/clocker/pkg/timezone"

const (
	// CompactFontSize is the font size value that selects the short base row.
	CompactFontSize = 4
	// RelativeDateHidden is the relative-date mode that hides the date line.
	RelativeDateHidden = 3

	compactBaseHeight = 60
	defaultBaseHeight = 65

	hiddenDateShrink = 5
	sunriseLine      = 8
	noteLinePadding  = 25
	currentLocation  = 5
)

// Height computes the row height for e. It returns 0 when the font size or
// relative-date preference is unavailable.
//
// Only city entries reserve space for the sunrise line, even when a bare
// timezone entry happens to carry coordinates.
func Height(e *timezone.Entry, p Preferences) int {
	if e == nil || p == nil {
		return 0
	}
	fontSize, ok := p.FontSize()
	if !ok {
		return 0
	}
	relative, ok := p.RelativeDateMode()
	if !ok {
		return 0
	}

	height := defaultBaseHeight
	if fontSize == CompactFontSize {
		height = compactBaseHeight
	}

	if relative == RelativeDateHidden {
		height -= hiddenDateShrink
	}

	if p.ShowSunrise() && e.SelectionType == timezone.SelectionCity {
		height += sunriseLine
	}

	if e.HasNote() {
		height += fontSize + noteLinePadding
	}

	if e.IsSystemTimezone {
		height += currentLocation
	}

	height += fontSize * 2
	if height < 0 {
		return 0
	}
	return height
}
