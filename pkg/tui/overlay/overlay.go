// Package overlay draws a foreground block centered over a background view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Center composes foreground over background, both measured in terminal
// cells, keeping background content outside the overlay bounds.
func Center(background string, width, height int, foreground string) string {
	bg := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fg {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	fgWidth = min(fgWidth, width)
	fgHeight := min(len(fg), height)

	x := (width - fgWidth) / 2
	y := (height - fgHeight) / 2

	for row := 0; row < fgHeight; row++ {
		base := []rune(stripped(bg[y+row]))
		line := pad(fg[row], fgWidth)
		prefix := string(base[:min(x, len(base))])
		suffix := ""
		if x+fgWidth < len(base) {
			suffix = string(base[x+fgWidth:])
		}
		bg[y+row] = prefix + line + suffix
	}
	return strings.Join(bg, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return truncate.String(s, uint(width))
	}
	return s + strings.Repeat(" ", width-w)
}

// stripped drops styling from background lines that the overlay splits, so
// a cut escape sequence cannot leak colour into the modal.
func stripped(s string) string {
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
