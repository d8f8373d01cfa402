// Package theme centralizes Lip Gloss styles for the panel UI.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used by the panel.
type Theme struct {
	// Dark reports whether the styles target a dark terminal background.
	Dark   bool
	Row    RowTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// RowTheme styles a single timezone row.
type RowTheme struct {
	Label    lipgloss.Style
	Time     lipgloss.Style
	Relative lipgloss.Style
	Sun      lipgloss.Style
	Note     lipgloss.Style
	Home     lipgloss.Style
	Empty    lipgloss.Style

	// Options is the colour of the row's extra-options glyph at full
	// opacity; Background is what it fades into.
	Options    colorful.Color
	Background colorful.Color
}

// FooterTheme styles the bottom status and help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Slider lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Button lipgloss.Style
}

// Default returns the built-in theme. dark selects the background the
// highlight opacity blends against.
func Default(dark bool) Theme {
	bg := colorful.Color{R: 1, G: 1, B: 1}
	if dark {
		bg = colorful.Color{R: 0, G: 0, B: 0}
	}
	options, _ := colorful.Hex("#ff87d7")

	return Theme{
		Dark: dark,
		Row: RowTheme{
			Label:      lipgloss.NewStyle().Bold(true),
			Time:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Relative:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Sun:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Note:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Home:       lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
			Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Options:    options,
			Background: bg,
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Slider: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Button: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
	}
}

// OptionsColor fades the options glyph colour toward the background by
// opacity, clamped to [0, 1].
func (r RowTheme) OptionsColor(opacity float64) color.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return r.Background.BlendRgb(r.Options, opacity).Clamped()
}
