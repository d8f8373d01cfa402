// Package preferences reads the panel display settings from viper.
package preferences

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/format"
	"tableflip.dev/clocker/pkg/store"
)

// Preferences adapts a viper instance to the datasource and format
// packages. A key counts as unavailable until it has a value, either from a
// default, the config file, the environment or Set.
type Preferences struct {
	v *viper.Viper
}

var (
	_ datasource.Preferences = (*Preferences)(nil)
	_ format.Settings        = (*Preferences)(nil)
)

// New wraps v. A nil v uses the global viper instance.
func New(v *viper.Viper) *Preferences {
	if v == nil {
		v = viper.GetViper()
	}
	return &Preferences{v: v}
}

func (p *Preferences) intValue(key string) (int, bool) {
	raw := p.v.Get(key)
	if raw == nil {
		return 0, false
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FontSize returns the font size step.
func (p *Preferences) FontSize() (int, bool) {
	return p.intValue(store.KeyFontSize)
}

// RelativeDateMode returns the relative-date display mode.
func (p *Preferences) RelativeDateMode() (int, bool) {
	return p.intValue(store.KeyRelativeDate)
}

// ShowSunrise reports whether the sunrise/sunset line is shown.
func (p *Preferences) ShowSunrise() bool {
	return p.v.GetBool(store.KeyShowSunrise)
}

// ShowInForeground reports whether the app runs as a floating window
// rather than a background panel.
func (p *Preferences) ShowInForeground() bool {
	return p.v.GetBool(store.KeyForeground)
}

// Use24Hour reports whether times use a 24 hour clock.
func (p *Preferences) Use24Hour() bool {
	f := strings.ToLower(strings.TrimSpace(p.v.GetString(store.KeyTimeFormat)))
	return f != "12h" && f != "12"
}

// SetShowSunrise toggles the sunrise line for the running session.
func (p *Preferences) SetShowSunrise(show bool) {
	p.v.Set(store.KeyShowSunrise, show)
}

// SetRelativeDateMode changes the relative-date mode for the running
// session.
func (p *Preferences) SetRelativeDateMode(mode int) {
	p.v.Set(store.KeyRelativeDate, mode)
}
