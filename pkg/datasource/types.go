package datasource

import (
	"errors"

	"tableflip.dev/clocker/pkg/timezone"
)

// ErrNoFormatter is logged when a row is rendered without a Formatter.
var ErrNoFormatter = errors.New("datasource: no formatter configured")

// NoRow is the hover sentinel for "pointer is not over any row".
const NoRow = -1

const (
	// EmptyRowHeight is the height of the synthetic "add timezone" row.
	EmptyRowHeight = 100

	// FullOpacity is applied to the hovered row's extra options.
	FullOpacity = 1.0
	// DimmedOpacity is applied to every other materialized row.
	DimmedOpacity = 0.5
)

// Formatted holds the display strings the Formatter derives for one entry.
type Formatted struct {
	Time           string
	RelativeDate   string
	SunriseSetTime string
	IsSunrise      bool
}

// Formatter turns an entry plus the slider offset (minutes) into strings.
type Formatter interface {
	Format(e *timezone.Entry, offset int) Formatted
}

// Preferences exposes the user settings the panel depends on. The bool
// results of FontSize and RelativeDateMode report whether the value has
// been initialized.
type Preferences interface {
	FontSize() (int, bool)
	RelativeDateMode() (int, bool)
	ShowSunrise() bool
	ShowInForeground() bool
}

// Animation selects how the view removes a row.
type Animation int

const (
	AnimationNone Animation = iota
	AnimationSlideUp
)

// View is the virtualized list widget hosting the rows.
type View interface {
	// RemoveRow drops a visible row.
	RemoveRow(row int, anim Animation)
	// MaterializedRows lists the rows that currently have a live widget.
	MaterializedRows() []int
	SetHighlightOpacity(row int, opacity float64)
}

// Owner holds the canonical entry list and applies deletions to it.
type Owner interface {
	DeleteTimezone(at int)
}

// PanelResolver looks up the background panel owner. It reports false
// when no panel exists, for example while the panel is being torn down.
type PanelResolver func() (Owner, bool)

// Icons names the assets used in row descriptors.
type Icons struct {
	Sunrise string
	Sunset  string
	Trash   string
}

// DefaultIcons are plain glyphs suitable for a terminal.
var DefaultIcons = Icons{
	Sunrise: "☀",
	Sunset:  "☾",
	Trash:   "🗑",
}

// RowKind distinguishes the empty-state row from timezone rows.
type RowKind int

const (
	RowTimezone RowKind = iota
	RowEmpty
)

// Accessibility identifiers shared by every timezone row.
const (
	TimeAccessibilityID         = "ActualTime"
	RelativeDateAccessibilityID = "RelativeDate"
)

// Row describes everything a view needs to draw one row.
type Row struct {
	Kind  RowKind
	Index int

	Time           string
	RelativeDate   string
	SunriseSetTime string
	SunIcon        string
	ShowSunrise    bool
	ShowSunIcon    bool

	Label               string
	Note                string
	NoteTooltip         string
	ShowCurrentLocation bool

	AccessibilityID    string
	AccessibilityLabel string
}

// Edge is the side of a row a swipe gesture started from.
type Edge int

const (
	EdgeLeading Edge = iota
	EdgeTrailing
)

// ActionStyle hints how the host should draw a row action.
type ActionStyle int

const (
	ActionRegular ActionStyle = iota
	ActionDestructive
)

// RowAction is a swipe action offered for a row.
type RowAction struct {
	Style   ActionStyle
	Title   string
	Icon    string
	Handler func(row int) *Deletion
}
