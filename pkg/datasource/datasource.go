// Package datasource mediates between the ordered list of timezone entries
// and a virtualized, variable-height list view. It answers row count,
// content, height and actions, and routes hover and deletion events.
//
// A DataSource is not safe for concurrent use; every method is expected to
// run on the host's UI event loop.
package datasource

import (
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/clocker/pkg/timezone"
)

// DataSource owns the presentation state for the panel list.
type DataSource struct {
	entries    []*timezone.Entry
	timeOffset int
	hoveredRow int

	formatter Formatter
	prefs     Preferences
	view      View
	window    Owner
	panel     PanelResolver
	queue     Queue
	icons     Icons
	logger    *log.Logger
}

// Option customises a DataSource.
type Option func(*DataSource)

// WithFormatter sets the service producing time and sun strings.
func WithFormatter(f Formatter) Option {
	return func(d *DataSource) { d.formatter = f }
}

// WithPreferences sets the preference source.
func WithPreferences(p Preferences) Option {
	return func(d *DataSource) { d.prefs = p }
}

// WithView attaches the list widget.
func WithView(v View) Option {
	return func(d *DataSource) { d.view = v }
}

// WithOwners sets the foreground window owner and the panel resolver.
func WithOwners(window Owner, panel PanelResolver) Option {
	return func(d *DataSource) {
		d.window = window
		d.panel = panel
	}
}

// WithQueue sets the task queue used for deferred deletions.
func WithQueue(q Queue) Option {
	return func(d *DataSource) {
		if q != nil {
			d.queue = q
		}
	}
}

// WithIcons overrides the default icon set.
func WithIcons(i Icons) Option {
	return func(d *DataSource) { d.icons = i }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(d *DataSource) {
		if l != nil {
			d.logger = l
		}
	}
}

// New builds a DataSource from a snapshot of items.
func New(items []*timezone.Entry, opts ...Option) *DataSource {
	d := &DataSource{
		entries:    cloneSlice(items),
		hoveredRow: NoRow,
		queue:      &FIFOQueue{},
		icons:      DefaultIcons,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetView attaches the list widget after construction; hosts that build
// their widget around the DataSource need this.
func (d *DataSource) SetView(v View) {
	d.view = v
}

// SetSliderValue replaces the simulated time offset. Callers re-render.
func (d *DataSource) SetSliderValue(v int) {
	d.timeOffset = v
}

// SliderValue returns the current time offset in minutes.
func (d *DataSource) SliderValue() int {
	return d.timeOffset
}

// SetItems replaces the entry list with a new snapshot.
func (d *DataSource) SetItems(items []*timezone.Entry) {
	d.entries = cloneSlice(items)
}

// Items returns a copy of the ordered entry list.
func (d *DataSource) Items() []*timezone.Entry {
	return cloneSlice(d.entries)
}

// Queue returns the queue deferred deletions are posted to.
func (d *DataSource) Queue() Queue {
	return d.queue
}

// RowCount returns the number of rows, reserving one for the "add" row
// when there are no entries.
func (d *DataSource) RowCount() int {
	if len(d.entries) == 0 {
		return 1
	}
	return len(d.entries)
}

// RowContent builds the descriptor for row. The row must be < RowCount().
func (d *DataSource) RowContent(row int) Row {
	if len(d.entries) == 0 {
		return Row{Kind: RowEmpty, Index: row}
	}

	e := d.entries[row]
	f := d.format(e)
	label := e.Label()

	icon := d.icons.Sunset
	if f.IsSunrise {
		icon = d.icons.Sunrise
	}

	showSunrise := d.prefs != nil && d.prefs.ShowSunrise() && f.SunriseSetTime != ""
	showIcon := showSunrise
	// Bare zones have no place to compute the sun for.
	if e.SelectionType == timezone.SelectionTimezone && e.Latitude == nil && e.Longitude == nil {
		showIcon = false
	}

	return Row{
		Kind:                RowTimezone,
		Index:               row,
		Time:                f.Time,
		RelativeDate:        f.RelativeDate,
		SunriseSetTime:      f.SunriseSetTime,
		SunIcon:             icon,
		ShowSunrise:         showSunrise,
		ShowSunIcon:         showIcon,
		Label:               label,
		Note:                e.NoteText(),
		NoteTooltip:         e.NoteText(),
		ShowCurrentLocation: e.IsSystemTimezone,
		AccessibilityID:     label,
		AccessibilityLabel:  label,
	}
}

// RowHeight returns the height for row, or 0 when preferences are not yet
// available and the caller should use its own default.
func (d *DataSource) RowHeight(row int) int {
	if len(d.entries) == 0 {
		return EmptyRowHeight
	}
	if row < 0 || row >= len(d.entries) {
		return 0
	}
	return Height(d.entries[row], d.prefs)
}

func (d *DataSource) format(e *timezone.Entry) Formatted {
	if d.formatter == nil {
		d.logger.Error("format row", "entry", e.ID, "err", ErrNoFormatter)
		return Formatted{}
	}
	return d.formatter.Format(e, d.timeOffset)
}

func cloneSlice(items []*timezone.Entry) []*timezone.Entry {
	out := make([]*timezone.Entry, len(items))
	copy(out, items)
	return out
}
