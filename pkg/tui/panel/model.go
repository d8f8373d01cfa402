// Package panel hosts the timezone list in a Bubble Tea program. It is the
// terminal counterpart of the menu-bar panel: it lays rows out from their
// computed heights, keeps only the visible rows materialized, and routes
// hover, slider and delete input back into the data source.
package panel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timeutil"
	"tableflip.dev/clocker/pkg/tui/help"
	"tableflip.dev/clocker/pkg/tui/overlay"
	"tableflip.dev/clocker/pkg/tui/theme"
)

const (
	// DefaultRowHeight is used when a row reports no height, which happens
	// when preferences are unavailable.
	DefaultRowHeight = 65

	// SliderStep is how far one key press moves the time slider, in minutes.
	SliderStep = 15
	// SliderLimit bounds the slider to one day either way.
	SliderLimit = int(timeutil.MaxOffset / time.Minute)

	footerLines = 2
	unitHeight  = 20
	optionsMark = "⋯"
	homeMark    = "⌂"
)

// Settings are the preferences the panel can both read and toggle.
type Settings interface {
	datasource.Preferences
	SetShowSunrise(bool)
	SetRelativeDateMode(int)
}

type queue interface {
	Len() int
	Drain() int
}

type drainMsg struct{}

type storeMsg struct{ event store.Event }

type tickMsg time.Time

// Option configures a Model.
type Option func(*Model)

// WithService lets the panel reload entries and edit notes through svc.
func WithService(ctx context.Context, svc *app.Service) Option {
	return func(m *Model) {
		m.ctx = ctx
		m.svc = svc
	}
}

// WithSettings enables the sunrise and relative-date toggles.
func WithSettings(s Settings) Option {
	return func(m *Model) {
		m.settings = s
	}
}

// WithEvents reloads the list whenever the store reports a change.
func WithEvents(ch <-chan store.Event) Option {
	return func(m *Model) {
		m.events = ch
	}
}

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *Model) {
		m.theme = th
	}
}

// WithLogger sets the logger used for reload and edit failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

type span struct {
	row   int
	top   int
	lines int
}

// Model renders a DataSource and implements datasource.View for it.
type Model struct {
	ctx      context.Context
	ds       *datasource.DataSource
	svc      *app.Service
	settings Settings
	events   <-chan store.Event
	theme    theme.Theme
	logger   *log.Logger

	width  int
	height int

	offset int
	cursor int
	spans  []span

	opacity map[int]float64
	pending *datasource.Deletion

	editing bool
	editID  string
	input   textinput.Model

	help *help.Model

	status string
}

// New returns a panel bound to ds. The panel registers itself as the data
// source's view.
func New(ds *datasource.DataSource, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Add a note"
	ti.Prompt = "note: "
	ti.CharLimit = 256

	m := &Model{
		ctx:     context.Background(),
		ds:      ds,
		theme:   theme.Default(true),
		logger:  log.New(io.Discard),
		width:   60,
		height:  24,
		cursor:  datasource.NoRow,
		opacity: map[int]float64{},
		input:   ti,
	}
	for _, opt := range opts {
		opt(m)
	}
	ds.SetView(m)
	if m.svc != nil {
		m.svc.Subscribe(ds.SetItems)
	}
	m.layout()
	return m
}

// Init starts the minute clock and, when configured, the store watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForEvent())
}

// Update handles input and background messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			w, h, _ := m.helpSize()
			m.help.SetSize(w, h)
		}
	case tea.MouseWheelMsg:
		if m.help != nil {
			cmds = append(cmds, m.help.Update(msg))
		}
	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.ds.Hover(m.rowAt(mouse.Y))
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case drainMsg:
		m.drain()
	case storeMsg:
		m.reload(msg.event)
		cmds = append(cmds, m.waitForEvent())
	case tickMsg:
		cmds = append(cmds, tick())
	default:
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.layout()
	if q, ok := m.ds.Queue().(queue); ok && q.Len() > 0 {
		cmds = append(cmds, func() tea.Msg { return drainMsg{} })
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.pending != nil {
		m.answer(msg.String())
		return nil
	}
	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.help != nil {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = nil
			return nil
		case "ctrl+c":
			return tea.Quit
		}
		return m.help.Update(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "left", "h":
		m.slide(-SliderStep)
	case "right", "l":
		m.slide(SliderStep)
	case "0":
		m.ds.SetSliderValue(0)
	case "d", "delete", "backspace":
		m.removeSelected()
	case "n":
		return m.startEdit()
	case "s":
		if m.settings != nil {
			m.settings.SetShowSunrise(!m.settings.ShowSunrise())
		}
	case "r":
		if m.settings != nil {
			mode, _ := m.settings.RelativeDateMode()
			m.settings.SetRelativeDateMode((mode + 1) % 4)
		}
	case "?":
		m.help = help.New(m.helpSize())
	case "esc":
		m.cursor = datasource.NoRow
		m.ds.Hover(datasource.NoRow)
	}
	return nil
}

func (m *Model) helpSize() (int, int, bool) {
	return min(m.width-4, 72), m.height - 2, m.theme.Dark
}

func (m *Model) move(delta int) {
	rows := len(m.ds.Items())
	if rows == 0 {
		return
	}
	next := m.cursor + delta
	if m.cursor == datasource.NoRow {
		next = 0
		if delta < 0 {
			next = rows - 1
		}
	}
	if next < 0 {
		next = 0
	}
	if next >= rows {
		next = rows - 1
	}
	m.cursor = next
	m.scrollTo(next)
	m.ds.Hover(next)
}

func (m *Model) slide(delta int) {
	v := m.ds.SliderValue() + delta
	if v > SliderLimit {
		v = SliderLimit
	}
	if v < -SliderLimit {
		v = -SliderLimit
	}
	m.ds.SetSliderValue(v)
}

func (m *Model) target() int {
	row := m.cursor
	if row == datasource.NoRow {
		row = m.ds.HoveredRow()
	}
	if row < 0 || row >= len(m.ds.Items()) {
		return datasource.NoRow
	}
	return row
}

// forgetStaleHover drops a hover that points past the end of the list.
func (m *Model) forgetStaleHover() {
	if m.ds.HoveredRow() >= len(m.ds.Items()) {
		m.ds.Hover(datasource.NoRow)
	}
}

func (m *Model) removeSelected() {
	row := m.target()
	if row == datasource.NoRow {
		m.status = "Select a timezone first"
		return
	}
	actions := m.ds.RowActions(row, datasource.EdgeTrailing)
	if len(actions) == 0 {
		return
	}
	label := m.ds.RowContent(row).Label
	del := actions[0].Handler(row)
	switch del.State {
	case datasource.StateBlocked:
		m.pending = del
	case datasource.StateApplied:
		m.status = fmt.Sprintf("Removed %s", label)
	default:
		m.status = fmt.Sprintf("Could not remove %s", label)
	}
}

func (m *Model) answer(key string) {
	switch key {
	case "y", "Y", "enter":
		m.pending.Resolve(datasource.ResponseYes)
	case "n", "N", "esc":
		m.pending.Resolve(datasource.ResponseNo)
		m.pending = nil
		m.status = "Kept home timezone"
	}
}

// drain runs deferred deletions. The modal stays up until this point so
// that no frame shows a confirmed but unapplied removal.
func (m *Model) drain() {
	q, ok := m.ds.Queue().(queue)
	if !ok {
		return
	}
	q.Drain()
	if m.pending == nil {
		return
	}
	switch m.pending.State {
	case datasource.StateApplied:
		m.status = "Removed home timezone"
	case datasource.StateNoOp:
		m.status = "Nothing to remove"
	}
	m.pending = nil
}

func (m *Model) startEdit() tea.Cmd {
	row := m.target()
	if row == datasource.NoRow {
		m.status = "Select a timezone first"
		return nil
	}
	if m.svc == nil {
		m.status = "Notes are read-only"
		return nil
	}
	e := m.ds.Items()[row]
	m.editing = true
	m.editID = e.ID
	m.input.SetValue(e.NoteText())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.stopEdit()
		return nil
	case "enter":
		_, err := m.svc.SetNoteByID(m.ctx, m.editID, m.input.Value())
		switch {
		case errors.Is(err, app.ErrUnknownEntry):
			m.status = "Timezone was removed, note discarded"
		case err != nil:
			m.logger.Error("set note", "entry", m.editID, "err", err)
			m.status = "Could not save note"
		default:
			m.status = "Note saved"
		}
		m.stopEdit()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) stopEdit() {
	m.editing = false
	m.editID = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) reload(ev store.Event) {
	if m.svc == nil {
		return
	}
	entries, err := m.svc.Entries(m.ctx)
	if err != nil {
		m.logger.Error("reload entries", "event", ev, "err", err)
		return
	}
	m.ds.SetItems(entries)
	if m.cursor >= len(entries) {
		m.cursor = len(entries) - 1
	}
	m.forgetStaleHover()
}

func (m *Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeMsg{event: ev}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// RemoveRow implements datasource.View.
func (m *Model) RemoveRow(row int, _ datasource.Animation) {
	delete(m.opacity, row)
	if m.cursor >= row && m.cursor > 0 {
		m.cursor--
	}
	if m.cursor >= len(m.ds.Items()) {
		m.cursor = len(m.ds.Items()) - 1
	}
	m.forgetStaleHover()
	m.layout()
}

// MaterializedRows implements datasource.View.
func (m *Model) MaterializedRows() []int {
	rows := make([]int, 0, len(m.spans))
	for _, s := range m.spans {
		rows = append(rows, s.row)
	}
	return rows
}

// SetHighlightOpacity implements datasource.View.
func (m *Model) SetHighlightOpacity(row int, opacity float64) {
	m.opacity[row] = opacity
}

// Opacity reports the last opacity applied to row.
func (m *Model) Opacity(row int) (float64, bool) {
	o, ok := m.opacity[row]
	return o, ok
}

// Status returns the current status line text.
func (m *Model) Status() string {
	return m.status
}

func linesFor(height int) int {
	if height <= 0 {
		height = DefaultRowHeight
	}
	n := (height + unitHeight/2) / unitHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) listHeight() int {
	h := m.height - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

// layout materializes the rows that fit from offset down and reapplies the
// hover state to them, since rows that scrolled in have no opacity yet.
func (m *Model) layout() {
	count := m.ds.RowCount()
	if m.offset >= count {
		m.offset = count - 1
	}
	if m.offset < 0 {
		m.offset = 0
	}

	m.spans = m.spans[:0]
	top := 0
	for row := m.offset; row < count; row++ {
		n := linesFor(m.ds.RowHeight(row))
		if top+n > m.listHeight() && len(m.spans) > 0 {
			break
		}
		m.spans = append(m.spans, span{row: row, top: top, lines: n})
		top += n
	}

	for row := range m.opacity {
		if !m.visible(row) {
			delete(m.opacity, row)
		}
	}
	m.ds.Hover(m.ds.HoveredRow())
}

func (m *Model) visible(row int) bool {
	for _, s := range m.spans {
		if s.row == row {
			return true
		}
	}
	return false
}

func (m *Model) scrollTo(row int) {
	if row < m.offset {
		m.offset = row
		return
	}
	for {
		m.layout()
		if m.visible(row) || m.offset >= row {
			return
		}
		m.offset++
	}
}

func (m *Model) rowAt(y int) int {
	if len(m.ds.Items()) == 0 {
		return datasource.NoRow
	}
	for _, s := range m.spans {
		if y >= s.top && y < s.top+s.lines {
			return s.row
		}
	}
	return datasource.NoRow
}

// View renders the list, footer and any modal.
func (m *Model) View() (string, *tea.Cursor) {
	lines := make([]string, 0, m.height)
	for _, s := range m.spans {
		lines = append(lines, m.renderRow(s)...)
	}
	for len(lines) < m.listHeight() {
		lines = append(lines, "")
	}
	lines = append(lines, m.footer()...)
	view := strings.Join(lines, "\n")

	switch {
	case m.pending != nil:
		view = overlay.Center(view, m.width, m.height, m.modal())
	case m.editing:
		view = overlay.Center(view, m.width, m.height, m.theme.Modal.Frame.Render(m.input.View()))
	case m.help != nil:
		view = overlay.Center(view, m.width, m.height, m.help.View())
	}
	return view, nil
}

func (m *Model) renderRow(s span) []string {
	content := m.ds.RowContent(s.row)
	th := m.theme.Row
	var out []string

	if content.Kind == datasource.RowEmpty {
		out = append(out, th.Empty.Render("No timezones yet. Add one with `clocker add <zone>`."))
	} else {
		label := th.Label.Render(content.Label)
		if content.ShowCurrentLocation {
			label += " " + th.Home.Render(homeMark)
		}
		opacity, ok := m.opacity[s.row]
		if !ok {
			opacity = datasource.DimmedOpacity
		}
		options := lipgloss.NewStyle().Foreground(th.OptionsColor(opacity)).Render(optionsMark)
		gap := m.width - lipgloss.Width(label) - lipgloss.Width(options) - 2
		if gap < 1 {
			gap = 1
		}
		marker := "  "
		if s.row == m.cursor {
			marker = th.Time.Render("▌ ")
		}
		out = append(out, marker+label+strings.Repeat(" ", gap)+options)

		timeLine := "  " + th.Time.Render(content.Time)
		if content.RelativeDate != "" {
			timeLine += "  " + th.Relative.Render(content.RelativeDate)
		}
		out = append(out, timeLine)

		if content.ShowSunrise {
			sun := content.SunriseSetTime
			if content.ShowSunIcon {
				sun = content.SunIcon + " " + sun
			}
			out = append(out, "  "+th.Sun.Render(sun))
		}
		if content.Note != "" {
			note := truncate.StringWithTail(content.Note, uint(max(m.width-2, 1)), "…")
			out = append(out, "  "+th.Note.Render(note))
		}
	}

	for len(out) < s.lines {
		out = append(out, "")
	}
	return out
}

func (m *Model) footer() []string {
	ft := m.theme.Footer
	slider := ft.Slider.Render(timeutil.FormatOffset(m.ds.SliderValue()))
	status := slider
	if m.status != "" {
		status += "  " + ft.Status.Render(m.status)
	}
	keys := ft.Help.Render("↑/↓ select  ←/→ time  d delete  n note  ? help  q quit")
	return []string{status, keys}
}

func (m *Model) modal() string {
	p := m.pending.Prompt
	if p == nil {
		return ""
	}
	th := m.theme.Modal
	buttons := make([]string, 0, len(p.Buttons))
	for _, b := range p.Buttons {
		buttons = append(buttons, th.Button.Render("["+b+"]"))
	}
	body := []string{
		th.Title.Render(p.Message),
		th.Body.Render(p.InformativeText),
		"",
		strings.Join(buttons, "  "),
	}
	return th.Frame.Width(max(min(m.width-4, 60), 20)).Render(strings.Join(body, "\n"))
}

// Run starts the panel program in the alternate screen with mouse motion
// reporting so hover follows the pointer.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
