package datasource

import (
	"fmt"
	"testing"

	"tableflip.dev/clocker/pkg/timezone"
)

type fakeFormatter struct {
	sunrise bool
	calls   []int
}

func (f *fakeFormatter) Format(e *timezone.Entry, offset int) Formatted {
	f.calls = append(f.calls, offset)
	sun := ""
	if e.HasCoordinates() {
		sun = "06:12"
	}
	return Formatted{
		Time:           fmt.Sprintf("%s+%d", e.TimezoneID, offset),
		RelativeDate:   "Today",
		SunriseSetTime: sun,
		IsSunrise:      f.sunrise,
	}
}

type fakePrefs struct {
	fontSize   int
	relative   int
	unset      bool
	sunrise    bool
	foreground bool
}

func (p *fakePrefs) FontSize() (int, bool)         { return p.fontSize, !p.unset }
func (p *fakePrefs) RelativeDateMode() (int, bool) { return p.relative, !p.unset }
func (p *fakePrefs) ShowSunrise() bool             { return p.sunrise }
func (p *fakePrefs) ShowInForeground() bool        { return p.foreground }

func cityEntry(id string) *timezone.Entry {
	e := &timezone.Entry{ID: id, TimezoneID: "Europe/Berlin", SelectionType: timezone.SelectionCity}
	e.SetCoordinates(52.52, 13.40)
	return e
}

func zoneEntry(id string) *timezone.Entry {
	return &timezone.Entry{ID: id, TimezoneID: "UTC", SelectionType: timezone.SelectionTimezone}
}

func systemEntry(id string) *timezone.Entry {
	e := zoneEntry(id)
	e.IsSystemTimezone = true
	return e
}

func TestRowCount(t *testing.T) {
	ds := New(nil)
	if got := ds.RowCount(); got != 1 {
		t.Fatalf("empty list should report 1 row, got %d", got)
	}
	for n := 1; n <= 4; n++ {
		items := make([]*timezone.Entry, n)
		for i := range items {
			items[i] = zoneEntry(fmt.Sprintf("z%d", i))
		}
		ds.SetItems(items)
		if got := ds.RowCount(); got != n {
			t.Fatalf("expected %d rows, got %d", n, got)
		}
	}
}

func TestEmptyStateRow(t *testing.T) {
	ds := New(nil, WithFormatter(&fakeFormatter{}), WithPreferences(&fakePrefs{fontSize: 1}))
	if h := ds.RowHeight(0); h != EmptyRowHeight {
		t.Fatalf("expected empty row height %d, got %d", EmptyRowHeight, h)
	}
	if row := ds.RowContent(0); row.Kind != RowEmpty {
		t.Fatalf("expected empty-state descriptor, got %+v", row)
	}
}

func TestRowContentUsesSharedOffset(t *testing.T) {
	f := &fakeFormatter{sunrise: true}
	city := cityEntry("c1")
	home := systemEntry("s1")
	home.SetNote("home office")
	ds := New([]*timezone.Entry{city, home},
		WithFormatter(f),
		WithPreferences(&fakePrefs{fontSize: 1, sunrise: true}))
	ds.SetSliderValue(90)

	first := ds.RowContent(0)
	second := ds.RowContent(1)
	if first.Time != "Europe/Berlin+90" || second.Time != "UTC+90" {
		t.Fatalf("rows rendered with different offsets: %q %q", first.Time, second.Time)
	}
	for _, off := range f.calls {
		if off != 90 {
			t.Fatalf("formatter called with offset %d", off)
		}
	}

	if first.SunIcon != DefaultIcons.Sunrise {
		t.Fatalf("expected sunrise icon, got %q", first.SunIcon)
	}
	if !first.ShowSunrise || !first.ShowSunIcon {
		t.Fatalf("expected sunrise line on city row: %+v", first)
	}
	if first.ShowCurrentLocation {
		t.Fatalf("city row should not show current location indicator")
	}
	if first.Note != "" || first.NoteTooltip != "" {
		t.Fatalf("expected empty note, got %q", first.Note)
	}
	if first.AccessibilityID != "Europe/Berlin" || first.AccessibilityLabel != "Europe/Berlin" {
		t.Fatalf("unexpected accessibility identifiers: %+v", first)
	}

	if !second.ShowCurrentLocation {
		t.Fatalf("system row should show current location indicator")
	}
	if second.Note != "home office" || second.NoteTooltip != "home office" {
		t.Fatalf("unexpected note %q", second.Note)
	}
	if second.ShowSunrise || second.ShowSunIcon {
		t.Fatalf("bare timezone without coordinates should hide the sun line: %+v", second)
	}
}

func TestRowContentSunsetIcon(t *testing.T) {
	ds := New([]*timezone.Entry{cityEntry("c1")},
		WithFormatter(&fakeFormatter{sunrise: false}),
		WithPreferences(&fakePrefs{fontSize: 1}),
		WithIcons(Icons{Sunrise: "up", Sunset: "down", Trash: "x"}))
	row := ds.RowContent(0)
	if row.SunIcon != "down" {
		t.Fatalf("expected sunset icon, got %q", row.SunIcon)
	}
	if row.ShowSunrise {
		t.Fatalf("sunrise preference off should hide the sun line")
	}
}

func TestRowContentWithoutFormatter(t *testing.T) {
	ds := New([]*timezone.Entry{zoneEntry("z1")})
	row := ds.RowContent(0)
	if row.Kind != RowTimezone || row.Label != "UTC" || row.Time != "" {
		t.Fatalf("unexpected row without formatter: %+v", row)
	}
}

func TestSetItemsKeepsOffsetAndHover(t *testing.T) {
	ds := New([]*timezone.Entry{zoneEntry("a")})
	ds.SetSliderValue(-120)
	ds.Hover(0)
	ds.SetItems([]*timezone.Entry{zoneEntry("b"), zoneEntry("c")})
	if ds.SliderValue() != -120 {
		t.Fatalf("SetItems changed offset to %d", ds.SliderValue())
	}
	if ds.HoveredRow() != 0 {
		t.Fatalf("SetItems changed hovered row to %d", ds.HoveredRow())
	}
	items := ds.Items()
	if len(items) != 2 || items[0].ID != "b" || items[1].ID != "c" {
		t.Fatalf("unexpected items after SetItems: %v", items)
	}
}

func TestItemsIsSnapshot(t *testing.T) {
	src := []*timezone.Entry{zoneEntry("a"), zoneEntry("b")}
	ds := New(src)
	src[0] = zoneEntry("mutated")
	if ds.Items()[0].ID != "a" {
		t.Fatalf("DataSource shares the caller's slice")
	}
	out := ds.Items()
	out[1] = nil
	if ds.Items()[1] == nil {
		t.Fatalf("Items returned internal slice")
	}
}
