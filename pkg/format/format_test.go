package format

import (
	"testing"
	"time"

	"tableflip.dev/clocker/pkg/timezone"
)

type fakeSettings struct {
	mode  int
	unset bool
	h24   bool
}

func (f fakeSettings) RelativeDateMode() (int, bool) { return f.mode, !f.unset }
func (f fakeSettings) Use24Hour() bool                 { return f.h24 }

var fixedNow = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

func newService(s Settings) *Service {
	return New(s, WithClock(func() time.Time { return fixedNow }), WithHome(time.UTC))
}

func zone(id string) *timezone.Entry {
	return &timezone.Entry{ID: id, TimezoneID: id, SelectionType: timezone.SelectionTimezone}
}

func TestFormatRelativeDay(t *testing.T) {
	svc := newService(fakeSettings{h24: true})
	tests := []struct {
		tz       string
		offset   int
		time     string
		relative string
	}{
		{tz: "Asia/Tokyo", offset: 0, time: "21:00", relative: "Today, +9h"},
		{tz: "Asia/Tokyo", offset: 180, time: "00:00", relative: "Tomorrow, +9h"},
		{tz: "America/Los_Angeles", offset: 0, time: "04:00", relative: "Today, -8h"},
		{tz: "America/Los_Angeles", offset: -300, time: "23:00", relative: "Yesterday, -8h"},
		{tz: "Asia/Kolkata", offset: 0, time: "17:30", relative: "Today, +5h30m"},
		{tz: "UTC", offset: 0, time: "12:00", relative: "Today"},
	}
	for _, tt := range tests {
		got := svc.Format(zone(tt.tz), tt.offset)
		if got.Time != tt.time {
			t.Fatalf("%s%+d: time = %q, want %q", tt.tz, tt.offset, got.Time, tt.time)
		}
		if got.RelativeDate != tt.relative {
			t.Fatalf("%s%+d: relative = %q, want %q", tt.tz, tt.offset, got.RelativeDate, tt.relative)
		}
		if got.SunriseSetTime != "" {
			t.Fatalf("%s: zone without coordinates should have no sun time", tt.tz)
		}
	}
}

func TestFormatModes(t *testing.T) {
	e := zone("Asia/Tokyo")
	if got := newService(fakeSettings{mode: ActualDay}).Format(e, 0).RelativeDate; got != "Monday" {
		t.Fatalf("actual day = %q", got)
	}
	if got := newService(fakeSettings{mode: ActualDate}).Format(e, 0).RelativeDate; got != "Mar 3" {
		t.Fatalf("actual date = %q", got)
	}
	if got := newService(fakeSettings{mode: Hidden}).Format(e, 0).RelativeDate; got != "" {
		t.Fatalf("hidden = %q", got)
	}
	if got := newService(fakeSettings{unset: true}).Format(e, 0).RelativeDate; got != "Today, +9h" {
		t.Fatalf("unset mode should fall back to relative, got %q", got)
	}
}

func TestFormatTwelveHourClock(t *testing.T) {
	got := newService(fakeSettings{h24: false}).Format(zone("Asia/Tokyo"), 0)
	if got.Time != "9:00 PM" {
		t.Fatalf("12h time = %q", got.Time)
	}
	got = newService(nil).Format(zone("Asia/Tokyo"), 0)
	if got.Time != "21:00" {
		t.Fatalf("nil settings should default to 24h, got %q", got.Time)
	}
}

func TestFormatUnknownZone(t *testing.T) {
	got := newService(fakeSettings{}).Format(zone("Mars/Olympus_Mons"), 0)
	if got.Time != "" || got.RelativeDate != "" {
		t.Fatalf("expected empty strings for unknown zone, got %+v", got)
	}
}

func TestFormatSunEvents(t *testing.T) {
	svc := newService(fakeSettings{h24: true})
	berlin := &timezone.Entry{ID: "b", TimezoneID: "Europe/Berlin", SelectionType: timezone.SelectionCity}
	berlin.SetCoordinates(52.52, 13.40)

	tests := []struct {
		name      string
		offset    int
		isSunrise bool
	}{
		{name: "before sunrise", offset: -720, isSunrise: true},
		{name: "daytime", offset: 0, isSunrise: false},
		{name: "after sunset", offset: 600, isSunrise: true},
	}
	for _, tt := range tests {
		got := svc.Format(berlin, tt.offset)
		if got.SunriseSetTime == "" {
			t.Fatalf("%s: expected a sun time", tt.name)
		}
		if _, err := time.Parse(clock24, got.SunriseSetTime); err != nil {
			t.Fatalf("%s: sun time %q not a clock time: %v", tt.name, got.SunriseSetTime, err)
		}
		if got.IsSunrise != tt.isSunrise {
			t.Fatalf("%s: IsSunrise = %v, want %v", tt.name, got.IsSunrise, tt.isSunrise)
		}
	}

	// Served from cache on the second call.
	a := svc.Format(berlin, 0)
	b := svc.Format(berlin, 0)
	if a != b {
		t.Fatalf("repeated format differs: %+v vs %+v", a, b)
	}
}
