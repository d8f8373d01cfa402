package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/timezone"
)

type staticFormatter struct{}

func (staticFormatter) Format(e *timezone.Entry, offset int) datasource.Formatted {
	return datasource.Formatted{Time: "10:00", RelativeDate: "Today"}
}

func TestRowsPrintsTable(t *testing.T) {
	color.NoColor = true
	home := &timezone.Entry{ID: "h", TimezoneID: "Europe/Paris", IsSystemTimezone: true}
	other := &timezone.Entry{ID: "o", TimezoneID: "Asia/Tokyo"}
	other.SetNote("standup")

	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	ds := datasource.New([]*timezone.Entry{home, other}, datasource.WithFormatter(staticFormatter{}))
	pp.Title("Timezones", len(ds.Items()))
	pp.Rows(ds)

	out := buf.String()
	for _, want := range []string{"Timezones - 2 timezones", "⌂", "Europe/Paris", "Asia/Tokyo", "standup", "10:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRowsEmpty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Rows(datasource.New(nil))
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty-state hint, got %q", buf.String())
	}
}
