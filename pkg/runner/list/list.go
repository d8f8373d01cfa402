package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/format"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/printers"
	"tableflip.dev/clocker/pkg/store"
)

// List prints the panel rows.
type List struct {
	ShowID      bool
	JSON        bool
	Offset      int
	Out         io.Writer
	Preferences *preferences.Preferences
	Persistence store.Persistence
}

type jsonRow struct {
	Row          int    `json:"row"`
	ID           string `json:"id"`
	TimezoneID   string `json:"timezone"`
	Label        string `json:"label"`
	Time         string `json:"time"`
	RelativeDate string `json:"relativeDate,omitempty"`
	Sun          string `json:"sun,omitempty"`
	Note         string `json:"note,omitempty"`
	Home         bool   `json:"home,omitempty"`
	Height       int    `json:"height"`
}

func (n *List) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	entries, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}

	prefs := n.Preferences
	if prefs == nil {
		prefs = preferences.New(nil)
	}
	ds := datasource.New(entries,
		datasource.WithFormatter(format.New(prefs)),
		datasource.WithPreferences(prefs),
	)
	ds.SetSliderValue(n.Offset)

	if n.JSON {
		rows := make([]jsonRow, 0, len(entries))
		for i, e := range ds.Items() {
			r := ds.RowContent(i)
			jr := jsonRow{
				Row:          i,
				ID:           e.ID,
				TimezoneID:   e.TimezoneID,
				Label:        r.Label,
				Time:         r.Time,
				RelativeDate: r.RelativeDate,
				Note:         r.Note,
				Home:         r.ShowCurrentLocation,
				Height:       ds.RowHeight(i),
			}
			if r.ShowSunrise {
				jr.Sun = r.SunriseSetTime
			}
			rows = append(rows, jr)
		}
		b, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(n.out(), string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowID: n.ShowID}
	pp.Title("Timezones", len(entries))
	pp.Rows(ds)
	return nil
}
