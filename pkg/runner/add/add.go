package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/format"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/printers"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timezone"
)

// Add appends a timezone to the panel and prints the resulting list.
type Add struct {
	TimezoneID string
	Label      string
	Address    string
	Note       string
	City       bool
	Latitude   *float64
	Longitude  *float64

	Out         io.Writer
	Preferences *preferences.Preferences
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	typ := timezone.SelectionTimezone
	if n.City {
		typ = timezone.SelectionCity
	}
	e := timezone.New(n.TimezoneID, typ)
	e.CustomLabel = n.Label
	e.FormattedAddress = n.Address
	e.SetNote(n.Note)
	if n.Latitude != nil && n.Longitude != nil {
		e.SetCoordinates(*n.Latitude, *n.Longitude)
	}

	svc := &app.Service{Persistence: n.Persistence}
	if err := svc.Add(ctx, e); err != nil {
		return err
	}
	all, err := svc.Entries(ctx)
	if err != nil {
		return err
	}

	prefs := n.Preferences
	if prefs == nil {
		prefs = preferences.New(nil)
	}
	ds := datasource.New(all,
		datasource.WithFormatter(format.New(prefs)),
		datasource.WithPreferences(prefs),
	)
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Added "+e.Label(), len(all))
	pp.Rows(ds)
	return nil
}
