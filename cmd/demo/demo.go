package main

import (
	"context"
	"fmt"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timezone"
)

type city struct {
	zone, label string
	lat, lon    float64
	note        string
}

func main() {
	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}
	ctx := context.Background()
	svc := &app.Service{Persistence: p}

	if _, err := svc.SyncSystemTimezone(ctx, app.SystemZoneName(), true); err != nil {
		panic(err)
	}

	cities := []city{
		{zone: "America/Los_Angeles", label: "San Francisco", lat: 37.77, lon: -122.42},
		{zone: "America/New_York", label: "New York", lat: 40.71, lon: -74.01, note: "standup 9:30"},
		{zone: "Europe/London", label: "London", lat: 51.51, lon: -0.13},
		{zone: "Asia/Kolkata", label: "Bengaluru", lat: 12.97, lon: 77.59},
		{zone: "Asia/Tokyo", label: "Tokyo", lat: 35.68, lon: 139.69, note: "release window"},
	}
	for _, c := range cities {
		e := timezone.New(c.zone, timezone.SelectionCity)
		e.CustomLabel = c.label
		e.SetCoordinates(c.lat, c.lon)
		e.SetNote(c.note)
		if err := svc.Add(ctx, e); err != nil {
			panic(err)
		}
	}
	e := timezone.New("Australia/Sydney", timezone.SelectionTimezone)
	if err := svc.Add(ctx, e); err != nil {
		panic(err)
	}

	entries, err := svc.Entries(ctx)
	if err != nil {
		panic(err)
	}
	fmt.Printf("seeded %d timezones\n", len(entries))
}
