package home

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/store"
)

// Sync points the home row at the system timezone, adding it when missing.
type Sync struct {
	Zone        string
	Out         io.Writer
	Persistence store.Persistence
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not sync, no persistence")
	}
	zone := n.Zone
	if zone == "" {
		zone = app.SystemZoneName()
	}
	svc := &app.Service{Persistence: n.Persistence}
	changed, err := svc.SyncSystemTimezone(ctx, zone, true)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if changed {
		_, err = fmt.Fprintf(out, "Home timezone set to %s\n", zone)
	} else {
		_, err = fmt.Fprintf(out, "Home timezone already %s\n", zone)
	}
	return err
}
