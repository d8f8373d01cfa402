package rm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/logging"
	"tableflip.dev/clocker/pkg/store"
)

// Rm deletes a row the same way the panel's trailing action does, asking
// before the home row goes.
type Rm struct {
	Row         int
	Confirmer   datasource.Confirmer
	Out         io.Writer
	Preferences datasource.Preferences
	Persistence store.Persistence
}

func (n *Rm) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *Rm) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}
	entries, err := svc.Entries(ctx)
	if err != nil {
		return err
	}
	if n.Row < 0 || n.Row >= len(entries) {
		return fmt.Errorf("%w: %d", app.ErrOutOfRange, n.Row)
	}
	label := entries[n.Row].Label()

	q := &datasource.FIFOQueue{}
	registry := &app.PanelRegistry{}
	registry.Register(app.NewPanel(ctx, svc))
	ds := datasource.New(entries,
		datasource.WithPreferences(n.Preferences),
		datasource.WithOwners(app.NewWindow(ctx, svc), registry.Resolve),
		datasource.WithQueue(q),
		datasource.WithLogger(logging.WithPrefix("rm")),
	)

	del := ds.Delete(n.Row, n.Confirmer)
	q.Drain()

	switch del.State {
	case datasource.StateApplied:
		_, err = fmt.Fprintf(n.out(), "Removed %s\n", label)
	case datasource.StateDeclined:
		_, err = fmt.Fprintf(n.out(), "Kept %s\n", label)
	default:
		err = fmt.Errorf("remove %s: %s", label, del.State)
	}
	return err
}
