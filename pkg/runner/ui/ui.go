package ui

import (
	"context"

	"github.com/muesli/termenv"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/format"
	"tableflip.dev/clocker/pkg/logging"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/tui/panel"
	"tableflip.dev/clocker/pkg/tui/theme"
)

// UI runs the interactive panel.
type UI struct {
	Config      store.Config
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if err := logging.Init(u.Config.LogDir()); err != nil {
		return err
	}
	defer logging.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	svc := &app.Service{Persistence: u.Persistence}
	entries, err := svc.Entries(ctx)
	if err != nil {
		return err
	}
	// First launch seeds the list with the home timezone.
	if _, err := svc.SyncSystemTimezone(ctx, app.SystemZoneName(), len(entries) == 0); err != nil {
		logging.Warn("sync system timezone", "err", err)
	}
	if entries, err = svc.Entries(ctx); err != nil {
		return err
	}

	prefs := preferences.New(u.Config.Viper())
	registry := &app.PanelRegistry{}
	registry.Register(app.NewPanel(ctx, svc))
	defer registry.Unregister()

	ds := datasource.New(entries,
		datasource.WithFormatter(format.New(prefs, format.WithLogger(logging.WithPrefix("format")))),
		datasource.WithPreferences(prefs),
		datasource.WithOwners(app.NewWindow(ctx, svc), registry.Resolve),
		datasource.WithLogger(logging.WithPrefix("datasource")),
	)

	events, err := u.Persistence.Watch(ctx)
	if err != nil {
		logging.Warn("watch store", "err", err)
		events = nil
	}

	m := panel.New(ds,
		panel.WithService(ctx, svc),
		panel.WithSettings(prefs),
		panel.WithEvents(events),
		panel.WithTheme(theme.Default(termenv.HasDarkBackground())),
		panel.WithLogger(logging.WithPrefix("tui")),
	)
	logging.Info("panel started", "entries", len(entries))
	return panel.Run(m)
}
