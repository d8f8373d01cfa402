package app

import (
	"context"

	"github.com/charmbracelet/log"

	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/logging"
)

// Window is the owner used while clocker runs as a floating foreground
// window.
type Window struct {
	svc    *Service
	ctx    context.Context
	logger *log.Logger
}

// NewWindow returns the foreground owner for svc.
func NewWindow(ctx context.Context, svc *Service) *Window {
	return &Window{svc: svc, ctx: ctx, logger: logging.WithPrefix("window")}
}

// DeleteTimezone removes the entry at row from the canonical list.
func (w *Window) DeleteTimezone(at int) {
	if err := w.svc.Remove(w.ctx, at); err != nil {
		w.logger.Error("delete timezone", "row", at, "err", err)
	}
}

// Panel is the owner used while clocker runs as a background panel.
type Panel struct {
	svc    *Service
	ctx    context.Context
	logger *log.Logger
}

// NewPanel returns the background owner for svc.
func NewPanel(ctx context.Context, svc *Service) *Panel {
	return &Panel{svc: svc, ctx: ctx, logger: logging.WithPrefix("panel")}
}

// DeleteTimezone removes the entry at row from the canonical list.
func (p *Panel) DeleteTimezone(at int) {
	if err := p.svc.Remove(p.ctx, at); err != nil {
		p.logger.Error("delete timezone", "row", at, "err", err)
	}
}

var (
	_ datasource.Owner = (*Window)(nil)
	_ datasource.Owner = (*Panel)(nil)
)

// PanelRegistry tracks the live panel, if any.
type PanelRegistry struct {
	panel *Panel
}

// Register makes p the live panel.
func (r *PanelRegistry) Register(p *Panel) {
	r.panel = p
}

// Unregister forgets the live panel, e.g. on teardown.
func (r *PanelRegistry) Unregister() {
	r.panel = nil
}

// Resolve implements datasource.PanelResolver.
func (r *PanelRegistry) Resolve() (datasource.Owner, bool) {
	if r == nil || r.panel == nil {
		return nil, false
	}
	return r.panel, true
}
