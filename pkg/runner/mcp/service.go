// Package mcp provides the Model Context Protocol server integration for clocker.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/format"
	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timezone"
)

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Persistence store.Persistence
	Preferences *preferences.Preferences
}

// ErrTimezoneNotFound is returned when an entry cannot be located in persistence.
var ErrTimezoneNotFound = errors.New("timezone not found")

// AddTimezoneOptions captures the parameters used to add a timezone.
type AddTimezoneOptions struct {
	TimezoneID string
	Label      string
	Note       string
	City       bool
	Latitude   *float64
	Longitude  *float64
}

// TimezoneDTO is a transport-friendly projection of one panel row.
type TimezoneDTO struct {
	Row          int    `json:"row"`
	ID           string `json:"id"`
	TimezoneID   string `json:"timezone"`
	Label        string `json:"label"`
	Type         string `json:"type"`
	Time         string `json:"time"`
	RelativeDate string `json:"relativeDate,omitempty"`
	Sun          string `json:"sun,omitempty"`
	Sunrise      bool   `json:"sunrise,omitempty"`
	Note         string `json:"note,omitempty"`
	Home         bool   `json:"home,omitempty"`
	Height       int    `json:"height"`
}

// RemoveResult reports how a removal request ended.
type RemoveResult struct {
	Row    int    `json:"row"`
	Label  string `json:"label"`
	State  string `json:"state"`
	Prompt string `json:"prompt,omitempty"`
}

// NewService constructs a Service backed by the provided persistence.
func NewService(p store.Persistence, prefs *preferences.Preferences) *Service {
	if prefs == nil {
		prefs = preferences.New(nil)
	}
	return &Service{Persistence: p, Preferences: prefs}
}

func (s *Service) canonical() (*app.Service, error) {
	if s.Persistence == nil {
		return nil, app.ErrNoPersistence
	}
	return &app.Service{Persistence: s.Persistence}, nil
}

func (s *Service) dataSource(entries []*timezone.Entry, opts ...datasource.Option) *datasource.DataSource {
	base := []datasource.Option{
		datasource.WithFormatter(format.New(s.Preferences)),
		datasource.WithPreferences(s.Preferences),
	}
	return datasource.New(entries, append(base, opts...)...)
}

// ListTimezones returns every row as the panel would show it offset
// minutes from now.
func (s *Service) ListTimezones(ctx context.Context, offset int) ([]TimezoneDTO, error) {
	svc, err := s.canonical()
	if err != nil {
		return nil, err
	}
	entries, err := svc.Entries(ctx)
	if err != nil {
		return nil, err
	}
	ds := s.dataSource(entries)
	ds.SetSliderValue(offset)

	out := make([]TimezoneDTO, 0, len(entries))
	for i := range entries {
		out = append(out, toDTO(ds, i))
	}
	return out, nil
}

// TimezoneByID returns the row holding the entry with id.
func (s *Service) TimezoneByID(ctx context.Context, id string) (TimezoneDTO, error) {
	all, err := s.ListTimezones(ctx, 0)
	if err != nil {
		return TimezoneDTO{}, err
	}
	for _, dto := range all {
		if dto.ID == id {
			return dto, nil
		}
	}
	return TimezoneDTO{}, fmt.Errorf("%w: %s", ErrTimezoneNotFound, id)
}

// AddTimezone appends a new entry and returns its row.
func (s *Service) AddTimezone(ctx context.Context, opts AddTimezoneOptions) (TimezoneDTO, error) {
	svc, err := s.canonical()
	if err != nil {
		return TimezoneDTO{}, err
	}
	typ := timezone.SelectionTimezone
	if opts.City {
		typ = timezone.SelectionCity
	}
	e := timezone.New(opts.TimezoneID, typ)
	e.CustomLabel = opts.Label
	e.SetNote(opts.Note)
	if opts.Latitude != nil && opts.Longitude != nil {
		e.SetCoordinates(*opts.Latitude, *opts.Longitude)
	}
	if err := svc.Add(ctx, e); err != nil {
		return TimezoneDTO{}, err
	}
	return s.TimezoneByID(ctx, e.ID)
}

// SetNote replaces the note on row.
func (s *Service) SetNote(ctx context.Context, row int, note string) (TimezoneDTO, error) {
	svc, err := s.canonical()
	if err != nil {
		return TimezoneDTO{}, err
	}
	e, err := svc.SetNote(ctx, row, note)
	if err != nil {
		return TimezoneDTO{}, err
	}
	return s.TimezoneByID(ctx, e.ID)
}

// RemoveTimezone deletes row through the same path as the panel. The home
// row is only removed when confirmHome is set; otherwise the result carries
// the prompt that would have been shown.
func (s *Service) RemoveTimezone(ctx context.Context, row int, confirmHome bool) (RemoveResult, error) {
	svc, err := s.canonical()
	if err != nil {
		return RemoveResult{}, err
	}
	entries, err := svc.Entries(ctx)
	if err != nil {
		return RemoveResult{}, err
	}
	if row < 0 || row >= len(entries) {
		return RemoveResult{}, fmt.Errorf("%w: %d", app.ErrOutOfRange, row)
	}

	q := &datasource.FIFOQueue{}
	registry := &app.PanelRegistry{}
	registry.Register(app.NewPanel(ctx, svc))
	ds := s.dataSource(entries,
		datasource.WithOwners(app.NewWindow(ctx, svc), registry.Resolve),
		datasource.WithQueue(q),
	)

	result := RemoveResult{Row: row, Label: entries[row].Label()}
	del := ds.Delete(row, datasource.ConfirmFunc(func(p datasource.Prompt) datasource.Response {
		result.Prompt = p.Message
		if confirmHome {
			return datasource.ResponseYes
		}
		return datasource.ResponseNo
	}))
	q.Drain()
	result.State = del.State.String()
	return result, nil
}

func toDTO(ds *datasource.DataSource, row int) TimezoneDTO {
	e := ds.Items()[row]
	r := ds.RowContent(row)
	dto := TimezoneDTO{
		Row:          row,
		ID:           e.ID,
		TimezoneID:   e.TimezoneID,
		Label:        r.Label,
		Type:         string(e.SelectionType),
		Time:         r.Time,
		RelativeDate: r.RelativeDate,
		Note:         r.Note,
		Home:         r.ShowCurrentLocation,
		Height:       ds.RowHeight(row),
	}
	if r.ShowSunrise {
		dto.Sun = r.SunriseSetTime
		dto.Sunrise = r.SunIcon == datasource.DefaultIcons.Sunrise
	}
	return dto
}
