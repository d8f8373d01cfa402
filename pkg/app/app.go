package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timezone"
)

// Service owns the canonical ordered entry list. It wraps persistence so the
// TUI and the CLI share the same mutations, and publishes a fresh snapshot
// to subscribers after every change.
type Service struct {
	Persistence store.Persistence

	subscribers []func([]*timezone.Entry)
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrOutOfRange    = errors.New("app: row out of range")
	ErrUnknownZone   = errors.New("app: unknown timezone")
	ErrUnknownEntry  = errors.New("app: unknown entry")
)

// Subscribe registers fn to receive every new snapshot.
func (s *Service) Subscribe(fn func([]*timezone.Entry)) {
	if fn == nil {
		return
	}
	s.subscribers = append(s.subscribers, fn)
}

// Entries returns the entries in display order.
func (s *Service) Entries(ctx context.Context) ([]*timezone.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.List(ctx)
}

// Add appends e to the list after validating its zone.
func (s *Service) Add(ctx context.Context, e *timezone.Entry) error {
	if e == nil {
		return errors.New("app: nil entry")
	}
	if _, err := e.Location(); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownZone, e.TimezoneID)
	}
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(entries, e))
}

// Remove deletes the entry at row.
func (s *Service) Remove(ctx context.Context, at int) error {
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}
	if at < 0 || at >= len(entries) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, at)
	}
	entries = append(entries[:at], entries[at+1:]...)
	return s.save(ctx, entries)
}

// SetNote replaces the note of the entry at row; an empty note clears it.
func (s *Service) SetNote(ctx context.Context, at int, note string) (*timezone.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if at < 0 || at >= len(entries) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, at)
	}
	entries[at].SetNote(note)
	if err := s.save(ctx, entries); err != nil {
		return nil, err
	}
	return entries[at], nil
}

// SetNoteByID replaces the note of the entry with the given ID, wherever it
// sits in the list now.
func (s *Service) SetNoteByID(ctx context.Context, id, note string) (*timezone.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID != id {
			continue
		}
		e.SetNote(note)
		if err := s.save(ctx, entries); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, id)
}

// SyncSystemTimezone points the system entry at zone. When add is set and
// no system entry exists one is inserted at the top. Extra system entries
// lose the flag so at most one remains.
func (s *Service) SyncSystemTimezone(ctx context.Context, zone string, add bool) (bool, error) {
	if _, err := time.LoadLocation(zone); err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	entries, err := s.Entries(ctx)
	if err != nil {
		return false, err
	}

	changed := false
	found := false
	for _, e := range entries {
		if !e.IsSystemTimezone {
			continue
		}
		if found {
			e.IsSystemTimezone = false
			changed = true
			continue
		}
		found = true
		if e.TimezoneID != zone {
			e.TimezoneID = zone
			e.FormattedAddress = zone
			changed = true
		}
	}
	if !found && add {
		e := timezone.New(zone, timezone.SelectionTimezone)
		e.FormattedAddress = zone
		e.IsSystemTimezone = true
		entries = append([]*timezone.Entry{e}, entries...)
		changed = true
	}
	if !changed {
		return false, nil
	}
	return true, s.save(ctx, entries)
}

func (s *Service) save(ctx context.Context, entries []*timezone.Entry) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.Save(ctx, entries); err != nil {
		return err
	}
	s.publish(entries)
	return nil
}

func (s *Service) publish(entries []*timezone.Entry) {
	for _, fn := range s.subscribers {
		snapshot := make([]*timezone.Entry, len(entries))
		copy(snapshot, entries)
		fn(snapshot)
	}
}

// SystemZoneName returns the IANA name of the host's zone, from $TZ or the
// /etc/localtime link, falling back to UTC.
func SystemZoneName() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			name := target[i+len("zoneinfo/"):]
			if _, err := time.LoadLocation(name); err == nil {
				return name
			}
		}
	}
	return "UTC"
}
