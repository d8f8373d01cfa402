// Package timezone defines the records shown as rows in the clocker panel.
package timezone

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SelectionType records how the user picked an entry.
type SelectionType string

const (
	// SelectionCity is a geocoded place; it carries coordinates and can show
	// sunrise and sunset.
	SelectionCity SelectionType = "city"
	// SelectionTimezone is a bare IANA zone.
	SelectionTimezone SelectionType = "timezone"
)

// Entry is a single timezone or location record.
type Entry struct {
	ID               string        `json:"id"`
	TimezoneID       string        `json:"timezone"`
	CustomLabel      string        `json:"label,omitempty"`
	FormattedAddress string        `json:"address,omitempty"`
	SelectionType    SelectionType `json:"selection"`
	IsSystemTimezone bool          `json:"system,omitempty"`
	Note             *string       `json:"note,omitempty"`
	Latitude         *float64      `json:"lat,omitempty"`
	Longitude        *float64      `json:"lon,omitempty"`
	Added            time.Time     `json:"added,omitempty"`
}

// New creates an entry for the IANA zone id with a fresh identifier.
func New(tzID string, typ SelectionType) *Entry {
	if typ == "" {
		typ = SelectionTimezone
	}
	return &Entry{
		ID:            uuid.NewString(),
		TimezoneID:    tzID,
		SelectionType: typ,
		Added:         time.Now().UTC(),
	}
}

// Label returns the name shown for the entry.
func (e *Entry) Label() string {
	if l := strings.TrimSpace(e.CustomLabel); l != "" {
		return l
	}
	if a := strings.TrimSpace(e.FormattedAddress); a != "" {
		return a
	}
	return e.TimezoneID
}

// NoteText returns the note or "" when none is set.
func (e *Entry) NoteText() string {
	if e.Note == nil {
		return ""
	}
	return *e.Note
}

// HasNote reports whether a non-empty note is attached.
func (e *Entry) HasNote() bool {
	return e.NoteText() != ""
}

// SetNote replaces the note; an empty string clears it.
func (e *Entry) SetNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		e.Note = nil
		return
	}
	e.Note = &note
}

// HasCoordinates reports whether both latitude and longitude are known.
func (e *Entry) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// SetCoordinates attaches a latitude/longitude pair.
func (e *Entry) SetCoordinates(lat, lon float64) {
	e.Latitude = &lat
	e.Longitude = &lon
}

// Location loads the entry's zone.
func (e *Entry) Location() (*time.Location, error) {
	return time.LoadLocation(e.TimezoneID)
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Note != nil {
		n := *e.Note
		cp.Note = &n
	}
	if e.Latitude != nil {
		lat := *e.Latitude
		cp.Latitude = &lat
	}
	if e.Longitude != nil {
		lon := *e.Longitude
		cp.Longitude = &lon
	}
	return &cp
}
