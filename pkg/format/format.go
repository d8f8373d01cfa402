// Package format turns timezone entries into the strings shown on a panel
// row: the clock time, a relative date and the next sunrise or sunset.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/maypok86/otter/v2"
	"github.com/nathan-osman/go-sunrise"

	"tableflip.dev/clocker/pkg/datasource"
	"tableflip.dev/clocker/pkg/timezone"
)

// Relative date display modes.
const (
	RelativeDay = iota
	ActualDay
	ActualDate
	Hidden
)

const (
	clock24 = "15:04"
	clock12 = "3:04 PM"
	dateFmt = "Jan 2"
)

// Settings are the preferences that influence formatting.
type Settings interface {
	RelativeDateMode() (int, bool)
	Use24Hour() bool
}

type sunKey struct {
	lat, lon float64
	date     string
}

type sunTimes struct {
	rise, set time.Time
}

// Service implements datasource.Formatter.
type Service struct {
	settings Settings
	now      func() time.Time
	home     *time.Location

	locations *otter.Cache[string, *time.Location]
	sun       *otter.Cache[sunKey, sunTimes]
	logger    *log.Logger
}

var _ datasource.Formatter = (*Service)(nil)

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHome sets the zone "Today" is measured against. Defaults to time.Local.
func WithHome(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.home = loc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a formatting service reading preferences from settings.
func New(settings Settings, opts ...Option) *Service {
	s := &Service{
		settings: settings,
		now:      time.Now,
		home:     time.Local,
		locations: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize: 512,
		}),
		sun: otter.Must(&otter.Options[sunKey, sunTimes]{
			MaximumSize: 1024,
		}),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format renders e at now plus offset minutes.
func (s *Service) Format(e *timezone.Entry, offset int) datasource.Formatted {
	loc, err := s.location(e.TimezoneID)
	if err != nil {
		s.logger.Error("load location", "timezone", e.TimezoneID, "err", err)
		return datasource.Formatted{}
	}

	at := s.now().Add(time.Duration(offset) * time.Minute)
	local := at.In(loc)

	out := datasource.Formatted{
		Time:         local.Format(s.clock()),
		RelativeDate: s.relativeDate(at, local),
	}
	if e.HasCoordinates() {
		out.SunriseSetTime, out.IsSunrise = s.sunEvent(*e.Latitude, *e.Longitude, local)
	}
	return out
}

func (s *Service) clock() string {
	if s.settings != nil && !s.settings.Use24Hour() {
		return clock12
	}
	return clock24
}

func (s *Service) mode() int {
	if s.settings == nil {
		return RelativeDay
	}
	m, ok := s.settings.RelativeDateMode()
	if !ok {
		return RelativeDay
	}
	return m
}

func (s *Service) relativeDate(at, local time.Time) string {
	switch s.mode() {
	case ActualDay:
		return local.Weekday().String()
	case ActualDate:
		return local.Format(dateFmt)
	case Hidden:
		return ""
	}

	home := at.In(s.home)
	day := dayName(dayDiff(home, local))
	if diff := offsetDiff(home, local); diff != "" {
		return day + ", " + diff
	}
	return day
}

func dayName(diff int) string {
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff > 0:
		return fmt.Sprintf("In %d days", diff)
	default:
		return fmt.Sprintf("%d days ago", -diff)
	}
}

func dayDiff(home, local time.Time) int {
	h := time.Date(home.Year(), home.Month(), home.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(h).Hours() / 24)
}

func offsetDiff(home, local time.Time) string {
	_, h := home.Zone()
	_, l := local.Zone()
	diff := l - h
	if diff == 0 {
		return ""
	}
	sign := "+"
	if diff < 0 {
		sign = "-"
		diff = -diff
	}
	hours := diff / 3600
	minutes := (diff % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("%s%dh", sign, hours)
	}
	return fmt.Sprintf("%s%dh%02dm", sign, hours, minutes)
}

// sunEvent returns the next sunrise or sunset after local on its own day,
// or the following sunrise once the sun has set.
func (s *Service) sunEvent(lat, lon float64, local time.Time) (string, bool) {
	today := s.sunTimes(lat, lon, local)
	if today.rise.IsZero() || today.set.IsZero() {
		return "", false
	}
	switch {
	case local.Before(today.rise):
		return today.rise.In(local.Location()).Format(s.clock()), true
	case local.Before(today.set):
		return today.set.In(local.Location()).Format(s.clock()), false
	}
	next := s.sunTimes(lat, lon, local.AddDate(0, 0, 1))
	if next.rise.IsZero() {
		return "", false
	}
	return next.rise.In(local.Location()).Format(s.clock()), true
}

func (s *Service) sunTimes(lat, lon float64, day time.Time) sunTimes {
	key := sunKey{lat: lat, lon: lon, date: day.Format("2006-01-02")}
	if v, ok := s.sun.GetIfPresent(key); ok {
		return v
	}
	rise, set := sunrise.SunriseSunset(lat, lon, day.Year(), day.Month(), day.Day())
	v := sunTimes{rise: rise, set: set}
	s.sun.Set(key, v)
	return v
}

func (s *Service) location(id string) (*time.Location, error) {
	if loc, ok := s.locations.GetIfPresent(id); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, err
	}
	s.locations.Set(id, loc)
	return loc, nil
}
