package list

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"tableflip.dev/clocker/pkg/preferences"
	"tableflip.dev/clocker/pkg/store"
	"tableflip.dev/clocker/pkg/timezone"
)

type memoryStore struct {
	entries []*timezone.Entry
}

func (m *memoryStore) List(context.Context) ([]*timezone.Entry, error) {
	return m.entries, nil
}

func (m *memoryStore) Save(_ context.Context, entries []*timezone.Entry) error {
	m.entries = entries
	return nil
}

func (m *memoryStore) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("unsupported")
}

func testPrefs() *preferences.Preferences {
	v := viper.New()
	store.SetDefaults(v)
	return preferences.New(v)
}

func TestListJSON(t *testing.T) {
	home := &timezone.Entry{ID: "home", TimezoneID: "UTC", SelectionType: timezone.SelectionTimezone, IsSystemTimezone: true}
	tokyo := &timezone.Entry{ID: "tokyo", TimezoneID: "Asia/Tokyo", CustomLabel: "Tokyo", SelectionType: timezone.SelectionTimezone}
	tokyo.SetNote("standup")

	var out bytes.Buffer
	l := &List{JSON: true, Out: &out, Preferences: testPrefs(), Persistence: &memoryStore{entries: []*timezone.Entry{home, tokyo}}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var rows []jsonRow
	if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].Home || rows[0].Label != "UTC" {
		t.Fatalf("unexpected home row: %+v", rows[0])
	}
	if rows[1].Label != "Tokyo" || rows[1].Note != "standup" || rows[1].Time == "" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	// 65 base, +5 home, +2 font.
	if rows[0].Height != 72 {
		t.Fatalf("home height = %d, want 72", rows[0].Height)
	}
}

func TestListEmpty(t *testing.T) {
	var out bytes.Buffer
	l := &List{Out: &out, Preferences: testPrefs(), Persistence: &memoryStore{}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "none, add one") {
		t.Fatalf("missing empty state:\n%s", out.String())
	}
}

func TestListNoPersistence(t *testing.T) {
	if err := (&List{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
