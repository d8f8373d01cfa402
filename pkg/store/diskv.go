package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/clocker/pkg/timezone"
)

const panelKey = "panel.json"

// Persistence stores the ordered list of panel entries.
type Persistence interface {
	List(ctx context.Context) ([]*timezone.Entry, error)
	Save(ctx context.Context, entries []*timezone.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      basePath + ".tmp",
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// List returns the entries in display order. A store that was never
// written is empty.
func (p *persistence) List(_ context.Context) ([]*timezone.Entry, error) {
	if !p.d.Has(panelKey) {
		return nil, nil
	}
	// Bypass the diskv cache so writes from other processes are seen.
	rc, err := p.d.ReadStream(panelKey, true)
	if err != nil {
		return nil, fmt.Errorf("store: read: %w", err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read: %w", err)
	}
	if len(val) == 0 {
		return nil, nil
	}
	var entries []*timezone.Entry
	if err := json.Unmarshal(val, &entries); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	out := entries[:0]
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// Save replaces the stored list.
func (p *persistence) Save(_ context.Context, entries []*timezone.Entry) error {
	if entries == nil {
		entries = []*timezone.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.WriteStream(panelKey, bytes.NewReader(data), true); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	return nil
}

func flatTransform(string) []string {
	return []string{}
}
