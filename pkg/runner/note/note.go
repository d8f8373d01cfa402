package note

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/clocker/pkg/app"
	"tableflip.dev/clocker/pkg/store"
)

// Note sets or clears the note on a row.
type Note struct {
	Row         int
	Text        string
	Out         io.Writer
	Persistence store.Persistence
}

func (n *Note) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set note, no persistence")
	}
	svc := &app.Service{Persistence: n.Persistence}
	e, err := svc.SetNote(ctx, n.Row, n.Text)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if !e.HasNote() {
		_, err = fmt.Fprintf(out, "Cleared note on %s\n", e.Label())
		return err
	}
	_, err = fmt.Fprintf(out, "%s: %s\n", e.Label(), e.NoteText())
	return err
}
