package datasource

import "fmt"

// State tracks a single deletion attempt.
type State int

const (
	StateRequested State = iota
	StateBlocked
	StateConfirmed
	StateDeclined
	StateApplied
	StateNoOp
)

func (s State) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateBlocked:
		return "blocked"
	case StateConfirmed:
		return "confirmed"
	case StateDeclined:
		return "declined"
	case StateApplied:
		return "applied"
	case StateNoOp:
		return "noop"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Response is the user's answer to a confirmation prompt.
type Response int

const (
	ResponseNone Response = iota
	ResponseYes
	ResponseNo
)

// Prompt is the confirmation shown before the system row is deleted.
type Prompt struct {
	Message         string
	InformativeText string
	Buttons         []string
}

// HomeRowPrompt is shown when deleting the system timezone entry.
var HomeRowPrompt = Prompt{
	Message:         "Confirm deleting the home row?",
	InformativeText: "This row is automatically updated when clocker detects a system timezone change. Are you sure you want to delete this?",
	Buttons:         []string{"Yes", "No"},
}

// Confirmer asks the user synchronously and returns the answer.
type Confirmer interface {
	Confirm(p Prompt) Response
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(p Prompt) Response

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(p Prompt) Response {
	return f(p)
}

// Deletion is a pending or finished request to delete one row.
type Deletion struct {
	Row    int
	State  State
	Prompt *Prompt

	entryID string
	ds      *DataSource
}

// RowActions returns the swipe actions for row. Only the trailing edge of a
// non-empty list offers an action.
func (d *DataSource) RowActions(row int, edge Edge) []RowAction {
	if len(d.entries) == 0 || edge != EdgeTrailing {
		return nil
	}
	return []RowAction{{
		Style:   ActionDestructive,
		Title:   "Delete",
		Icon:    d.icons.Trash,
		Handler: d.RequestDelete,
	}}
}

// RequestDelete starts deleting row. Unprotected rows are removed right
// away; the system timezone row returns blocked on a confirmation that the
// caller answers with Resolve.
func (d *DataSource) RequestDelete(row int) *Deletion {
	del := &Deletion{Row: row, State: StateRequested, ds: d}
	if row < 0 || row >= len(d.entries) {
		d.logger.Warn("delete out of range", "row", row, "rows", len(d.entries))
		del.State = StateNoOp
		return del
	}
	e := d.entries[row]
	del.entryID = e.ID

	if e.IsSystemTimezone {
		p := HomeRowPrompt
		del.Prompt = &p
		del.State = StateBlocked
		return del
	}

	del.State = StateConfirmed
	d.apply(del)
	return del
}

// Delete runs a deletion to completion of its synchronous part, asking c
// when the row is protected. A confirmed protected deletion is still
// applied later through the queue.
func (d *DataSource) Delete(row int, c Confirmer) *Deletion {
	del := d.RequestDelete(row)
	if del.State != StateBlocked {
		return del
	}
	resp := ResponseNo
	if c != nil {
		resp = c.Confirm(*del.Prompt)
	}
	del.Resolve(resp)
	return del
}

// Resolve answers a blocked deletion. Only ResponseYes proceeds, and the
// removal is posted to the queue instead of running inside the caller's
// event handler.
func (del *Deletion) Resolve(resp Response) {
	if del.State != StateBlocked {
		return
	}
	if resp != ResponseYes {
		del.State = StateDeclined
		return
	}
	del.State = StateConfirmed
	del.ds.queue.Post(func() {
		del.ds.apply(del)
	})
}

func (d *DataSource) apply(del *Deletion) {
	row, ok := d.locate(del)
	if !ok {
		d.logger.Warn("delete target vanished", "row", del.Row, "entry", del.entryID)
		del.State = StateNoOp
		return
	}
	del.Row = row

	d.entries = append(d.entries[:row:row], d.entries[row+1:]...)
	if d.view != nil {
		d.view.RemoveRow(row, AnimationSlideUp)
	}

	owner, ok := d.owner()
	if !ok {
		d.logger.Warn("no owner for delete", "row", row)
		del.State = StateNoOp
		return
	}
	owner.DeleteTimezone(row)
	del.State = StateApplied
}

// locate finds the row of the entry captured at request time; the list may
// have been replaced while a confirmation was pending.
func (d *DataSource) locate(del *Deletion) (int, bool) {
	if del.Row >= 0 && del.Row < len(d.entries) && d.entries[del.Row].ID == del.entryID {
		return del.Row, true
	}
	for i, e := range d.entries {
		if e.ID == del.entryID {
			return i, true
		}
	}
	return 0, false
}

func (d *DataSource) owner() (Owner, bool) {
	if d.prefs != nil && d.prefs.ShowInForeground() {
		if d.window == nil {
			return nil, false
		}
		return d.window, true
	}
	if d.panel == nil {
		return nil, false
	}
	return d.panel()
}
