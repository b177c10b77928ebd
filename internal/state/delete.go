package state

const (
	deleteTitle   = "Confirm Deletion"
	deleteMessage = "Are you sure you want to delete this item?"
)

// Confirmation is the user's answer to a delete prompt.
type Confirmation int

const (
	Cancelled Confirmation = iota
	Confirmed
)

func (c Confirmation) String() string {
	if c == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// PendingDelete is a delete waiting on the user's answer.
type PendingDelete struct {
	ItemID  string
	Title   string
	Message string

	editor   *Editor
	resolved bool
}

// Resolve applies the user's answer and reports whether an item was removed.
// Only the first call has any effect.
func (p *PendingDelete) Resolve(answer Confirmation) bool {
	if p == nil || p.resolved {
		return false
	}
	p.resolved = true
	if answer != Confirmed || p.editor == nil {
		return false
	}
	return p.editor.remove(p.ItemID)
}

// Resolved reports whether Resolve has been called.
func (p *PendingDelete) Resolved() bool {
	return p != nil && p.resolved
}
