package state

import "github.com/google/uuid"

// IDGenerator produces item identifiers. Only uniqueness within the active
// list matters.
type IDGenerator func() string

// ChangeKind identifies the mutation reported to an Observer.
type ChangeKind int

const (
	ChangeInsert ChangeKind = iota
	ChangeUpdate
	ChangeRemove
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeUpdate:
		return "update"
	case ChangeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Change describes a successful mutation of the item list. Index is the
// position the item occupies (insert, update) or occupied (remove).
type Change struct {
	Kind  ChangeKind
	Item  Item
	Index int
}

// Observer is notified after every successful mutation.
type Observer func(Change)

// EditState is a snapshot of the transient edit-dialog fields.
type EditState struct {
	ItemID        string
	Editing       bool
	Text          string
	DialogVisible bool
}

// Editor owns the item list and the transient form state. All mutation goes
// through its methods.
type Editor struct {
	items    ItemStore
	newID    IDGenerator
	observer Observer

	newItemText string
	edit        EditState
}

// NewEditor builds an editor with an empty list. A nil generator falls back
// to random UUIDs.
func NewEditor(gen IDGenerator) *Editor {
	if gen == nil {
		gen = uuid.NewString
	}
	return &Editor{items: NewItemStore(), newID: gen}
}

// SetObserver installs the mutation callback. Passing nil removes it.
func (e *Editor) SetObserver(fn Observer) {
	e.observer = fn
}

// Items returns a copy of the list in display order.
func (e *Editor) Items() []Item {
	return e.items.Entries()
}

// Len reports the number of items.
func (e *Editor) Len() int {
	return e.items.Len()
}

// Find looks up an item by id.
func (e *Editor) Find(id string) (Item, bool) {
	item, _, ok := e.items.Find(id)
	return item, ok
}

func (e *Editor) NewItemText() string        { return e.newItemText }
func (e *Editor) SetNewItemText(text string) { e.newItemText = text }
func (e *Editor) EditState() EditState       { return e.edit }

// SetEditText records the in-progress edit text. It is ignored when no edit
// is active.
func (e *Editor) SetEditText(text string) {
	if !e.edit.Editing {
		return
	}
	e.edit.Text = text
}

// AddItem appends text as a new item. The raw text is stored; only the
// emptiness check uses the trimmed form.
func (e *Editor) AddItem(text string) (Item, error) {
	if err := validateText(FieldNewItem, text); err != nil {
		return Item{}, err
	}
	item := Item{ID: e.generateID(), Value: text}
	e.items.Append(item)
	e.newItemText = ""
	e.notify(Change{Kind: ChangeInsert, Item: item, Index: e.items.Len() - 1})
	return item, nil
}

// BeginEdit opens the edit dialog for id, seeding the edit text with the
// item's current value. Unknown ids leave the state untouched.
func (e *Editor) BeginEdit(id string) bool {
	item, _, ok := e.items.Find(id)
	if !ok {
		return false
	}
	e.edit = EditState{
		ItemID:        item.ID,
		Editing:       true,
		Text:          item.Value,
		DialogVisible: true,
	}
	return true
}

// UpdateItem applies the pending edit text to the edited item. A validation
// failure leaves everything, including the open dialog, as it was. The
// returned bool reports whether an item was changed; an edit whose item has
// vanished still closes the dialog.
func (e *Editor) UpdateItem() (Item, bool, error) {
	if !e.edit.Editing {
		return Item{}, false, nil
	}
	if err := validateText(FieldEditItem, e.edit.Text); err != nil {
		return Item{}, false, err
	}
	item, idx, ok := e.items.Replace(e.edit.ItemID, e.edit.Text)
	e.ResetEditState()
	if !ok {
		return Item{}, false, nil
	}
	e.notify(Change{Kind: ChangeUpdate, Item: item, Index: idx})
	return item, true, nil
}

// ResetEditState closes the edit dialog and forgets the edit context.
func (e *Editor) ResetEditState() {
	e.edit = EditState{}
}

// DeleteItem asks for confirmation before removing id. Nothing changes until
// the returned request is resolved.
func (e *Editor) DeleteItem(id string) *PendingDelete {
	return &PendingDelete{
		ItemID:  id,
		Title:   deleteTitle,
		Message: deleteMessage,
		editor:  e,
	}
}

func (e *Editor) remove(id string) bool {
	item, idx, ok := e.items.Remove(id)
	if !ok {
		return false
	}
	e.notify(Change{Kind: ChangeRemove, Item: item, Index: idx})
	return true
}

// maxIDAttempts bounds how often a custom generator is retried before
// falling back to random UUIDs.
const maxIDAttempts = 8

func (e *Editor) generateID() string {
	for i := 0; i < maxIDAttempts; i++ {
		if id := e.newID(); id != "" && !e.items.Has(id) {
			return id
		}
	}
	for {
		if id := uuid.NewString(); !e.items.Has(id) {
			return id
		}
	}
}

func (e *Editor) notify(change Change) {
	if e.observer != nil {
		e.observer(change)
	}
}
