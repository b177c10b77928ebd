// Package transition tracks the short-lived row highlights shown after an
// item is inserted, updated or removed. Highlights are purely visual; the
// list itself has already changed when one starts.
package transition

import (
	"sort"
	"time"

	"github.com/atomicstack/listedit/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind mirrors the mutation that started a highlight.
type Kind = state.ChangeKind

const (
	KindInsert = state.ChangeInsert
	KindUpdate = state.ChangeUpdate
	KindRemove = state.ChangeRemove
)

// Entry is one active highlight.
type Entry struct {
	Kind    Kind
	ItemID  string
	Value   string
	Index   int
	Expires time.Time
	seq     uint64
	rank    int
}

// ExpiredMsg asks the model to drop a highlight once its time is up.
type ExpiredMsg struct {
	ItemID string
	Seq    uint64
}

// Set holds the active highlights keyed by item id.
type Set struct {
	duration time.Duration
	entries  map[string]Entry
	seq      uint64
	now      func() time.Time
}

// NewSet returns a Set whose highlights last d. A non-positive d disables
// highlights entirely.
func NewSet(d time.Duration) *Set {
	return &Set{duration: d, entries: map[string]Entry{}, now: time.Now}
}

// Enabled reports whether Start records anything.
func (s *Set) Enabled() bool {
	return s != nil && s.duration > 0
}

// Start records a highlight for change and returns the command that expires
// it. A later change to the same item replaces the earlier highlight.
func (s *Set) Start(change state.Change) tea.Cmd {
	if !s.Enabled() {
		return nil
	}
	rank := s.shiftRemoved(change)
	s.seq++
	seq := s.seq
	id := change.Item.ID
	s.entries[id] = Entry{
		Kind:    change.Kind,
		ItemID:  id,
		Value:   change.Item.Value,
		Index:   change.Index,
		Expires: s.now().Add(s.duration),
		seq:     seq,
		rank:    rank,
	}
	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		return ExpiredMsg{ItemID: id, Seq: seq}
	})
}

// shiftRemoved keeps earlier ghost rows anchored to the rows around them
// when change moves those rows up or down. It returns the rank a new ghost
// takes among ghosts sharing its index.
func (s *Set) shiftRemoved(change state.Change) int {
	switch change.Kind {
	case KindRemove:
		rank := 0
		for _, entry := range s.entries {
			if entry.Kind == KindRemove && entry.Index == change.Index && entry.rank >= rank {
				rank = entry.rank + 1
			}
		}
		for id, entry := range s.entries {
			if entry.Kind != KindRemove || entry.Index <= change.Index {
				continue
			}
			entry.Index--
			if entry.Index == change.Index {
				// these sat after the removed row
				entry.rank += rank + 1
			}
			s.entries[id] = entry
		}
		return rank
	case KindInsert:
		for id, entry := range s.entries {
			if entry.Kind == KindRemove && entry.Index > change.Index {
				entry.Index++
				s.entries[id] = entry
			}
		}
	}
	return 0
}

// Expire drops the highlight named by msg unless it has been superseded.
func (s *Set) Expire(msg ExpiredMsg) bool {
	if s == nil {
		return false
	}
	entry, ok := s.entries[msg.ItemID]
	if !ok || entry.seq != msg.Seq {
		return false
	}
	delete(s.entries, msg.ItemID)
	return true
}

// For returns the live highlight for an item still in the list.
func (s *Set) For(id string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[id]
	if !ok || entry.Kind == KindRemove || s.expired(entry) {
		return Entry{}, false
	}
	return entry, true
}

// Removed returns live highlights for removed items ordered by where they
// stood relative to the current rows.
func (s *Set) Removed() []Entry {
	if s == nil {
		return nil
	}
	var out []Entry
	for _, entry := range s.entries {
		if entry.Kind == KindRemove && !s.expired(entry) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].rank < out[j].rank
	})
	return out
}

// Len reports the number of tracked highlights, expired or not.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

func (s *Set) expired(entry Entry) bool {
	return !s.now().Before(entry.Expires)
}
