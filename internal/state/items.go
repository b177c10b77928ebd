package state

// Item is a single list entry. Identity is the ID; Value is whatever text the
// user submitted.
type Item struct {
	ID    string
	Value string
}

// ItemStore holds the ordered list of items.
type ItemStore interface {
	Entries() []Item
	Len() int
	Find(id string) (Item, int, bool)
	Append(Item)
	Replace(id, value string) (Item, int, bool)
	Remove(id string) (Item, int, bool)
	Has(id string) bool
}

type itemStore struct {
	entries []Item
}

// NewItemStore returns an empty in-memory store.
func NewItemStore() ItemStore {
	return &itemStore{}
}

func (s *itemStore) Entries() []Item {
	return cloneItems(s.entries)
}

func (s *itemStore) Len() int {
	return len(s.entries)
}

func (s *itemStore) Find(id string) (Item, int, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Item{}, -1, false
	}
	return s.entries[idx], idx, true
}

func (s *itemStore) Has(id string) bool {
	return s.indexOf(id) >= 0
}

func (s *itemStore) Append(item Item) {
	s.entries = append(s.entries, item)
}

func (s *itemStore) Replace(id, value string) (Item, int, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Item{}, -1, false
	}
	s.entries[idx].Value = value
	return s.entries[idx], idx, true
}

func (s *itemStore) Remove(id string) (Item, int, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Item{}, -1, false
	}
	removed := s.entries[idx]
	s.entries = append(s.entries[:idx:idx], s.entries[idx+1:]...)
	return removed, idx, true
}

func (s *itemStore) indexOf(id string) int {
	for i, item := range s.entries {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
