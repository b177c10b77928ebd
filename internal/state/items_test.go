package state

import (
	"reflect"
	"testing"
)

func TestItemStoreRemoveKeepsOrder(t *testing.T) {
	s := NewItemStore()
	for _, id := range []string{"a", "b", "c", "d"} {
		s.Append(Item{ID: id, Value: id})
	}
	snapshot := s.Entries()
	removed, idx, ok := s.Remove("b")
	if !ok || idx != 1 || removed.ID != "b" {
		t.Fatalf("unexpected remove result %#v %d %v", removed, idx, ok)
	}
	want := []Item{{ID: "a", Value: "a"}, {ID: "c", Value: "c"}, {ID: "d", Value: "d"}}
	if got := s.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	if len(snapshot) != 4 || snapshot[1].ID != "b" {
		t.Fatalf("expected earlier snapshot untouched, got %#v", snapshot)
	}
	if _, _, ok := s.Remove("b"); ok {
		t.Fatalf("expected second remove to miss")
	}
}

func TestItemStoreReplace(t *testing.T) {
	s := NewItemStore()
	s.Append(Item{ID: "a", Value: "one"})
	s.Append(Item{ID: "b", Value: "two"})
	item, idx, ok := s.Replace("b", "deux")
	if !ok || idx != 1 || item.Value != "deux" {
		t.Fatalf("unexpected replace result %#v %d %v", item, idx, ok)
	}
	if _, _, ok := s.Replace("zzz", "x"); ok {
		t.Fatalf("expected unknown id to miss")
	}
	if got, _, _ := s.Find("a"); got.Value != "one" {
		t.Fatalf("expected other item untouched, got %q", got.Value)
	}
}

func TestItemStoreEmpty(t *testing.T) {
	s := NewItemStore()
	if s.Entries() != nil || s.Len() != 0 || s.Has("a") {
		t.Fatalf("expected empty store")
	}
	if _, idx, ok := s.Find("a"); ok || idx != -1 {
		t.Fatalf("expected miss on empty store")
	}
}
