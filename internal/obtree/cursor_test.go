// internal/obtree/cursor_test.go
package obtree

import (
	"errors"
	"testing"
)

func buildTree(t *testing.T, order int, keys []Key) *Tree {
	t.Helper()
	tr, err := New(order)
	if err != nil {
		t.Fatalf("New(%d): %v", order, err)
	}
	for _, k := range keys {
		if err := tr.Insert(k, k); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}
	return tr
}

func collectAscending(t *testing.T, cur *Cursor) []Key {
	t.Helper()
	var got []Key
	if err := cur.First(); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		t.Fatalf("First: %v", err)
	}
	for cur.Valid() {
		key, _, err := cur.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		got = append(got, key)
		if err := cur.Next(); err != nil {
			break
		}
	}
	return got
}

func TestCursorFirstLastOnEmptyTree(t *testing.T) {
	tr := buildTree(t, 4, nil)
	cur, err := NewCursor(tr)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}

	if err := cur.First(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found on First of empty tree, got %v", err)
	}
	if cur.Valid() {
		t.Error("expected cursor to be invalid after First on empty tree")
	}

	if err := cur.Last(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found on Last of empty tree, got %v", err)
	}
}

func TestCursorIterationLawAscending(t *testing.T) {
	keys := []Key{50, 25, 75, 10, 30, 60, 90, 5, 15, 35, 100}
	tr := buildTree(t, 4, keys)

	cur, err := NewCursor(tr)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	got := collectAscending(t, cur)

	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("expected strictly ascending order, got %v at index %d after %v", got[i], i, got[i-1])
		}
	}
	if len(got) != len(keys) {
		t.Fatalf("expected to visit %d keys, visited %d", len(keys), len(got))
	}
}

func TestCursorLastThenPrevDescending(t *testing.T) {
	keys := []Key{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tr := buildTree(t, 4, keys)

	cur, err := NewCursor(tr)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	if err := cur.Last(); err != nil {
		t.Fatalf("Last: %v", err)
	}

	var got []Key
	for cur.Valid() {
		key, _, err := cur.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		got = append(got, key)
		if err := cur.Prev(); err != nil {
			break
		}
	}

	if len(got) != len(keys) {
		t.Fatalf("expected to visit %d keys descending, visited %d", len(keys), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] >= got[i-1] {
			t.Fatalf("expected strictly descending order, got %v at index %d after %v", got[i], i, got[i-1])
		}
	}
	if got[0] != 10 || got[len(got)-1] != 1 {
		t.Fatalf("expected descending run from 10 to 1, got %v", got)
	}
}

func TestCursorSeekExactAndMiss(t *testing.T) {
	tr := buildTree(t, 4, []Key{10, 20, 30, 40, 50})

	cur, err := NewCursor(tr)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}

	if err := cur.Seek(30); err != nil {
		t.Fatalf("Seek(30): %v", err)
	}
	key, _, err := cur.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if key != 30 {
		t.Fatalf("expected seek to land exactly on 30, got %d", key)
	}

	// Miss: smallest key >= 25 is 30.
	if err := cur.Seek(25); err != nil {
		t.Fatalf("Seek(25): %v", err)
	}
	key, _, err = cur.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if key != 30 {
		t.Fatalf("expected seek(25) to land on 30, got %d", key)
	}

	// Past the end: no key >= 1000.
	if err := cur.Seek(1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not-found seeking past the end, got %v", err)
	}
	if cur.Valid() {
		t.Error("expected cursor to be invalid after seeking past the end")
	}
}

func TestCursorGetOnUnpositionedCursor(t *testing.T) {
	tr := buildTree(t, 4, []Key{1, 2, 3})
	cur, err := NewCursor(tr)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}

	if _, _, err := cur.Get(); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument on unpositioned Get, got %v", err)
	}
}
