// internal/obtree/search_test.go
package obtree

import "testing"

func TestSearchNodeFindsExistingKey(t *testing.T) {
	n := &node{keys: []Key{10, 20, 30, 40, 50}}
	var stats Stats

	res := searchNode(n, 30, &stats, true)
	if !res.found || res.pos != 2 {
		t.Fatalf("expected found at pos 2, got %+v", res)
	}
	if stats.Comparisons == 0 {
		t.Error("expected comparisons to be counted")
	}
}

func TestSearchNodeReportsInsertionPositionOnMiss(t *testing.T) {
	n := &node{keys: []Key{10, 20, 30, 40, 50}}
	var stats Stats

	cases := []struct {
		key      Key
		wantPos  int
		wantHigh bool
	}{
		{5, 0, false},
		{15, 1, false},
		{45, 4, false},
		{100, 5, true},
	}

	for _, c := range cases {
		res := searchNode(n, c.key, &stats, true)
		if res.found {
			t.Fatalf("key %d: expected miss", c.key)
		}
		if res.pos != c.wantPos {
			t.Fatalf("key %d: expected insertion pos %d, got %d", c.key, c.wantPos, res.pos)
		}
	}
}

func TestSearchNodeComparisonsGatedByCollectStats(t *testing.T) {
	n := &node{keys: []Key{1, 2, 3}}
	var stats Stats

	searchNode(n, 2, &stats, false)
	if stats.Comparisons != 0 {
		t.Errorf("expected no comparisons counted when collectStats is false, got %d", stats.Comparisons)
	}

	searchNode(n, 2, &stats, true)
	if stats.Comparisons == 0 {
		t.Error("expected comparisons counted when collectStats is true")
	}
}

func TestSearchNodeEmptyNode(t *testing.T) {
	n := &node{}
	var stats Stats

	res := searchNode(n, 42, &stats, true)
	if res.found || res.pos != 0 {
		t.Fatalf("expected miss at pos 0 on empty node, got %+v", res)
	}
}
