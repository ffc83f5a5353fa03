// internal/obtree/cursor_convey_test.go
package obtree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/lattice-tree/obtree/internal/obtree"
)

// TestCursorIterationLawBDD exercises the cursor iteration law of
// SPEC_FULL.md §8 ("first then repeated next until invalid yields the
// multiset of keys in strictly ascending order") as a BDD-style spec,
// grounded in flier-goutil's goconvey usage.
func TestCursorIterationLawBDD(t *testing.T) {
	Convey("Given a tree built from a scrambled insertion order", t, func() {
		tr, err := New(4)
		So(err, ShouldBeNil)

		inserted := []Key{42, 7, 19, 3, 88, 55, 1, 99, 23, 61}
		for _, k := range inserted {
			So(tr.Insert(k, k), ShouldBeNil)
		}

		Convey("When a cursor walks first-then-next to exhaustion", func() {
			cur, err := NewCursor(tr)
			So(err, ShouldBeNil)

			var visited []Key
			err = cur.First()
			So(err, ShouldBeNil)

			for cur.Valid() {
				key, _, err := cur.Get()
				So(err, ShouldBeNil)
				visited = append(visited, key)
				if err := cur.Next(); err != nil {
					break
				}
			}

			Convey("Then it visits every inserted key exactly once", func() {
				So(len(visited), ShouldEqual, len(inserted))
			})

			Convey("Then the visit order is strictly ascending", func() {
				for i := 1; i < len(visited); i++ {
					So(visited[i], ShouldBeGreaterThan, visited[i-1])
				}
			})

			Convey("Then the cursor ends invalid", func() {
				So(cur.Valid(), ShouldBeFalse)
			})
		})
	})
}
