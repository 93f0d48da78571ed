package memstore_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/memstore"
)

func seeded(titles ...string) *memstore.Store {
	s := memstore.New()
	for _, t := range titles {
		s.Add(model.Todo{Title: t, Description: t + " desc"})
	}
	return s
}

func TestList_EmptyStore(t *testing.T) {
	c := qt.New(t)
	items, err := memstore.New().List()
	c.Assert(err, qt.ErrorIs, memstore.ErrEmpty)
	c.Assert(items, qt.IsNil)
}

func TestAdd_AppendsInOrder(t *testing.T) {
	c := qt.New(t)
	s := seeded("a", "b")
	s.Add(model.Todo{Title: "a"})

	items, err := s.List()
	c.Assert(err, qt.IsNil)
	c.Assert(items, qt.HasLen, 3)
	c.Assert(items[0].Title, qt.Equals, "a")
	c.Assert(items[1].Title, qt.Equals, "b")
	c.Assert(items[2].Title, qt.Equals, "a")
	c.Assert(items[2].Completed, qt.IsFalse)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := qt.New(t)
	s := seeded("a")
	items, err := s.List()
	c.Assert(err, qt.IsNil)
	items[0].Title = "changed"
	c.Assert(s.Get(1).Title, qt.Equals, "a")
}

func TestRemove_ShiftsLaterPositions(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		pos  int
		want []string
	}{
		{name: "first", pos: 1, want: []string{"b", "c", "d"}},
		{name: "middle", pos: 2, want: []string{"a", "c", "d"}},
		{name: "last", pos: 4, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			s := seeded("a", "b", "c", "d")
			s.Remove(tt.pos)
			c.Assert(s.Len(), qt.Equals, 3)
			for i, title := range tt.want {
				c.Assert(s.Get(i+1).Title, qt.Equals, title)
			}
		})
	}
}

func TestSetCompleted(t *testing.T) {
	c := qt.New(t)
	s := seeded("a")

	c.Assert(s.SetCompleted(1, false), qt.IsFalse)
	c.Assert(s.SetCompleted(1, true), qt.IsTrue)
	c.Assert(s.Get(1).Completed, qt.IsTrue)
	c.Assert(s.SetCompleted(1, true), qt.IsFalse)
	c.Assert(s.Get(1).Completed, qt.IsTrue)
	c.Assert(s.SetCompleted(1, false), qt.IsTrue)
	c.Assert(s.Get(1).Completed, qt.IsFalse)
}

func TestUpdate_InPlace(t *testing.T) {
	c := qt.New(t)
	s := seeded("a", "b")
	s.SetCompleted(2, true)

	s.Update(2, func(t *model.Todo) {
		t.Title = "new"
		t.Description = "fresh"
	})

	got := s.Get(2)
	c.Assert(got, qt.DeepEquals, model.Todo{Title: "new", Description: "fresh", Completed: true})
	c.Assert(s.Get(1).Title, qt.Equals, "a")
}

func TestStats(t *testing.T) {
	c := qt.New(t)
	s := seeded("a", "b", "c")
	s.SetCompleted(3, true)
	done, pending := s.Stats()
	c.Assert(done, qt.Equals, 1)
	c.Assert(pending, qt.Equals, 2)
}

func TestOutOfRangePanics(t *testing.T) {
	c := qt.New(t)
	s := seeded("a")
	c.Assert(func() { s.Get(0) }, qt.PanicMatches, `memstore: position out of range: have 1, got 0`)
	c.Assert(func() { s.Remove(2) }, qt.PanicMatches, `memstore: position out of range: have 1, got 2`)
}
