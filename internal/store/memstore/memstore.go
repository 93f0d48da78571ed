package memstore

import (
	"errors"
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

// In-memory storage for one session. Single owner, no locking.
// Positions are 1-based and shift down after a removal.

// ErrEmpty is returned by List when the store holds no todos.
var ErrEmpty = errors.New("no todos")

type Store struct {
	items []model.Todo
}

func New() *Store {
	return &Store{items: []model.Todo{}}
}

func (s *Store) Len() int { return len(s.items) }

// Add appends t at the end of the list.
func (s *Store) Add(t model.Todo) {
	s.items = append(s.items, t)
}

// List returns a copy of all todos in position order, or ErrEmpty.
func (s *Store) List() ([]model.Todo, error) {
	if len(s.items) == 0 {
		return nil, ErrEmpty
	}
	out := make([]model.Todo, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Get(pos int) model.Todo {
	return s.items[s.index(pos)]
}

// Update applies fn to the todo at pos in place.
func (s *Store) Update(pos int, fn func(*model.Todo)) {
	fn(&s.items[s.index(pos)])
}

func (s *Store) Remove(pos int) {
	idx := s.index(pos)
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

// SetCompleted sets the completion flag at pos. It reports false and
// writes nothing when the todo is already in the target state.
func (s *Store) SetCompleted(pos int, completed bool) bool {
	idx := s.index(pos)
	if s.items[idx].Completed == completed {
		return false
	}
	s.items[idx].Completed = completed
	return true
}

// Stats counts completed and pending todos.
func (s *Store) Stats() (done, pending int) {
	for _, it := range s.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// index converts a 1-based position; callers validate bounds beforehand.
func (s *Store) index(pos int) int {
	if pos < 1 || pos > len(s.items) {
		panic(fmt.Sprintf("memstore: position out of range: have %d, got %d", len(s.items), pos))
	}
	return pos - 1
}
