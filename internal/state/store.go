package state

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is matched by every *IndexError.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index outside [0, Len) passed to a list operation.
// Views only pass indices they just observed, so this signals a view that
// drifted out of sync with the store.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Todo is a single list entry.
type Todo struct {
	ID        string
	Text      string
	Completed bool
}

// Snapshot is the observable state of the store at a point in time.
type Snapshot struct {
	Todos       []Todo
	Draft       string
	EditIndex   int // -1 unless Editing
	Editing     bool
	Revision    uint64
	LastUpdated time.Time
}

// EditTarget returns the index being edited, if any.
func (s Snapshot) EditTarget() (int, bool) {
	if !s.Editing {
		return -1, false
	}
	return s.EditIndex, true
}

// CompletedCount returns the number of completed todos.
func (s Snapshot) CompletedCount() int {
	n := 0
	for _, t := range s.Todos {
		if t.Completed {
			n++
		}
	}
	return n
}

// IndexOf returns the position of the todo with the given ID, or -1.
func (s Snapshot) IndexOf(id string) int {
	for i, t := range s.Todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Store owns the todo list, the draft and the edit target.
// The zero value is an empty store in the idle state.
type Store struct {
	mu       sync.RWMutex
	todos    []Todo
	draft    string
	editing  bool
	editIdx  int
	revision uint64
	updated  time.Time

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// AddOrUpdate trims draft and either appends it as a new todo or, while
// editing, replaces the text of the edited todo. Whitespace-only input is
// ignored and leaves the draft and edit target untouched.
func (s *Store) AddOrUpdate(draft string) {
	s.mu.Lock()
	snap, changed := s.applyDraftLocked(draft)
	s.mu.Unlock()

	if changed {
		s.publish(snap)
	}
}

// Submit applies AddOrUpdate to the current draft under one lock.
func (s *Store) Submit() {
	s.mu.Lock()
	snap, changed := s.applyDraftLocked(s.draft)
	s.mu.Unlock()

	if changed {
		s.publish(snap)
	}
}

func (s *Store) applyDraftLocked(draft string) (Snapshot, bool) {
	text := strings.TrimSpace(draft)
	if text == "" {
		return Snapshot{}, false
	}

	if s.editing {
		s.todos[s.editIdx].Text = text
		s.editing = false
		s.editIdx = 0
	} else {
		s.todos = append(s.todos, Todo{ID: uuid.NewString(), Text: text})
	}
	s.draft = ""
	return s.commitLocked(), true
}

// Delete removes the todo at index. Deleting the edited todo returns to the
// idle state and clears the draft; deleting one before it keeps the edit
// target on the same todo.
func (s *Store) Delete(index int) error {
	s.mu.Lock()
	if err := s.checkIndexLocked("delete", index); err != nil {
		s.mu.Unlock()
		return err
	}

	s.todos = append(s.todos[:index], s.todos[index+1:]...)
	if s.editing {
		switch {
		case index == s.editIdx:
			s.editing = false
			s.editIdx = 0
			s.draft = ""
		case index < s.editIdx:
			s.editIdx--
		}
	}
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// Toggle flips the completed flag of the todo at index.
func (s *Store) Toggle(index int) error {
	s.mu.Lock()
	if err := s.checkIndexLocked("toggle", index); err != nil {
		s.mu.Unlock()
		return err
	}

	s.todos[index].Completed = !s.todos[index].Completed
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// BeginEdit targets the todo at index and loads its text into the draft.
// Any unsaved draft from a previous edit is discarded.
func (s *Store) BeginEdit(index int) error {
	s.mu.Lock()
	if err := s.checkIndexLocked("begin edit", index); err != nil {
		s.mu.Unlock()
		return err
	}

	s.editing = true
	s.editIdx = index
	s.draft = s.todos[index].Text
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

// SetDraft overwrites the draft. No trimming happens here.
func (s *Store) SetDraft(text string) {
	s.mu.Lock()
	if s.draft == text {
		s.mu.Unlock()
		return
	}
	s.draft = text
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with the new snapshot after every
// state change. Calls happen synchronously on the mutating goroutine, outside
// the store lock. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}

	s.subMu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(Snapshot))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) checkIndexLocked(op string, index int) error {
	if index < 0 || index >= len(s.todos) {
		return &IndexError{Op: op, Index: index, Len: len(s.todos)}
	}
	return nil
}

func (s *Store) commitLocked() Snapshot {
	s.revision++
	s.updated = time.Now()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	editIdx := -1
	if s.editing {
		editIdx = s.editIdx
	}
	return Snapshot{
		Todos:       cloneTodos(s.todos),
		Draft:       s.draft,
		EditIndex:   editIdx,
		Editing:     s.editing,
		Revision:    s.revision,
		LastUpdated: s.updated,
	}
}

func (s *Store) publish(snap Snapshot) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Snapshot), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		dup := snap
		dup.Todos = cloneTodos(snap.Todos)
		fn(dup)
	}
}

func cloneTodos(items []Todo) []Todo {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Todo, len(items))
	copy(dup, items)
	return dup
}
