// Package state owns the todo list and the shared edit mode for jot.
//
// # Overview
//
// A single Store holds three pieces of state that the UI renders:
//
//   - Todos: the ordered list, addressed by index, insertion order preserved
//   - Draft: one pending text buffer shared by the add and edit flows
//   - Edit target: either idle or the index of the todo being edited
//
// Every user action maps onto one of five operations:
//
//	AddOrUpdate(draft)  append, or replace the edited todo's text
//	Delete(i)           remove, shifting later indices down by one
//	Toggle(i)           flip Completed on one todo
//	BeginEdit(i)        target i and copy its text into Draft
//	SetDraft(text)      overwrite Draft
//
// # Edit Mode
//
//	Idle ──BeginEdit(i)──────────→ Editing(i)
//	Editing(i) ──AddOrUpdate(x)──→ Idle        (x non-empty after trim)
//	Editing(i) ──Delete(i)───────→ Idle        (Draft cleared)
//	Editing(i) ──BeginEdit(j)────→ Editing(j)  (previous Draft discarded)
//
// Deleting an index below the edit target decrements the target so it keeps
// pointing at the same todo. Deleting above it changes nothing.
//
// Whitespace-only submits are silent no-ops: Draft and the edit target stay
// exactly as they were.
//
// # Errors
//
// Delete, Toggle and BeginEdit return *IndexError for an index outside
// [0, len). Views only pass indices taken from the snapshot they rendered,
// so an IndexError means the view is out of sync. errors.Is(err,
// ErrIndexOutOfRange) matches it.
//
// # Observing Changes
//
// Snapshot returns a deep copy. Subscribe registers a callback that runs
// after every state change with the new snapshot; operations that change
// nothing do not publish.
//
//	store := &state.Store{}
//	unsubscribe := store.Subscribe(func(snap state.Snapshot) {
//		logger.Debug("todos changed", "count", len(snap.Todos))
//	})
//	defer unsubscribe()
//
// The zero value is ready to use. Fields are guarded by a sync.RWMutex so
// snapshots may be taken from any goroutine.
package state
