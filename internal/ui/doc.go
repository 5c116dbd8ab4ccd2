// Package ui provides the terminal user interface for jot.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program with two stacked panels: a single-line
// input panel for writing or editing a todo, and a list panel showing every
// todo with its completion state. A status header and a key hint footer
// frame them.
//
// The Model never owns todo data. Every action calls the state.Store
// synchronously and then pulls a fresh snapshot, so the view always
// reflects the store. The draft text is mirrored into the store on each
// keystroke.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key routing and Run
//   - input.go: input panel editing and submission
//   - list.go: list navigation, toggle, delete, edit and copy
//   - render.go: layout, header, footer and titled boxes
//   - help.go: key binding overlay
//   - theme.go, profile.go: light/dark themes and terminal color profile
//
// # Key Bindings
//
// Input panel:
//
//   - enter: add the draft, or save the edited todo
//   - esc/tab: move to the list
//
// List panel:
//
//   - j/k, g/G: move the cursor
//   - space/x: toggle done
//   - e/enter: edit
//   - d: delete
//   - a/i: focus the input
//   - y: copy the todo text
//   - T or ctrl+t (anywhere): switch light/dark, saved across runs
//   - ?: help, q or ctrl+c: quit
package ui
