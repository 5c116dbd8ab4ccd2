// Package cli defines jot's cobra command tree.
package cli
