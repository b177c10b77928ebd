// Package dialog holds the modal widgets drawn over the item list: the edit
// form, the delete confirmation prompt and the blocking validation alert.
//
// Each widget exposes an Update method that consumes Bubble Tea messages and
// reports its outcome to the caller instead of mutating list state itself.
// The ui package owns the state.Editor and applies those outcomes.
package dialog
