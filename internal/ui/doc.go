// Package ui contains the Bubble Tea program for the list editor.
// The Model type focuses on message orchestration, while dedicated helpers
// own input, navigation, dialogs, rendering and row transitions.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - When a dialog is open (edit form, delete confirmation or validation
//     alert), key input goes to that dialog first. Otherwise the message is
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Key presses on the main screen go either to the new-item input
//     (input.go) or to list navigation (navigation.go) depending on focus.
//
// State ownership:
//   - Items and the in-progress edit live in internal/state.Editor. The
//     model never mutates items directly; it calls the editor's operations
//     and reacts to the changes reported through the editor's observer.
//   - Cursor and viewport state live in internal/ui/state.List, refreshed
//     from the editor after every change.
//   - Side effects such as copying to the clipboard run as commands through
//     internal/ui/command so their results come back as messages.
package ui
