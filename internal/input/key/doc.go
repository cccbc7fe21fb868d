// Package key provides the key event types the modal parser consumes.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: identifies a keyboard key (Escape, arrows, a handful of
//     passthrough keys, or a rune)
//   - Modifier: represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers and a timestamp
//
// Remapping and key-spec strings ("<C-s>", "Ctrl+Alt+P") are
// deliberately not part of this package: the editor's grammar is a
// fixed built-in table (see internal/input/vim), not something a user
// rebinds, so there is no key-spec parser here.
package key
