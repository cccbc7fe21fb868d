// Package mode names the editor's modal states.
//
// There are exactly three modes: Insert, Normal, and Visual. Each is
// represented by a single bit (1, 2, 4) so a Mask — the set of modes
// a grammar rule is valid in — fits in a uint8. Mode switching itself
// is not this package's concern; it is a side effect of parsing a
// command, driven by internal/input/vim's ModalParser.
//
// CursorStyle is the one piece of cosmetic state that rides along
// with a mode, used by the host to pick a cursor glyph.
package mode
