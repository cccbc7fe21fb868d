// Package vim implements the modal command grammar: a bank of
// concurrent CommandParsers, each a small state machine built from
// Input matchers, multiplexed by a ModalParser that distributes one
// key event at a time and commits the first rule to Accept.
//
// The grammar is fixed and built-in (see NewModalParser): there is no
// remapping and no user scripting. It covers vi's count × operator ×
// motion shape for a small, closed set of built-in commands — moves,
// linewise/motion-scoped delete/change/yank, paste, newline insertion,
// and mode switches — and deliberately excludes text objects,
// registers, marks, ex commands, search, and macros.
package vim
