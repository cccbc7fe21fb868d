// Package input groups the editor's keyboard-input subsystem:
//
//   - key: the Key/Event/Modifier types the host delivers
//   - mode: the three-valued modal state (Insert/Normal/Visual)
//   - vim: the ModalParser that turns a key stream into Cmd values
//
// There is no package-level type here; callers depend on the
// subpackages directly.
package input
