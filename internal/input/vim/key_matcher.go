package vim

import "github.com/0xsj/modaled/internal/input/key"

// KeyMatcher accepts exactly one literal key event. It is stateless
// between keys.
type KeyMatcher struct {
	desired key.Event
}

// NewKeyMatcher creates a matcher for a literal rune key (no
// modifiers), the common case for grammar rules.
func NewKeyMatcher(r rune) *KeyMatcher {
	return &KeyMatcher{desired: key.NewRuneEvent(r, key.ModNone)}
}

// NewSpecialKeyMatcher creates a matcher for a non-rune key such as
// an arrow key.
func NewSpecialKeyMatcher(k key.Key) *KeyMatcher {
	return &KeyMatcher{desired: key.NewSpecialEvent(k, key.ModNone)}
}

// Parse implements Input.
func (m *KeyMatcher) Parse(k key.Event) ParseResult {
	if k.Equals(m.desired) {
		return Accept
	}
	return Fail
}

// Reset implements Input. KeyMatcher carries no state.
func (m *KeyMatcher) Reset() {}
