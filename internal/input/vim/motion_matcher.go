package vim

import "github.com/0xsj/modaled/internal/input/key"

// MotionMatcher is a self-contained sub-parser for "[count]<motion>".
// It owns an inner CountMatcher and resolves a MotionKind from the
// first motion key.
//
// The data model names richer motions (Find, Word, ParagraphBegin,
// …) as reserved extension points; this matcher resolves only the
// seven single-key motions the grammar currently requires —
// LineStart, LineEnd, and the four directions by key or arrow.
type MotionMatcher struct {
	count     *CountMatcher
	countDone bool
	resolved  MotionKind
	have      bool
}

// NewMotionMatcher creates an empty MotionMatcher.
func NewMotionMatcher() *MotionMatcher {
	return &MotionMatcher{count: NewCountMatcher()}
}

// Parse implements Input.
func (m *MotionMatcher) Parse(k key.Event) ParseResult {
	if !m.countDone {
		switch m.count.Parse(k) {
		case Continue:
			return Continue
		case Skip, TryTransition:
			m.countDone = true
			return m.resolveMotionKey(k)
		case Fail:
			return Fail
		}
	}
	return m.resolveMotionKey(k)
}

func (m *MotionMatcher) resolveMotionKey(k key.Event) ParseResult {
	switch {
	case k.Key == key.KeyUp:
		m.resolved = MotionUp
	case k.Key == key.KeyDown:
		m.resolved = MotionDown
	case k.Key == key.KeyLeft:
		m.resolved = MotionLeft
	case k.Key == key.KeyRight:
		m.resolved = MotionRight
	case k.IsRune() && k.Rune == '0':
		m.resolved = MotionLineStart
	case k.IsRune() && k.Rune == '$':
		m.resolved = MotionLineEnd
	case k.IsRune() && k.Rune == 'h':
		m.resolved = MotionLeft
	case k.IsRune() && k.Rune == 'j':
		m.resolved = MotionDown
	case k.IsRune() && k.Rune == 'k':
		m.resolved = MotionUp
	case k.IsRune() && k.Rune == 'l':
		m.resolved = MotionRight
	default:
		return Fail
	}

	m.have = true
	return Accept
}

// Reset implements Input.
func (m *MotionMatcher) Reset() {
	m.count.Reset()
	m.countDone = false
	m.have = false
	m.resolved = MotionKind{}
}

// Result returns the resolved motion, or ok=false if none was
// resolved yet.
func (m *MotionMatcher) Result() (motion Motion, ok bool) {
	if !m.have {
		return Motion{}, false
	}
	return Motion{Kind: m.resolved, Repeat: m.count.Repeat()}, true
}
