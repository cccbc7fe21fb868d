package vim

import "github.com/0xsj/modaled/internal/input/key"

// countMaxDigit16 is the largest value amount can hold before the
// next digit would overflow a uint16 (65535 / 10).
const countMaxDigit16 = 6553

// CountMatcher accumulates an optional leading decimal count. A
// leading '0' is never part of a count — it is left for the next
// input to consume as a motion (LineStart).
type CountMatcher struct {
	amount uint16
	seen   bool
}

// NewCountMatcher creates an empty CountMatcher.
func NewCountMatcher() *CountMatcher {
	return &CountMatcher{}
}

// Parse implements Input.
func (c *CountMatcher) Parse(k key.Event) ParseResult {
	if !k.IsRune() || k.Rune < '0' || k.Rune > '9' {
		if !c.seen {
			return Skip
		}
		return TryTransition
	}

	digit := uint16(k.Rune - '0')

	if !c.seen && digit == 0 {
		return Skip
	}

	if c.amount > countMaxDigit16 || (c.amount == countMaxDigit16 && digit > 5) {
		return Fail
	}

	c.amount = c.amount*10 + digit
	c.seen = true
	return Continue
}

// Reset implements Input.
func (c *CountMatcher) Reset() {
	c.amount = 0
	c.seen = false
}

// Result returns the accumulated count, or ok=false if no digits
// were consumed.
func (c *CountMatcher) Result() (amount uint16, ok bool) {
	return c.amount, c.amount > 0
}

// Repeat returns the accumulated count, or 1 if none was given.
func (c *CountMatcher) Repeat() uint16 {
	if c.amount == 0 {
		return 1
	}
	return c.amount
}
