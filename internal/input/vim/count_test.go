package vim

import (
	"testing"

	"github.com/0xsj/modaled/internal/input/key"
)

func digit(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func TestCountMatcherLeadingZeroSkips(t *testing.T) {
	c := NewCountMatcher()
	if got := c.Parse(digit('0')); got != Skip {
		t.Fatalf("Parse('0') = %v, want Skip", got)
	}
	if amount, ok := c.Result(); ok || amount != 0 {
		t.Fatalf("Result() = (%d, %v), want (0, false)", amount, ok)
	}
}

func TestCountMatcherAccumulates(t *testing.T) {
	c := NewCountMatcher()
	for _, r := range "20" {
		if got := c.Parse(digit(r)); got != Continue {
			t.Fatalf("Parse(%q) = %v, want Continue", r, got)
		}
	}
	amount, ok := c.Result()
	if !ok || amount != 20 {
		t.Fatalf("Result() = (%d, %v), want (20, true)", amount, ok)
	}
	if got := c.Repeat(); got != 20 {
		t.Fatalf("Repeat() = %d, want 20", got)
	}
}

func TestCountMatcherNonDigitNoAmountSkips(t *testing.T) {
	c := NewCountMatcher()
	if got := c.Parse(digit('d')); got != Skip {
		t.Fatalf("Parse('d') = %v, want Skip", got)
	}
}

func TestCountMatcherNonDigitWithAmountTransitions(t *testing.T) {
	c := NewCountMatcher()
	c.Parse(digit('2'))
	if got := c.Parse(digit('l')); got != TryTransition {
		t.Fatalf("Parse('l') = %v, want TryTransition", got)
	}
}

func TestCountMatcherRepeatDefaultsToOne(t *testing.T) {
	c := NewCountMatcher()
	if got := c.Repeat(); got != 1 {
		t.Fatalf("Repeat() = %d, want 1", got)
	}
}

func TestCountMatcherReset(t *testing.T) {
	c := NewCountMatcher()
	c.Parse(digit('5'))
	c.Reset()
	if amount, ok := c.Result(); ok || amount != 0 {
		t.Fatalf("Result() after Reset = (%d, %v), want (0, false)", amount, ok)
	}
}
