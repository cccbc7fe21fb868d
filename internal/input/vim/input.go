package vim

import "github.com/0xsj/modaled/internal/input/key"

// ParseResult is the per-key verdict an Input matcher returns.
type ParseResult uint8

const (
	// Accept means the matcher is satisfied; the CommandParser
	// advances to the next input and does not re-feed this key.
	Accept ParseResult = iota

	// Continue means the matcher consumed the key but needs more;
	// the CommandParser's idx is unchanged.
	Continue

	// Fail means the matcher rejects the key; the whole
	// CommandParser fails for this input sequence.
	Fail

	// Skip means the matcher chose not to apply to this key; the
	// CommandParser advances and re-feeds the same key to the next
	// input. Used by Count when the first key isn't a digit.
	Skip

	// TryTransition means the matcher fully completed on a key it
	// does not consume; like Skip, the CommandParser advances and
	// re-feeds. Used by Count when a non-digit follows ≥1 digit.
	TryTransition
)

func (r ParseResult) String() string {
	switch r {
	case Accept:
		return "Accept"
	case Continue:
		return "Continue"
	case Fail:
		return "Fail"
	case Skip:
		return "Skip"
	case TryTransition:
		return "TryTransition"
	default:
		return "Unknown"
	}
}

// Input is one matcher in a CommandParser's input sequence.
type Input interface {
	// Parse advances the matcher's internal state by one key.
	Parse(k key.Event) ParseResult

	// Reset restores the matcher to its initial state.
	Reset()
}
