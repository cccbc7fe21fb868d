package vim

import (
	"github.com/0xsj/modaled/internal/input/key"
	"github.com/0xsj/modaled/internal/input/mode"
)

// ModalParser multiplexes a key stream across the built-in grammar
// table, committing a Cmd the moment exactly one CommandParser
// Accepts and resetting the whole bank afterward. It is a pure,
// synchronous function of (state, key) → (new state, *Cmd); it does
// not block, queue, or spawn work, and is not safe for concurrent
// Feed calls — the host must serialize key delivery.
type ModalParser struct {
	mode    mode.Mode
	parsers []*CommandParser
	failed  []bool
}

// NewModalParser builds a ModalParser with the built-in grammar
// table, starting in Normal mode.
func NewModalParser() *ModalParser {
	parsers := grammarTable()
	return &ModalParser{
		mode:    mode.Normal,
		parsers: parsers,
		failed:  make([]bool, len(parsers)),
	}
}

// Mode returns the parser's current mode. Read-only to callers; the
// only way to change it is by feeding keys that produce a mode-
// switching Cmd and applying that Cmd's effect back with SetMode.
func (p *ModalParser) Mode() mode.Mode {
	return p.mode
}

// SetMode sets the current mode. The executor calls this after
// acting on a Cmd that carries a SwitchMode/SwitchMove effect — the
// parser does not infer mode changes from its own output.
func (p *ModalParser) SetMode(m mode.Mode) {
	p.mode = m
}

// Feed advances the parser bank by one key, returning the completed
// Cmd the moment one is available, or nil if the key only extended,
// failed some, or failed all pending matches.
//
// Esc is handled before the bank: it always resets and emits
// SwitchMode(Normal), even if the mode is already Normal.
func (p *ModalParser) Feed(k key.Event) *Cmd {
	if k.IsEscape() {
		p.Reset()
		return &Cmd{Repeat: 1, Kind: CmdSwitchMode, SwitchMode: mode.Normal}
	}

	allFailed := true
	for i, parser := range p.parsers {
		if p.failed[i] {
			continue
		}

		switch parser.Parse(p.mode, k) {
		case Accept:
			cmd := parser.Result(p.mode)
			p.Reset()
			return &cmd
		case Fail:
			p.failed[i] = true
		default: // Continue
			allFailed = false
		}
	}

	if allFailed {
		p.Reset()
	}
	return nil
}

// Reset restores every CommandParser and clears the failed set. It
// does not change Mode — neither does Feed; only an explicit SetMode
// does that.
func (p *ModalParser) Reset() {
	for i, parser := range p.parsers {
		parser.Reset()
		p.failed[i] = false
	}
}
