package vim

import (
	"github.com/0xsj/modaled/internal/input/key"
	"github.com/0xsj/modaled/internal/input/mode"
)

// synthesizer builds the completed Cmd from a CommandParser's inputs
// once every input has Accepted. It runs exactly once per Accept,
// before Reset clears the matcher state it reads.
type synthesizer func(m mode.Mode, inputs []Input) Cmd

// CommandParser is one grammar rule's running state machine: an
// ordered list of Input matchers, the modes it is eligible in, and
// the cursor idx of the input currently consuming keys.
type CommandParser struct {
	// Name labels the rule for logging; it has no effect on parsing.
	Name string

	inputs     []Input
	validModes mode.Mask
	idx        int
	synth      synthesizer
}

// newCommandParser builds a CommandParser. Panics if inputs is empty
// or validModes is the empty mask — both are construction-time
// contract violations, not runtime failures.
func newCommandParser(name string, validModes mode.Mask, synth synthesizer, inputs ...Input) *CommandParser {
	if len(inputs) == 0 {
		panic("vim: grammar rule " + name + " has no inputs")
	}
	if validModes == 0 {
		panic("vim: grammar rule " + name + " has an empty mode mask")
	}
	return &CommandParser{
		Name:       name,
		inputs:     inputs,
		validModes: validModes,
		synth:      synth,
	}
}

// Parse advances the rule's state machine by one key. See ParseResult
// for the meaning of each return value.
func (p *CommandParser) Parse(m mode.Mode, k key.Event) ParseResult {
	if !p.validModes.Allows(m) {
		return Fail
	}
	if p.idx >= len(p.inputs) {
		return Fail
	}

	switch p.inputs[p.idx].Parse(k) {
	case Accept:
		p.idx++
		if p.idx == len(p.inputs) {
			return Accept
		}
		return Continue
	case Continue:
		return Continue
	case Fail:
		return Fail
	default: // Skip, TryTransition
		p.idx++
		if p.idx >= len(p.inputs) {
			return Fail
		}
		return p.Parse(m, k)
	}
}

// Result synthesizes the completed Cmd. Only valid to call
// immediately after Parse returns Accept.
func (p *CommandParser) Result(m mode.Mode) Cmd {
	return p.synth(m, p.inputs)
}

// Reset restores idx to 0 and resets every input's own state.
func (p *CommandParser) Reset() {
	p.idx = 0
	for _, in := range p.inputs {
		in.Reset()
	}
}
