package vim

import "github.com/0xsj/modaled/internal/input/mode"

func countOf(inputs []Input) *CountMatcher {
	return inputs[0].(*CountMatcher)
}

// operatorMotionRule builds "<#> <op> <motion>" in Normal mode: the
// operator consumes an explicit motion.
func operatorMotionRule(name string, opKey rune, kind CmdKind) *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		repeat := countOf(inputs).Repeat()
		motion, _ := inputs[2].(*MotionMatcher).Result()
		return Cmd{Repeat: repeat, Kind: kind, Motion: &motion}
	}
	return newCommandParser(name, mode.MaskOf(mode.Normal), synth,
		NewCountMatcher(), NewKeyMatcher(opKey), NewMotionMatcher())
}

// operatorLinewiseRule builds "<#> <op><op>" in Normal mode (e.g.
// "dd"): the operator doubled, operating linewise with no motion.
func operatorLinewiseRule(name string, opKey rune, kind CmdKind) *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		repeat := countOf(inputs).Repeat()
		return Cmd{Repeat: repeat, Kind: kind}
	}
	return newCommandParser(name, mode.MaskOf(mode.Normal), synth,
		NewCountMatcher(), NewKeyMatcher(opKey), NewKeyMatcher(opKey))
}

// operatorVisualRule builds "<#> <op>" in Visual mode: the operator
// applies to the current selection, never a motion.
func operatorVisualRule(name string, opKey rune, kind CmdKind) *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		repeat := countOf(inputs).Repeat()
		return Cmd{Repeat: repeat, Kind: kind}
	}
	return newCommandParser(name, mode.MaskOf(mode.Visual), synth,
		NewCountMatcher(), NewKeyMatcher(opKey))
}

// switchMoveRule builds "<#> <key>" for I/A/a: perform a motion, then
// switch to Insert. The leading count is ignored (repeat is always
// 1) per the grammar table.
func switchMoveRule(name string, triggerKey rune, mv MotionKind) *CommandParser {
	synth := func(_ mode.Mode, _ []Input) Cmd {
		m := Motion{Kind: mv, Repeat: 1}
		return Cmd{Repeat: 1, Kind: CmdSwitchMove, Motion: &m, SwitchMode: mode.Insert}
	}
	return newCommandParser(name, mode.MaskOf(mode.Normal, mode.Visual), synth,
		NewCountMatcher(), NewKeyMatcher(triggerKey))
}

// newLineRule builds "<#> O" or "<#> o": insert a blank line
// above/below the cursor, entering Insert mode on it.
func newLineRule(name string, triggerKey rune, up bool) *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		repeat := countOf(inputs).Repeat()
		return Cmd{Repeat: repeat, Kind: CmdNewLine, NewLineUp: up, NewLineSwitchMode: true}
	}
	return newCommandParser(name, mode.MaskOf(mode.Normal, mode.Visual), synth,
		NewCountMatcher(), NewKeyMatcher(triggerKey))
}

// pasteRule builds "<#> p" / "<#> P".
func pasteRule(name string, triggerKey rune, kind CmdKind) *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		repeat := countOf(inputs).Repeat()
		return Cmd{Repeat: repeat, Kind: kind}
	}
	return newCommandParser(name, mode.MaskOf(mode.Normal, mode.Visual), synth,
		NewCountMatcher(), NewKeyMatcher(triggerKey))
}

// moveRule builds the sole Move rule: a bare motion, valid in both
// Normal and Visual mode (where it extends the selection instead of
// just repositioning the cursor — that distinction belongs to the
// executor, not the parser).
func moveRule() *CommandParser {
	synth := func(_ mode.Mode, inputs []Input) Cmd {
		motion, _ := inputs[0].(*MotionMatcher).Result()
		return Cmd{Repeat: motion.Repeat, Kind: CmdMove, Motion: &motion}
	}
	return newCommandParser("Move", mode.MaskOf(mode.Normal, mode.Visual), synth, NewMotionMatcher())
}

// switchModeIRule builds "<#> i": enter Insert. Normal only — unlike
// 'v', there is no documented Visual-to-Insert via 'i'.
func switchModeIRule() *CommandParser {
	synth := func(_ mode.Mode, _ []Input) Cmd {
		return Cmd{Repeat: 1, Kind: CmdSwitchMode, SwitchMode: mode.Insert}
	}
	return newCommandParser("SwitchMode:i", mode.MaskOf(mode.Normal), synth,
		NewCountMatcher(), NewKeyMatcher('i'))
}

// switchModeVRule builds "<#> v": enter Visual from Normal, or
// toggle back to Normal when already in Visual.
func switchModeVRule() *CommandParser {
	synth := func(m mode.Mode, _ []Input) Cmd {
		target := mode.Visual
		if m == mode.Visual {
			target = mode.Normal
		}
		return Cmd{Repeat: 1, Kind: CmdSwitchMode, SwitchMode: target}
	}
	return newCommandParser("SwitchMode:v", mode.MaskOf(mode.Normal, mode.Visual), synth,
		NewCountMatcher(), NewKeyMatcher('v'))
}

// grammarTable builds the built-in, fixed set of CommandParsers in
// registration order. Order is load-bearing only insofar as it
// determines tie-breaking on the rare key where more than one rule
// could otherwise Accept simultaneously; the doubled-operator rules
// (dd/cc/yy) never actually race their motion-rule siblings, since by
// the second key the motion rule has already failed ('d'/'c'/'y' is
// not a motion key).
func grammarTable() []*CommandParser {
	return []*CommandParser{
		moveRule(),

		operatorMotionRule("Delete:motion", 'd', CmdDelete),
		operatorLinewiseRule("Delete:linewise", 'd', CmdDelete),
		operatorVisualRule("Delete:visual", 'd', CmdDelete),

		operatorMotionRule("Change:motion", 'c', CmdChange),
		operatorLinewiseRule("Change:linewise", 'c', CmdChange),
		operatorVisualRule("Change:visual", 'c', CmdChange),

		operatorMotionRule("Yank:motion", 'y', CmdYank),
		operatorLinewiseRule("Yank:linewise", 'y', CmdYank),
		operatorVisualRule("Yank:visual", 'y', CmdYank),

		switchMoveRule("SwitchMove:I", 'I', MotionLineStart),
		switchMoveRule("SwitchMove:A", 'A', MotionLineEnd),
		switchMoveRule("SwitchMove:a", 'a', MotionRight),

		newLineRule("NewLine:O", 'O', true),
		newLineRule("NewLine:o", 'o', false),

		switchModeIRule(),
		switchModeVRule(),

		pasteRule("Paste", 'p', CmdPaste),
		pasteRule("PasteBefore", 'P', CmdPasteBefore),
	}
}
