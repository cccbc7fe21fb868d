package vim

import "github.com/0xsj/modaled/internal/input/mode"

// MotionKind names a direction or target a motion moves to. Most
// motions yield a half-open range when consumed by an operator;
// Find is the one exception (see IsDeleteEndInclusive).
type MotionKind struct {
	variant motionVariant

	// FindChar is the target character for the Find variant.
	FindChar byte

	// FindReverse is true if Find searches backward.
	FindReverse bool

	// WordBig selects WORD (whitespace-delimited) semantics instead
	// of word semantics, for the Word/BeginningWord/EndWord variants.
	WordBig bool
}

type motionVariant uint8

const (
	motionLeft motionVariant = iota
	motionRight
	motionUp
	motionDown
	motionLineStart
	motionLineEnd
	motionParagraphBegin
	motionParagraphEnd
	motionStart
	motionEnd
	motionFind
	motionWord
	motionBeginningWord
	motionEndWord
)

var (
	MotionLeft           = MotionKind{variant: motionLeft}
	MotionRight          = MotionKind{variant: motionRight}
	MotionUp             = MotionKind{variant: motionUp}
	MotionDown           = MotionKind{variant: motionDown}
	MotionLineStart      = MotionKind{variant: motionLineStart}
	MotionLineEnd        = MotionKind{variant: motionLineEnd}
	MotionParagraphBegin = MotionKind{variant: motionParagraphBegin}
	MotionParagraphEnd   = MotionKind{variant: motionParagraphEnd}
	MotionStart          = MotionKind{variant: motionStart}
	MotionEnd            = MotionKind{variant: motionEnd}
)

// NewFindMotion builds a Find motion: jump to (and include) the next
// occurrence of c, searching backward if reverse is set.
func NewFindMotion(c byte, reverse bool) MotionKind {
	return MotionKind{variant: motionFind, FindChar: c, FindReverse: reverse}
}

// NewWordMotion builds a word-forward motion. big selects WORD
// (whitespace-delimited) semantics.
func NewWordMotion(big bool) MotionKind {
	return MotionKind{variant: motionWord, WordBig: big}
}

// NewBeginningWordMotion builds a word-backward motion (to the
// beginning of the previous word).
func NewBeginningWordMotion(big bool) MotionKind {
	return MotionKind{variant: motionBeginningWord, WordBig: big}
}

// NewEndWordMotion builds a motion to the end of the current/next
// word.
func NewEndWordMotion(big bool) MotionKind {
	return MotionKind{variant: motionEndWord, WordBig: big}
}

// IsDeleteEndInclusive reports whether the character under the
// motion's endpoint is included when an operator consumes this
// motion. Only Find is inclusive; every other motion yields a
// half-open range.
func (k MotionKind) IsDeleteEndInclusive() bool {
	return k.variant == motionFind
}

// String names the motion kind, for logging and debugging.
func (k MotionKind) String() string {
	switch k.variant {
	case motionLeft:
		return "Left"
	case motionRight:
		return "Right"
	case motionUp:
		return "Up"
	case motionDown:
		return "Down"
	case motionLineStart:
		return "LineStart"
	case motionLineEnd:
		return "LineEnd"
	case motionParagraphBegin:
		return "ParagraphBegin"
	case motionParagraphEnd:
		return "ParagraphEnd"
	case motionStart:
		return "Start"
	case motionEnd:
		return "End"
	case motionFind:
		return "Find"
	case motionWord:
		return "Word"
	case motionBeginningWord:
		return "BeginningWord"
	case motionEndWord:
		return "EndWord"
	default:
		return "Unknown"
	}
}

// Motion is a resolved motion kind together with its repeat count.
type Motion struct {
	Kind   MotionKind
	Repeat uint16
}

// CmdKind tags the kind of command a completed CommandParser
// produces. Any motion is carried separately, in Cmd.Motion.
type CmdKind uint8

const (
	CmdDelete CmdKind = iota
	CmdChange
	CmdYank
	CmdMove
	CmdSwitchMove
	CmdSwitchMode
	CmdNewLine
	CmdUndo
	CmdRedo
	CmdPaste
	CmdPasteBefore
	CmdCustom
)

func (k CmdKind) String() string {
	switch k {
	case CmdDelete:
		return "Delete"
	case CmdChange:
		return "Change"
	case CmdYank:
		return "Yank"
	case CmdMove:
		return "Move"
	case CmdSwitchMove:
		return "SwitchMove"
	case CmdSwitchMode:
		return "SwitchMode"
	case CmdNewLine:
		return "NewLine"
	case CmdUndo:
		return "Undo"
	case CmdRedo:
		return "Redo"
	case CmdPaste:
		return "Paste"
	case CmdPasteBefore:
		return "PasteBefore"
	case CmdCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Cmd is the parser's sole output: a completed, fully-resolved
// editor command.
type Cmd struct {
	Repeat uint16
	Kind   CmdKind

	// Motion is set for Move (always) and for Delete/Change/Yank
	// (nil means "operate on the visual selection" in Visual mode,
	// or "linewise over Repeat lines" in Normal mode).
	Motion *Motion

	// SwitchMode is set for SwitchMove and SwitchMode.
	SwitchMode mode.Mode

	// NewLineUp and NewLineSwitchMode are set for NewLine.
	NewLineUp         bool
	NewLineSwitchMode bool

	// CustomName is set for Custom.
	CustomName string
}
