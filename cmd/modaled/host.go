package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/0xsj/modaled/internal/app"
	"github.com/0xsj/modaled/internal/input/key"
	"github.com/0xsj/modaled/internal/input/mode"
	"github.com/0xsj/modaled/internal/input/vim"
)

// host owns the tcell screen and the translation from terminal key
// events to key.Event, one at a time, into the Application's modal
// parser. Mouse events are never read: mouse input is outside the
// grammar this editor parses.
type host struct {
	app    *app.Application
	screen tcell.Screen
	quitCh chan struct{}

	pending  string // best-effort echo of keys fed since the last Cmd
	lastLine string // last command's status-line summary
}

func newHost(application *app.Application) (*host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &host{
		app:    application,
		screen: screen,
		quitCh: make(chan struct{}),
	}, nil
}

func (h *host) close() {
	h.screen.Fini()
}

// quit requests the run loop stop at the next opportunity.
func (h *host) quit() {
	select {
	case <-h.quitCh:
	default:
		close(h.quitCh)
		h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (h *host) run() error {
	h.draw()

	for {
		select {
		case <-h.quitCh:
			return app.ErrQuit
		default:
		}

		ev := h.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventResize:
			h.screen.Sync()
			h.draw()
		case *tcell.EventKey:
			if h.handleKey(e) {
				return app.ErrQuit
			}
			h.draw()
		case *tcell.EventInterrupt:
			select {
			case <-h.quitCh:
				return app.ErrQuit
			default:
			}
		}
	}
}

// handleKey translates one terminal key event and feeds it to the
// application. Returns true if the host should quit (Ctrl-C). The F1
// assist hotkey is intercepted here before it ever reaches the parser.
func (h *host) handleKey(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlC {
		return true
	}

	if e.Key() == tcell.KeyF1 {
		h.runAssist()
		return false
	}

	ev, ok := translateKey(e)
	if !ok {
		return false
	}

	h.pending += ev.VimString()

	cmd := h.app.Feed(ev)
	if cmd != nil {
		h.pending = ""
		h.lastLine = summarize(*cmd)
	}
	return false
}

// runAssist fires the configured AI-assist provider (if any) against
// the last completed command and shows the explanation on the status
// line. Never blocks the input loop for more than ten seconds.
func (h *host) runAssist() {
	if h.lastLine == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	explanation, err := h.app.Explain(ctx, h.lastLine)
	if err != nil {
		return
	}
	h.lastLine = explanation
	h.draw()
}

// translateKey converts a tcell key event into the editor's own
// key.Event. Unrecognized keys return ok=false and are dropped.
func translateKey(e *tcell.EventKey) (key.Event, bool) {
	mods := translateMods(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods), true
	}

	var k key.Key
	switch e.Key() {
	case tcell.KeyEscape:
		k = key.KeyEscape
	case tcell.KeyEnter:
		k = key.KeyEnter
	case tcell.KeyTab:
		k = key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k = key.KeyBackspace
	case tcell.KeyDelete:
		k = key.KeyDelete
	case tcell.KeyUp:
		k = key.KeyUp
	case tcell.KeyDown:
		k = key.KeyDown
	case tcell.KeyLeft:
		k = key.KeyLeft
	case tcell.KeyRight:
		k = key.KeyRight
	default:
		return key.Event{}, false
	}
	return key.NewSpecialEvent(k, mods), true
}

func translateMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}

func summarize(cmd vim.Cmd) string {
	if cmd.Motion != nil {
		return fmt.Sprintf("%d %s %s*%d", cmd.Repeat, cmd.Kind, cmd.Motion.Kind, cmd.Motion.Repeat)
	}
	return fmt.Sprintf("%d %s", cmd.Repeat, cmd.Kind)
}

// draw renders a one-line status bar: the current mode, the pending
// key prefix, and the last completed command's summary. The mode
// indicator is colored by blending the theme's base color toward an
// accent color with go-colorful, and the line is truncated at the
// screen width using uniseg's grapheme-aware column counting so
// multi-byte text is never cut mid-grapheme.
func (h *host) draw() {
	h.screen.Clear()

	w, rows := h.screen.Size()
	m := h.app.Mode()

	style := tcell.StyleDefault.Foreground(modeColor(h.app.Config().UI.Theme, m))

	label := fmt.Sprintf("-- %s --", strings.ToUpper(m.String()))
	line := label
	if h.pending != "" && h.app.Config().UI.ShowPendingKeys {
		line += "  " + h.pending
	}
	if h.lastLine != "" {
		line += "  " + h.lastLine
	}

	col := 0
	for _, g := range uniseg.NewGraphemes(line) {
		runes := g.Runes()
		width := g.Width()
		if col+width > w {
			break
		}
		h.screen.SetContent(col, rows-1, runes[0], runes[1:], style)
		col += width
	}

	h.screen.Show()
}

// modeColor blends the theme's base foreground toward a per-mode
// accent, matching vi's convention of a visibly different status bar
// per mode without hard-coding terminal palette indices.
func modeColor(theme string, m mode.Mode) tcell.Color {
	base := colorful.Color{R: 0.8, G: 0.8, B: 0.8}
	if theme == "light" {
		base = colorful.Color{R: 0.15, G: 0.15, B: 0.15}
	}

	var accent colorful.Color
	switch m {
	case mode.Insert:
		accent = colorful.Color{R: 0.3, G: 0.8, B: 0.4}
	case mode.Visual:
		accent = colorful.Color{R: 0.9, G: 0.6, B: 0.1}
	default:
		accent = colorful.Color{R: 0.3, G: 0.6, B: 0.9}
	}

	blended := base.BlendRgb(accent, 0.6)
	r, g, b := blended.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
