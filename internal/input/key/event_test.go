package key

import "testing"

func TestEventIsRune(t *testing.T) {
	e := NewRuneEvent('d', ModNone)
	if !e.IsRune() {
		t.Error("expected IsRune to be true")
	}

	special := NewSpecialEvent(KeyEscape, ModNone)
	if special.IsRune() {
		t.Error("expected IsRune to be false for special key")
	}
}

func TestEventIsChar(t *testing.T) {
	if !NewRuneEvent('a', ModNone).IsChar() {
		t.Error("expected 'a' to be a printable char")
	}
	if NewSpecialEvent(KeyEscape, ModNone).IsChar() {
		t.Error("expected Escape to not be a printable char")
	}
}

func TestEventIsModified(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain rune", NewRuneEvent('d', ModNone), false},
		{"shifted rune is unmodified", NewRuneEvent('D', ModShift), false},
		{"ctrl rune is modified", NewRuneEvent('d', ModCtrl), true},
		{"plain escape", NewSpecialEvent(KeyEscape, ModNone), false},
		{"shifted escape is modified", NewSpecialEvent(KeyEscape, ModShift), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsModified(); got != tt.want {
				t.Errorf("IsModified() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('d', ModNone)
	b := NewRuneEvent('d', ModNone)
	if !a.Equals(b) {
		t.Error("expected equal events to compare equal regardless of timestamp")
	}

	c := NewRuneEvent('x', ModNone)
	if a.Equals(c) {
		t.Error("expected different runes to compare unequal")
	}
}

func TestEventIsEscape(t *testing.T) {
	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() {
		t.Error("expected plain Escape to be IsEscape")
	}
	if NewSpecialEvent(KeyEscape, ModCtrl).IsEscape() {
		t.Error("expected Ctrl+Escape to not be IsEscape")
	}
	if NewRuneEvent('e', ModNone).IsEscape() {
		t.Error("expected rune 'e' to not be IsEscape")
	}
}

func TestEventVimString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('d', ModNone), "d"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewRuneEvent('s', ModCtrl), "<C-s>"},
	}

	for _, tt := range tests {
		if got := tt.event.VimString(); got != tt.want {
			t.Errorf("VimString() = %q, want %q", got, tt.want)
		}
	}
}
