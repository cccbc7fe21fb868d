package mode

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Insert, "insert"},
		{Normal, "normal"},
		{Visual, "visual"},
		{Mode(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMaskOfAllows(t *testing.T) {
	m := MaskOf(Normal, Visual)

	if !m.Allows(Normal) {
		t.Error("expected mask to allow Normal")
	}
	if !m.Allows(Visual) {
		t.Error("expected mask to allow Visual")
	}
	if m.Allows(Insert) {
		t.Error("expected mask to not allow Insert")
	}
}

func TestMaskOfEmpty(t *testing.T) {
	m := MaskOf()
	if m.Allows(Normal) || m.Allows(Insert) || m.Allows(Visual) {
		t.Error("expected empty mask to allow nothing")
	}
}

func TestForMode(t *testing.T) {
	tests := []struct {
		m    Mode
		want CursorStyle
	}{
		{Normal, CursorBlock},
		{Insert, CursorBar},
		{Visual, CursorUnderline},
	}

	for _, tt := range tests {
		if got := ForMode(tt.m); got != tt.want {
			t.Errorf("ForMode(%v) = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestCursorStyleString(t *testing.T) {
	tests := []struct {
		c    CursorStyle
		want string
	}{
		{CursorBlock, "block"},
		{CursorBar, "bar"},
		{CursorUnderline, "underline"},
		{CursorStyle(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CursorStyle(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
