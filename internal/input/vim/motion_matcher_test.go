package vim

import (
	"testing"

	"github.com/0xsj/modaled/internal/input/key"
)

func feedMotion(t *testing.T, m *MotionMatcher, events ...key.Event) ParseResult {
	t.Helper()
	var last ParseResult
	for _, e := range events {
		last = m.Parse(e)
	}
	return last
}

func TestMotionMatcherSingleKey(t *testing.T) {
	tests := []struct {
		name  string
		event key.Event
		want  MotionKind
	}{
		{"h", digit('h'), MotionLeft},
		{"j", digit('j'), MotionDown},
		{"k", digit('k'), MotionUp},
		{"l", digit('l'), MotionRight},
		{"0", digit('0'), MotionLineStart},
		{"$", digit('$'), MotionLineEnd},
		{"up arrow", key.NewSpecialEvent(key.KeyUp, key.ModNone), MotionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMotionMatcher()
			if got := m.Parse(tt.event); got != Accept {
				t.Fatalf("Parse(%v) = %v, want Accept", tt.event, got)
			}
			motion, ok := m.Result()
			if !ok {
				t.Fatal("Result() ok = false after Accept")
			}
			if motion.Kind != tt.want {
				t.Fatalf("Kind = %v, want %v", motion.Kind, tt.want)
			}
			if motion.Repeat != 1 {
				t.Fatalf("Repeat = %d, want 1", motion.Repeat)
			}
		})
	}
}

func TestMotionMatcherWithCount(t *testing.T) {
	m := NewMotionMatcher()
	if got := feedMotion(t, m, digit('2'), digit('0'), digit('l')); got != Accept {
		t.Fatalf("final Parse = %v, want Accept", got)
	}
	motion, ok := m.Result()
	if !ok {
		t.Fatal("Result() ok = false after Accept")
	}
	if motion.Kind != MotionRight || motion.Repeat != 20 {
		t.Fatalf("motion = %+v, want {Right 20}", motion)
	}
}

func TestMotionMatcherUnknownKeyFails(t *testing.T) {
	m := NewMotionMatcher()
	if got := m.Parse(digit('z')); got != Fail {
		t.Fatalf("Parse('z') = %v, want Fail", got)
	}
}

func TestMotionMatcherLeadingZeroIsLineStart(t *testing.T) {
	m := NewMotionMatcher()
	if got := m.Parse(digit('0')); got != Accept {
		t.Fatalf("Parse('0') = %v, want Accept", got)
	}
	motion, _ := m.Result()
	if motion.Kind != MotionLineStart {
		t.Fatalf("Kind = %v, want LineStart", motion.Kind)
	}
}

func TestMotionMatcherReset(t *testing.T) {
	m := NewMotionMatcher()
	m.Parse(digit('h'))
	m.Reset()
	if _, ok := m.Result(); ok {
		t.Fatal("Result() ok = true after Reset")
	}
}
