package reactive

import (
	"errors"
	"fmt"
	"testing"
)

func TestSignalSetNotifies(t *testing.T) {
	s := NewSignal(0)
	calls := 0
	stop := s.Subscribe(func() { calls++ })

	s.Set(1)
	if s.Get() != 1 {
		t.Errorf("Get() = %d, want 1", s.Get())
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	// Same value: no notification
	s.Set(1)
	if calls != 1 {
		t.Errorf("equal Set should not notify, calls = %d", calls)
	}

	stop()
	s.Set(2)
	if calls != 1 {
		t.Errorf("unsubscribed callback was called")
	}
}

func TestSignalUpdate(t *testing.T) {
	count := NewSignal(0)
	count.Update(func(n int) int { return n + 1 })
	count.Update(func(n int) int { return n + 1 })
	count.Update(func(n int) int { return n - 1 })

	if count.Get() != 1 {
		t.Errorf("Get() = %d, want 1", count.Get())
	}
}

func TestSignalAtomicNotificationPass(t *testing.T) {
	s := NewSignal("a")
	var seen []string

	// First subscriber writes during the pass; the second subscriber must
	// still see the value that started the pass.
	s.Subscribe(func() {
		v := s.Get()
		seen = append(seen, "first:"+v)
		if v == "b" {
			s.Set("c")
		}
	})
	s.Subscribe(func() {
		seen = append(seen, "second:"+s.Get())
	})

	s.Set("b")

	want := []string{"first:b", "second:b", "first:c", "second:c"}
	if fmt.Sprint(seen) != fmt.Sprint(want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
	if s.Get() != "c" {
		t.Errorf("Get() = %q, want c", s.Get())
	}
}

func TestSignalQueuedUpdatesCompose(t *testing.T) {
	on := NewSignal(false)
	first := true
	on.Subscribe(func() {
		if first {
			first = false
			on.Update(func(b bool) bool { return !b })
			on.Update(func(b bool) bool { return !b })
		}
	})

	on.Set(true)
	if !on.Get() {
		t.Error("two queued toggles should restore the value")
	}
}

func TestSignalWithEquals(t *testing.T) {
	type point struct{ X, Y int }
	s := NewSignal(point{1, 2}).WithEquals(func(a, b point) bool { return a.X == b.X })
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Set(point{1, 99})
	if calls != 0 {
		t.Error("custom equality should suppress notification")
	}
	if s.Get().Y != 2 {
		t.Error("value should not change when considered equal")
	}
}

func TestSignalListenerAndClose(t *testing.T) {
	s := NewSignal(0)
	calls := 0
	l := NewListenerFunc(func() { calls++ })
	stop := s.SubscribeListener(l)
	s.SubscribeListener(l)

	if s.Subscribers() != 1 {
		t.Fatalf("Subscribers = %d, want 1", s.Subscribers())
	}
	s.Set(1)
	stop()
	s.Set(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	s.Subscribe(func() {})
	s.Close()
	if s.Subscribers() != 0 {
		t.Error("Close should drop subscribers")
	}
	if s.ID() == 0 {
		t.Error("signal should have an ID")
	}
}

func TestDefaultEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"int vs string", 1, "1", false},
		{"strings", "a", "a", true},
		{"slices deep", []int{1, 2}, []int{1, 2}, true},
		{"nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultEquals[any](tt.a, tt.b); got != tt.want {
				t.Errorf("DefaultEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		op   string
		err  error
		code string
	}{
		{"read", ErrNoProvider, "E101"},
		{"write", ErrNoProvider, "E102"},
		{"provide", ErrDuplicateProvider, "E103"},
		{"use", ErrNilOwner, "E100"},
		{"provide", ErrDisposed, "E104"},
	}
	for _, tt := range tests {
		err := &ConfigurationError{Op: tt.op, Name: "theme", Err: tt.err}
		if !errors.Is(err, tt.err) {
			t.Errorf("errors.Is(%v, %v) = false", err, tt.err)
		}
		if err.ErrorCode() != tt.code {
			t.Errorf("%s/%v: ErrorCode = %s, want %s", tt.op, tt.err, err.ErrorCode(), tt.code)
		}
	}

	err := &ConfigurationError{Op: "read", Name: "theme", Err: ErrNoProvider}
	if got := err.Error(); got != `read "theme": statecore: no provider in scope` {
		t.Errorf("Error() = %q", got)
	}
}

func TestSignalSubscriberReadsCommittedValue(t *testing.T) {
	s := NewSignal("light")
	var seen []string
	s.Subscribe(func() { seen = append(seen, s.Get()) })

	s.Set("dark")
	s.Set("dark")

	if len(seen) != 1 || seen[0] != "dark" {
		t.Errorf("seen = %v, want [dark]", seen)
	}
}
