package store

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/statecore/pkg/reactive"
)

// counter adds its action to the state; zero is a no-op.
func counter(n, delta int) (int, bool) {
	if delta == 0 {
		return n, false
	}
	return n + delta, true
}

func TestDispatchNotifiesOncePerChange(t *testing.T) {
	s := New(0, counter)
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Dispatch(2)
	s.Dispatch(0)
	s.Dispatch(-1)

	assert.Equal(t, 1, s.State())
	assert.Equal(t, 2, calls, "no-op dispatch must not notify")
	assert.Equal(t, uint64(2), s.Version())
}

func TestSubscriberSeesNewState(t *testing.T) {
	s := New(0, counter)
	var seen []int
	s.Subscribe(func() { seen = append(seen, s.State()) })

	s.Dispatch(1)
	s.Dispatch(1)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestReentrantDispatchIsQueued(t *testing.T) {
	s := New(0, counter)
	var log []string

	s.Subscribe(func() {
		log = append(log, "a saw "+strconv.Itoa(s.State()))
		if s.State() == 1 {
			s.Dispatch(10)
			// Still the state of the current notification pass.
			log = append(log, "a after nested dispatch "+strconv.Itoa(s.State()))
		}
	})
	s.Subscribe(func() {
		log = append(log, "b saw "+strconv.Itoa(s.State()))
	})

	s.Dispatch(1)

	assert.Equal(t, []string{
		"a saw 1",
		"a after nested dispatch 1",
		"b saw 1",
		"a saw 11",
		"b saw 11",
	}, log)
	assert.Equal(t, 11, s.State(), "queued dispatch is applied before Dispatch returns")
}

func TestUnsubscribe(t *testing.T) {
	s := New(0, counter)
	calls := 0
	stop := s.Subscribe(func() { calls++ })
	s.Dispatch(1)
	stop()
	s.Dispatch(1)
	assert.Equal(t, 1, calls)

	l := reactive.NewListenerFunc(func() { calls++ })
	stopL := s.SubscribeListener(l)
	s.Dispatch(1)
	stopL()
	s.Dispatch(1)
	assert.Equal(t, 2, calls)
}

func TestMiddlewareOrderAndOutcome(t *testing.T) {
	s := New(0, counter)
	var trace []string

	named := func(name string) Middleware[int] {
		return func(next Transition[int]) Transition[int] {
			return func(a int) bool {
				trace = append(trace, name+">")
				changed := next(a)
				trace = append(trace, "<"+name+" changed="+strconv.FormatBool(changed))
				return changed
			}
		}
	}

	s.Use(named("outer"), named("inner"))
	s.Dispatch(1)
	s.Dispatch(0)

	assert.Equal(t, []string{
		"outer>", "inner>", "<inner changed=true", "<outer changed=true",
		"outer>", "inner>", "<inner changed=false", "<outer changed=false",
	}, trace)

	trace = nil
	s.Use(named("later"))
	s.Dispatch(1)
	require.NotEmpty(t, trace)
	assert.Equal(t, "later>", trace[0], "a later Use wraps earlier middlewares")
}

func TestDisposeDropsDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(0, counter, WithName("counter"), WithLogger(logger))
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Dispose()
	s.Dispose()
	s.Dispatch(5)

	assert.True(t, s.IsDisposed())
	assert.Equal(t, 0, s.State())
	assert.Equal(t, 0, calls)
	assert.Equal(t, "counter", s.Name())
	assert.Contains(t, buf.String(), "dispatch after dispose dropped")
	assert.Contains(t, buf.String(), "store=counter")
	assert.Equal(t, 1, strings.Count(buf.String(), "store disposed"))
}

func TestUseKeepsStoreAndDisposesWithOwner(t *testing.T) {
	owner := reactive.NewOwner(nil)
	var stores []*Store[int, int]

	for i := 0; i < 2; i++ {
		owner.Render(func() {
			stores = append(stores, Use(owner, 0, counter, WithName("hook")))
		})
	}

	require.Len(t, stores, 2)
	assert.Same(t, stores[0], stores[1])

	stores[0].Dispatch(3)
	assert.Equal(t, 3, stores[1].State())

	owner.Dispose()
	assert.True(t, stores[0].IsDisposed())
}

func TestUseNilOwnerPanics(t *testing.T) {
	assert.Panics(t, func() { Use(nil, 0, counter) })
}

type namedAction struct{}

func (namedAction) ActionName() string { return "named" }

func TestActionName(t *testing.T) {
	assert.Equal(t, "named", ActionName(namedAction{}))
	assert.Equal(t, "int", ActionName(3))
	assert.Equal(t, "<nil>", ActionName(nil))
}
