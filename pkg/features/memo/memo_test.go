package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/statecore/pkg/reactive"
)

func TestMemoizeSameDepsComputesOnce(t *testing.T) {
	var cell Cell[int]
	calls := 0
	compute := func() int {
		calls++
		return 10
	}

	assert.Equal(t, 10, cell.Memoize(compute, 5, "x"))
	assert.Equal(t, 10, cell.Memoize(compute, 5, "x"))
	assert.Equal(t, 1, calls, "compute should run once for equal deps")

	hits, misses := cell.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestMemoizeDifferentDepsRecomputes(t *testing.T) {
	var cell Cell[int]
	calls := 0

	first := cell.Memoize(func() int { calls++; return 1 }, "d1")
	second := cell.Memoize(func() int { calls++; return 2 }, "d2")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second, "second call should return the second computation")
	assert.Equal(t, 2, calls)
}

func TestMemoizeNoDeps(t *testing.T) {
	var cell Cell[string]
	calls := 0
	compute := func() string { calls++; return "v" }

	cell.Memoize(compute)
	cell.Memoize(compute)
	assert.Equal(t, 1, calls, "an empty dependency list never changes")
}

func TestMemoizeSliceIdentity(t *testing.T) {
	type item struct {
		ID       int
		Selected bool
	}
	items := make([]item, 1000)
	items[999].Selected = true

	var cell Cell[int]
	scans := 0
	find := func() int {
		scans++
		for _, it := range items {
			if it.Selected {
				return it.ID
			}
		}
		return -1
	}
	for i := range items {
		items[i].ID = i
	}

	// Unrelated state changes do not rescan.
	for count := 0; count < 5; count++ {
		require.Equal(t, 999, cell.Memoize(find, items))
	}
	assert.Equal(t, 1, scans)

	// A new slice is a new dependency.
	items = append([]item(nil), items...)
	cell.Memoize(find, items)
	assert.Equal(t, 2, scans)
}

func TestMemoizeDepsSnapshotIsCopied(t *testing.T) {
	var cell Cell[int]
	calls := 0
	deps := []any{1}
	cell.Memoize(func() int { calls++; return 0 }, deps...)

	deps[0] = 2
	cell.Memoize(func() int { calls++; return 0 }, 1)
	assert.Equal(t, 1, calls, "mutating the caller's slice must not alter the snapshot")
}

func TestResetAndPeek(t *testing.T) {
	var cell Cell[int]
	_, ok := cell.Peek()
	assert.False(t, ok)

	cell.Memoize(func() int { return 3 }, 1)
	v, ok := cell.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	cell.Reset()
	calls := 0
	cell.Memoize(func() int { calls++; return 4 }, 1)
	assert.Equal(t, 1, calls, "Reset should force recomputation")
}

func TestObserver(t *testing.T) {
	var events []bool
	cell := NewCell[int](WithObserver(func(hit bool) { events = append(events, hit) }))

	cell.Memoize(func() int { return 1 }, 1)
	cell.Memoize(func() int { return 1 }, 1)
	cell.Memoize(func() int { return 2 }, 2)

	assert.Equal(t, []bool{false, true, false}, events)
}

func TestUseKeepsCellAcrossRenders(t *testing.T) {
	owner := reactive.NewOwner(nil)
	calls := 0
	mode := "dark"
	var got []string

	render := func() {
		owner.Render(func() {
			v := Use(owner, func() string {
				calls++
				return "theme-" + mode
			}, mode)
			got = append(got, v)
		})
	}

	render()
	render()
	mode = "light"
	render()

	assert.Equal(t, []string{"theme-dark", "theme-dark", "theme-light"}, got)
	assert.Equal(t, 2, calls)
}

func TestUseNilOwnerPanics(t *testing.T) {
	assert.Panics(t, func() {
		Use[int](nil, func() int { return 0 })
	})
}

func TestUseSlotMismatchPanics(t *testing.T) {
	owner := reactive.NewOwner(nil)
	owner.Render(func() {
		Use(owner, func() int { return 1 })
	})

	defer func() {
		_, ok := recover().(*reactive.HookSlotError)
		assert.True(t, ok, "expected a hook slot error")
	}()
	owner.Render(func() {
		Use(owner, func() string { return "" })
	})
}
