package demo

import (
	"fmt"

	"github.com/vango-dev/statecore/pkg/features/memo"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Item is one entry of the selection demo's list.
type Item struct {
	ID       int
	Selected bool
}

// NewItems returns n items of which only the last is selected.
func NewItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Selected: i == n-1}
	}
	return items
}

// FindSelected scans items for the first selected one.
func FindSelected(items []Item) (Item, bool) {
	for _, it := range items {
		if it.Selected {
			return it, true
		}
	}
	return Item{}, false
}

func runSelection(env Env) error {
	size := env.SelectionSize
	if size <= 0 {
		size = 100000
	}

	root := reactive.NewOwner(nil)
	defer root.Dispose()

	items := NewItems(size)
	count := reactive.NewSignal(0)
	root.OnCleanup(count.Close)

	var opts []memo.Option
	if env.Metrics != nil {
		opts = append(opts, memo.WithObserver(env.Metrics.MemoObserver("selected")))
	}

	scans := 0
	render := func() {
		root.Render(func() {
			selected := memo.UseCell[Item](root, opts...).Memoize(func() Item {
				scans++
				it, _ := FindSelected(items)
				return it
			}, items)
			fmt.Fprintf(env.Out, "Count: %d  Selected Item: %d  (scans: %d)\n", count.Get(), selected.ID, scans)
		})
	}
	render()
	count.Subscribe(render)

	for range 3 {
		count.Update(func(n int) int { return n + 1 })
	}
	return nil
}
