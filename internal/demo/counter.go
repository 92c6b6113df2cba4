package demo

import (
	"fmt"

	"github.com/vango-dev/statecore/pkg/reactive"
)

func runCounter(env Env) error {
	root := reactive.NewOwner(nil)
	defer root.Dispose()

	count := reactive.NewSignal(0)
	root.OnCleanup(count.Close)

	render := func() {
		fmt.Fprintf(env.Out, "Count is %d\n", count.Get())
	}
	render()
	count.Subscribe(render)

	increment := func(n int) int { return n + 1 }
	decrement := func(n int) int { return n - 1 }

	count.Update(increment)
	count.Update(increment)
	count.Update(decrement)
	return nil
}
