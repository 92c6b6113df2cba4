package demo

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vango-dev/statecore/pkg/features/callback"
	"github.com/vango-dev/statecore/pkg/features/memo"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// AllUsers is the search demo's user list.
var AllUsers = []string{
	"Marcelo",
	"Nisha",
	"Eugene",
	"Pasha",
	"Nasir",
	"Eunhee",
	"Pradnya",
	"Pranav",
}

// FilterUsers returns the users whose name contains text, ignoring case.
func FilterUsers(users []string, text string) []string {
	needle := strings.ToLower(text)
	var out []string
	for _, u := range users {
		if strings.Contains(strings.ToLower(u), needle) {
			out = append(out, u)
		}
	}
	return out
}

// searchPanel is the parent component: it owns the visible users and
// renders a memoized Search child that takes the search handler as its only
// prop.
type searchPanel struct {
	owner   *reactive.Owner
	users   *reactive.Signal[[]string]
	stable  bool
	metrics func(reissued bool)

	searchRenders int
	handler       func(string)
}

func (p *searchPanel) handleSearch(text string) {
	p.users.Set(FilterUsers(AllUsers, text))
}

func (p *searchPanel) render() {
	p.owner.Render(func() {
		var deps []any
		if !p.stable {
			// A fresh function on every render.
			deps = []any{p.owner.RenderCount()}
		}
		slot := callback.UseSlot[func(string)](p.owner)
		if p.metrics != nil {
			slot.Observe(p.metrics)
		}
		h := slot.Wrap(p.handleSearch, deps...)
		p.handler = h.Func()

		memo.Use(p.owner, func() struct{} {
			p.searchRenders++
			return struct{}{}
		}, h)
	})
}

func runSearch(env Env) error {
	rng := rand.New(rand.NewPCG(env.Seed, env.Seed^0x9e3779b97f4a7c15))
	shuffle := func(users []string) []string {
		out := append([]string(nil), users...)
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	for _, stable := range []bool{false, true} {
		root := reactive.NewOwner(nil)

		p := &searchPanel{
			owner:  root,
			users:  reactive.NewSignal(AllUsers),
			stable: stable,
		}
		root.OnCleanup(p.users.Close)
		if env.Metrics != nil {
			name := "handleSearch"
			if !stable {
				name = "handleSearchUnstable"
			}
			p.metrics = env.Metrics.CallbackObserver(name)
		}

		label := "inline handler"
		if stable {
			label = "stable handler"
		}
		fmt.Fprintf(env.Out, "== %s\n", label)

		p.render()
		p.users.Subscribe(func() {
			p.render()
			fmt.Fprintf(env.Out, "users: %s  (Search renders: %d)\n", strings.Join(p.users.Get(), ", "), p.searchRenders)
		})

		p.handler("na")
		p.handler("e")
		p.users.Set(shuffle(AllUsers))
		p.handler("")

		root.Dispose()
	}
	return nil
}
