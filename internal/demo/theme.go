package demo

import (
	"fmt"

	ctxchan "github.com/vango-dev/statecore/pkg/features/context"
	"github.com/vango-dev/statecore/pkg/features/memo"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// Mode is a theme palette mode.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Palette is the derived theme for a mode.
type Palette struct {
	Mode       Mode
	Background string
	Text       string
}

// ThemeMode is the channel the theme provider shares.
var ThemeMode = ctxchan.Create[Mode]("theme")

func buildPalette(m Mode) Palette {
	if m == ModeDark {
		return Palette{Mode: m, Background: "#121212", Text: "#ffffff"}
	}
	return Palette{Mode: m, Background: "#ffffff", Text: "rgba(0, 0, 0, 0.87)"}
}

func runTheme(env Env) error {
	root := reactive.NewOwner(nil)
	defer root.Dispose()

	provider, err := ThemeMode.Provide(root, ModeDark)
	if err != nil {
		return err
	}
	if env.Metrics != nil {
		root.OnCleanup(env.Metrics.WatchChannel(ThemeMode.Name(), provider))
	}

	// The provider re-derives its palette only when the mode changes.
	var opts []memo.Option
	if env.Metrics != nil {
		opts = append(opts, memo.WithObserver(env.Metrics.MemoObserver("palette")))
	}
	builds := 0
	renderProvider := func() Palette {
		var p Palette
		root.Render(func() {
			mode := provider.Read()
			p = memo.UseCell[Palette](root, opts...).Memoize(func() Palette {
				builds++
				return buildPalette(mode)
			}, mode)
		})
		return p
	}

	switcher := reactive.NewOwner(root)
	theme, err := ThemeMode.Use(switcher)
	if err != nil {
		return err
	}

	render := func() {
		p := renderProvider()
		fmt.Fprintf(env.Out, "Current Mode: %s (background %s, palette builds %d)\n", theme.Read(), p.Background, builds)
	}
	render()
	theme.Subscribe(render)

	toggle := func() { theme.Update(Mode.Toggle) }
	toggle()
	toggle()

	// Rendering again without a change reuses the palette.
	render()
	return nil
}
