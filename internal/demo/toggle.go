package demo

import (
	"fmt"

	"github.com/vango-dev/statecore/internal/errors"
	ctxchan "github.com/vango-dev/statecore/pkg/features/context"
	"github.com/vango-dev/statecore/pkg/reactive"
)

// GlobalToggle is the flag shared by the toggle demo's children.
var GlobalToggle = ctxchan.Create[bool]("toggle")

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func runToggle(env Env) error {
	parent := reactive.NewOwner(nil)
	defer parent.Dispose()

	if _, err := GlobalToggle.Provide(parent, false); err != nil {
		return err
	}

	// ChildToggle holds only the mutator; ChildDisplay only reads.
	childToggle := reactive.NewOwner(parent)
	setToggle, err := GlobalToggle.Use(childToggle)
	if err != nil {
		return err
	}

	childDisplay := reactive.NewOwner(parent)
	display, err := GlobalToggle.Use(childDisplay)
	if err != nil {
		return err
	}

	render := func() {
		fmt.Fprintf(env.Out, "Current State: %s\n", onOff(display.Read()))
	}
	render()
	display.Subscribe(render)

	flip := func(on bool) bool { return !on }
	setToggle.Update(flip)
	setToggle.Update(flip)
	setToggle.Update(flip)

	// A display mounted outside the provider is a wiring mistake.
	orphan := reactive.NewOwner(nil)
	defer orphan.Dispose()
	if _, err := GlobalToggle.Read(orphan); err != nil {
		fmt.Fprintf(env.Out, "Orphan display: %s\n", errors.FromError(err, "E101").FormatCompact())
	}
	return nil
}
