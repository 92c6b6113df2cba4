package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/statecore/internal/demo"
)

func demoCmd(a *app) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Run an example",
		Long: `Run one of the bundled demos and print what its components
render after every state change.

Without a name, lists the available demos.

Examples:
  statecore demo
  statecore demo todo
  statecore demo search --seed 7
  statecore demo selection --metrics-addr :9090`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demo.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range demo.Names() {
					d, _ := demo.Lookup(name)
					fmt.Fprintf(out, "  %-10s %s\n", d.Name, d.Description)
				}
				return nil
			}

			name := strings.ToLower(args[0])
			env := demo.Env{
				Out:             out,
				Logger:          a.logger,
				Metrics:         a.collector,
				TodoMiddlewares: a.todoMiddlewares(name),
				SelectionSize:   a.cfg.Demo.SelectionSize,
				Seed:            seed,
			}
			if err := demo.Run(name, env); err != nil {
				return err
			}
			success(out, "demo %s finished", name)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the search demo's shuffle")

	return cmd
}
