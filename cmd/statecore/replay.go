package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/statecore/internal/demo"
	"github.com/vango-dev/statecore/internal/replay"
	"github.com/vango-dev/statecore/pkg/features/store"
	"github.com/vango-dev/statecore/pkg/todo"
)

func replayCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a YAML script of todo actions",
		Long: `Apply a YAML script of todo actions to a fresh task list and
print the resulting list.

Script format:
  - add: "Buy milk"
  - toggle: 1
  - remove: 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := replay.ParseFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := todo.NewStore(store.WithName("replay"), store.WithLogger(a.logger))
			defer s.Dispose()
			s.Use(a.todoMiddlewares("replay")...)

			replay.Apply(s, steps, func(step replay.Step, changed bool) {
				if quiet {
					return
				}
				if changed {
					success(out, "%s", step.Action)
				} else {
					warn(out, "%s (line %d): no change", step.Action, step.Line)
				}
			})

			info(out, "%d tasks, %d remaining", s.State().Len(), s.State().Remaining())
			demo.PrintTasks(out, s.State())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the final list")

	return cmd
}
