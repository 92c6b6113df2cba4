package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/statecore/internal/errors"
)

func errorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "List error codes or explain one",
		Long: `Without a code, list every error code statecore can report.
With a code, print its explanation, hint and documentation link.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					tmpl, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "  %s  %-7s %s\n", code, tmpl.Category, tmpl.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			tmpl, ok := errors.GetTemplate(code)
			if !ok {
				return errors.Newf(errors.CategoryCLI, "Unknown error code %q", args[0]).
					WithSuggestion("Run `statecore errors` to list the known codes.")
			}

			fmt.Fprintf(out, "%s: %s\n", code, tmpl.Message)
			if tmpl.Detail != "" {
				info(out, "%s", tmpl.Detail)
			}
			if tmpl.Suggestion != "" {
				info(out, "Hint: %s", tmpl.Suggestion)
			}
			if tmpl.DocURL != "" {
				info(out, "Docs: %s", tmpl.DocURL)
			}
			return nil
		},
	}
}
