package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/fhsmendes/cep-clima/workflow"
)

var errLookupFailed = errors.New("lookup failed")

func lookupCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup <cep>",
		Short: "Look up the address and current weather for a postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, restore, err := startSession(cmd)
			defer restore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !asJSON {
				session.Subscribe(func(st workflow.State) {
					renderState(out, st)
				})
			}

			final := session.Submit(cmd.Context(), args[0])
			if asJSON {
				if err := renderJSON(out, final); err != nil {
					return err
				}
			}
			if final.Status == workflow.StatusError {
				return errLookupFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final state as JSON")
	return cmd
}
