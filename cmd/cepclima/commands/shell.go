package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhsmendes/cep-clima/workflow"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read postal codes from stdin and look each one up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, restore, err := startSession(cmd)
			defer restore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session.Subscribe(func(st workflow.State) {
				renderState(out, st)
			})

			fmt.Fprintln(out, banner)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "CEP> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					break
				}
				line := strings.TrimRight(scanner.Text(), "\r")
				switch strings.TrimSpace(line) {
				case "":
					continue
				case "sair":
					return nil
				}
				session.Submit(cmd.Context(), line)
			}
			return scanner.Err()
		},
	}
}
