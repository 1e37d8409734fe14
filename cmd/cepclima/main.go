package main

import (
	"os"

	"github.com/fhsmendes/cep-clima/cmd/cepclima/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
