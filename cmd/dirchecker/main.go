package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dirchecker/dirchecker/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
