package main

import (
	"os"

	"github.com/quantlab/risknorm/cmd/risknorm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
