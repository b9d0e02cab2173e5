// Command latticesim builds a periodic lattice from a YAML configuration,
// runs simple swap diffusion sweeps on it and prints the final state.
//
// Usage:
//
//	latticesim [--config run.yaml] [--sweeps N] [--seed S] [--verbose] [--quiet]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "latticesim:", err)
		os.Exit(1)
	}
}
