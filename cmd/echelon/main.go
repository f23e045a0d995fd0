// SPDX-License-Identifier: MIT

// Command echelon is the Gaussian elimination tutor.
package main

import (
	"os"

	"github.com/katalvlaran/echelon/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
