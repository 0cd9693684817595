// Package main provides the codebook command.
package main

import (
	"os"

	"github.com/idp-tools/codebook/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
