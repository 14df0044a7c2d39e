// Package main provides the CLI for the sqlbench query workbench.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
