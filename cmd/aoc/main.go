// Command aoc solves Advent of Code 2022 puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/aoc2022/internal/cli"
)

// Version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
