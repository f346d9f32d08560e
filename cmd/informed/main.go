// Command informed loads a search problem from a YAML or HCL file, solves it
// with A* or IDA*, and prints the path with its statistics.
//
// Usage:
//
//	informed solve [--engine astar|idastar] [--verify [--verify-max-states N]] [--format text|yaml] FILE
//	informed check FILE
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		os.Exit(1)
	}
}
