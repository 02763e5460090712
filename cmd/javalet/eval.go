package main

import (
	"fmt"
	"os"

	"javalet/interpreter-go/pkg/driver"
)

// runEval evaluates each argument as a separate fragment against one interpreter.
func runEval(args []string, cfg *driver.Config, opts globalOptions) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "javalet eval expects at least one fragment")
		return 1
	}
	session, err := newCLISession(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet eval: %v\n", err)
		return 1
	}
	defer session.Close()

	for _, fragment := range args {
		if !session.evaluate(fragment, "", 0) {
			return 1
		}
	}
	return 0
}
