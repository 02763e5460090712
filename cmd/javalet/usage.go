package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] [--trace] eval <fragment> [fragment ...]")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] [--trace] run <file.java|->")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] [--trace] <file.java>")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] [--trace] repl")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] test [--list] [paths ...]")
	fmt.Fprintln(os.Stderr, "  javalet [--config <javalet.yml>] test --git <url> [--rev <sha>|--tag <tag>|--branch <name>] [paths ...]")
	fmt.Fprintln(os.Stderr, "  javalet version")
}
