package main

import (
	"fmt"
	"os"
	"strings"

	"javalet/interpreter-go/pkg/driver"
)

const cliToolVersion = "javalet 0.1.0-dev"

type globalOptions struct {
	configPath string
	trace      bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	opts, remaining, err := parseGlobalOptions(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(remaining) == 0 {
		printUsage()
		return 1
	}

	switch remaining[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	switch remaining[0] {
	case "eval":
		return runEval(remaining[1:], cfg, opts)
	case "run":
		return runFileCommand(remaining[1:], cfg, opts)
	case "repl":
		return runRepl(remaining[1:], cfg, opts)
	case "test":
		return runTest(remaining[1:], cfg)
	default:
		return runFileCommand(remaining, cfg, opts)
	}
}

// parseGlobalOptions pulls --config and --trace out of args; everything else is left
// for the subcommand.
func parseGlobalOptions(args []string) (globalOptions, []string, error) {
	var opts globalOptions
	remaining := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}
		switch {
		case arg == "--config":
			value, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				return opts, nil, err
			}
			opts.configPath = value
		case strings.HasPrefix(arg, "--config="):
			value := strings.TrimPrefix(arg, "--config=")
			if strings.TrimSpace(value) == "" {
				return opts, nil, fmt.Errorf("--config expects a value")
			}
			opts.configPath = value
		case arg == "--trace":
			opts.trace = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return opts, remaining, nil
}

func loadConfig(opts globalOptions) (*driver.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return driver.ResolveConfig(opts.configPath, cwd)
}

func nextArg(args []string, index *int) string {
	*index = *index + 1
	if *index >= len(args) {
		return ""
	}
	return args[*index]
}

func expectFlagValue(flag string, value string) (string, error) {
	if value == "" || strings.HasPrefix(value, "-") {
		return "", fmt.Errorf("%s expects a value", flag)
	}
	return value, nil
}
