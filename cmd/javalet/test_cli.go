package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"javalet/interpreter-go/pkg/driver"
	"javalet/interpreter-go/pkg/interpreter"
)

// testCliConfig is the parsed form of `javalet test` arguments.
type testCliConfig struct {
	Targets  []string
	ListOnly bool
	Suite    *driver.SuiteSource
}

func runTest(args []string, cfg *driver.Config) int {
	config, err := parseTestArguments(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet test: %v\n", err)
		return 1
	}

	base := ""
	if config.Suite != nil {
		checkout, err := driver.FetchSuite(cfg.Suites.CacheDir, *config.Suite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "javalet test: %v\n", err)
			return 2
		}
		fmt.Fprintf(os.Stdout, "suite %s at %s\n", config.Suite.URL, checkout.Version)
		base = checkout.Dir
	}

	targets := resolveTestTargets(base, config.Targets)
	paths, err := driver.DiscoverSessions(targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet test: %v\n", err)
		return 2
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stdout, "javalet test: no session files found")
		return 0
	}
	if config.ListOnly {
		for _, path := range paths {
			fmt.Fprintln(os.Stdout, path)
		}
		return 0
	}

	sessions := make([]*driver.Session, 0, len(paths))
	for _, path := range paths {
		session, err := driver.LoadSession(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "javalet test: %v\n", err)
			return 2
		}
		sessions = append(sessions, session)
	}

	failedSessions := 0
	totalSteps := 0
	failedSteps := 0
	for _, session := range sessions {
		report := interpreter.RunSession(session)
		totalSteps += len(report.Steps)
		failed := report.Failed()
		failedSteps += failed
		if failed == 0 {
			fmt.Fprintf(os.Stdout, "PASS %s (%d steps)\n", report.Name, len(report.Steps))
			continue
		}
		failedSessions++
		fmt.Fprintf(os.Stdout, "FAIL %s (%d of %d steps failed)\n", report.Name, failed, len(report.Steps))
		for _, step := range report.Steps {
			if step.Passed {
				continue
			}
			fmt.Fprintf(os.Stdout, "  %s:%d %q: %s\n", displayPath(report.Path), step.Line, step.Input, step.Detail)
		}
	}

	fmt.Fprintf(os.Stdout, "%d sessions, %d steps, %d failed\n", len(sessions), totalSteps, failedSteps)
	if failedSessions > 0 {
		return 1
	}
	return 0
}

func parseTestArguments(args []string) (testCliConfig, error) {
	var config testCliConfig
	var suite driver.SuiteSource
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--list":
			config.ListOnly = true
		case "--git", "--rev", "--tag", "--branch":
			val, err := expectFlagValue(arg, nextArg(args, &i))
			if err != nil {
				return testCliConfig{}, err
			}
			switch arg {
			case "--git":
				suite.URL = val
			case "--rev":
				suite.Rev = val
			case "--tag":
				suite.Tag = val
			case "--branch":
				suite.Branch = val
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return testCliConfig{}, fmt.Errorf("unknown flag %s", arg)
			}
			config.Targets = append(config.Targets, arg)
		}
	}
	revisionSet := suite.Rev != "" || suite.Tag != "" || suite.Branch != ""
	if suite.URL == "" && revisionSet {
		return testCliConfig{}, fmt.Errorf("--rev, --tag and --branch require --git")
	}
	if suite.URL != "" {
		config.Suite = &suite
	}
	return config, nil
}

// resolveTestTargets roots relative targets at base (a suite checkout) and defaults to
// base itself, or the working directory when there is no suite.
func resolveTestTargets(base string, targets []string) []string {
	if len(targets) == 0 {
		if base == "" {
			return []string{"."}
		}
		return []string{base}
	}
	out := make([]string, 0, len(targets))
	for _, target := range targets {
		if base != "" && !filepath.IsAbs(target) {
			target = filepath.Join(base, target)
		}
		out = append(out, target)
	}
	return out
}

func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(cwd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
