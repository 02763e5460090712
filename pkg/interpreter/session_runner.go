package interpreter

import (
	"fmt"
	"strings"

	"javalet/interpreter-go/pkg/driver"
	"javalet/interpreter-go/pkg/runtime"
)

// SessionReport collects the outcome of each step of a session.
type SessionReport struct {
	Name  string
	Path  string
	Steps []StepOutcome
}

// StepOutcome is the verdict for one session step. Detail explains a failure.
type StepOutcome struct {
	Index  int
	Line   int
	Input  string
	Passed bool
	Detail string
}

// Failed counts the steps that did not pass.
func (r SessionReport) Failed() int {
	count := 0
	for _, step := range r.Steps {
		if !step.Passed {
			count++
		}
	}
	return count
}

// RunSession evaluates every step of a session on a fresh interpreter. Steps keep running
// after a failure so one report covers the whole file.
func RunSession(session *driver.Session) SessionReport {
	report := SessionReport{Name: session.Name, Path: session.Path}
	interp := New()
	defer interp.Close()
	for idx, step := range session.Steps {
		outcome := StepOutcome{Index: idx, Line: step.Line, Input: step.Input}
		res, err := interp.Interpret(step.Input)
		if detail := checkExpectation(step.Expect, res, err); detail != "" {
			outcome.Detail = detail
		} else {
			outcome.Passed = true
		}
		report.Steps = append(report.Steps, outcome)
	}
	return report
}

func checkExpectation(expect *driver.Expectation, res Result, err error) string {
	if expect == nil {
		if err != nil {
			return "unexpected error: " + DescribeError(err)
		}
		return ""
	}
	if expect.Error != "" {
		want, ok := ParseErrorKind(expect.Error)
		if !ok {
			return fmt.Sprintf("unknown error kind %q", expect.Error)
		}
		if err == nil {
			return fmt.Sprintf("expected %s, got success", want)
		}
		if got, _ := KindOf(err); got != want {
			return fmt.Sprintf("expected %s, got %s", want, DescribeError(err))
		}
		return ""
	}
	if err != nil {
		return "unexpected error: " + DescribeError(err)
	}
	if expect.Void {
		if !IsVoid(res) {
			text, _ := FormatResult(res)
			return "expected no result, got " + text
		}
		return ""
	}
	if expect.Value == nil && expect.Type == "" {
		return ""
	}
	val, err := ValueOf(res)
	if err != nil {
		return "unexpected error: " + DescribeError(err)
	}
	if expect.Value != nil {
		if got := FormatValue(val); got != *expect.Value {
			return fmt.Sprintf("expected value %q, got %q", *expect.Value, got)
		}
	}
	if expect.Type != "" {
		if got := runtime.TypeOf(val); !strings.EqualFold(string(got), expect.Type) {
			return fmt.Sprintf("expected type %s, got %s", expect.Type, got)
		}
	}
	return ""
}
