package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SessionFileSuffix marks session files when discovering them in a directory.
const SessionFileSuffix = ".session.yml"

// Session is an ordered list of fragments evaluated against one interpreter.
type Session struct {
	Path  string
	Name  string
	Steps []SessionStep
}

// SessionStep is one fragment plus what it should produce. A nil Expect only requires the
// fragment not to fail.
type SessionStep struct {
	Input  string
	Expect *Expectation
	Line   int
}

// Expectation describes the outcome of a step. Value is compared against the Java string
// form of the result; Type against its runtime type name; Error against an error kind name.
type Expectation struct {
	Value *string
	Type  string
	Void  bool
	Error string
}

// LoadSession parses and validates a session file.
func LoadSession(path string) (*Session, error) {
	if path == "" {
		return nil, fmt.Errorf("session: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("session: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("session: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw sessionFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("session: %s is empty", absPath)
		}
		return nil, fmt.Errorf("session: parse %s: %w", absPath, err)
	}

	session := &Session{
		Path:  absPath,
		Name:  strings.TrimSpace(raw.Name),
		Steps: raw.Steps,
	}
	if session.Name == "" {
		session.Name = strings.TrimSuffix(filepath.Base(absPath), SessionFileSuffix)
	}
	if err := session.validate(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Session) validate() error {
	errs := ValidationError{Subject: "session " + filepath.Base(s.Path)}
	if len(s.Steps) == 0 {
		errs.Issues = append(errs.Issues, "steps must contain at least one entry")
	}
	for idx, step := range s.Steps {
		label := fmt.Sprintf("steps[%d] (line %d)", idx, step.Line)
		if strings.TrimSpace(step.Input) == "" {
			errs.Issues = append(errs.Issues, label+": input must not be empty")
		}
		if step.Expect == nil {
			continue
		}
		outcomes := 0
		if step.Expect.Value != nil {
			outcomes++
		}
		if step.Expect.Void {
			outcomes++
		}
		if step.Expect.Error != "" {
			outcomes++
		}
		if outcomes > 1 {
			errs.Issues = append(errs.Issues, label+": expect may name only one of value, void, error")
		}
		if step.Expect.Type != "" && (step.Expect.Void || step.Expect.Error != "") {
			errs.Issues = append(errs.Issues, label+": expect.type cannot be combined with void or error")
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// DiscoverSessions expands directories into the session files beneath them. Plain file
// arguments are kept as given. The result is sorted and free of duplicates.
func DiscoverSessions(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(d.Name(), SessionFileSuffix) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("session: walk %s: %w", root, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

type sessionFile struct {
	Name  string        `yaml:"name"`
	Steps []SessionStep `yaml:"steps"`
}

type sessionStepYAML struct {
	Input  string           `yaml:"input"`
	Expect *expectationYAML `yaml:"expect"`
}

type expectationYAML struct {
	Value *string `yaml:"value"`
	Type  string  `yaml:"type"`
	Void  bool    `yaml:"void"`
	Error string  `yaml:"error"`
}

// UnmarshalYAML accepts a bare string as shorthand for a step with no expectation.
func (s *SessionStep) UnmarshalYAML(value *yaml.Node) error {
	s.Line = value.Line
	if value.Kind == yaml.ScalarNode {
		s.Input = value.Value
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a string or a mapping", value.Line)
	}
	if err := checkKnownKeys(value, "input", "expect"); err != nil {
		return err
	}
	if expectNode := mappingValue(value, "expect"); expectNode != nil && expectNode.Kind == yaml.MappingNode {
		if err := checkKnownKeys(expectNode, "value", "type", "void", "error"); err != nil {
			return err
		}
	}

	var raw sessionStepYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	s.Input = raw.Input
	if raw.Expect != nil {
		s.Expect = &Expectation{
			Value: raw.Expect.Value,
			Type:  strings.TrimSpace(raw.Expect.Type),
			Void:  raw.Expect.Void,
			Error: strings.TrimSpace(raw.Expect.Error),
		}
	}
	return nil
}

func checkKnownKeys(node *yaml.Node, keys ...string) error {
	allowed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		allowed[key] = struct{}{}
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if _, ok := allowed[key.Value]; !ok {
			return fmt.Errorf("line %d: field %s not found", key.Line, key.Value)
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
