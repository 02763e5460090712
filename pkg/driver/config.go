package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "javalet.yml"

// HomeEnv overrides the directory holding history and the suite cache.
const HomeEnv = "JAVALET_HOME"

// ErrConfigNotFound is returned by FindConfig when no config file exists up the tree.
var ErrConfigNotFound = errors.New("config: javalet.yml not found")

// Config holds CLI settings read from javalet.yml.
type Config struct {
	Path               string
	Prompt             string
	ContinuationPrompt string
	HistoryFile        string
	Preload            []string
	ShowVoid           bool
	Suites             SuiteSettings
}

// SuiteSettings configures session suite fetching.
type SuiteSettings struct {
	CacheDir string
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	home := javaletHome()
	return &Config{
		Prompt:             "jl> ",
		ContinuationPrompt: "..> ",
		HistoryFile:        filepath.Join(home, "history"),
		Suites:             SuiteSettings{CacheDir: filepath.Join(home, "suites")},
	}
}

func javaletHome() string {
	if dir := strings.TrimSpace(os.Getenv(HomeEnv)); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".javalet")
	}
	return ".javalet"
}

// FindConfig walks up from start looking for javalet.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", start, err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// ResolveConfig loads the explicit config path when given, otherwise the nearest
// javalet.yml above workDir, falling back to defaults.
func ResolveConfig(explicit, workDir string) (*Config, error) {
	if strings.TrimSpace(explicit) != "" {
		return LoadConfig(explicit)
	}
	path, err := FindConfig(workDir)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}

// LoadConfig parses a config file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			cfg := DefaultConfig()
			cfg.Path = absPath
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs ValidationError
	errs.Subject = "config"
	if strings.TrimSpace(c.Prompt) == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	for i, fragment := range c.Preload {
		if strings.TrimSpace(fragment) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("preload[%d] must be a non-empty fragment", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type configFile struct {
	Prompt             *string    `yaml:"prompt"`
	ContinuationPrompt *string    `yaml:"continuation_prompt"`
	HistoryFile        string     `yaml:"history_file"`
	Preload            stringList `yaml:"preload"`
	ShowVoid           bool       `yaml:"show_void"`
	Suites             *struct {
		CacheDir string `yaml:"cache_dir"`
	} `yaml:"suites"`
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	baseDir := filepath.Dir(path)
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	if cf.ContinuationPrompt != nil {
		cfg.ContinuationPrompt = *cf.ContinuationPrompt
	}
	if cf.HistoryFile != "" {
		cfg.HistoryFile = expandPath(cf.HistoryFile, baseDir)
	}
	cfg.Preload = cf.Preload.Clone()
	cfg.ShowVoid = cf.ShowVoid
	if cf.Suites != nil && cf.Suites.CacheDir != "" {
		cfg.Suites.CacheDir = expandPath(cf.Suites.CacheDir, baseDir)
	}
	return cfg
}

// expandPath resolves ~ and paths relative to the config file's directory.
func expandPath(path, baseDir string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}

type stringList []string

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	copy(out, l)
	return out
}

// UnmarshalYAML accepts either a single string or a sequence of strings.
func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = stringList{value.Value}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected a string", item.Line)
			}
			items = append(items, item.Value)
		}
		*l = stringList(items)
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// ValidationError aggregates validation failures of a config or session file.
type ValidationError struct {
	Subject string
	Issues  []string
}

func (e *ValidationError) Error() string {
	subject := e.Subject
	if subject == "" {
		subject = "driver"
	}
	if len(e.Issues) == 0 {
		return subject + ": invalid file"
	}
	var b strings.Builder
	b.WriteString(subject)
	b.WriteString(" validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}
