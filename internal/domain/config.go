package domain

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Wildcard is the allowed-value pattern that accepts any directory name.
const Wildcard = "*"

// LogLevel controls which diagnostic buckets are displayed. It never
// affects the verdict.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
)

var logLevelNames = map[string]LogLevel{
	"error": LogLevelError,
	"warn":  LogLevelWarn,
	"info":  LogLevelInfo,
}

// ParseLogLevel parses "error", "warn" or "info" (case-insensitive).
func ParseLogLevel(s string) (LogLevel, error) {
	if l, ok := logLevelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LogLevelWarn, fmt.Errorf("unknown log_level %q (valid: error, warn, info)", s)
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	default:
		return "warn"
	}
}

// Shows reports whether diagnostics of severity s are displayed at this level.
// Errors and warnings are always displayed.
func (l LogLevel) Shows(s Severity) bool {
	switch s {
	case SeverityOptionalWarning:
		return l >= LogLevelWarn
	case SeverityInfo:
		return l >= LogLevelInfo
	default:
		return true
	}
}

// Config describes the expected repository layout. It is built once per run
// from DefaultConfig overlaid with a configuration file and is not modified
// afterwards.
type Config struct {
	RootDir                string              `yaml:"root_dir"                   json:"root_dir"`
	Levels                 []string            `yaml:"levels"                     json:"levels"`
	MaxDepth               int                 `yaml:"max_depth"                  json:"max_depth"`
	CheckDepth             bool                `yaml:"check_depth"                json:"check_depth"`
	AllowSubdirs           bool                `yaml:"allow_subdirs"              json:"allow_subdirs"`
	RespectGitignore       bool                `yaml:"respect_gitignore"          json:"respect_gitignore"`
	ValidValues            map[string][]string `yaml:"valid_values"               json:"valid_values"`
	MandatoryFiles         []string            `yaml:"mandatory_files"            json:"mandatory_files"`
	OptionalFiles          []string            `yaml:"optional_files"             json:"optional_files"`
	SkipDirs               []string            `yaml:"skip_dirs"                  json:"skip_dirs"`
	SkipFiles              []string            `yaml:"skip_files"                 json:"skip_files"`
	FailOnMissingFiles     bool                `yaml:"fail_on_missing_files"      json:"fail_on_missing_files"`
	FailOnInvalidStructure bool                `yaml:"fail_on_invalid_structure"  json:"fail_on_invalid_structure"`
	FailOnInvalidValues    bool                `yaml:"fail_on_invalid_values"     json:"fail_on_invalid_values"`
	LogLevel               string              `yaml:"log_level"                  json:"log_level"`
}

// DefaultConfig returns the built-in configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		RootDir:          "src",
		Levels:           []string{"module", "service", "component"},
		MaxDepth:         3,
		CheckDepth:       false,
		AllowSubdirs:     true,
		RespectGitignore: true,
		ValidValues: map[string][]string{
			"module":    {"frontend", "backend", "shared", "common"},
			"service":   {"api", "web", "worker", "database", "cache"},
			"component": {Wildcard},
		},
		MandatoryFiles: []string{"index.js", "package.json"},
		OptionalFiles:  []string{"README.md", "test.js", "config.json"},
		SkipDirs: []string{
			".git", ".mypy_cache", ".pytest_cache", "__pycache__",
			"build", "coverage", "dist", "node_modules",
		},
		SkipFiles:              []string{".DS_Store", "*.log", "*.tmp"},
		FailOnMissingFiles:     true,
		FailOnInvalidStructure: true,
		FailOnInvalidValues:    false,
		LogLevel:               "warn",
	}
}

// MinLogLevel returns the parsed display level, falling back to warn.
func (c Config) MinLogLevel() LogLevel {
	l, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return LogLevelWarn
	}
	return l
}

// ComponentDepth is the depth below root at which component directories live.
func (c Config) ComponentDepth() int {
	return len(c.Levels)
}

// Validate checks the shape of the config and returns a descriptive error.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RootDir) == "" {
		return fmt.Errorf("root_dir must not be empty")
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("levels must name at least one hierarchy level")
	}
	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("levels[%d] must not be empty", i)
		}
		if seen[l] {
			return fmt.Errorf("duplicate level %q in levels", l)
		}
		seen[l] = true
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0 (got %d)", c.MaxDepth)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	for level, patterns := range c.ValidValues {
		for _, p := range patterns {
			if !strings.Contains(p, Wildcard) {
				continue
			}
			if _, err := glob.Compile(p); err != nil {
				return fmt.Errorf("valid_values[%q]: invalid pattern %q: %w", level, p, err)
			}
		}
	}

	for _, p := range c.SkipFiles {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("skip_files: invalid pattern %q: %w", p, err)
		}
	}

	return nil
}
