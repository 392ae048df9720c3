package application

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dirchecker/dirchecker/internal/domain"
	"github.com/dirchecker/dirchecker/internal/domain/structure"
)

// ValidateOptions carries the per-run overrides given on the command line.
type ValidateOptions struct {
	// ConfigFile is an explicit config path, absolute or relative to the
	// project. Empty means discover one.
	ConfigFile string

	Strict bool

	// LogLevel overrides the configured log_level when non-empty.
	LogLevel string
}

// ValidateService runs structure validation for a project directory.
type ValidateService struct {
	configLoader domain.ConfigLoader
	ignoreLoader domain.IgnoreLoader
	gitInfo      domain.GitInfo
	log          logrus.FieldLogger
}

// NewValidateService creates a new ValidateService with all required dependencies.
// gitInfo may be nil, in which case reports carry no commit hash.
func NewValidateService(
	configLoader domain.ConfigLoader,
	ignoreLoader domain.IgnoreLoader,
	gitInfo domain.GitInfo,
	log logrus.FieldLogger,
) *ValidateService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ValidateService{
		configLoader: configLoader,
		ignoreLoader: ignoreLoader,
		gitInfo:      gitInfo,
		log:          log,
	}
}

// LoadConfig returns the effective configuration with opts applied.
func (s *ValidateService) LoadConfig(projectPath string, opts ValidateOptions) (domain.Config, error) {
	cfg, source, err := s.configLoader.Load(projectPath, opts.ConfigFile)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if source == "" {
		s.log.Debug("no config file found, using defaults")
	} else {
		s.log.Debugf("loaded config from %s", source)
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
		if err := cfg.Validate(); err != nil {
			return domain.Config{}, err
		}
	}
	return cfg, nil
}

// Validate loads the project's config, walks its tree and returns the report
// together with the config it was produced under. Internal failures during
// the walk are reported as diagnostics; the returned error covers only
// problems that prevent a run from starting.
func (s *ValidateService) Validate(projectPath string, opts ValidateOptions) (*domain.Report, domain.Config, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, domain.Config{}, fmt.Errorf("resolving project path: %w", err)
	}

	cfg, err := s.LoadConfig(absPath, opts)
	if err != nil {
		return nil, domain.Config{}, err
	}

	report, err := s.Run(absPath, cfg, opts.Strict)
	if err != nil {
		return nil, domain.Config{}, err
	}
	return report, cfg, nil
}

// Run validates projectPath under an already loaded config.
func (s *ValidateService) Run(projectPath string, cfg domain.Config, strict bool) (*domain.Report, error) {
	var ignore domain.IgnoreMatcher
	if cfg.RespectGitignore && s.ignoreLoader != nil {
		m, n, err := s.ignoreLoader.Load(projectPath)
		switch {
		case err != nil:
			s.log.Warnf("ignoring gitignore patterns: %v", err)
		case m != nil:
			s.log.Debugf("loaded %d gitignore patterns", n)
			ignore = m
		}
	}

	fsys, rootDir, inside := resolveRoot(projectPath, cfg.RootDir)
	runCfg := cfg
	runCfg.RootDir = rootDir
	opts := structure.Options{Ignore: ignore, Strict: strict}
	if !inside {
		// Ignore patterns are relative to the project and cannot apply here.
		opts.Ignore = nil
		opts.RootLabel = cfg.RootDir
	}

	v, err := structure.NewValidator(fsys, runCfg, opts)
	if err != nil {
		return nil, fmt.Errorf("preparing validator: %w", err)
	}

	s.log.Debugf("validating %s", cfg.RootDir)
	report := v.Validate()

	if s.gitInfo != nil {
		if hash, err := s.gitInfo.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		} else {
			s.log.Debugf("no commit hash: %v", err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"components": report.Stats.ComponentsFound,
		"errors":     report.Counts.Errors,
		"warnings":   report.Counts.Warnings,
	}).Debug("validation finished")
	return report, nil
}

// CheckLevel reports whether value is accepted at level, together with the
// configured valid values for that level.
func (s *ValidateService) CheckLevel(projectPath, configFile, level, value string) (bool, []string, error) {
	cfg, err := s.LoadConfig(projectPath, ValidateOptions{ConfigFile: configFile})
	if err != nil {
		return false, nil, err
	}
	m, err := structure.NewLevelMatcher(cfg.ValidValues)
	if err != nil {
		return false, nil, err
	}
	return m.IsValid(level, value), cfg.ValidValues[level], nil
}

// resolveRoot maps the configured root onto a filesystem. Relative roots are
// taken from the project directory. Roots inside the project are walked
// within it so paths in diagnostics stay project-relative; roots outside it
// are walked on their own.
func resolveRoot(projectPath, rootDir string) (fs.FS, string, bool) {
	if !filepath.IsAbs(rootDir) {
		rootDir = filepath.Join(projectPath, filepath.FromSlash(strings.ReplaceAll(rootDir, "\\", "/")))
	}
	rel, err := filepath.Rel(projectPath, rootDir)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return os.DirFS(projectPath), filepath.ToSlash(rel), true
	}
	return os.DirFS(rootDir), ".", false
}
