package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/gobwas/glob"

	"github.com/dirchecker/dirchecker/internal/domain"
)

// Options tune a Validator beyond what the Config describes.
type Options struct {
	// Ignore is consulted by the path filter when the config respects
	// gitignore. Nil means no patterns were loaded.
	Ignore domain.IgnoreMatcher
	// Strict makes warning-class diagnostics fail the run.
	Strict bool
	// RootLabel names the root in messages and the report when the walk
	// root differs from how the user wrote it. Defaults to the cleaned
	// Config.RootDir.
	RootLabel string
}

// Validator walks the tree under Config.RootDir and produces a Report.
// Paths are slash-separated and relative to the root of fsys, which is
// the project directory.
type Validator struct {
	cfg       domain.Config
	fsys      fs.FS
	root      string
	filter    *PathFilter
	levels    *LevelMatcher
	skipFiles []glob.Glob
	strict    bool
	label     string
}

// NewValidator prepares a validator. The config must already have passed
// Config.Validate; pattern compilation errors are still returned.
func NewValidator(fsys fs.FS, cfg domain.Config, opts Options) (*Validator, error) {
	levels, err := NewLevelMatcher(cfg.ValidValues)
	if err != nil {
		return nil, err
	}

	skipFiles := make([]glob.Glob, 0, len(cfg.SkipFiles))
	for _, p := range cfg.SkipFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling skip_files pattern %q: %w", p, err)
		}
		skipFiles = append(skipFiles, g)
	}

	var ignore domain.IgnoreMatcher
	if cfg.RespectGitignore {
		ignore = opts.Ignore
	}

	root := path.Clean(strings.ReplaceAll(cfg.RootDir, "\\", "/"))
	label := opts.RootLabel
	if label == "" {
		label = root
	}

	return &Validator{
		cfg:       cfg,
		fsys:      fsys,
		root:      root,
		filter:    NewPathFilter(cfg.SkipDirs, ignore),
		levels:    levels,
		skipFiles: skipFiles,
		strict:    opts.Strict,
		label:     label,
	}, nil
}

// Validate runs the walk and returns a finalized report. Each call starts
// from an empty report, so repeated runs over an unchanged tree produce the
// same diagnostics in the same order. A panic during the walk is reported as
// a single fatal ERROR; whatever was collected before it is kept.
func (v *Validator) Validate() (r *domain.Report) {
	r = &domain.Report{Root: v.label}
	defer func() {
		if rec := recover(); rec != nil {
			r.Add(domain.SeverityError, fmt.Sprintf("Validation failed: %v", rec), "")
		}
		r.Finalize(v.strict)
	}()

	if err := v.run(r); err != nil {
		r.Add(domain.SeverityError, fmt.Sprintf("Validation failed: %v", err), "")
	}
	return r
}

// Root returns the root as it appears in messages and reports.
func (v *Validator) Root() string {
	return v.label
}

func (v *Validator) run(r *domain.Report) error {
	if !fs.ValidPath(v.root) {
		r.Add(domain.SeverityError, fmt.Sprintf("Root directory '%s' is outside the project", v.label), "")
		return nil
	}

	info, err := fs.Stat(v.fsys, v.root)
	if err != nil {
		r.Add(domain.SeverityError, fmt.Sprintf("Root directory '%s' not found", v.label), "")
		return nil
	}
	if !info.IsDir() {
		r.Add(domain.SeverityError, fmt.Sprintf("Root directory '%s' is not a directory", v.label), "")
		return nil
	}

	return v.walk(r, v.root, nil)
}

// walk visits the subdirectories of dir depth-first in name order. segments
// holds the names of dir relative to the root. Skipped directories are pruned.
func (v *Validator) walk(r *domain.Report, dir string, segments []string) error {
	entries, err := fs.ReadDir(v.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			r.Add(domain.SeverityWarning, "Cannot read directory", dir)
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := path.Join(dir, e.Name())
		if v.filter.ShouldSkip(p, true) {
			continue
		}

		r.Stats.DirectoriesScanned++
		rel := append(segments[:len(segments):len(segments)], e.Name())
		v.visit(r, p, rel)

		if err := v.walk(r, p, rel); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) visit(r *domain.Report, p string, rel []string) {
	depth := len(rel)
	componentDepth := v.cfg.ComponentDepth()

	switch {
	case depth == componentDepth:
		v.checkComponent(r, p, rel)
	case depth > componentDepth && v.cfg.CheckDepth:
		v.checkDepth(r, p, depth)
	}
}

func (v *Validator) checkDepth(r *domain.Report, p string, depth int) {
	switch {
	case !v.cfg.AllowSubdirs:
		r.Add(policySeverity(v.cfg.FailOnInvalidStructure),
			"Subdirectories are not allowed in components", p)
	case depth > v.cfg.MaxDepth+1:
		r.Add(policySeverity(v.cfg.FailOnInvalidStructure),
			fmt.Sprintf("Directory exceeds maximum depth (%d)", v.cfg.MaxDepth), p)
	default:
		r.Add(domain.SeverityInfo, "Subdirectory in component", p)
	}
}

func (v *Validator) checkComponent(r *domain.Report, p string, rel []string) {
	r.Stats.ComponentsFound++
	r.Add(domain.SeverityInfo, "Validating component directory", p)

	for i, level := range v.cfg.Levels {
		value := rel[i]
		if v.levels.IsValid(level, value) {
			r.Add(domain.SeverityInfo, fmt.Sprintf("Valid %s: '%s'", level, value), p)
			continue
		}
		r.Add(policySeverity(v.cfg.FailOnInvalidValues),
			fmt.Sprintf("Invalid %s '%s'. Valid values: %s", level, value, strings.Join(v.cfg.ValidValues[level], ", ")),
			p)
	}

	v.checkFiles(r, p)
}

func policySeverity(fail bool) domain.Severity {
	if fail {
		return domain.SeverityError
	}
	return domain.SeverityWarning
}
