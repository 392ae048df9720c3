package structure

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/dirchecker/dirchecker/internal/domain"
)

// checkFiles reports mandatory and optional files of a component directory.
// Missing lists keep the configured order; the found list is sorted. Only
// mandatory checks count towards FilesChecked.
func (v *Validator) checkFiles(r *domain.Report, component string) {
	var missingMandatory, missingOptional, present []string
	found := make(map[string]bool)

	for _, name := range v.cfg.MandatoryFiles {
		r.Stats.FilesChecked++
		if v.fileExists(component, name) {
			present = append(present, name)
			found[name] = true
		} else {
			missingMandatory = append(missingMandatory, name)
		}
	}

	for _, name := range v.cfg.OptionalFiles {
		if v.fileExists(component, name) {
			if !found[name] {
				present = append(present, name)
				found[name] = true
			}
		} else {
			missingOptional = append(missingOptional, name)
		}
	}

	if len(missingMandatory) > 0 {
		r.Add(policySeverity(v.cfg.FailOnMissingFiles),
			fmt.Sprintf("Missing mandatory files: %s", strings.Join(missingMandatory, ", ")),
			component)
	}

	if len(missingOptional) > 0 {
		r.Add(domain.SeverityOptionalWarning,
			fmt.Sprintf("Missing optional files: %s", strings.Join(missingOptional, ", ")),
			component)
	}

	if len(present) > 0 {
		sort.Strings(present)
		r.Add(domain.SeverityInfo,
			fmt.Sprintf("Found required files: %s", strings.Join(present, ", ")),
			component)
	}
}

// fileExists reports whether name is a non-directory entry inside dir that is
// not matched by a skip-file pattern. Any stat error counts as absent.
func (v *Validator) fileExists(dir, name string) bool {
	if v.isSkippedFile(path.Base(name)) {
		return false
	}
	info, err := fs.Stat(v.fsys, path.Join(dir, name))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (v *Validator) isSkippedFile(name string) bool {
	for _, g := range v.skipFiles {
		if g.Match(name) {
			return true
		}
	}
	return false
}
