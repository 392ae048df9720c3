package structure

import (
	"path"
	"strings"

	"github.com/dirchecker/dirchecker/internal/domain"
)

// PathFilter decides which directories and files are excluded from the walk.
type PathFilter struct {
	skipDirs map[string]bool
	ignore   domain.IgnoreMatcher
}

// NewPathFilter builds a filter from skip-directory names and an optional
// ignore matcher. A nil matcher disables ignore-file matching.
func NewPathFilter(skipDirs []string, ignore domain.IgnoreMatcher) *PathFilter {
	set := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		set[strings.TrimSuffix(d, "/")] = true
	}
	return &PathFilter{skipDirs: set, ignore: ignore}
}

// ShouldSkip reports whether p (slash-separated, relative to the project
// directory) is excluded. Any segment equal to a skip-directory name excludes
// the path, then the ignore matcher is consulted.
func (f *PathFilter) ShouldSkip(p string, isDir bool) bool {
	segments := splitPath(p)
	for _, s := range segments {
		if f.skipDirs[s] {
			return true
		}
	}
	if f.ignore != nil && len(segments) > 0 {
		return f.ignore.Match(segments, isDir)
	}
	return false
}

func splitPath(p string) []string {
	p = path.Clean(p)
	if p == "." || p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
