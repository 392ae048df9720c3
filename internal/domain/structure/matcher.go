package structure

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/dirchecker/dirchecker/internal/domain"
)

type valuePattern struct {
	raw string
	g   glob.Glob // nil for literal patterns
}

func (p valuePattern) match(value string) bool {
	switch {
	case p.raw == domain.Wildcard:
		return true
	case p.g != nil:
		return p.g.Match(value)
	default:
		return p.raw == value
	}
}

// LevelMatcher checks directory names against the allowed values of a level.
type LevelMatcher struct {
	levels map[string][]valuePattern
}

// NewLevelMatcher compiles the allowed-value patterns of every level.
// Only patterns containing "*" are treated as globs; all others must match
// exactly.
func NewLevelMatcher(validValues map[string][]string) (*LevelMatcher, error) {
	m := &LevelMatcher{levels: make(map[string][]valuePattern, len(validValues))}
	for level, raws := range validValues {
		patterns := make([]valuePattern, 0, len(raws))
		for _, raw := range raws {
			vp := valuePattern{raw: raw}
			if raw != domain.Wildcard && strings.Contains(raw, domain.Wildcard) {
				g, err := glob.Compile(raw)
				if err != nil {
					return nil, fmt.Errorf("compiling pattern %q for level %q: %w", raw, level, err)
				}
				vp.g = g
			}
			patterns = append(patterns, vp)
		}
		m.levels[level] = patterns
	}
	return m, nil
}

// IsValid reports whether value is allowed at level. Levels without a
// configured list accept anything; an empty list accepts nothing.
func (m *LevelMatcher) IsValid(level, value string) bool {
	patterns, ok := m.levels[level]
	if !ok {
		return true
	}
	for _, p := range patterns {
		if p.match(value) {
			return true
		}
	}
	return false
}
