package gitignore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gi "github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/dirchecker/dirchecker/internal/domain"
)

const fileName = ".gitignore"

// Loader implements domain.IgnoreLoader for the .gitignore at the project root.
// Patterns follow git semantics: negation, anchoring, "**" and directory-only
// patterns are honoured.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads projectPath/.gitignore. A missing file yields a nil matcher.
func (l *Loader) Load(projectPath string) (domain.IgnoreMatcher, int, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("reading %s: %w", fileName, err)
	}

	patterns := Parse(data)
	if len(patterns) == 0 {
		return nil, 0, nil
	}
	return gi.NewMatcher(patterns), len(patterns), nil
}

// Parse converts .gitignore content into patterns, skipping blank lines and
// comments.
func Parse(data []byte) []gi.Pattern {
	var patterns []gi.Pattern
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gi.ParsePattern(line, nil))
	}
	return patterns
}
