package structure_test

import (
	"strings"
	"testing"

	"github.com/dirchecker/dirchecker/internal/domain/structure"
	"github.com/stretchr/testify/assert"
)

// ignoreFunc adapts a function to domain.IgnoreMatcher.
type ignoreFunc func(path []string, isDir bool) bool

func (f ignoreFunc) Match(path []string, isDir bool) bool { return f(path, isDir) }

func TestPathFilter_SkipDirsMatchAnySegment(t *testing.T) {
	f := structure.NewPathFilter([]string{".git", "node_modules"}, nil)

	assert.True(t, f.ShouldSkip(".git/objects", true))
	assert.True(t, f.ShouldSkip("node_modules/package", true))
	assert.True(t, f.ShouldSkip("src/frontend/node_modules", true))
	assert.True(t, f.ShouldSkip("src/frontend/node_modules/lib/deep", true))
	assert.False(t, f.ShouldSkip("src/main", true))
}

func TestPathFilter_SegmentsMustMatchExactly(t *testing.T) {
	f := structure.NewPathFilter([]string{"build"}, nil)

	assert.False(t, f.ShouldSkip("src/builder", true))
	assert.False(t, f.ShouldSkip("src/prebuild", true))
	assert.True(t, f.ShouldSkip("src/build", true))
}

func TestPathFilter_TrailingSlashInSkipDir(t *testing.T) {
	f := structure.NewPathFilter([]string{"dist/"}, nil)
	assert.True(t, f.ShouldSkip("src/dist", true))
}

func TestPathFilter_ConsultsIgnoreMatcher(t *testing.T) {
	var gotPath []string
	var gotDir bool
	ignore := ignoreFunc(func(path []string, isDir bool) bool {
		gotPath, gotDir = path, isDir
		return strings.HasPrefix(path[len(path)-1], "tmp")
	})
	f := structure.NewPathFilter(nil, ignore)

	assert.True(t, f.ShouldSkip("src/tmp-cache", true))
	assert.Equal(t, []string{"src", "tmp-cache"}, gotPath)
	assert.True(t, gotDir)

	assert.False(t, f.ShouldSkip("./src/app", false))
	assert.Equal(t, []string{"src", "app"}, gotPath)
	assert.False(t, gotDir)
}

func TestPathFilter_SkipDirsWinBeforeIgnore(t *testing.T) {
	called := false
	ignore := ignoreFunc(func([]string, bool) bool {
		called = true
		return false
	})
	f := structure.NewPathFilter([]string{"vendor"}, ignore)

	assert.True(t, f.ShouldSkip("src/vendor", true))
	assert.False(t, called)
}

func TestPathFilter_RootIsNeverSkipped(t *testing.T) {
	ignore := ignoreFunc(func([]string, bool) bool { return true })
	f := structure.NewPathFilter(nil, ignore)
	assert.False(t, f.ShouldSkip(".", true))
}
