package tui_test

import (
	"strings"
	"testing"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/tui"
	"github.com/dirchecker/dirchecker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport(strict bool) *domain.Report {
	r := &domain.Report{
		Root:  "src",
		Stats: domain.Stats{ComponentsFound: 2, DirectoriesScanned: 7, FilesChecked: 10},
	}
	r.Add(domain.SeverityError, "Missing mandatory files: index.js", "src/backend/api/auth")
	r.Add(domain.SeverityWarning, "Invalid service 'svc'. Valid values: api, web", "src/backend/svc/x")
	r.Add(domain.SeverityOptionalWarning, "Missing optional files: README.md", "src/frontend/web/ui")
	r.Add(domain.SeverityInfo, "Validating component directory", "src/frontend/web/ui")
	r.Finalize(strict)
	return r
}

func TestRenderReport_Statistics(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelWarn})
	assert.Contains(t, out, "Repository Structure Validation Results")
	assert.Contains(t, out, "Components found: 2")
	assert.Contains(t, out, "Directories scanned: 7")
	assert.Contains(t, out, "Files checked: 10")
}

func TestRenderReport_SummaryCountsEveryBucket(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelError})
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "1 warning(s)")
	assert.Contains(t, out, "1 optional file warning(s)")
	assert.Contains(t, out, "1 info message(s)")
}

func TestRenderReport_LogLevelGatesBuckets(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelError})
	assert.Contains(t, out, "Missing mandatory files: index.js")
	assert.Contains(t, out, "Invalid service 'svc'")
	assert.NotContains(t, out, "Missing optional files")
	assert.NotContains(t, out, "Validating component directory")

	out = tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelWarn})
	assert.Contains(t, out, "Missing optional files: README.md")
	assert.NotContains(t, out, "Validating component directory")

	out = tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelInfo})
	assert.Contains(t, out, "Validating component directory")
}

func TestRenderReport_VerboseShowsEverything(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{LogLevel: domain.LogLevelError, Verbose: true})
	assert.Contains(t, out, "Missing optional files: README.md")
	assert.Contains(t, out, "Validating component directory")
}

func TestRenderReport_BucketOrder(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{Verbose: true})
	e := strings.Index(out, "Found 1 error(s):")
	w := strings.Index(out, "Found 1 warning(s):")
	o := strings.Index(out, "Found 1 optional file warning(s):")
	i := strings.Index(out, "Found 1 info message(s):")
	assert.True(t, e >= 0 && e < w && w < o && o < i, "buckets out of order")
}

func TestRenderReport_IncludesPath(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{})
	assert.Contains(t, out, "src/backend/api/auth")
}

func TestRenderReport_FinalStatus(t *testing.T) {
	out := tui.RenderReport(sampleReport(false), tui.RenderOptions{})
	assert.Contains(t, out, "Validation failed due to errors above.")

	r := &domain.Report{Root: "src"}
	r.Add(domain.SeverityWarning, "Directory exceeds maximum depth (3)", "src/a/b/c/d/e")
	r.Finalize(false)
	assert.Contains(t, tui.RenderReport(r, tui.RenderOptions{}), "Validation passed with warnings/info above.")

	r.Finalize(true)
	assert.Contains(t, tui.RenderReport(r, tui.RenderOptions{}), "warnings are fatal in strict mode")
}

func TestRenderReport_AllClear(t *testing.T) {
	r := &domain.Report{Root: "src", Stats: domain.Stats{ComponentsFound: 1}}
	r.Finalize(false)

	out := tui.RenderReport(r, tui.RenderOptions{})
	assert.Contains(t, out, "All validations passed!")
	assert.NotContains(t, out, "Summary")
}

func TestRenderReport_CommitHashShortened(t *testing.T) {
	r := &domain.Report{Root: "src", CommitHash: "0123456789abcdef0123456789abcdef01234567"}
	r.Finalize(false)

	out := tui.RenderReport(r, tui.RenderOptions{})
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef")
}
