package domain

import (
	"encoding/json"
	"fmt"
)

// Severity classifies a diagnostic. The order is the display order and the
// filtering order: lower values are more severe.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityOptionalWarning
	SeverityInfo
)

// Severities lists every severity in display order.
var Severities = []Severity{
	SeverityError,
	SeverityWarning,
	SeverityOptionalWarning,
	SeverityInfo,
}

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityOptionalWarning:
		return "OPTIONAL_WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// IsWarning reports whether s counts as a warning for strict mode.
func (s Severity) IsWarning() bool {
	return s == SeverityWarning || s == SeverityOptionalWarning
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, sev := range Severities {
		if sev.String() == name {
			*s = sev
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", name)
}

// Diagnostic is a single finding produced during a run.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Path != "" {
		return fmt.Sprintf("%s: %s: %s", d.Severity, d.Message, d.Path)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// Stats holds counters accumulated during the walk.
type Stats struct {
	ComponentsFound    int `json:"components_found"`
	DirectoriesScanned int `json:"directories_scanned"`
	FilesChecked       int `json:"files_checked"`
}

// Counts holds the number of diagnostics per severity.
type Counts struct {
	Errors           int `json:"errors"`
	Warnings         int `json:"warnings"`
	OptionalWarnings int `json:"optional_warnings"`
	Infos            int `json:"infos"`
}

// Total returns the number of diagnostics of any severity.
func (c Counts) Total() int {
	return c.Errors + c.Warnings + c.OptionalWarnings + c.Infos
}

// ExitCode applies the verdict rule: 1 when any error exists, or when strict
// is set and any warning-class diagnostic exists; 0 otherwise.
func (c Counts) ExitCode(strict bool) int {
	if c.Errors > 0 {
		return 1
	}
	if strict && (c.Warnings > 0 || c.OptionalWarnings > 0) {
		return 1
	}
	return 0
}

// Report is the outcome of one validation run.
type Report struct {
	Root        string       `json:"root"`
	CommitHash  string       `json:"commit_hash,omitempty"`
	Strict      bool         `json:"strict"`
	Stats       Stats        `json:"stats"`
	Counts      Counts       `json:"counts"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	ExitCode    int          `json:"exit_code"`
}

// Add appends a diagnostic, keeping discovery order.
func (r *Report) Add(sev Severity, message, path string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Severity: sev, Message: message, Path: path})
}

// Finalize derives counts and the exit code from the collected diagnostics.
func (r *Report) Finalize(strict bool) {
	if r.Diagnostics == nil {
		r.Diagnostics = []Diagnostic{}
	}
	r.Strict = strict
	r.Counts = CountDiagnostics(r.Diagnostics)
	r.ExitCode = r.Counts.ExitCode(strict)
}

// Passed reports whether the run produced exit code 0.
func (r *Report) Passed() bool {
	return r.ExitCode == 0
}

// BySeverity returns the diagnostics of one severity in discovery order.
func (r *Report) BySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// CountDiagnostics tallies diagnostics per severity.
func CountDiagnostics(diags []Diagnostic) Counts {
	var c Counts
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			c.Errors++
		case SeverityWarning:
			c.Warnings++
		case SeverityOptionalWarning:
			c.OptionalWarnings++
		default:
			c.Infos++
		}
	}
	return c
}
