package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dirchecker/dirchecker/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderOptions controls which buckets are displayed.
type RenderOptions struct {
	LogLevel domain.LogLevel

	// Verbose displays every bucket regardless of LogLevel.
	Verbose bool
}

type bucket struct {
	severity domain.Severity
	summary  string
	note     string
	heading  string
}

var buckets = []bucket{
	{domain.SeverityError, "error(s)", "blocking issues", "error(s)"},
	{domain.SeverityWarning, "warning(s)", "structure issues", "warning(s)"},
	{domain.SeverityOptionalWarning, "optional file warning(s)", "missing recommended files", "optional file warning(s)"},
	{domain.SeverityInfo, "info message(s)", "informational", "info message(s)"},
}

// RenderReport renders a validation report as a styled terminal string.
func RenderReport(report *domain.Report, opts RenderOptions) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("dirchecker")
	subtitle := dimStyle.Render("Repository Structure Validation Results")
	root := fileStyle.Render(report.Root)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + root))
	b.WriteString("\n\n")

	// ── Statistics ──
	b.WriteString("  " + titleStyle.Render("Statistics") + "\n")
	fmt.Fprintf(&b, "    • Components found: %d\n", report.Stats.ComponentsFound)
	fmt.Fprintf(&b, "    • Directories scanned: %d\n", report.Stats.DirectoriesScanned)
	fmt.Fprintf(&b, "    • Files checked: %d\n", report.Stats.FilesChecked)
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "    • Commit: %s\n", dimStyle.Render(shortHash(report.CommitHash)))
	}
	b.WriteString("\n")

	if len(report.Diagnostics) == 0 {
		b.WriteString("  " + passStyle.Render("All validations passed! Repository structure is compliant.") + "\n\n")
		return b.String()
	}

	// ── Summary ──
	b.WriteString("  " + titleStyle.Render("Summary") + "\n")
	for _, bk := range buckets {
		n := len(report.BySeverity(bk.severity))
		if n == 0 {
			continue
		}
		fmt.Fprintf(&b, "    • %s - %s\n",
			severityStyle(bk.severity).Render(fmt.Sprintf("%d %s", n, bk.summary)),
			dimStyle.Render(bk.note))
	}

	// ── Diagnostics ──
	for _, bk := range buckets {
		diags := report.BySeverity(bk.severity)
		if len(diags) == 0 || !shows(opts, bk.severity) {
			continue
		}
		b.WriteString("\n")
		b.WriteString("  " + severityStyle(bk.severity).Render(fmt.Sprintf("Found %d %s:", len(diags), bk.heading)) + "\n")
		for _, d := range diags {
			renderDiagnostic(&b, d)
		}
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString("  " + finalStatus(report) + "\n\n")
	return b.String()
}

func shows(opts RenderOptions, sev domain.Severity) bool {
	return opts.Verbose || opts.LogLevel.Shows(sev)
}

func renderDiagnostic(b *strings.Builder, d domain.Diagnostic) {
	tag := severityTag(d.Severity)
	if d.Path != "" {
		fmt.Fprintf(b, "    %s %s: %s\n", tag, d.Message, fileStyle.Render(d.Path))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, d.Message)
	}
}

func finalStatus(report *domain.Report) string {
	c := report.Counts
	switch {
	case c.Errors > 0:
		return failStyle.Render("Validation failed due to errors above.")
	case report.ExitCode != 0:
		return failStyle.Render("Validation failed: warnings are fatal in strict mode.")
	case c.Warnings > 0 || c.OptionalWarnings > 0 || c.Infos > 0:
		return warnStyle.Render("Validation passed with warnings/info above.")
	default:
		return passStyle.Render("Perfect! No issues found.")
	}
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("Error:  ")
	case domain.SeverityWarning, domain.SeverityOptionalWarning:
		return warnTagStyle.Render("Warning:")
	default:
		return infoTagStyle.Render("Info:   ")
	}
}

func severityStyle(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle
	case domain.SeverityWarning, domain.SeverityOptionalWarning:
		return warnTagStyle
	default:
		return infoTagStyle
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
