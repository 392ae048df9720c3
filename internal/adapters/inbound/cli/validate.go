package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/tui"
	"github.com/dirchecker/dirchecker/internal/application"
	"github.com/dirchecker/dirchecker/internal/domain"
)

func runValidate(cmd *cobra.Command, g *globalOptions, strict, jsonOut bool) error {
	svc := newValidateService(newLogger(cmd, g.verbose))

	report, cfg, err := svc.Validate(g.path, application.ValidateOptions{
		ConfigFile: g.configFile,
		Strict:     strict,
		LogLevel:   g.logLevel,
	})
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), report, cfg, g.verbose, jsonOut); err != nil {
		return err
	}
	if !report.Passed() {
		return ErrValidationFailed
	}
	return nil
}

func writeReport(w io.Writer, report *domain.Report, cfg domain.Config, verbose, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := fmt.Fprint(w, tui.RenderReport(report, tui.RenderOptions{
		LogLevel: cfg.MinLogLevel(),
		Verbose:  verbose,
	}))
	return err
}
