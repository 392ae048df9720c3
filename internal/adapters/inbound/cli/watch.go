package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/watcher"
	"github.com/dirchecker/dirchecker/internal/application"
	"github.com/dirchecker/dirchecker/internal/domain/structure"
)

func newWatchCmd(g *globalOptions) *cobra.Command {
	var (
		strict   bool
		jsonOut  bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run validation whenever the tree changes",
		Long:  "Validate once, then watch the project and validate again after every change until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, g.verbose)
			svc := newValidateService(log)

			absPath, err := filepath.Abs(g.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts := application.ValidateOptions{ConfigFile: g.configFile, Strict: strict, LogLevel: g.logLevel}
			cfg, err := svc.LoadConfig(absPath, opts)
			if err != nil {
				return err
			}

			run := func() {
				report, cfg, err := svc.Validate(absPath, opts)
				if err != nil {
					log.Errorf("validation: %v", err)
					return
				}
				if err := writeReport(cmd.OutOrStdout(), report, cfg, g.verbose, jsonOut); err != nil {
					log.Errorf("writing report: %v", err)
				}
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			run()

			filter := structure.NewPathFilter(cfg.SkipDirs, nil)
			w := watcher.New(log)
			w.Debounce = debounce
			w.Skip = func(rel string) bool { return filter.ShouldSkip(rel, true) }

			log.Infof("watching %s", absPath)
			return w.Run(ctx, absPath, run)
		},
	}

	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "Treat warnings as errors")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output each report as JSON")
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before re-validating")

	return cmd
}
