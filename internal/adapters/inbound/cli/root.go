package cli

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
	"github.com/dirchecker/dirchecker/internal/adapters/outbound/gitignore"
	"github.com/dirchecker/dirchecker/internal/adapters/outbound/gitinfo"
	"github.com/dirchecker/dirchecker/internal/application"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrValidationFailed is returned when the repository does not pass
// validation. The report has already been printed.
var ErrValidationFailed = errors.New("validation failed")

// globalOptions are shared by every command that validates.
type globalOptions struct {
	path       string
	configFile string
	verbose    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	var (
		strict  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "dirchecker",
		Short: "Validate repository directory structure",
		Long: "dirchecker walks a source tree and checks that every component directory " +
			"sits at the configured level names and contains the mandatory files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, g, strict, jsonOut)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.path, "path", ".", "Project directory")
	pf.StringVarP(&g.configFile, "config", "c", "", "Configuration file (default: dir-checker-config.yaml in the project)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Show every diagnostic and debug logging")
	pf.StringVarP(&g.logLevel, "log-level", "l", "", "Minimum level to display: error, warn or info")

	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "Treat warnings as errors")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the report as JSON")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(g))
	cmd.AddCommand(newConfigCmd(g))
	cmd.AddCommand(newWatchCmd(g))
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger writes operational messages to the command's stderr so they
// never mix with the report.
func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

func newValidateService(log logrus.FieldLogger) *application.ValidateService {
	return application.NewValidateService(config.New(), gitignore.New(), gitinfo.New(), log)
}
