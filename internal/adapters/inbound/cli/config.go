package cli

import (
	"github.com/spf13/cobra"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
	"github.com/dirchecker/dirchecker/internal/application"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration a validation run would use, after merging the config file over the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newValidateService(newLogger(cmd, g.verbose))
			cfg, err := svc.LoadConfig(g.path, application.ValidateOptions{
				ConfigFile: g.configFile,
				LogLevel:   g.logLevel,
			})
			if err != nil {
				return err
			}

			data, err := config.Generate(cfg, "")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
