package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
)

func newInitCmd(g *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Generate a default configuration file",
		Long: "Write the default configuration to " + config.DefaultFileName + " in the project directory, " +
			"or to the given file. A file ending in .json is written as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := filepath.Join(g.path, config.DefaultFileName)
			if len(args) > 0 {
				dest = args[0]
				if !filepath.IsAbs(dest) {
					dest = filepath.Join(g.path, dest)
				}
			}

			if err := config.WriteDefault(dest, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
