package cli

import (
	mcpadapter "github.com/dirchecker/dirchecker/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the dirchecker MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start dirchecker MCP server (stdio)",
		Long:  "Start the dirchecker MCP server using stdio transport. This allows coding assistants to validate the project layout and check directory names before creating them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := cmd.Flags().GetString("path")
			if err != nil {
				return err
			}
			s := mcpadapter.NewDirCheckerMCPServer(projectPath)
			return server.ServeStdio(s)
		},
	}

	return cmd
}
