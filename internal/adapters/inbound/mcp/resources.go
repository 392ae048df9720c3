package mcp

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
	"github.com/dirchecker/dirchecker/internal/application"
)

const configURI = "dirchecker://config"

// registerResources registers all dirchecker MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, log logrus.FieldLogger) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective structure rules for the project: levels, valid values and required files"),
			mcplib.WithMIMEType("application/yaml"),
		),
		handleConfigResource(projectPath, log),
	)
}

func handleConfigResource(projectPath string, log logrus.FieldLogger) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := newService(log).LoadConfig(projectPath, application.ValidateOptions{})
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := config.Generate(cfg, "")
		if err != nil {
			return nil, err
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      configURI,
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	}
}
