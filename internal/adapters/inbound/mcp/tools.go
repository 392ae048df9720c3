package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/dirchecker/dirchecker/internal/adapters/outbound/config"
	"github.com/dirchecker/dirchecker/internal/adapters/outbound/gitignore"
	"github.com/dirchecker/dirchecker/internal/adapters/outbound/gitinfo"
	"github.com/dirchecker/dirchecker/internal/application"
)

// registerTools registers all dirchecker MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, log logrus.FieldLogger) {
	// 1. dirchecker_validate
	s.AddTool(
		mcplib.NewTool("dirchecker_validate",
			mcplib.WithDescription("Validate the project's directory structure and return the report as JSON"),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as failures")),
			mcplib.WithString("config", mcplib.Description("Configuration file relative to the project (default: discovered)")),
		),
		handleValidate(projectPath, log),
	)

	// 2. dirchecker_check_level
	s.AddTool(
		mcplib.NewTool("dirchecker_check_level",
			mcplib.WithDescription("Check whether a directory name is allowed at a hierarchy level before creating it"),
			mcplib.WithString("level",
				mcplib.Required(),
				mcplib.Description("Level name, e.g. module, service or component"),
			),
			mcplib.WithString("value",
				mcplib.Required(),
				mcplib.Description("Directory name to check"),
			),
		),
		handleCheckLevel(projectPath, log),
	)
}

func newService(log logrus.FieldLogger) *application.ValidateService {
	return application.NewValidateService(config.New(), gitignore.New(), gitinfo.New(), log)
}

func handleValidate(projectPath string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		strict, _ := args["strict"].(bool)
		configFile, _ := args["config"].(string)

		report, _, err := newService(log).Validate(projectPath, application.ValidateOptions{
			ConfigFile: configFile,
			Strict:     strict,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

type levelCheck struct {
	Level       string   `json:"level"`
	Value       string   `json:"value"`
	Valid       bool     `json:"valid"`
	ValidValues []string `json:"valid_values"`
}

func handleCheckLevel(projectPath string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		level, err := request.RequireString("level")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		ok, values, err := newService(log).CheckLevel(projectPath, "", level, value)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		if values == nil {
			values = []string{}
		}
		return jsonResult(levelCheck{Level: level, Value: value, Valid: ok, ValidValues: values})
	}
}

// jsonResult marshals v to indented JSON and returns it as text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
