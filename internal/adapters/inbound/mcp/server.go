package mcp

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// NewDirCheckerMCPServer creates a new MCP server with all dirchecker tools and
// resources registered. The projectPath is the root directory of the project
// to validate.
func NewDirCheckerMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"dirchecker",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	// stdout carries the protocol.
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	registerTools(s, projectPath, log)
	registerResources(s, projectPath, log)

	return s
}
