// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// serverInstructions is published to MCP clients on initialization so
// calling models know what the tools cover and what they do not.
const serverInstructions = `This server exposes read-only PandaDoc document management tools.
Use list_documents to find documents (status accepts shorthand like "draft"
or full codes like "document.sent"), get_document or document_details for a
single document, list_templates and list_folders to browse the workspace,
download_document to save a PDF locally, and member_info to identify the
account behind the API key. No tool here creates, sends, or deletes
documents.`

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server with PandaDoc document management tools.
//
// Parameters:
//   - ver: Version string to set for the server (e.g., "0.3.1")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loads config from the PANDADOC_MCP_CONFIG_FILE environment variable
//   - Falls back to default config if the environment variable is not set
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Build the authenticated API client (fails fast when PANDADOC_API_KEY is unset)
//  3. Set up signal handling for graceful shutdown
//  4. Register every tool on a stdio MCP server
//  5. Wait for either a server error or a shutdown signal
//
// Graceful Shutdown:
//   - Responds to SIGINT (Ctrl+C) and SIGTERM signals
//   - Cancels the server context and returns a wrapped context error
func Run(ver string) error {
	// Set the version for GetVersion
	appVersion = ver

	// Diagnostics go to stderr as JSON lines; stdout belongs to the
	// stdio transport.
	log := logger.NewMCPLogger(os.Stderr, false)

	// Load configuration
	config, err := loadConfig(os.Getenv(envConfigFile))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Build the API client up front so a missing credential surfaces at
	// startup instead of on every tool call.
	client, err := api.NewClient(api.NewEnvCredentialFetcher(), ver)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create MCP server and register tools
	s := server.NewMCPServer(
		"PandaDoc Document Management",
		ver,
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
	)
	tools := createTools(client, config)
	for _, tool := range tools {
		s.AddTool(tool.Tool, tool.Handler)
	}
	log.Printf("serving %d document tools in %s output mode", len(tools), config.Output.Mode)

	// Create stdio server to connect with our context
	stdioServer := server.NewStdioServer(s)

	// Start server with graceful shutdown support
	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		// Graceful shutdown triggered by signal
		log.Println("shutdown signal received")
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
