// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command mcp-server runs a Model Context Protocol server over stdio that
// exposes read-only PandaDoc document management tools.
//
// Usage:
//
//	mcp-server
//
// The server reads its optional configuration from the file named by the
// PANDADOC_MCP_CONFIG_FILE environment variable (JSON or YAML) and requires
// PANDADOC_API_KEY to be set for authentication. It serves until stdin
// closes or a SIGINT/SIGTERM arrives.
//
// See the mcpserver package for the list of tools and configuration keys.
package main
