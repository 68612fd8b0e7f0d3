// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver implements a Model Context Protocol (MCP) server that
// exposes read-only PandaDoc document management tools over stdio.
//
// The server wraps the same authenticated API client used by the CLI and
// publishes the following tools:
//   - list_documents: List documents with status, search, and paging filters
//   - get_document: Fetch the basic record for a single document
//   - document_details: Fetch the full detail view including recipients and fields
//   - list_templates: List available document templates
//   - list_folders: List document folders
//   - download_document: Save a document PDF under the configured download directory
//   - member_info: Show the workspace member tied to the current credential
//
// Configuration is optional and is loaded from the file named by the
// PANDADOC_MCP_CONFIG_FILE environment variable. Both JSON and YAML formats
// are supported and the file is validated against an embedded JSON schema
// before use. See [Config] for the available settings.
//
// Authentication follows the CLI: the PANDADOC_API_KEY environment variable
// must be set before the server starts, otherwise Run fails immediately
// instead of surfacing credential errors on every tool call.
package mcpserver
