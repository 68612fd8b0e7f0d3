// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/format"
	"github.com/mark3labs/mcp-go/mcp"
)

// documentAPI is the slice of the API client the tool handlers need.
// Handlers accept this interface so tests can substitute a stub client.
type documentAPI interface {
	ListDocuments(ctx context.Context, params api.Params) (json.RawMessage, error)
	GetDocument(ctx context.Context, id string) (json.RawMessage, error)
	DocumentDetails(ctx context.Context, id string) (json.RawMessage, error)
	ListTemplates(ctx context.Context, params api.Params) (json.RawMessage, error)
	ListFolders(ctx context.Context, params api.Params) (json.RawMessage, error)
	CurrentMember(ctx context.Context) (json.RawMessage, error)
	DownloadDocument(ctx context.Context, id string, protected bool) ([]byte, error)
}

// callContext derives a per-call deadline from the configured timeout.
// The API client applies its own shorter default when this one is longer.
func callContext(ctx context.Context, config *Config) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(config.Defaults.TimeoutSeconds)*time.Second)
}

// toolResult renders a raw API response according to the configured output
// mode. API errors become MCP tool errors rather than protocol errors so the
// calling model sees the upstream message.
//
// Parameters:
//   - config: Server configuration selecting json or summary output
//   - raw: Raw API response body
//   - err: Error from the API call, if any
//   - summarize: Formatter used when the output mode is summary
//
// Returns:
//   - The tool execution result with either rendered text or the error message
//   - Always a nil error; failures are reported through the result
func toolResult(config *Config, raw json.RawMessage, err error, summarize func(json.RawMessage) (string, error)) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if config.Output.Mode == OutputModeJSON {
		return mcp.NewToolResultText(format.JSON(raw)), nil
	}
	text, err := summarize(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render summary: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// newListDocumentsHandler returns the handler for the list_documents tool.
// Status shorthand like "draft" expands to the full wire code before the
// call, matching the CLI behavior.
func newListDocumentsHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := api.Params{}
		if status := request.GetString("status", ""); status != "" {
			params.Set("status", api.ExpandStatusAlias(status))
		}
		if q := request.GetString("q", ""); q != "" {
			params.Set("q", q)
		}
		params.Set("count", request.GetInt("count", config.Defaults.PageSize))
		if page := request.GetInt("page", 0); page > 0 {
			params.Set("page", page)
		}
		if request.GetBool("deleted", false) {
			params.Set("deleted", true)
		}

		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.ListDocuments(ctx, params)
		return toolResult(config, raw, err, format.DocumentList)
	}
}

// newGetDocumentHandler returns the handler for the get_document tool.
func newGetDocumentHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("document_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("document_id parameter required: %v", err)), nil
		}

		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.GetDocument(ctx, id)
		return toolResult(config, raw, err, format.Document)
	}
}

// newDocumentDetailsHandler returns the handler for the document_details tool.
func newDocumentDetailsHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("document_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("document_id parameter required: %v", err)), nil
		}

		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.DocumentDetails(ctx, id)
		return toolResult(config, raw, err, format.Details)
	}
}

// newListTemplatesHandler returns the handler for the list_templates tool.
func newListTemplatesHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := api.Params{}
		if q := request.GetString("q", ""); q != "" {
			params.Set("q", q)
		}
		params.Set("count", request.GetInt("count", config.Defaults.PageSize))
		if page := request.GetInt("page", 0); page > 0 {
			params.Set("page", page)
		}

		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.ListTemplates(ctx, params)
		return toolResult(config, raw, err, format.Templates)
	}
}

// newListFoldersHandler returns the handler for the list_folders tool.
func newListFoldersHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := api.Params{}
		if parent := request.GetString("parent_uuid", ""); parent != "" {
			params.Set("parentUuid", parent)
		}

		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.ListFolders(ctx, params)
		return toolResult(config, raw, err, format.Folders)
	}
}

// newDownloadDocumentHandler returns the handler for the download_document
// tool. Without an explicit output path the filename is derived from the
// document's own name and written under the configured download directory,
// the same derivation the CLI uses. The per-call timeout only covers the
// name lookup; the transfer itself runs under the client's longer download
// deadline.
func newDownloadDocumentHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("document_id")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("document_id parameter required: %v", err)), nil
		}
		protected := request.GetBool("protected", false)

		outputPath := request.GetString("output", "")
		if outputPath == "" {
			nameCtx, cancel := callContext(ctx, config)
			raw, err := client.GetDocument(nameCtx, id)
			cancel()
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			var doc api.Document
			if err := api.Decode(raw, &doc); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("decode document: %v", err)), nil
			}
			name := doc.Name
			if name == "" {
				name = id
			}
			outputPath = filepath.Join(config.Defaults.DownloadDir, sanitizeFilename(name)+".pdf")
		}

		data, err := client.DownloadDocument(ctx, id, protected)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if dir := filepath.Dir(outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("create output directory: %v", err)), nil
			}
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("write %s: %v", outputPath, err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Saved %s (%d bytes)", outputPath, len(data))), nil
	}
}

// sanitizeFilename replaces every non-alphanumeric character of a document
// name with "_" so derived paths are safe on any filesystem.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

// newMemberInfoHandler returns the handler for the member_info tool.
func newMemberInfoHandler(client documentAPI, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, cancel := callContext(ctx, config)
		defer cancel()

		raw, err := client.CurrentMember(ctx)
		return toolResult(config, raw, err, format.Member)
	}
}
