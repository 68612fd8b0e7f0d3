// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolHandler defines the signature for MCP tool handlers.
// It processes tool call requests and returns results or errors.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool with its handler so the server can
// register both in one pass.
type ToolDefinition struct {
	// Tool: The MCP tool definition including name, description, and parameters
	Tool mcp.Tool
	// Handler: The function that executes when the tool is called
	Handler ToolHandler
}

// createTools creates and returns all MCP tool definitions with their handlers.
// Every handler closes over the shared API client and the server configuration,
// so paging defaults and the output mode come from [Config].
//
// Parameters:
//   - client: The authenticated PandaDoc API client shared by all tools
//   - config: Server configuration providing defaults and the output mode
//
// Returns:
//   - A slice of ToolDefinition ready for registration on the MCP server
//
// The function defines the following tools:
//   - list_documents: Lists documents with optional status, search, and paging filters
//   - get_document: Fetches the basic record for one document
//   - document_details: Fetches the full detail view for one document
//   - list_templates: Lists templates with optional search and paging filters
//   - list_folders: Lists document folders
//   - download_document: Downloads a document PDF to the local filesystem
//   - member_info: Shows the workspace member behind the current credential
func createTools(client documentAPI, config *Config) []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("list_documents",
				mcp.WithDescription("List PandaDoc documents with optional status, search, and paging filters"),
				mcp.WithString("status",
					mcp.Description("Filter by status; accepts shorthand like 'draft' or full codes like 'document.sent'"),
				),
				mcp.WithString("q",
					mcp.Description("Search query matched against document names"),
				),
				mcp.WithNumber("count",
					mcp.Description(fmt.Sprintf("Number of documents per page (default: %d)", config.Defaults.PageSize)),
					mcp.DefaultNumber(float64(config.Defaults.PageSize)),
				),
				mcp.WithNumber("page",
					mcp.Description("Page number to fetch, starting at 1"),
				),
				mcp.WithBoolean("deleted",
					mcp.Description("Include deleted documents (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: newListDocumentsHandler(client, config),
		},
		{
			Tool: mcp.NewTool("get_document",
				mcp.WithDescription("Fetch the basic status record for a single PandaDoc document"),
				mcp.WithString("document_id",
					mcp.Required(),
					mcp.Description("Identifier of the document to fetch"),
				),
			),
			Handler: newGetDocumentHandler(client, config),
		},
		{
			Tool: mcp.NewTool("document_details",
				mcp.WithDescription("Fetch the full detail view of a PandaDoc document, including recipients and fields"),
				mcp.WithString("document_id",
					mcp.Required(),
					mcp.Description("Identifier of the document to fetch"),
				),
			),
			Handler: newDocumentDetailsHandler(client, config),
		},
		{
			Tool: mcp.NewTool("list_templates",
				mcp.WithDescription("List PandaDoc document templates with optional search and paging filters"),
				mcp.WithString("q",
					mcp.Description("Search query matched against template names"),
				),
				mcp.WithNumber("count",
					mcp.Description(fmt.Sprintf("Number of templates per page (default: %d)", config.Defaults.PageSize)),
					mcp.DefaultNumber(float64(config.Defaults.PageSize)),
				),
				mcp.WithNumber("page",
					mcp.Description("Page number to fetch, starting at 1"),
				),
			),
			Handler: newListTemplatesHandler(client, config),
		},
		{
			Tool: mcp.NewTool("list_folders",
				mcp.WithDescription("List PandaDoc document folders"),
				mcp.WithString("parent_uuid",
					mcp.Description("Restrict the listing to children of this folder"),
				),
			),
			Handler: newListFoldersHandler(client, config),
		},
		{
			Tool: mcp.NewTool("download_document",
				mcp.WithDescription("Download a PandaDoc document as a PDF file on the server's filesystem"),
				mcp.WithString("document_id",
					mcp.Required(),
					mcp.Description("Identifier of the document to download"),
				),
				mcp.WithString("output",
					mcp.Description(fmt.Sprintf("Destination file path (default: derived from the document name under %q)", config.Defaults.DownloadDir)),
				),
				mcp.WithBoolean("protected",
					mcp.Description("Download the protected rendition with a completion certificate (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: newDownloadDocumentHandler(client, config),
		},
		{
			Tool: mcp.NewTool("member_info",
				mcp.WithDescription("Show the PandaDoc workspace member associated with the configured API key"),
			),
			Handler: newMemberInfoHandler(client, config),
		},
	}
}
