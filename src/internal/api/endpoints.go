// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// SendRequest is the whitelisted payload for sending a document out for
// signing. Only these fields ever reach the wire.
type SendRequest struct {
	Message string `json:"message,omitempty"`
	Subject string `json:"subject,omitempty"`
	Silent  bool   `json:"silent,omitempty"`
}

// ListDocuments lists documents. Logical filter names go through the
// explicit documents translation table; the status value is expanded from
// its shorthand alias first.
func (c *Client) ListDocuments(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents",
		Query:    Encode(Translate(documentListTable, params)),
	})
}

// GetDocument fetches the basic status record for one document.
func (c *Client) GetDocument(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents/" + url.PathEscape(id),
	})
}

// DocumentDetails fetches the full detail record (recipients, fields,
// tokens) for one document.
func (c *Client) DocumentDetails(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents/" + url.PathEscape(id) + "/details",
	})
}

// DocumentFields fetches the field values of one document.
func (c *Client) DocumentFields(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents/" + url.PathEscape(id) + "/fields",
	})
}

// AuditEvents fetches the audit trail of one document. Audit events are
// served from the v2 API surface.
func (c *Client) AuditEvents(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents/" + url.PathEscape(id) + "/audit-events",
		Version:  V2,
	})
}

// ListTemplates lists templates. This endpoint has no explicit translation
// table; logical names fall back to the generic camelCase to snake_case rule.
func (c *Client) ListTemplates(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/templates",
		Query:    Encode(TranslateSnake(params)),
	})
}

// ListFolders lists document folders.
func (c *Client) ListFolders(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/documents/folders",
		Query:    Encode(Translate(folderListTable, params)),
	})
}

// CurrentMember fetches the workspace member the credential belongs to.
func (c *Client) CurrentMember(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Endpoint: "/members/current",
	})
}

// SendDocument sends a document out for signing.
func (c *Client) SendDocument(ctx context.Context, id string, req SendRequest) (json.RawMessage, error) {
	return c.Call(ctx, CallOptions{
		Method:   http.MethodPost,
		Endpoint: "/documents/" + url.PathEscape(id) + "/send",
		Body:     req,
	})
}

// DownloadDocument downloads the rendered PDF of one document. The
// protected variant includes the completion certificate and is only
// offered upstream for finished documents; the bytes are returned
// unprocessed either way.
func (c *Client) DownloadDocument(ctx context.Context, id string, protected bool) ([]byte, error) {
	endpoint := "/documents/" + url.PathEscape(id) + "/download"
	if protected {
		endpoint += "-protected"
	}
	return c.Download(ctx, CallOptions{Endpoint: endpoint})
}
