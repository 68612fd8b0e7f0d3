// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/cliargs"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/format"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
)

// Usage errors, detected before any network call.
var (
	// ErrUnknownCommand is returned for command names outside the closed set.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when an ID-requiring command has no
	// positional argument.
	ErrMissingArgument = errors.New("missing required argument")
)

// DocumentClient is the slice of the API client the dispatcher consumes.
// It exists so tests can count calls through a stub without a network.
type DocumentClient interface {
	ListDocuments(ctx context.Context, params api.Params) (json.RawMessage, error)
	GetDocument(ctx context.Context, id string) (json.RawMessage, error)
	DocumentDetails(ctx context.Context, id string) (json.RawMessage, error)
	DocumentFields(ctx context.Context, id string) (json.RawMessage, error)
	AuditEvents(ctx context.Context, id string) (json.RawMessage, error)
	ListTemplates(ctx context.Context, params api.Params) (json.RawMessage, error)
	ListFolders(ctx context.Context, params api.Params) (json.RawMessage, error)
	CurrentMember(ctx context.Context) (json.RawMessage, error)
	SendDocument(ctx context.Context, id string, req api.SendRequest) (json.RawMessage, error)
	DownloadDocument(ctx context.Context, id string, protected bool) ([]byte, error)
}

// Dispatcher wires one parsed invocation to a client call and a renderer.
// The Client factory runs only after argument validation so usage errors
// never require a configured credential, and no network call can precede
// validation.
type Dispatcher struct {
	Log     logger.Logger
	Summary bool
	Client  func() (DocumentClient, error)
	// DownloadDir overrides the fixed "downloads" output subdirectory.
	DownloadDir string
}

// renderer pairs a client call with its summary-mode formatter.
type renderer func(raw json.RawMessage) (string, error)

// command describes one entry of the closed command set.
type command struct {
	requiresID bool
	argHint    string
	run        func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, id string) error
}

// commands is the closed command set. Adding a verb means adding a row
// here; the dispatch switch itself never grows.
var commands = map[string]command{
	"list": {run: func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, _ string) error {
		raw, err := client.ListDocuments(ctx, documentListParams(parsed))
		return d.render(raw, err, format.DocumentList)
	}},
	"get": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, _ cliargs.ParsedCommand, id string) error {
		raw, err := client.GetDocument(ctx, id)
		return d.render(raw, err, format.Document)
	}},
	"details": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, _ cliargs.ParsedCommand, id string) error {
		raw, err := client.DocumentDetails(ctx, id)
		return d.render(raw, err, format.Details)
	}},
	"download": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, id string) error {
		return d.download(ctx, client, parsed, id)
	}},
	"templates": {run: func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, _ string) error {
		raw, err := client.ListTemplates(ctx, templateListParams(parsed))
		return d.render(raw, err, format.Templates)
	}},
	"folders": {run: func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, _ string) error {
		raw, err := client.ListFolders(ctx, folderListParams(parsed))
		return d.render(raw, err, format.Folders)
	}},
	"me": {run: func(d *Dispatcher, ctx context.Context, client DocumentClient, _ cliargs.ParsedCommand, _ string) error {
		raw, err := client.CurrentMember(ctx)
		return d.render(raw, err, format.Member)
	}},
	"audit": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, _ cliargs.ParsedCommand, id string) error {
		raw, err := client.AuditEvents(ctx, id)
		return d.render(raw, err, format.AuditEvents)
	}},
	"fields": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, _ cliargs.ParsedCommand, id string) error {
		raw, err := client.DocumentFields(ctx, id)
		return d.render(raw, err, format.Fields)
	}},
	"send": {requiresID: true, argHint: "<document-id>", run: func(d *Dispatcher, ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, id string) error {
		// Only the whitelisted fields ever reach the wire.
		raw, err := client.SendDocument(ctx, id, api.SendRequest{
			Message: parsed.String("message"),
			Subject: parsed.String("subject"),
			Silent:  parsed.Bool("silent"),
		})
		return d.render(raw, err, func(raw json.RawMessage) (string, error) {
			return "Document sent.\n", nil
		})
	}},
}

// Dispatch validates the invocation and runs its command. Validation
// (known command, required ID) happens before the client factory is
// invoked, so no usage error ever triggers a credential check or a
// network call.
func (d *Dispatcher) Dispatch(ctx context.Context, parsed cliargs.ParsedCommand) error {
	cmd, ok := commands[parsed.Command]
	if !ok {
		return fmt.Errorf("%w: %q (run \"%s help\" for usage)",
			ErrUnknownCommand, parsed.Command, posix.GetExecutableName())
	}

	var id string
	if cmd.requiresID {
		if len(parsed.Positional) == 0 {
			return fmt.Errorf("%w: usage: %s %s %s",
				ErrMissingArgument, posix.GetExecutableName(), parsed.Command, cmd.argHint)
		}
		id = parsed.Positional[0]
	}

	client, err := d.Client()
	if err != nil {
		return err
	}

	return cmd.run(d, ctx, client, parsed, id)
}

// render prints one successful API response in the selected output mode.
func (d *Dispatcher) render(raw json.RawMessage, err error, summarize renderer) error {
	if err != nil {
		return err
	}
	if !d.Summary {
		d.Log.Printf("%s", format.JSON(raw))
		return nil
	}
	out, err := summarize(raw)
	if err != nil {
		return err
	}
	d.Log.Printf("%s", out)
	return nil
}

// documentListParams collects the documents listing filters in a stable
// order. The status value expands shorthand aliases; everything else is
// forwarded verbatim for the translation table to rename.
func documentListParams(parsed cliargs.ParsedCommand) api.Params {
	var params api.Params
	if v := parsed.String("status"); v != "" {
		params.Set("status", api.ExpandStatusAlias(v))
	}
	for _, key := range []string{
		"q", "statusNe", "tag", "count", "page", "templateId", "folderUuid",
		"contactId", "createdFrom", "createdTo", "modifiedFrom", "modifiedTo",
		"completedFrom", "completedTo", "id", "orderBy",
	} {
		if v := parsed.String(key); v != "" {
			params.Set(key, v)
		}
	}
	if parsed.Bool("deleted") {
		params.Set("deleted", true)
	}
	return params
}

// templateListParams collects the templates listing filters; wire renaming
// happens through the generic snake-case fallback.
func templateListParams(parsed cliargs.ParsedCommand) api.Params {
	var params api.Params
	for _, key := range []string{"q", "tag", "count", "page", "folderUuid", "id"} {
		if v := parsed.String(key); v != "" {
			params.Set(key, v)
		}
	}
	if parsed.Bool("deleted") {
		params.Set("deleted", true)
	}
	return params
}

// folderListParams collects the folders listing filters.
func folderListParams(parsed cliargs.ParsedCommand) api.Params {
	var params api.Params
	for _, key := range []string{"parentUuid", "count", "page"} {
		if v := parsed.String(key); v != "" {
			params.Set(key, v)
		}
	}
	return params
}
