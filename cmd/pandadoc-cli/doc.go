// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// pandadoc-cli is a command-line client for the PandaDoc document
// management API: listing, inspecting, downloading, and sending documents
// from the shell.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/pandadoc-cli/cmd/pandadoc-cli@latest
//
// # Usage
//
//	pandadoc-cli <command> [arguments] [flags]
//
// # Commands
//
//	list           List documents with optional filters
//	get <id>       Show a document's status
//	details <id>   Show full document details
//	download <id>  Download the document PDF
//	templates      List templates
//	folders        List document folders
//	me             Show the member behind the API key
//	audit <id>     Show a document's audit trail
//	fields <id>    Show a document's field values
//	send <id>      Send a document for signing
//	version        Show the CLI version (also --version, -V)
//	help           Show usage
//
// # Output modes
//
//	--json     Raw JSON passthrough (default)
//	--summary  Human-readable text summary
//
// # Examples
//
// List documents awaiting signature as a summary table:
//
//	pandadoc-cli list --status sent --summary
//
// Download a completed document with its completion certificate:
//
//	pandadoc-cli download 8ryTsTqDstNQiXbWMqvWbc --protected
//
// Send a draft out for signing:
//
//	pandadoc-cli send 8ryTsTqDstNQiXbWMqvWbc --subject "Contract" --message "Please sign"
//
// The API key is read from the PANDADOC_API_KEY environment variable and
// attached by the client; it is never printed or logged.
package main
