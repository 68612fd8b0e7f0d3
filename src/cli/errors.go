// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"errors"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
)

// credentialRemediation is printed when no credential is available. It is
// the one multi-line error in the CLI: the user has to leave the terminal
// to fix it.
const credentialRemediation = `pandadoc credential is not configured

To use this CLI, provide an API key:
  1. Create an API key in PandaDoc (Settings -> API & Integrations)
  2. Export it before running commands:
       export PANDADOC_API_KEY=<your-key>
  3. Re-run the command`

// errorShape is the JSON error object printed to stderr in JSON mode.
// Status and Data are omitted when absent rather than rendered as zero
// values.
type errorShape struct {
	Error  string         `json:"error"`
	Status int            `json:"status,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// renderError is the single top-level error handler: every handled failure
// funnels through here exactly once, to stderr, before the process exits 1.
func renderError(errLog logger.Logger, err error, summary bool) {
	if errors.Is(err, api.ErrCredentialMissing) {
		// Remediation text stays human-readable in both modes.
		errLog.Printf("%s", credentialRemediation)
		return
	}

	if summary {
		errLog.Printf("Error: %v", err)
		return
	}

	shape := errorShape{Error: err.Error()}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		shape.Status = apiErr.Status
		if len(apiErr.Data) > 0 {
			shape.Data = apiErr.Data
		}
	}

	data, marshalErr := json.Marshal(shape)
	if marshalErr != nil {
		errLog.Printf("Error: %v", err)
		return
	}
	errLog.Printf("%s", data)
}
