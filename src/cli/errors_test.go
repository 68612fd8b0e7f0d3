// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
)

// notFoundFetcher replays a canned 404 with a detail body.
type notFoundFetcher struct{}

func (notFoundFetcher) HasCredential(name string) bool { return true }

func (notFoundFetcher) Do(ctx context.Context, name string, req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: 404,
		Body:       io.NopCloser(strings.NewReader(`{"detail":"Not found","id":"x"}`)),
		Header:     make(http.Header),
	}, nil
}

func upstreamError(t *testing.T) error {
	t.Helper()
	client, err := api.NewClient(notFoundFetcher{}, "test")
	require.NoError(t, err)
	_, err = client.GetDocument(context.Background(), "x")
	require.Error(t, err)
	return err
}

func TestRenderErrorJSONShape(t *testing.T) {
	var buf bytes.Buffer
	errLog := logger.NewCLILogger()
	errLog.SetOutput(&buf)

	renderError(errLog, upstreamError(t), false)

	var shape map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &shape))
	assert.Equal(t, "Not found", shape["error"])
	assert.Equal(t, float64(404), shape["status"])
	data, ok := shape["data"].(map[string]any)
	require.True(t, ok, "parsed upstream body must be carried in data")
	assert.Equal(t, "Not found", data["detail"])
}

func TestRenderErrorJSONShapeOmitsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	errLog := logger.NewCLILogger()
	errLog.SetOutput(&buf)

	renderError(errLog, ErrUnknownCommand, false)

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, `"status"`, "usage errors have no HTTP status")
	assert.NotContains(t, out, `"data"`)
	assert.Contains(t, out, "unknown command")
}

func TestRenderErrorSummaryMode(t *testing.T) {
	var buf bytes.Buffer
	errLog := logger.NewCLILogger()
	errLog.SetOutput(&buf)

	renderError(errLog, upstreamError(t), true)

	assert.Equal(t, "Error: Not found\n", buf.String())
}

func TestRenderErrorCredentialRemediation(t *testing.T) {
	var buf bytes.Buffer
	errLog := logger.NewCLILogger()
	errLog.SetOutput(&buf)

	renderError(errLog, api.ErrCredentialMissing, false)

	out := buf.String()
	assert.Contains(t, out, "PANDADOC_API_KEY")
	assert.Greater(t, strings.Count(out, "\n"), 3, "remediation must be multi-line")
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Q2 Sales Quote!", "Q2_Sales_Quote_"},
		{"already_safe", "already_safe"},
		{"emojiéname", "emoji_name"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "sanitizeFilename(%q)", tt.in)
	}
}
