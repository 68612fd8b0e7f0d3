// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/cli"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/cliargs"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/logger"
)

// stubClient is a call-counting DocumentClient that never touches the
// network.
type stubClient struct {
	calls         int
	raw           json.RawMessage
	err           error
	downloadData  []byte
	lastID        string
	lastProtected bool
	lastParams    api.Params
	lastSend      api.SendRequest
}

func (s *stubClient) result() (json.RawMessage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func (s *stubClient) ListDocuments(ctx context.Context, params api.Params) (json.RawMessage, error) {
	s.lastParams = params
	return s.result()
}

func (s *stubClient) GetDocument(ctx context.Context, id string) (json.RawMessage, error) {
	s.lastID = id
	return s.result()
}

func (s *stubClient) DocumentDetails(ctx context.Context, id string) (json.RawMessage, error) {
	s.lastID = id
	return s.result()
}

func (s *stubClient) DocumentFields(ctx context.Context, id string) (json.RawMessage, error) {
	s.lastID = id
	return s.result()
}

func (s *stubClient) AuditEvents(ctx context.Context, id string) (json.RawMessage, error) {
	s.lastID = id
	return s.result()
}

func (s *stubClient) ListTemplates(ctx context.Context, params api.Params) (json.RawMessage, error) {
	s.lastParams = params
	return s.result()
}

func (s *stubClient) ListFolders(ctx context.Context, params api.Params) (json.RawMessage, error) {
	s.lastParams = params
	return s.result()
}

func (s *stubClient) CurrentMember(ctx context.Context) (json.RawMessage, error) {
	return s.result()
}

func (s *stubClient) SendDocument(ctx context.Context, id string, req api.SendRequest) (json.RawMessage, error) {
	s.lastID = id
	s.lastSend = req
	return s.result()
}

func (s *stubClient) DownloadDocument(ctx context.Context, id string, protected bool) ([]byte, error) {
	s.calls++
	s.lastID = id
	s.lastProtected = protected
	if s.err != nil {
		return nil, s.err
	}
	return s.downloadData, nil
}

// newDispatcher builds a Dispatcher around a stub, counting factory
// invocations so tests can assert that usage errors never construct a
// client.
func newDispatcher(stub *stubClient, summary bool) (*cli.Dispatcher, *bytes.Buffer, *int) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	factoryCalls := 0
	d := &cli.Dispatcher{
		Log:     log,
		Summary: summary,
		Client: func() (cli.DocumentClient, error) {
			factoryCalls++
			return stub, nil
		},
	}
	return d, &buf, &factoryCalls
}

func TestDispatchUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr error
	}{
		{name: "Get Without ID", argv: []string{"get"}, wantErr: cli.ErrMissingArgument},
		{name: "Details Without ID", argv: []string{"details"}, wantErr: cli.ErrMissingArgument},
		{name: "Download Without ID", argv: []string{"download"}, wantErr: cli.ErrMissingArgument},
		{name: "Audit Without ID", argv: []string{"audit"}, wantErr: cli.ErrMissingArgument},
		{name: "Fields Without ID", argv: []string{"fields"}, wantErr: cli.ErrMissingArgument},
		{name: "Send Without ID", argv: []string{"send"}, wantErr: cli.ErrMissingArgument},
		{name: "Unknown Command", argv: []string{"frobnicate"}, wantErr: cli.ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubClient{raw: json.RawMessage(`{}`)}
			d, _, factoryCalls := newDispatcher(stub, false)

			err := d.Dispatch(context.Background(), cliargs.Parse(tt.argv))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, stub.calls, "no network call may precede validation")
			assert.Zero(t, *factoryCalls, "usage errors must not construct a client")
		})
	}
}

func TestDispatchJSONOutput(t *testing.T) {
	stub := &stubClient{raw: json.RawMessage(`{"results":[{"id":"a1"}]}`)}
	d, buf, _ := newDispatcher(stub, false)

	err := d.Dispatch(context.Background(), cliargs.Parse([]string{"list", "--status", "sent"}))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, buf.String(), `"a1"`)

	// The shorthand alias expands before the client sees it.
	require.NotEmpty(t, stub.lastParams)
	assert.Equal(t, "status", stub.lastParams[0].Key)
	assert.Equal(t, "document.sent", stub.lastParams[0].Value)
}

func TestDispatchSummaryOutput(t *testing.T) {
	stub := &stubClient{raw: json.RawMessage(`{"results":[{"id":"a1","name":"Contract","status":"document.sent"}]}`)}
	d, buf, _ := newDispatcher(stub, true)

	err := d.Dispatch(context.Background(), cliargs.Parse([]string{"list", "--summary"}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Contract")
	assert.Contains(t, buf.String(), "Total: 1 document(s)")
}

func TestDispatchGetPassesID(t *testing.T) {
	stub := &stubClient{raw: json.RawMessage(`{"id":"abc123","name":"X","status":"document.draft"}`)}
	d, _, _ := newDispatcher(stub, false)

	err := d.Dispatch(context.Background(), cliargs.Parse([]string{"get", "abc123"}))
	require.NoError(t, err)
	assert.Equal(t, "abc123", stub.lastID)
}

func TestDispatchSendWhitelist(t *testing.T) {
	stub := &stubClient{raw: json.RawMessage(`{"success":true}`)}
	d, _, _ := newDispatcher(stub, false)

	err := d.Dispatch(context.Background(), cliargs.Parse([]string{
		"send", "doc1", "--message", "please sign", "--subject", "Contract", "--silent",
		"--watermark", "ignored",
	}))
	require.NoError(t, err)
	assert.Equal(t, "doc1", stub.lastID)
	assert.Equal(t, api.SendRequest{Message: "please sign", Subject: "Contract", Silent: true}, stub.lastSend,
		"only message, subject, and silent may be forwarded")
}

func TestDispatchDownload(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Derived Path From Document Name",
			testFunc: func(t *testing.T) {
				stub := &stubClient{
					raw:          json.RawMessage(`{"id":"doc1","name":"Q2 Sales Quote!"}`),
					downloadData: []byte("%PDF-1.7"),
				}
				d, buf, _ := newDispatcher(stub, false)
				d.DownloadDir = t.TempDir()

				err := d.Dispatch(context.Background(), cliargs.Parse([]string{"download", "doc1"}))
				require.NoError(t, err)

				want := filepath.Join(d.DownloadDir, "Q2_Sales_Quote_.pdf")
				data, err := os.ReadFile(want)
				require.NoError(t, err, "derived path must exist")
				assert.Equal(t, []byte("%PDF-1.7"), data)
				assert.False(t, stub.lastProtected)
				assert.Contains(t, buf.String(), `"success":true`)
			},
		},
		{
			name: "Explicit Output And Protected Variant",
			testFunc: func(t *testing.T) {
				out := filepath.Join(t.TempDir(), "nested", "signed.pdf")
				stub := &stubClient{downloadData: []byte("%PDF-1.7 cert")}
				d, buf, _ := newDispatcher(stub, true)

				err := d.Dispatch(context.Background(), cliargs.Parse([]string{
					"download", "doc1", "--protected", "--output", out,
				}))
				require.NoError(t, err)
				assert.True(t, stub.lastProtected)
				// With an explicit output there is no metadata fetch.
				assert.Equal(t, 1, stub.calls)

				data, err := os.ReadFile(out)
				require.NoError(t, err, "directories must be created recursively")
				assert.Equal(t, []byte("%PDF-1.7 cert"), data)
				assert.Contains(t, buf.String(), "Saved "+out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

// errFetcher replays a canned upstream failure through the real client so
// the full dispatch -> client -> error funnel path is exercised.
type errFetcher struct {
	status int
	body   string
}

func (f *errFetcher) HasCredential(name string) bool { return true }

func (f *errFetcher) Do(ctx context.Context, name string, req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Header:     make(http.Header),
	}, nil
}

func TestDispatchUpstreamErrorPropagation(t *testing.T) {
	client, err := api.NewClient(&errFetcher{status: 404, body: `{"detail":"Not found"}`}, "test")
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	d := &cli.Dispatcher{
		Log:    log,
		Client: func() (cli.DocumentClient, error) { return client, nil },
	}

	err = d.Dispatch(context.Background(), cliargs.Parse([]string{"get", "missing-doc"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not found", "error message must come from the detail field")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Empty(t, buf.String(), "a failed command prints nothing but the error")
}
