// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
)

// CredentialName is the named credential every call is keyed by.
const CredentialName = "pandadoc"

// CredentialFetcher performs authenticated network calls on behalf of the
// client. Implementations own the secret and its placement (header, query,
// or otherwise); the client only names the credential and never sees its
// value. This is constructor-injected rather than looked up ambiently so
// tests can substitute a stub.
type CredentialFetcher interface {
	// HasCredential reports whether the named credential is available.
	HasCredential(name string) bool
	// Do attaches the named credential to req and performs it.
	Do(ctx context.Context, name string, req *http.Request) (*http.Response, error)
}

// credentialEnvVars maps credential names to the environment variable
// holding the secret.
var credentialEnvVars = map[string]string{
	CredentialName: "PANDADOC_API_KEY",
}

// EnvCredentialFetcher is the shipped [CredentialFetcher]: it resolves the
// named credential from the process environment and attaches it as an
// "Authorization: API-Key <key>" header. The key value stays inside this
// type; callers only ever observe presence via HasCredential.
type EnvCredentialFetcher struct {
	client *http.Client
	lookup func(key string) (string, bool)
}

// NewEnvCredentialFetcher creates an environment-backed credential fetcher.
// The underlying HTTP client carries no timeout of its own; per-call
// deadlines arrive through the request context.
func NewEnvCredentialFetcher() *EnvCredentialFetcher {
	return &EnvCredentialFetcher{
		client: &http.Client{},
		lookup: os.LookupEnv,
	}
}

// HasCredential reports whether the environment variable backing the named
// credential is set and non-empty.
func (e *EnvCredentialFetcher) HasCredential(name string) bool {
	envVar, ok := credentialEnvVars[name]
	if !ok {
		return false
	}
	v, ok := e.lookup(envVar)
	return ok && v != ""
}

// Do attaches the named credential and performs the request.
func (e *EnvCredentialFetcher) Do(ctx context.Context, name string, req *http.Request) (*http.Response, error) {
	envVar, ok := credentialEnvVars[name]
	if !ok {
		return nil, fmt.Errorf("unknown credential %q", name)
	}
	key, ok := e.lookup(envVar)
	if !ok || key == "" {
		return nil, fmt.Errorf("credential %q is not configured", name)
	}

	req = req.WithContext(ctx)
	req.Header.Set("Authorization", "API-Key "+key)

	return e.client.Do(req)
}
