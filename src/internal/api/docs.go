// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package api implements the authenticated request client for the PandaDoc
// public REST API together with the CLI-to-wire parameter translation layer.
//
// The package never holds the API secret itself: network calls and credential
// attachment are delegated to an injected [CredentialFetcher] keyed by the
// named credential "pandadoc". Each call is a single request/response with a
// fixed timeout, with no retry, backoff, or shared state between calls.
package api
