// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"testing"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestRunFailsWithoutCredential(t *testing.T) {
	t.Setenv("PANDADOC_API_KEY", "")
	t.Setenv(envConfigFile, "")

	err := Run("0.0.0-testing")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrCredentialMissing)
	assert.Equal(t, "0.0.0-testing", GetVersion())
}

func TestRunFailsWithBadConfig(t *testing.T) {
	t.Setenv(envConfigFile, "/nonexistent/config.json")

	err := Run("0.0.0-testing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
