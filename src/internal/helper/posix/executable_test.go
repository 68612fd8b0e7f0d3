// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"
)

// TestGetExecutableName tests the GetExecutableName function for cross-platform compatibility.
func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Relative path",
			args:     []string{"./myapp"},
			expected: "myapp",
		},
		{
			name:     "Just filename",
			args:     []string{"myapp"},
			expected: "myapp",
		},
		{
			name:     "Unix absolute path",
			args:     []string{"/usr/local/bin/pandadoc-cli"},
			expected: "pandadoc-cli",
		},
		{
			name:     "Windows style path on unix",
			args:     []string{"C:\\windows\\style\\path\\on\\unix\\system.exe"},
			expected: "system",
		},
		{
			name:     "Exe suffix stripped",
			args:     []string{"pandadoc-cli.exe"},
			expected: "pandadoc-cli",
		},
		{
			name:     "Empty args",
			args:     []string{},
			expected: "pandadoc-cli",
		},
		{
			name:     "Empty first arg",
			args:     []string{""},
			expected: "pandadoc-cli",
		},
	}

	// Save original os.Args and restore after test
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			got := GetExecutableName()
			if got != tt.expected {
				t.Errorf("GetExecutableName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
