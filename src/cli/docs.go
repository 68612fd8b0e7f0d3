// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the PandaDoc document CLI.
// It implements a Cobra-based entry shell whose flag parsing is disabled so the
// option-bag argument parser owns the whole command line, a declarative command
// table that wires parsed arguments to API client calls, and the single
// top-level error funnel that renders failures as JSON or plain text and maps
// them to the process exit code.
package cli
