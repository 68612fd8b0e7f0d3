// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cliargs tokenizes process arguments into a command name,
// positional arguments, and an option map. Unlike a flag library it
// accepts unknown options, preserves the distinction between a missing
// option, a bare boolean flag, and a string value, and never fails;
// the CLI's command dispatcher owns validation.
package cliargs
