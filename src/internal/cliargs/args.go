// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cliargs

import "strings"

// OptionValue represents the value of a parsed command-line option.
// An option is either a bare boolean flag (`--summary`) or carries a
// string value (`--status sent`, `--status=sent`). The zero value
// represents an option that was not supplied at all, so callers can
// distinguish missing, boolean-true, and string-valued options.
type OptionValue struct {
	str    string
	isBool bool
	isSet  bool
}

// BoolValue returns an OptionValue representing a bare boolean flag.
func BoolValue() OptionValue { return OptionValue{isBool: true, isSet: true} }

// StringValue returns an OptionValue carrying an explicit string.
// The string may be empty (`--q=`), which is distinct from a boolean flag.
func StringValue(s string) OptionValue { return OptionValue{str: s, isSet: true} }

// IsSet reports whether the option was supplied on the command line.
func (v OptionValue) IsSet() bool { return v.isSet }

// IsBool reports whether the option was supplied as a bare flag
// with no value attached.
func (v OptionValue) IsBool() bool { return v.isSet && v.isBool }

// Str returns the option's string value. It returns the empty string
// for boolean flags and for options that were never supplied; use
// [OptionValue.IsSet] and [OptionValue.IsBool] to disambiguate.
func (v OptionValue) Str() string {
	if v.isBool {
		return ""
	}
	return v.str
}

// ParsedCommand is the result of tokenizing a process argument vector.
// The first bare token becomes Command, every later bare token is
// positional, and every dash-prefixed token becomes an option.
// A ParsedCommand is built once per invocation and read-only afterward.
type ParsedCommand struct {
	Command    string
	Positional []string
	Options    map[string]OptionValue
}

// Option returns the value of the named option, which is unset if the
// option did not appear on the command line.
func (p ParsedCommand) Option(name string) OptionValue {
	return p.Options[name]
}

// Bool reports whether the named option was supplied (as a flag or with
// any value). It matches the loose truthiness the CLI applies to toggles
// such as --summary and --protected.
func (p ParsedCommand) Bool(name string) bool {
	return p.Options[name].IsSet()
}

// String returns the string value of the named option, or "" if the
// option is missing or a bare flag.
func (p ParsedCommand) String(name string) string {
	return p.Options[name].Str()
}

// Parse tokenizes a process argument vector into a [ParsedCommand].
//
// Parse is a pure, total function: any input produces a result and the
// absence of a command is valid (it signals "show help" downstream).
//
// Rules, in order of precedence:
//  1. A token not starting with "-" fills Command if empty, otherwise it
//     is appended to Positional.
//  2. A token starting with "--" is split on the first "=". With "=", the
//     remainder is the value (possibly empty). Without "=", the next
//     token is consumed as the value unless it is absent or itself
//     starts with "-", in which case the option is boolean true.
//  3. A token starting with a single "-" is a short flag keyed by the
//     text after the dash, with the same lookahead rule.
//
// A value that starts with "-" (including a negative number) is never
// consumable as an option value; it always becomes its own option token.
// This is a known limitation kept for compatibility with existing
// invocations, not a bug to fix silently.
func Parse(argv []string) ParsedCommand {
	parsed := ParsedCommand{Options: make(map[string]OptionValue)}

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if !strings.HasPrefix(token, "-") {
			if parsed.Command == "" {
				parsed.Command = token
			} else {
				parsed.Positional = append(parsed.Positional, token)
			}
			continue
		}

		var key string
		if strings.HasPrefix(token, "--") {
			key = token[2:]
		} else {
			key = token[1:]
		}

		if eq := strings.Index(key, "="); eq >= 0 && strings.HasPrefix(token, "--") {
			parsed.Options[key[:eq]] = StringValue(key[eq+1:])
			continue
		}

		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			parsed.Options[key] = StringValue(argv[i+1])
			i++
			continue
		}

		parsed.Options[key] = BoolValue()
	}

	return parsed
}
