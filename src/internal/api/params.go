// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// Param is one logical (CLI-side) key/value pair destined for the wire.
// Values may be strings, booleans, or integers; nil and empty-string values
// are dropped during translation.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered sequence of request parameters. Order matters: the
// encoded query string preserves the caller's insertion order, which keeps
// request URLs stable across invocations.
type Params []Param

// Set appends a key/value pair, preserving insertion order.
func (p *Params) Set(key string, value any) {
	*p = append(*p, Param{Key: key, Value: value})
}

// TranslationTable maps logical CLI-facing parameter names to the exact
// wire names the upstream API expects (e.g. statusNe → status__ne).
type TranslationTable map[string]string

// documentListTable covers the documents listing endpoint. Keys absent from
// the table keep their logical name on the wire.
var documentListTable = TranslationTable{
	"q":             "q",
	"status":        "status",
	"statusNe":      "status__ne",
	"tag":           "tag",
	"count":         "count",
	"page":          "page",
	"templateId":    "template_id",
	"folderUuid":    "folder_uuid",
	"contactId":     "contact_id",
	"createdFrom":   "created_from",
	"createdTo":     "created_to",
	"modifiedFrom":  "modified_from",
	"modifiedTo":    "modified_to",
	"completedFrom": "completed_from",
	"completedTo":   "completed_to",
	"deleted":       "deleted",
	"id":            "id",
	"orderBy":       "order_by",
}

// folderListTable covers the document-folders listing endpoint.
var folderListTable = TranslationTable{
	"parentUuid": "parent_uuid",
	"count":      "count",
	"page":       "page",
}

// Translate maps logical parameter names through the given table and drops
// every pair whose value is nil or an empty string. Caller-specified relative
// order is preserved; filtering is the only transform applied.
func Translate(table TranslationTable, params Params) Params {
	out := make(Params, 0, len(params))
	for _, p := range params {
		if dropped(p.Value) {
			continue
		}
		key := p.Key
		if wire, ok := table[key]; ok {
			key = wire
		}
		out = append(out, Param{Key: key, Value: p.Value})
	}
	return out
}

// TranslateSnake is the generic fallback for endpoints without an explicit
// table (the templates listing): each uppercase letter in a logical key is
// replaced by "_" plus its lowercase form. It applies the same drop rule as
// [Translate]. Other endpoints keep their explicit tables; the two schemes
// are intentionally not unified.
func TranslateSnake(params Params) Params {
	out := make(Params, 0, len(params))
	for _, p := range params {
		if dropped(p.Value) {
			continue
		}
		out = append(out, Param{Key: ToSnakeCase(p.Key), Value: p.Value})
	}
	return out
}

// ToSnakeCase converts a camelCase key to snake_case with a character-level
// rule: every uppercase letter becomes "_" plus its lowercase form.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encode serializes translated parameters as a query string: each key and
// value percent-encoded independently, pairs joined with "&" in slice order.
// It returns "" for an empty parameter set.
func Encode(params Params) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(formatValue(p.Value)))
	}
	return b.String()
}

// dropped reports whether a value must be omitted from the wire:
// nil and empty strings never serialize. Boolean false and zero numbers
// are meaningful and kept.
func dropped(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// formatValue renders a parameter value in its wire form.
func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case StatusCode:
		return string(t)
	default:
		return ""
	}
}
