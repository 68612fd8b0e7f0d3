// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package format renders parsed API responses as human-readable text for
// summary mode. Every renderer is a pure function over one response shape:
// input is never mutated, absent fields never panic (missing dates render
// as "N/A", missing field values as "(empty)", unknown statuses as their
// raw wire string), and dates use a fixed day-month-year 24-hour form
// regardless of host locale so output stays stable.
package format
