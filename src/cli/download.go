// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/cliargs"
)

// defaultDownloadDir is the fixed working subdirectory for derived
// download paths; explicit --output paths are used as given.
const defaultDownloadDir = "downloads"

// download fetches a document PDF and writes it to disk. The output path
// is the explicit --output/-o flag when present, otherwise it is derived
// from the fetched document's name. --protected selects the
// certificate-bearing export variant.
func (d *Dispatcher) download(ctx context.Context, client DocumentClient, parsed cliargs.ParsedCommand, id string) error {
	outputPath := parsed.String("output")
	if outputPath == "" {
		outputPath = parsed.String("o")
	}

	if outputPath == "" {
		// Derive the filename from the document's own name.
		raw, err := client.GetDocument(ctx, id)
		if err != nil {
			return err
		}
		var doc api.Document
		if err := api.Decode(raw, &doc); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		name := doc.Name
		if name == "" {
			name = id
		}
		dir := d.DownloadDir
		if dir == "" {
			dir = defaultDownloadDir
		}
		outputPath = filepath.Join(dir, sanitizeFilename(name)+".pdf")
	}

	data, err := client.DownloadDocument(ctx, id, parsed.Bool("protected"))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if d.Summary {
		d.Log.Printf("Saved %s (%d bytes)", outputPath, len(data))
		return nil
	}
	d.Log.Printf(`{"success":true,"file":%q,"bytes":%d}`, outputPath, len(data))
	return nil
}

// sanitizeFilename replaces every non-alphanumeric character of a document
// name with "_" so derived paths are safe on any filesystem.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
