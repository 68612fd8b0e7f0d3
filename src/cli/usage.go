// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/helper/posix"
)

// usageText builds the help screen. Kept as one template so the command
// list, the ID hints, and the flag docs stay in a single place.
func usageText() string {
	exe := posix.GetExecutableName()
	return fmt.Sprintf(`Usage: %s <command> [arguments] [flags]

Commands:
  list                 List documents (filters: --status, --statusNe, --q, --tag,
                       --count, --page, --templateId, --folderUuid, --createdFrom,
                       --createdTo, --modifiedFrom, --modifiedTo, --orderBy, --deleted)
  get <id>             Show a document's status
  details <id>         Show full document details (recipients, fields, totals)
  download <id>        Download the document PDF (--output FILE, --protected)
  templates            List templates (--q, --tag, --count, --page, --folderUuid)
  folders              List document folders (--parentUuid, --count, --page)
  me                   Show the member behind the configured API key
  audit <id>           Show a document's audit trail
  fields <id>          Show a document's field values
  send <id>            Send a document for signing (--message, --subject, --silent)
  version              Show the CLI version (also --version, -V)
  help                 Show this help

Output flags:
  --json               Raw JSON output (default)
  --summary            Human-readable summary output

Status shorthand for --status: draft, sent, completed, viewed, approved,
rejected, paid, voided, declined. Raw wire values (document.<state>) pass
through unchanged.

The API key is read from the PANDADOC_API_KEY environment variable.

Examples:
  %s list --status sent --summary
  %s get 8ryTsTqDstNQiXbWMqvWbc
  %s download 8ryTsTqDstNQiXbWMqvWbc --protected -o signed.pdf
`, exe, exe, exe, exe)
}
