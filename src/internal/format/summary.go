// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/H0llyW00dzZ/pandadoc-cli/src/internal/api"
)

// Placeholders for absent optional data.
const (
	missingDate  = "N/A"
	missingValue = "(empty)"
)

// maxListedFields caps homogeneous field listings before the
// "and N more" trailer kicks in.
const maxListedFields = 10

// dateDisplayLayout is the fixed output form: day-month-year short form
// with 24-hour time, independent of the host locale.
const dateDisplayLayout = "02 Jan 2006 15:04"

// counts renders count trailers with a fixed English locale.
var counts = message.NewPrinter(language.English)

// formatDate renders an upstream timestamp string for display.
// Empty or unparseable input renders as "N/A".
func formatDate(s string) string {
	if s == "" {
		return missingDate
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999999Z07:00", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateDisplayLayout)
		}
	}
	return missingDate
}

// fieldValue renders an untyped field value, substituting "(empty)" for
// absent or blank values.
func fieldValue(v any) string {
	switch t := v.(type) {
	case nil:
		return missingValue
	case string:
		if t == "" {
			return missingValue
		}
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case float64:
		return counts.Sprintf("%v", t)
	default:
		data, err := json.Marshal(t)
		if err != nil || len(data) == 0 || string(data) == "{}" || string(data) == "null" {
			return missingValue
		}
		return string(data)
	}
}

// orNA substitutes "N/A" for empty strings.
func orNA(s string) string {
	if s == "" {
		return missingDate
	}
	return s
}

// renderTable renders a markdown table the way the rest of the tooling
// does, via tablewriter's streaming markdown renderer.
func renderTable(headers []string, rows [][]string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// Document renders the basic status record of one document.
func Document(raw json.RawMessage) (string, error) {
	var doc api.Document
	if err := api.Decode(raw, &doc); err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n", orNA(doc.Name))
	fmt.Fprintf(&b, "  ID:        %s\n", orNA(doc.ID))
	fmt.Fprintf(&b, "  Status:    %s\n", api.StatusLabel(doc.Status))
	fmt.Fprintf(&b, "  Created:   %s\n", formatDate(doc.DateCreated))
	fmt.Fprintf(&b, "  Modified:  %s\n", formatDate(doc.DateModified))
	if doc.DateCompleted != "" {
		fmt.Fprintf(&b, "  Completed: %s\n", formatDate(doc.DateCompleted))
	}
	if doc.ExpirationDate != "" {
		fmt.Fprintf(&b, "  Expires:   %s\n", formatDate(doc.ExpirationDate))
	}
	return b.String(), nil
}

// DocumentList renders the documents listing as a markdown table with a
// count trailer.
func DocumentList(raw json.RawMessage) (string, error) {
	var list api.DocumentList
	if err := api.Decode(raw, &list); err != nil {
		return "", fmt.Errorf("decode document list: %w", err)
	}

	if len(list.Results) == 0 {
		return "No documents found.\n", nil
	}

	rows := make([][]string, 0, len(list.Results))
	for _, doc := range list.Results {
		rows = append(rows, []string{
			orNA(doc.ID),
			orNA(doc.Name),
			api.StatusLabel(doc.Status),
			formatDate(doc.DateCreated),
			formatDate(doc.DateModified),
		})
	}

	table := renderTable([]string{"ID", "Name", "Status", "Created", "Modified"}, rows)
	return table + counts.Sprintf("\nTotal: %d document(s)\n", len(list.Results)), nil
}

// Details renders the full detail record of one document, including
// recipients and a truncated field listing.
func Details(raw json.RawMessage) (string, error) {
	var details api.DocumentDetails
	if err := api.Decode(raw, &details); err != nil {
		return "", fmt.Errorf("decode document details: %w", err)
	}

	var b strings.Builder
	doc, err := Document(raw)
	if err != nil {
		return "", err
	}
	b.WriteString(doc)

	if details.CreatedBy.Email != "" {
		fmt.Fprintf(&b, "  Author:    %s\n", details.CreatedBy.Email)
	}
	if details.GrandTotal.Amount != "" {
		fmt.Fprintf(&b, "  Total:     %s %s\n", details.GrandTotal.Amount, orNA(details.GrandTotal.Currency))
	}

	if len(details.Recipients) > 0 {
		fmt.Fprintf(&b, "\nRecipients (%d):\n", len(details.Recipients))
		for _, r := range details.Recipients {
			name := strings.TrimSpace(r.FirstName + " " + r.LastName)
			if name == "" {
				name = orNA(r.Email)
			}
			completed := ""
			if r.Completed {
				completed = " [completed]"
			}
			fmt.Fprintf(&b, "  - %s <%s>%s\n", name, orNA(r.Email), completed)
		}
	}

	if len(details.Fields) > 0 {
		b.WriteString("\n")
		b.WriteString(fieldListing(details.Fields))
	}

	return b.String(), nil
}

// Fields renders the field values of one document.
func Fields(raw json.RawMessage) (string, error) {
	var list api.FieldList
	if err := api.Decode(raw, &list); err != nil {
		return "", fmt.Errorf("decode fields: %w", err)
	}

	if len(list.Fields) == 0 {
		return "No fields found.\n", nil
	}
	return fieldListing(list.Fields), nil
}

// fieldListing renders a homogeneous field list, truncated to
// maxListedFields entries plus an "and N more" trailer.
func fieldListing(fields []api.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fields (%d):\n", len(fields))

	shown := fields
	if len(shown) > maxListedFields {
		shown = shown[:maxListedFields]
	}
	for _, f := range shown {
		name := f.Name
		if name == "" {
			name = f.Title
		}
		if name == "" {
			name = f.FieldID
		}
		fmt.Fprintf(&b, "  - %s: %s\n", orNA(name), fieldValue(f.Value))
	}
	if rest := len(fields) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  ... and %d more\n", rest)
	}
	return b.String()
}

// Templates renders the templates listing as a markdown table.
func Templates(raw json.RawMessage) (string, error) {
	var list api.TemplateList
	if err := api.Decode(raw, &list); err != nil {
		return "", fmt.Errorf("decode template list: %w", err)
	}

	if len(list.Results) == 0 {
		return "No templates found.\n", nil
	}

	rows := make([][]string, 0, len(list.Results))
	for _, tpl := range list.Results {
		rows = append(rows, []string{
			orNA(tpl.ID),
			orNA(tpl.Name),
			formatDate(tpl.DateCreated),
			formatDate(tpl.DateModified),
		})
	}

	table := renderTable([]string{"ID", "Name", "Created", "Modified"}, rows)
	return table + counts.Sprintf("\nTotal: %d template(s)\n", len(list.Results)), nil
}

// Folders renders the folders listing.
func Folders(raw json.RawMessage) (string, error) {
	var list api.FolderList
	if err := api.Decode(raw, &list); err != nil {
		return "", fmt.Errorf("decode folder list: %w", err)
	}

	if len(list.Results) == 0 {
		return "No folders found.\n", nil
	}

	var b strings.Builder
	for _, folder := range list.Results {
		fmt.Fprintf(&b, "%s  %s  (created %s)\n",
			orNA(folder.UUID), orNA(folder.Name), formatDate(folder.DateCreated))
	}
	b.WriteString(counts.Sprintf("\nTotal: %d folder(s)\n", len(list.Results)))
	return b.String(), nil
}

// AuditEvents renders a document's audit trail in chronological list form.
func AuditEvents(raw json.RawMessage) (string, error) {
	var list api.AuditEventList
	if err := api.Decode(raw, &list); err != nil {
		return "", fmt.Errorf("decode audit events: %w", err)
	}

	if len(list.Results) == 0 {
		return "No audit events found.\n", nil
	}

	var b strings.Builder
	for _, event := range list.Results {
		actor := event.ActorName
		if actor == "" {
			actor = event.Email
		}
		fmt.Fprintf(&b, "%s  %s", formatDate(event.Timestamp), orNA(event.Type))
		if actor != "" {
			fmt.Fprintf(&b, "  by %s", actor)
		}
		if event.IPAddress != "" {
			fmt.Fprintf(&b, " (%s)", event.IPAddress)
		}
		b.WriteByte('\n')
	}
	b.WriteString(counts.Sprintf("\nTotal: %d event(s)\n", len(list.Results)))
	return b.String(), nil
}

// Member renders the workspace member behind the credential.
func Member(raw json.RawMessage) (string, error) {
	var member api.Member
	if err := api.Decode(raw, &member); err != nil {
		return "", fmt.Errorf("decode member: %w", err)
	}

	name := strings.TrimSpace(member.FirstName + " " + member.LastName)

	var b strings.Builder
	fmt.Fprintf(&b, "Member: %s\n", orNA(name))
	fmt.Fprintf(&b, "  Email:     %s\n", orNA(member.Email))
	fmt.Fprintf(&b, "  Role:      %s\n", orNA(member.Role))
	workspace := member.WorkspaceName
	if workspace == "" {
		workspace = member.Workspace
	}
	fmt.Fprintf(&b, "  Workspace: %s\n", orNA(workspace))
	fmt.Fprintf(&b, "  Active:    %t\n", member.IsActive)
	fmt.Fprintf(&b, "  Joined:    %s\n", formatDate(member.DateCreated))
	return b.String(), nil
}

// JSON renders the raw response for JSON mode, indented for readability.
// Unindentable input passes through unchanged so odd upstream bodies still
// reach the caller.
func JSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
