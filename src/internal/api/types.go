// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

import "encoding/json"

// The response shapes below are owned by the upstream service. Fields are
// read defensively: everything is optional, absent values stay zero, and
// no full schema is ever validated.

// Document is the summary record returned by the documents listing and
// status endpoints.
type Document struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DateCreated    string `json:"date_created"`
	DateModified   string `json:"date_modified"`
	DateCompleted  string `json:"date_completed"`
	ExpirationDate string `json:"expiration_date"`
	Version        string `json:"version"`
}

// DocumentList is the envelope of the documents listing endpoint.
type DocumentList struct {
	Results []Document `json:"results"`
}

// Recipient is one signer or CC on a document detail record.
type Recipient struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Type      string `json:"recipient_type"`
	Completed bool   `json:"has_completed"`
}

// Field is one fillable field on a document. Value is left untyped since
// upstream mixes strings, numbers, booleans, and objects per field type.
type Field struct {
	FieldID    string `json:"field_id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Value      any    `json:"value"`
	AssignedTo struct {
		Email string `json:"email"`
	} `json:"assigned_to"`
}

// DocumentDetails is the full detail record of one document.
type DocumentDetails struct {
	Document
	Recipients []Recipient `json:"recipients"`
	Fields     []Field     `json:"fields"`
	Tokens     []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"tokens"`
	CreatedBy struct {
		Email string `json:"email"`
	} `json:"created_by"`
	GrandTotal struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"grand_total"`
}

// FieldList is the envelope of the document fields endpoint.
type FieldList struct {
	Fields []Field `json:"fields"`
}

// Template is one template summary record.
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DateCreated  string `json:"date_created"`
	DateModified string `json:"date_modified"`
	Version      string `json:"version"`
}

// TemplateList is the envelope of the templates listing endpoint.
type TemplateList struct {
	Results []Template `json:"results"`
}

// Folder is one document folder.
type Folder struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	DateCreated string `json:"date_created"`
	HasFolders  bool   `json:"has_folders"`
	HasItems    bool   `json:"has_items"`
}

// FolderList is the envelope of the folders listing endpoint.
type FolderList struct {
	Results []Folder `json:"results"`
}

// AuditEvent is one entry of a document's audit trail.
type AuditEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ActorName string `json:"actor_name"`
	Email     string `json:"email"`
	IPAddress string `json:"ip_address"`
	Timestamp string `json:"timestamp"`
}

// AuditEventList is the envelope of the audit-events endpoint.
type AuditEventList struct {
	Results []AuditEvent `json:"results"`
}

// Member is the workspace member record behind the credential.
type Member struct {
	UserID        string   `json:"user_id"`
	MembershipID  string   `json:"membership_id"`
	Email         string   `json:"email"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Role          string   `json:"role"`
	Workspace     string   `json:"workspace"`
	WorkspaceName string   `json:"workspace_name"`
	EmailsEnabled bool     `json:"emails_enabled"`
	IsActive      bool     `json:"is_active"`
	DateCreated   string   `json:"date_created"`
	Scopes        []string `json:"scope"`
}

// Decode unmarshals a raw API response into out, tolerating unknown and
// absent fields by design.
func Decode(raw json.RawMessage, out any) error {
	return json.Unmarshal(raw, out)
}
