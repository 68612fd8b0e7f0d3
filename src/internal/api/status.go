// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package api

// StatusCode identifies one of the document lifecycle states the upstream
// API reports. The wire form is the dotted "document.<name>" string carried
// in query parameters and response bodies.
type StatusCode string

// Document lifecycle states. The set is closed upstream; a response carrying
// anything else is rendered as its raw wire string.
const (
	StatusDraft           StatusCode = "document.draft"
	StatusSent            StatusCode = "document.sent"
	StatusCompleted       StatusCode = "document.completed"
	StatusUploaded        StatusCode = "document.uploaded"
	StatusError           StatusCode = "document.error"
	StatusViewed          StatusCode = "document.viewed"
	StatusWaitingApproval StatusCode = "document.waiting_approval"
	StatusApproved        StatusCode = "document.approved"
	StatusRejected        StatusCode = "document.rejected"
	StatusWaitingPay      StatusCode = "document.waiting_pay"
	StatusPaid            StatusCode = "document.paid"
	StatusVoided          StatusCode = "document.voided"
	StatusDeclined        StatusCode = "document.declined"
	StatusExternalReview  StatusCode = "document.external_review"
)

// statusLabels maps every wire status to its display label for summary mode.
var statusLabels = map[StatusCode]string{
	StatusDraft:           "Draft",
	StatusSent:            "Sent",
	StatusCompleted:       "Completed",
	StatusUploaded:        "Uploaded",
	StatusError:           "Error",
	StatusViewed:          "Viewed",
	StatusWaitingApproval: "Waiting for approval",
	StatusApproved:        "Approved",
	StatusRejected:        "Rejected",
	StatusWaitingPay:      "Waiting for payment",
	StatusPaid:            "Paid",
	StatusVoided:          "Voided",
	StatusDeclined:        "Declined",
	StatusExternalReview:  "External review",
}

// statusAliases maps the lowercase shorthand a user may type for --status to
// the full dotted wire value. Unrecognized input passes through unchanged so
// advanced users can supply raw wire values (or future states) directly.
var statusAliases = map[string]StatusCode{
	"draft":     StatusDraft,
	"sent":      StatusSent,
	"completed": StatusCompleted,
	"viewed":    StatusViewed,
	"approved":  StatusApproved,
	"rejected":  StatusRejected,
	"paid":      StatusPaid,
	"voided":    StatusVoided,
	"declined":  StatusDeclined,
}

// ExpandStatusAlias expands a shorthand status alias to its wire value.
// Anything that is not a known alias is returned unchanged.
func ExpandStatusAlias(s string) string {
	if wire, ok := statusAliases[s]; ok {
		return string(wire)
	}
	return s
}

// StatusLabel returns the display label for a wire status string.
// Unknown statuses render as their raw wire form.
func StatusLabel(wire string) string {
	if label, ok := statusLabels[StatusCode(wire)]; ok {
		return label
	}
	return wire
}
