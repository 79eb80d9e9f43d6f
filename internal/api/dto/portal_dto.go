package dto

import "time"

// SelectTabRequest payload.
type SelectTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

// SearchRequest payload. Term is used verbatim.
type SearchRequest struct {
	Term string `json:"term"`
}

// CaseDraftRequest is the submit-case form.
type CaseDraftRequest struct {
	Symptoms string `json:"symptoms"`
	Duration string `json:"duration"`
	Severity string `json:"severity"`
}

// CaseDraftResponse echoes the stored draft.
type CaseDraftResponse struct {
	Symptoms   string `json:"symptoms"`
	Duration   string `json:"duration"`
	Severity   string `json:"severity"`
	Submitting bool   `json:"submitting"`
}

// SubmissionResponse acknowledges a completed case submission.
type SubmissionResponse struct {
	ID          string    `json:"id"`
	Severity    string    `json:"severity,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// PortalResponse is a snapshot of the active portal.
type PortalResponse struct {
	Session        SessionResponse     `json:"session"`
	Portal         string              `json:"portal"`
	Tabs           []string            `json:"tabs"`
	ActiveTab      string              `json:"active_tab"`
	SearchTerm     string              `json:"search_term"`
	Content        any                 `json:"content,omitempty"`
	Draft          *CaseDraftResponse  `json:"draft,omitempty"`
	LastSubmission *SubmissionResponse `json:"last_submission,omitempty"`
}

// SubmitCaseResponse is returned when a submission starts.
type SubmitCaseResponse struct {
	SubmissionID string         `json:"submission_id"`
	Portal       PortalResponse `json:"portal"`
}
