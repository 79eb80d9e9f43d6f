package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionStarted        EventType = "session_started"
	EventSessionEnded          EventType = "session_ended"
	EventTabSelected           EventType = "tab_selected"
	EventSearchChanged         EventType = "search_changed"
	EventCaseSubmissionStarted EventType = "case_submission_started"
	EventCaseSubmitted         EventType = "case_submitted"
)

// Actor identifies who triggered an event.
type Actor struct {
	Role        domain.Role `json:"role"`
	DisplayName string      `json:"display_name,omitempty"`
}

// Event represents a session or portal transition.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// SessionEndedPayload payload.
type SessionEndedPayload struct {
	PendingSubmissionCancelled bool `json:"pending_submission_cancelled"`
}

// TabSelectedPayload payload.
type TabSelectedPayload struct {
	Portal domain.PortalKind `json:"portal"`
	From   domain.Tab        `json:"from"`
	To     domain.Tab        `json:"to"`
}

// SearchChangedPayload payload.
type SearchChangedPayload struct {
	Portal  domain.PortalKind `json:"portal"`
	Term    string            `json:"term"`
	Matches int               `json:"matches"`
}

// CaseSubmissionPayload payload.
type CaseSubmissionPayload struct {
	SubmissionID string          `json:"submission_id"`
	Severity     domain.Severity `json:"severity,omitempty"`
}
