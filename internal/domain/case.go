package domain

import (
	"strings"
	"time"
)

// Severity of a submitted case. The empty value means "not selected".
type Severity string

const (
	SeverityUnset    Severity = ""
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// ParseSeverity accepts the three levels case-insensitively, or empty.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityUnset:
		return SeverityUnset, true
	case SeverityMild:
		return SeverityMild, true
	case SeverityModerate:
		return SeverityModerate, true
	case SeveritySevere:
		return SeveritySevere, true
	}
	return "", false
}

// CaseDraft is the unsaved submit-case form.
type CaseDraft struct {
	Symptoms string
	Duration string
	Severity Severity
}

// Empty reports whether nothing has been entered.
func (d CaseDraft) Empty() bool {
	return d == CaseDraft{}
}

// Submission acknowledges a case once its fixed delay has elapsed.
type Submission struct {
	ID          string
	Draft       CaseDraft
	SubmittedAt time.Time
	CompletedAt time.Time
}
