package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced by the demo client.
const (
	CodeUnknownRole           = "UNKNOWN_ROLE"
	CodeInvalidRoleTransition = "INVALID_ROLE_TRANSITION"
	CodeUnknownTabSelector    = "UNKNOWN_TAB_SELECTOR"
	CodeInvalidSeverity       = "INVALID_SEVERITY"
	CodeSubmissionInFlight    = "SUBMISSION_IN_FLIGHT"
	CodeUnsupportedAction     = "UNSUPPORTED_ACTION"
	CodeNotAuthenticated      = "NOT_AUTHENTICATED"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeRequestTimeout        = "REQUEST_TIMEOUT"
	CodeInternal              = "INTERNAL_ERROR"
)

// Sentinels for errors.Is; matching is by code, so details may differ.
var (
	ErrUnknownRole           = &DomainError{Code: CodeUnknownRole}
	ErrInvalidRoleTransition = &DomainError{Code: CodeInvalidRoleTransition}
	ErrUnknownTabSelector    = &DomainError{Code: CodeUnknownTabSelector}
	ErrInvalidSeverity       = &DomainError{Code: CodeInvalidSeverity}
	ErrSubmissionInFlight    = &DomainError{Code: CodeSubmissionInFlight}
	ErrUnsupportedAction     = &DomainError{Code: CodeUnsupportedAction}
	ErrNotAuthenticated      = &DomainError{Code: CodeNotAuthenticated}
	ErrRequestTimeout        = &DomainError{Code: CodeRequestTimeout}
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewUnknownRole(role string) error {
	return NewDomainError(CodeUnknownRole, fmt.Sprintf("unknown role %q", role), http.StatusBadRequest,
		map[string]any{"role": role})
}

func NewInvalidRoleTransition(from, to string) error {
	return NewDomainError(CodeInvalidRoleTransition, fmt.Sprintf("cannot login as %s from %s", to, from),
		http.StatusConflict, map[string]any{"from": from, "to": to})
}

func NewUnknownTabSelector(portal, tab string, allowed []string) error {
	return NewDomainError(CodeUnknownTabSelector, fmt.Sprintf("tab %q does not exist on the %s portal", tab, portal),
		http.StatusBadRequest, map[string]any{"portal": portal, "tab": tab, "allowed": allowed})
}

func NewInvalidSeverity(severity string) error {
	return NewDomainError(CodeInvalidSeverity, fmt.Sprintf("unknown severity %q", severity), http.StatusBadRequest,
		map[string]any{"severity": severity, "allowed": []string{"mild", "moderate", "severe"}})
}

func NewSubmissionInFlight() error {
	return NewDomainError(CodeSubmissionInFlight, "a case submission is already in progress", http.StatusConflict, nil)
}

func NewUnsupportedAction(portal, action string) error {
	return NewDomainError(CodeUnsupportedAction, fmt.Sprintf("%s is not available on the %s portal", action, portal),
		http.StatusConflict, map[string]any{"portal": portal, "action": action})
}

func NewNotAuthenticated() error {
	return NewDomainError(CodeNotAuthenticated, "login required", http.StatusUnauthorized, nil)
}

// NewRequestTimeout wraps the context error of an abandoned action.
func NewRequestTimeout(err error) error {
	return &DomainError{
		Code:       CodeRequestTimeout,
		Message:    "request abandoned before it could be applied",
		HTTPStatus: http.StatusRequestTimeout,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if domainErr.HTTPStatus == 0 {
			return &DomainError{
				Code:       domainErr.Code,
				Message:    domainErr.Error(),
				HTTPStatus: http.StatusInternalServerError,
				Details:    domainErr.Details,
				Err:        domainErr.Err,
			}
		}
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
