package errorutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorIsMatchesByCode(t *testing.T) {
	err := NewUnknownTabSelector("patient", "billing", []string{"dashboard"})

	assert.True(t, errors.Is(err, ErrUnknownTabSelector))
	assert.False(t, errors.Is(err, ErrUnknownRole))

	wrapped := fmt.Errorf("select tab: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnknownTabSelector))
}

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{name: "domain error passes through", err: NewSubmissionInFlight(), wantCode: CodeSubmissionInFlight, wantStatus: http.StatusConflict},
		{name: "wrapped domain error", err: fmt.Errorf("login: %w", NewInvalidRoleTransition("patient", "doctor")), wantCode: CodeInvalidRoleTransition, wantStatus: http.StatusConflict},
		{name: "abandoned request", err: NewRequestTimeout(context.DeadlineExceeded), wantCode: CodeRequestTimeout, wantStatus: http.StatusRequestTimeout},
		{name: "plain error becomes internal", err: errors.New("boom"), wantCode: CodeInternal, wantStatus: http.StatusInternalServerError},
		{name: "bare sentinel gets a status", err: ErrNotAuthenticated, wantCode: CodeNotAuthenticated, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
		})
	}

	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorMessage(t *testing.T) {
	err := NewUnknownRole("admin")
	assert.Equal(t, `unknown role "admin"`, err.Error())

	internal := NewInternalError(errors.New("scheduler stopped"))
	assert.Equal(t, "internal server error: scheduler stopped", internal.Error())
}
