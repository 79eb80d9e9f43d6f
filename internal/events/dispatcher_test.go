package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

func TestPublishRunsEveryHandlerInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventTabSelected, func(_ context.Context, e Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventTabSelected, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventSessionEnded, func(_ context.Context, e Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), New(EventTabSelected, Actor{Role: domain.RolePatient}, TabSelectedPayload{
		Portal: domain.PortalPatient, From: domain.TabDashboard, To: domain.TabDoctors,
	}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "first failed")
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishWithoutListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventSessionStarted, Actor{}, nil)))
}

func TestNewStampsEvent(t *testing.T) {
	a := New(EventCaseSubmitted, Actor{Role: domain.RolePatient}, CaseSubmissionPayload{SubmissionID: "x"})
	b := New(EventCaseSubmitted, Actor{Role: domain.RolePatient}, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}
