package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/portal"
	"github.com/iftekharanwar/RareCare/internal/portal/portaltest"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

func newTestRouter() (*Router, *portaltest.ManualScheduler) {
	sched := &portaltest.ManualScheduler{}
	return NewRouter(portal.Options{Scheduler: sched}), sched
}

func TestRouterStartsUnauthenticated(t *testing.T) {
	r, _ := newTestRouter()
	assert.Equal(t, domain.RoleUnauthenticated, r.Session().Role)
	_, ok := r.View()
	assert.False(t, ok)
}

func TestLoginOpensFreshPortal(t *testing.T) {
	for _, role := range []domain.Role{domain.RolePatient, domain.RoleDoctor, domain.RoleResearcher} {
		t.Run(string(role), func(t *testing.T) {
			r, _ := newTestRouter()
			view, err := r.Login(role, domain.Credentials{Username: "casey", Password: "secret"})
			require.NoError(t, err)

			assert.Equal(t, role, r.Session().Role)
			kind, _ := role.PortalKind()
			assert.Equal(t, kind, view.Kind())
			assert.Equal(t, portal.DefaultTab(kind), view.ActiveTab())
			assert.Equal(t, "", view.SearchTerm())

			active, ok := r.View()
			require.True(t, ok)
			assert.Same(t, view, active)
		})
	}
}

func TestLoginIdentity(t *testing.T) {
	r, _ := newTestRouter()
	_, err := r.Login(domain.RoleDoctor, domain.Credentials{Username: "Gregory House"})
	require.NoError(t, err)
	id := r.Session().Identity
	assert.Equal(t, "Gregory House", id.DisplayName)
	assert.Equal(t, "GH", id.Initials)

	r.Logout()
	_, err = r.Login(domain.RoleResearcher, domain.Credentials{})
	require.NoError(t, err)
	id = r.Session().Identity
	assert.Equal(t, "", id.Username)
	assert.Equal(t, "Dr. Emily Johnson", id.DisplayName)
	assert.Equal(t, "DEJ", id.Initials)
	assert.NotEmpty(t, id.AvatarURL)
}

func TestLoginRejectsUnauthenticatedTarget(t *testing.T) {
	r, _ := newTestRouter()
	_, err := r.Login(domain.RoleUnauthenticated, domain.Credentials{})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRoleTransition))

	_, err = r.Login(domain.Role("admin"), domain.Credentials{})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRoleTransition))
	assert.Equal(t, domain.RoleUnauthenticated, r.Session().Role)
}

func TestLoginWhileAuthenticatedIsRejected(t *testing.T) {
	r, _ := newTestRouter()
	first, err := r.Login(domain.RolePatient, domain.Credentials{Username: "john"})
	require.NoError(t, err)
	first.SetSearchTerm("chen")

	_, err = r.Login(domain.RoleDoctor, domain.Credentials{Username: "smith"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRoleTransition))

	assert.Equal(t, domain.RolePatient, r.Session().Role)
	assert.Equal(t, "john", r.Session().Identity.Username)
	active, _ := r.View()
	assert.Same(t, first, active)
	assert.Equal(t, "chen", active.SearchTerm())
}

func TestLogoutIsIdempotent(t *testing.T) {
	r, _ := newTestRouter()
	assert.False(t, r.Logout())
	assert.False(t, r.Logout())
	assert.Equal(t, domain.Session{Role: domain.RoleUnauthenticated}, r.Session())

	_, err := r.Login(domain.RoleResearcher, domain.Credentials{})
	require.NoError(t, err)
	assert.True(t, r.Logout())
	assert.False(t, r.Logout())
	assert.Equal(t, domain.Session{Role: domain.RoleUnauthenticated}, r.Session())
	_, ok := r.View()
	assert.False(t, ok)
}

func TestLoggingInAgainResetsPortalState(t *testing.T) {
	r, _ := newTestRouter()
	view, err := r.Login(domain.RoleDoctor, domain.Credentials{})
	require.NoError(t, err)
	require.NoError(t, view.SelectTab(domain.TabPatients))
	view.SetSearchTerm("lee")
	r.Logout()

	view, err = r.Login(domain.RoleDoctor, domain.Credentials{})
	require.NoError(t, err)
	assert.Equal(t, domain.TabDashboard, view.ActiveTab())
	assert.Equal(t, "", view.SearchTerm())
}

func TestLogoutCancelsPendingSubmission(t *testing.T) {
	r, sched := newTestRouter()
	view, err := r.Login(domain.RolePatient, domain.Credentials{})
	require.NoError(t, err)
	_, err = view.(portal.CaseSubmitter).SubmitCase(domain.CaseDraft{Symptoms: "rash"})
	require.NoError(t, err)
	require.Equal(t, 1, sched.Pending())

	r.Logout()

	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 0, sched.Fire())
}
