// Package session owns the login state and the single active portal.
package session

import (
	"github.com/iftekharanwar/RareCare/internal/catalog"
	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/portal"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// Router is the Unauthenticated -> {Patient, Doctor, Researcher} -> Unauthenticated
// state machine. It is not safe for concurrent use.
type Router struct {
	opts    portal.Options
	catalog *catalog.Catalog
	session domain.Session
	view    portal.ViewState
}

// NewRouter starts unauthenticated. opts is used to build every portal.
func NewRouter(opts portal.Options) *Router {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	return &Router{
		opts:    opts,
		catalog: opts.Catalog,
		session: domain.Session{Role: domain.RoleUnauthenticated},
	}
}

// Login opens the portal for role. Credentials are not verified; the password
// is dropped. Logging in while a portal is open is rejected.
func (r *Router) Login(role domain.Role, creds domain.Credentials) (portal.ViewState, error) {
	kind, ok := role.PortalKind()
	if !ok {
		return nil, apperrors.NewInvalidRoleTransition(string(r.session.Role), string(role))
	}
	if r.session.Authenticated() {
		return nil, apperrors.NewInvalidRoleTransition(string(r.session.Role), string(role))
	}

	view, err := portal.New(kind, r.opts)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	r.view = view
	r.session = domain.Session{Role: role, Identity: r.identity(kind, creds.Username)}
	return view, nil
}

// Logout tears down the portal. It reports whether anyone was logged in.
func (r *Router) Logout() bool {
	if !r.session.Authenticated() {
		return false
	}
	r.view.Close()
	r.view = nil
	r.session = domain.Session{Role: domain.RoleUnauthenticated}
	return true
}

func (r *Router) Session() domain.Session { return r.session }

// View returns the active portal, if any.
func (r *Router) View() (portal.ViewState, bool) {
	return r.view, r.view != nil
}

func (r *Router) identity(kind domain.PortalKind, username string) domain.Identity {
	persona := r.catalog.Persona(kind)
	display := username
	if display == "" {
		display = persona.DisplayName
	}
	return domain.Identity{
		Username:    username,
		DisplayName: display,
		Initials:    domain.Initials(display),
		AvatarURL:   persona.AvatarURL,
	}
}
