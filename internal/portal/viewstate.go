// Package portal implements the per-role tab and search state shown after login.
package portal

import (
	"fmt"
	"slices"
	"time"

	"github.com/iftekharanwar/RareCare/internal/catalog"
	"github.com/iftekharanwar/RareCare/internal/domain"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// DefaultSubmitDelay is how long a case submission takes to be acknowledged.
const DefaultSubmitDelay = 2 * time.Second

// ViewState is the tab and search state of one portal. It is not safe for
// concurrent use; callers serialize access.
type ViewState interface {
	Kind() domain.PortalKind
	Tabs() []domain.Tab
	ActiveTab() domain.Tab
	SelectTab(tab domain.Tab) error
	SearchTerm() string
	SetSearchTerm(term string)
	// FilteredListing returns the portal's dataset narrowed by the search term.
	FilteredListing() []domain.Listing
	// Close tears the portal down and cancels pending work.
	Close()
}

// Options carries the collaborators a portal is built with.
type Options struct {
	Catalog   *catalog.Catalog
	Scheduler Scheduler
	// SubmitDelay defaults to DefaultSubmitDelay when unset.
	SubmitDelay time.Duration
	// OnCaseSubmitted runs when a patient submission completes.
	OnCaseSubmitted func(domain.Submission)
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Scheduler == nil {
		o.Scheduler = NewTimerScheduler()
	}
	if o.SubmitDelay == 0 {
		o.SubmitDelay = DefaultSubmitDelay
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// New builds a fresh portal on its default tab with an empty search term.
func New(kind domain.PortalKind, opts Options) (ViewState, error) {
	opts = opts.withDefaults()
	tabs, ok := tabSets[kind]
	if !ok {
		return nil, fmt.Errorf("portal: unknown kind %q", kind)
	}

	base := &viewState{
		kind:    kind,
		tabs:    tabs,
		active:  tabs[0],
		listing: opts.Catalog.Listing(kind),
	}
	if kind == domain.PortalPatient {
		return newPatientState(base, opts), nil
	}
	return base, nil
}

type viewState struct {
	kind    domain.PortalKind
	tabs    []domain.Tab
	active  domain.Tab
	search  string
	listing []domain.Listing
	closed  bool
}

func (v *viewState) Kind() domain.PortalKind { return v.kind }

func (v *viewState) Tabs() []domain.Tab { return slices.Clone(v.tabs) }

func (v *viewState) ActiveTab() domain.Tab { return v.active }

func (v *viewState) SelectTab(tab domain.Tab) error {
	if !slices.Contains(v.tabs, tab) {
		return apperrors.NewUnknownTabSelector(string(v.kind), string(tab), tabNames(v.tabs))
	}
	v.active = tab
	return nil
}

func (v *viewState) SearchTerm() string { return v.search }

func (v *viewState) SetSearchTerm(term string) { v.search = term }

func (v *viewState) FilteredListing() []domain.Listing {
	return Filter(v.listing, v.search)
}

func (v *viewState) Close() { v.closed = true }
