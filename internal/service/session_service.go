package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iftekharanwar/RareCare/internal/catalog"
	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/events"
	"github.com/iftekharanwar/RareCare/internal/portal"
	"github.com/iftekharanwar/RareCare/internal/session"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// SessionService is the single logical UI thread of the demo client: every
// action, including delayed submission callbacks, runs under one lock.
type SessionService struct {
	mu         sync.Mutex
	router     *session.Router
	catalog    *catalog.Catalog
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// SessionDependencies encapsulates collaborators for the session service.
type SessionDependencies struct {
	Catalog     *catalog.Catalog
	Scheduler   portal.Scheduler
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	SubmitDelay time.Duration
}

// CaseDraftInput is the raw submit-case form.
type CaseDraftInput struct {
	Symptoms string
	Duration string
	Severity string
}

// PortalState is what the active portal currently shows.
type PortalState struct {
	Session        domain.Session
	Kind           domain.PortalKind
	Tabs           []domain.Tab
	ActiveTab      domain.Tab
	SearchTerm     string
	Listing        []domain.Listing
	Content        any
	Draft          *domain.CaseDraft
	Submitting     bool
	LastSubmission *domain.Submission
}

// NewSessionService builds the service in the unauthenticated state.
func NewSessionService(deps SessionDependencies) *SessionService {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = portal.NewTimerScheduler()
	}
	if deps.Dispatcher == nil {
		deps.Dispatcher = events.NewInMemoryDispatcher()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &SessionService{
		catalog:    deps.Catalog,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	inner := deps.Scheduler
	s.router = session.NewRouter(portal.Options{
		Catalog: deps.Catalog,
		Scheduler: portal.SchedulerFunc(func(d time.Duration, fn func()) portal.Task {
			return inner.AfterFunc(d, func() {
				s.mu.Lock()
				defer s.mu.Unlock()
				fn()
			})
		}),
		SubmitDelay:     deps.SubmitDelay,
		OnCaseSubmitted: s.caseSubmitted,
	})
	return s
}

// Session returns the current session.
func (s *SessionService) Session(_ context.Context) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.Session()
}

// Login parses role and opens its portal.
func (s *SessionService) Login(ctx context.Context, roleText string, creds domain.Credentials) (PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return PortalState{}, err
	}
	defer s.mu.Unlock()

	role, ok := domain.ParseRole(roleText)
	if !ok {
		return PortalState{}, apperrors.NewUnknownRole(roleText)
	}
	view, err := s.router.Login(role, creds)
	if err != nil {
		s.logger.Warn("login rejected",
			zap.String("current_role", string(s.router.Session().Role)),
			zap.String("requested_role", string(role)))
		return PortalState{}, err
	}

	sess := s.router.Session()
	s.logger.Info("session started",
		zap.String("role", string(sess.Role)),
		zap.String("display_name", sess.Identity.DisplayName))
	s.publish(ctx, events.New(events.EventSessionStarted, actorOf(sess), nil))
	return s.state(view), nil
}

// Logout closes the active portal. It reports whether a session ended. It
// runs even when ctx is done so shutdown can always tear the portal down.
func (s *SessionService) Logout(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.router.Session()
	cancelled := false
	if view, ok := s.router.View(); ok {
		if submitter, ok := view.(portal.CaseSubmitter); ok {
			cancelled = submitter.Submitting()
		}
	}
	if !s.router.Logout() {
		return false
	}

	s.logger.Info("session ended",
		zap.String("role", string(sess.Role)),
		zap.Bool("pending_submission_cancelled", cancelled))
	s.publish(ctx, events.New(events.EventSessionEnded, actorOf(sess), events.SessionEndedPayload{
		PendingSubmissionCancelled: cancelled,
	}))
	return true
}

// Portal returns the active portal's state.
func (s *SessionService) Portal(ctx context.Context) (PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return PortalState{}, err
	}
	defer s.mu.Unlock()

	view, err := s.activeView()
	if err != nil {
		return PortalState{}, err
	}
	return s.state(view), nil
}

// SelectTab switches the active portal's tab.
func (s *SessionService) SelectTab(ctx context.Context, tab string) (PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return PortalState{}, err
	}
	defer s.mu.Unlock()

	view, err := s.activeView()
	if err != nil {
		return PortalState{}, err
	}
	from := view.ActiveTab()
	if err := view.SelectTab(domain.Tab(tab)); err != nil {
		return PortalState{}, err
	}

	s.logger.Debug("tab selected",
		zap.String("portal", string(view.Kind())),
		zap.String("from", string(from)),
		zap.String("to", tab))
	s.publish(ctx, events.New(events.EventTabSelected, actorOf(s.router.Session()), events.TabSelectedPayload{
		Portal: view.Kind(), From: from, To: view.ActiveTab(),
	}))
	return s.state(view), nil
}

// SetSearchTerm replaces the active portal's search term verbatim.
func (s *SessionService) SetSearchTerm(ctx context.Context, term string) (PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return PortalState{}, err
	}
	defer s.mu.Unlock()

	view, err := s.activeView()
	if err != nil {
		return PortalState{}, err
	}
	view.SetSearchTerm(term)
	state := s.state(view)

	s.publish(ctx, events.New(events.EventSearchChanged, actorOf(s.router.Session()), events.SearchChangedPayload{
		Portal: view.Kind(), Term: term, Matches: len(state.Listing),
	}))
	return state, nil
}

// Listing returns the active portal's filtered listing.
func (s *SessionService) Listing(ctx context.Context) ([]domain.Listing, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	view, err := s.activeView()
	if err != nil {
		return nil, err
	}
	return view.FilteredListing(), nil
}

// UpdateDraft stores the submit-case form without submitting it.
func (s *SessionService) UpdateDraft(ctx context.Context, input CaseDraftInput) (PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return PortalState{}, err
	}
	defer s.mu.Unlock()

	view, submitter, err := s.activeSubmitter("update-draft")
	if err != nil {
		return PortalState{}, err
	}
	draft, err := parseDraft(input)
	if err != nil {
		return PortalState{}, err
	}
	if err := submitter.UpdateDraft(draft); err != nil {
		return PortalState{}, err
	}
	return s.state(view), nil
}

// SubmitCase starts a submission. A nil input submits the stored draft.
func (s *SessionService) SubmitCase(ctx context.Context, input *CaseDraftInput) (string, PortalState, error) {
	if err := s.lock(ctx); err != nil {
		return "", PortalState{}, err
	}
	defer s.mu.Unlock()

	view, submitter, err := s.activeSubmitter("submit-case")
	if err != nil {
		return "", PortalState{}, err
	}
	draft := submitter.Draft()
	if input != nil {
		if draft, err = parseDraft(*input); err != nil {
			return "", PortalState{}, err
		}
	}

	id, err := submitter.SubmitCase(draft)
	if err != nil {
		return "", PortalState{}, err
	}
	s.logger.Info("case submission started", zap.String("submission_id", id))
	s.publish(ctx, events.New(events.EventCaseSubmissionStarted, actorOf(s.router.Session()), events.CaseSubmissionPayload{
		SubmissionID: id, Severity: draft.Severity,
	}))
	return id, s.state(view), nil
}

// caseSubmitted runs under s.mu via the locked scheduler.
func (s *SessionService) caseSubmitted(sub domain.Submission) {
	s.logger.Info("case submitted",
		zap.String("submission_id", sub.ID),
		zap.Duration("latency", sub.CompletedAt.Sub(sub.SubmittedAt)))
	s.publish(context.Background(), events.New(events.EventCaseSubmitted, actorOf(s.router.Session()), events.CaseSubmissionPayload{
		SubmissionID: sub.ID, Severity: sub.Draft.Severity,
	}))
}

// lock takes the action lock and gives it back if ctx ended while waiting.
func (s *SessionService) lock(ctx context.Context) error {
	s.mu.Lock()
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return apperrors.NewRequestTimeout(err)
	}
	return nil
}

func (s *SessionService) activeView() (portal.ViewState, error) {
	view, ok := s.router.View()
	if !ok {
		return nil, apperrors.NewNotAuthenticated()
	}
	return view, nil
}

func (s *SessionService) activeSubmitter(action string) (portal.ViewState, portal.CaseSubmitter, error) {
	view, err := s.activeView()
	if err != nil {
		return nil, nil, err
	}
	submitter, ok := view.(portal.CaseSubmitter)
	if !ok {
		return nil, nil, apperrors.NewUnsupportedAction(string(view.Kind()), action)
	}
	return view, submitter, nil
}

func (s *SessionService) publish(ctx context.Context, event events.Event) {
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func (s *SessionService) state(view portal.ViewState) PortalState {
	st := PortalState{
		Session:    s.router.Session(),
		Kind:       view.Kind(),
		Tabs:       view.Tabs(),
		ActiveTab:  view.ActiveTab(),
		SearchTerm: view.SearchTerm(),
		Listing:    view.FilteredListing(),
	}
	if submitter, ok := view.(portal.CaseSubmitter); ok {
		draft := submitter.Draft()
		st.Draft = &draft
		st.Submitting = submitter.Submitting()
		if last, ok := submitter.LastSubmission(); ok {
			st.LastSubmission = &last
		}
	}
	st.Content = s.tabContent(view.Kind(), view.ActiveTab(), st.Listing)
	return st
}

func (s *SessionService) tabContent(kind domain.PortalKind, tab domain.Tab, listing []domain.Listing) any {
	if tab == domain.TabDashboard {
		return s.catalog.Dashboard(kind)
	}
	if tab == portal.ListingTab(kind) {
		return listing
	}
	switch kind {
	case domain.PortalPatient:
		switch tab {
		case domain.TabAppointments:
			return s.catalog.PatientAppointments()
		case domain.TabMessages:
			return s.catalog.Messages()
		}
	case domain.PortalDoctor:
		switch tab {
		case domain.TabAppointments:
			return s.catalog.DoctorAppointments()
		case domain.TabCases:
			return s.catalog.Cases()
		case domain.TabConsultations:
			return s.catalog.Consultations()
		}
	case domain.PortalResearcher:
		switch tab {
		case domain.TabCollaboration:
			return s.catalog.Collaborations()
		case domain.TabDataAnalysis:
			return s.catalog.AnalysisTools()
		case domain.TabCaseInsights:
			return s.catalog.CaseInsights()
		}
	}
	return nil
}

func parseDraft(input CaseDraftInput) (domain.CaseDraft, error) {
	severity, ok := domain.ParseSeverity(input.Severity)
	if !ok {
		return domain.CaseDraft{}, apperrors.NewInvalidSeverity(input.Severity)
	}
	return domain.CaseDraft{
		Symptoms: input.Symptoms,
		Duration: input.Duration,
		Severity: severity,
	}, nil
}

func actorOf(sess domain.Session) events.Actor {
	return events.Actor{Role: sess.Role, DisplayName: sess.Identity.DisplayName}
}
