package portal

import (
	"time"

	"github.com/google/uuid"

	"github.com/iftekharanwar/RareCare/internal/domain"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// CaseSubmitter is implemented by portals that offer the submit-case form.
type CaseSubmitter interface {
	Draft() domain.CaseDraft
	UpdateDraft(draft domain.CaseDraft) error
	// SubmitCase starts a submission and returns its id. The acknowledgement
	// arrives after the configured delay.
	SubmitCase(draft domain.CaseDraft) (string, error)
	Submitting() bool
	LastSubmission() (domain.Submission, bool)
}

type pendingSubmission struct {
	id          string
	draft       domain.CaseDraft
	submittedAt time.Time
	task        Task
}

type patientState struct {
	*viewState

	scheduler   Scheduler
	delay       time.Duration
	now         func() time.Time
	onSubmitted func(domain.Submission)

	draft   domain.CaseDraft
	pending *pendingSubmission
	last    *domain.Submission
}

func newPatientState(base *viewState, opts Options) *patientState {
	return &patientState{
		viewState:   base,
		scheduler:   opts.Scheduler,
		delay:       opts.SubmitDelay,
		now:         opts.Now,
		onSubmitted: opts.OnCaseSubmitted,
	}
}

// SelectTab discards the draft when leaving the submit-case tab. A submission
// already in flight still completes.
func (p *patientState) SelectTab(tab domain.Tab) error {
	from := p.active
	if err := p.viewState.SelectTab(tab); err != nil {
		return err
	}
	if from == domain.TabSubmitCase && tab != domain.TabSubmitCase {
		p.draft = domain.CaseDraft{}
	}
	return nil
}

func (p *patientState) Draft() domain.CaseDraft { return p.draft }

func (p *patientState) UpdateDraft(draft domain.CaseDraft) error {
	if err := validateSeverity(draft.Severity); err != nil {
		return err
	}
	if p.pending != nil {
		return apperrors.NewSubmissionInFlight()
	}
	p.draft = draft
	return nil
}

func (p *patientState) SubmitCase(draft domain.CaseDraft) (string, error) {
	if p.closed {
		return "", apperrors.NewNotAuthenticated()
	}
	if err := validateSeverity(draft.Severity); err != nil {
		return "", err
	}
	if p.pending != nil {
		return "", apperrors.NewSubmissionInFlight()
	}

	id := uuid.NewString()
	p.draft = draft
	p.pending = &pendingSubmission{id: id, draft: draft, submittedAt: p.now()}
	p.pending.task = p.scheduler.AfterFunc(p.delay, func() { p.complete(id) })
	return id, nil
}

func (p *patientState) Submitting() bool { return p.pending != nil }

func (p *patientState) LastSubmission() (domain.Submission, bool) {
	if p.last == nil {
		return domain.Submission{}, false
	}
	return *p.last, true
}

// complete may race Close or a newer submission; stale ids are dropped.
func (p *patientState) complete(id string) {
	if p.closed || p.pending == nil || p.pending.id != id {
		return
	}
	sub := domain.Submission{
		ID:          id,
		Draft:       p.pending.draft,
		SubmittedAt: p.pending.submittedAt,
		CompletedAt: p.now(),
	}
	p.pending = nil
	p.last = &sub
	p.draft = domain.CaseDraft{}
	if p.onSubmitted != nil {
		p.onSubmitted(sub)
	}
}

func (p *patientState) Close() {
	if p.pending != nil {
		p.pending.task.Stop()
		p.pending = nil
	}
	p.viewState.Close()
}

func validateSeverity(s domain.Severity) error {
	switch s {
	case domain.SeverityUnset, domain.SeverityMild, domain.SeverityModerate, domain.SeveritySevere:
		return nil
	}
	return apperrors.NewInvalidSeverity(string(s))
}
