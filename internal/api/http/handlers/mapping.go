package handlers

import (
	"github.com/iftekharanwar/RareCare/internal/api/dto"
	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/service"
)

func sessionResponse(sess domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{
		Role:          string(sess.Role),
		Authenticated: sess.Authenticated(),
	}
	if resp.Authenticated {
		resp.Identity = &dto.IdentityResponse{
			Username:    sess.Identity.Username,
			DisplayName: sess.Identity.DisplayName,
			Initials:    sess.Identity.Initials,
			AvatarURL:   sess.Identity.AvatarURL,
		}
	}
	return resp
}

func portalResponse(st service.PortalState) dto.PortalResponse {
	tabs := make([]string, len(st.Tabs))
	for i, t := range st.Tabs {
		tabs[i] = string(t)
	}
	resp := dto.PortalResponse{
		Session:    sessionResponse(st.Session),
		Portal:     string(st.Kind),
		Tabs:       tabs,
		ActiveTab:  string(st.ActiveTab),
		SearchTerm: st.SearchTerm,
		Content:    st.Content,
	}
	if st.Draft != nil {
		resp.Draft = &dto.CaseDraftResponse{
			Symptoms:   st.Draft.Symptoms,
			Duration:   st.Draft.Duration,
			Severity:   string(st.Draft.Severity),
			Submitting: st.Submitting,
		}
	}
	if st.LastSubmission != nil {
		resp.LastSubmission = &dto.SubmissionResponse{
			ID:          st.LastSubmission.ID,
			Severity:    string(st.LastSubmission.Draft.Severity),
			SubmittedAt: st.LastSubmission.SubmittedAt,
			CompletedAt: st.LastSubmission.CompletedAt,
		}
	}
	return resp
}

func draftInput(req dto.CaseDraftRequest) service.CaseDraftInput {
	return service.CaseDraftInput{
		Symptoms: req.Symptoms,
		Duration: req.Duration,
		Severity: req.Severity,
	}
}
