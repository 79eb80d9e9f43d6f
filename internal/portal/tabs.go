package portal

import (
	"slices"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

var tabSets = map[domain.PortalKind][]domain.Tab{
	domain.PortalPatient: {
		domain.TabDashboard, domain.TabSubmitCase, domain.TabDoctors, domain.TabAppointments, domain.TabMessages,
	},
	domain.PortalDoctor: {
		domain.TabDashboard, domain.TabPatients, domain.TabAppointments, domain.TabCases, domain.TabConsultations,
	},
	domain.PortalResearcher: {
		domain.TabDashboard, domain.TabPublications, domain.TabCollaboration, domain.TabDataAnalysis, domain.TabCaseInsights,
	},
}

var listingTabs = map[domain.PortalKind]domain.Tab{
	domain.PortalPatient:    domain.TabDoctors,
	domain.PortalDoctor:     domain.TabPatients,
	domain.PortalResearcher: domain.TabPublications,
}

// TabsFor lists a portal's tabs in display order; the first is the default.
func TabsFor(kind domain.PortalKind) []domain.Tab {
	return slices.Clone(tabSets[kind])
}

// DefaultTab is the tab a freshly opened portal shows.
func DefaultTab(kind domain.PortalKind) domain.Tab {
	tabs := tabSets[kind]
	if len(tabs) == 0 {
		return ""
	}
	return tabs[0]
}

// ListingTab is the tab whose content consumes the search term.
func ListingTab(kind domain.PortalKind) domain.Tab {
	return listingTabs[kind]
}

func tabNames(tabs []domain.Tab) []string {
	out := make([]string, len(tabs))
	for i, t := range tabs {
		out[i] = string(t)
	}
	return out
}
