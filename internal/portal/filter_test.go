package portal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iftekharanwar/RareCare/internal/catalog"
	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/portal"
)

func names(records []domain.Listing) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.SearchFields()[0])
	}
	return out
}

func TestFilter(t *testing.T) {
	doctors := catalog.Default().Listing(domain.PortalPatient)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty keeps all in order", term: "", want: []string{"Dr. Emily Chen", "Dr. Michael Lee", "Dr. Sarah Johnson", "Dr. David Brown", "Dr. Lisa Taylor"}},
		{name: "upper case name", term: "EMILY", want: []string{"Dr. Emily Chen"}},
		{name: "lower case name", term: "emily", want: []string{"Dr. Emily Chen"}},
		{name: "substring of every specialty", term: "Rare", want: []string{"Dr. Emily Chen", "Dr. Michael Lee", "Dr. Sarah Johnson", "Dr. David Brown", "Dr. Lisa Taylor"}},
		{name: "secondary field", term: "autoimmune", want: []string{"Dr. Lisa Taylor"}},
		{name: "inside a word", term: "etab", want: []string{"Dr. Michael Lee"}},
		{name: "no match", term: "zzz-no-such-term", want: []string{}},
		{name: "whitespace is not trimmed", term: " chen ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(portal.Filter(doctors, tt.term)))
		})
	}
}

func TestFilterFoldsUnicode(t *testing.T) {
	records := []domain.Listing{domain.Doctor{Name: "Dr. Jürgen Straße", Specialty: "Rare Disorders"}}

	assert.Len(t, portal.Filter(records, "STRASSE"), 1)
	assert.Len(t, portal.Filter(records, "JÜRGEN"), 1)
}

func TestFilterNeverReturnsNil(t *testing.T) {
	got := portal.Filter(nil, "anything")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
