package portal

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

// Filter keeps the records where any search field contains term, ignoring
// case. Order is preserved and an empty term keeps everything.
func Filter(records []domain.Listing, term string) []domain.Listing {
	folder := cases.Fold()
	needle := folder.String(term)

	out := make([]domain.Listing, 0, len(records))
	for _, record := range records {
		for _, field := range record.SearchFields() {
			if strings.Contains(folder.String(field), needle) {
				out = append(out, record)
				break
			}
		}
	}
	return out
}
