package shop

import (
	"slices"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// Taxonomy is the fixed set of applications and categories items are filed under.
type Taxonomy struct {
	Applications []string
	Categories   []string
	// FullPreviewCategories must carry domain.MaxPreviewLinks previews
	FullPreviewCategories []string
}

// DefaultTaxonomy returns the built-in applications and categories
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Applications:          slices.Clone(domain.DefaultApplications),
		Categories:            slices.Clone(domain.DefaultCategories),
		FullPreviewCategories: slices.Clone(domain.FullPreviewCategories),
	}
}

func (t Taxonomy) HasApplication(app string) bool {
	return slices.Contains(t.Applications, app)
}

func (t Taxonomy) HasCategory(category string) bool {
	return slices.Contains(t.Categories, category)
}

// RequiredPreviews returns how many preview links an upload in category needs.
func (t Taxonomy) RequiredPreviews(category string) int {
	if slices.Contains(t.FullPreviewCategories, category) {
		return domain.MaxPreviewLinks
	}
	return 1
}
