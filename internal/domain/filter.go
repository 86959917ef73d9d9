package domain

import "github.com/google/uuid"

// BrowseFilter defines parameters for selecting a browse page of
// headwords.
type BrowseFilter struct {
	// Language restricts both page membership (a word must have a
	// non-empty translation in this language) and the fetched translation
	// rows. nil means any language.
	Language *Language

	// Prefix is a case-insensitive "starts with" filter on the headword.
	// Empty means no prefix filter.
	Prefix string

	// Limit is the page size in distinct headwords, not translation rows.
	Limit int

	// Offset is the number of distinct headwords to skip.
	Offset int
}

// Normalize clamps out-of-range values. A non-positive limit stays 0 and
// yields an empty page; the engines treat that as valid, not an error.
func (f *BrowseFilter) Normalize() {
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// HeadwordRef identifies one headword on a browse page. Slice order is
// the page's display order.
type HeadwordRef struct {
	ID       uuid.UUID
	Headword string
}
