package blogservice

import (
	"slices"

	"github.com/sushihentaime/folio/internal/content"
)

// SortByDateDesc returns a copy of posts ordered newest first. Posts created
// on the same date keep their relative order.
func SortByDateDesc(posts []content.BlogPost) []content.BlogPost {
	sorted := slices.Clone(posts)
	if sorted == nil {
		return []content.BlogPost{}
	}

	slices.SortStableFunc(sorted, func(a, b content.BlogPost) int {
		return b.CreationDate.Compare(a.CreationDate)
	})

	return sorted
}

func sortMusicByDateDesc(posts []content.MusicPost) []content.MusicPost {
	sorted := slices.Clone(posts)
	if sorted == nil {
		return []content.MusicPost{}
	}

	slices.SortStableFunc(sorted, func(a, b content.MusicPost) int {
		return b.CreationDate.Compare(a.CreationDate)
	})

	return sorted
}
