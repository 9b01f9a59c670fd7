package blogservice

import (
	"slices"
	"strings"

	"github.com/sushihentaime/folio/internal/content"
)

// FilterByCategory returns the posts tagged with category. An unknown
// category matches nothing.
func FilterByCategory(posts []content.BlogPost, category content.Category) []content.BlogPost {
	return filter(posts, func(p content.BlogPost) bool {
		return p.HasCategory(category)
	})
}

// FilterByLabel returns the posts carrying label. Matching is exact and
// case-sensitive.
func FilterByLabel(posts []content.BlogPost, label string) []content.BlogPost {
	return filter(posts, func(p content.BlogPost) bool {
		return slices.Contains(p.Labels, label)
	})
}

// FilterByTitle returns the posts whose title contains term, ignoring case.
// An empty term matches every post.
func FilterByTitle(posts []content.BlogPost, term string) []content.BlogPost {
	term = strings.ToLower(term)
	return filter(posts, func(p content.BlogPost) bool {
		return strings.Contains(strings.ToLower(p.Title), term)
	})
}

func filterByLabelFold(posts []content.BlogPost, label string) []content.BlogPost {
	return filter(posts, func(p content.BlogPost) bool {
		return slices.ContainsFunc(p.Labels, func(l string) bool {
			return strings.EqualFold(l, label)
		})
	})
}

func filter(posts []content.BlogPost, keep func(content.BlogPost) bool) []content.BlogPost {
	out := make([]content.BlogPost, 0, len(posts))
	for _, p := range posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
