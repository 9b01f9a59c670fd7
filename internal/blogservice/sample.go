package blogservice

import (
	"slices"

	"golang.org/x/exp/rand"

	"github.com/sushihentaime/folio/internal/content"
)

type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultSource shuffles with the locked global generator of x/exp/rand. It
// is safe for concurrent use.
var DefaultSource RandomSource = globalSource{}

// Seed reseeds the generator behind DefaultSource. The generator starts from
// a fixed seed, so servers call this once at startup.
func Seed(seed uint64) {
	rand.Seed(seed)
}

// SampleRandom shuffles a copy of posts with src and returns the first
// count elements. count <= 0 yields an empty slice; a count larger than the
// collection yields every post in shuffled order.
func SampleRandom(src RandomSource, posts []content.BlogPost, count int) []content.BlogPost {
	if count <= 0 || len(posts) == 0 {
		return []content.BlogPost{}
	}
	if src == nil {
		src = DefaultSource
	}

	shuffled := slices.Clone(posts)
	src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:min(count, len(shuffled))]
}

// SampleOnePerLabel picks one random post for every label, matching labels
// case-insensitively. Picks follow the order of labels and each label is
// sampled independently, so a repeated label may pick a different post.
func SampleOnePerLabel(src RandomSource, posts []content.BlogPost, labels []string) []LabelPick {
	picks := make([]LabelPick, 0, len(labels))
	for _, label := range labels {
		pick := LabelPick{Label: label}
		if chosen := SampleRandom(src, filterByLabelFold(posts, label), 1); len(chosen) == 1 {
			pick.Post = &chosen[0]
		}
		picks = append(picks, pick)
	}
	return picks
}
