package blogservice

import (
	"slices"

	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
)

// NewBlogService serves posts from store. A nil cache disables memoisation
// and a nil src falls back to DefaultSource.
func NewBlogService(store *content.Store, c *common.Cache, src RandomSource) *BlogService {
	if src == nil {
		src = DefaultSource
	}
	return &BlogService{store: store, c: c, rnd: src}
}

// Posts returns the posts matching every non-zero field of f, newest first.
// The returned slice is a copy; the posts' label and category slices are
// shared with the store and must not be modified.
func (s *BlogService) Posts(f PostFilter) ([]content.BlogPost, error) {
	v := common.NewValidator()
	validateCategory(v, f.Category)
	validateTerm(v, f.Title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	key := common.CacheKeyPosts(string(f.Category), f.Label, f.Title)
	posts := common.Remember(s.c, key, func() []content.BlogPost {
		posts := s.store.BlogPosts
		if f.Category != "" {
			posts = FilterByCategory(posts, f.Category)
		}
		if f.Label != "" {
			posts = FilterByLabel(posts, f.Label)
		}
		posts = FilterByTitle(posts, f.Title)
		return SortByDateDesc(posts)
	})
	return slices.Clone(posts), nil
}

// Random returns count posts drawn without replacement.
func (s *BlogService) Random(count int) ([]content.BlogPost, error) {
	v := common.NewValidator()
	validateCount(v, count)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return SampleRandom(s.rnd, s.store.BlogPosts, count), nil
}

// Picks returns one random post per label.
func (s *BlogService) Picks(labels []string) ([]LabelPick, error) {
	v := common.NewValidator()
	validateLabels(v, labels)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return SampleOnePerLabel(s.rnd, s.store.BlogPosts, labels), nil
}

// Music returns the music posts newest first with script tags stripped from
// their embeds.
func (s *BlogService) Music() []content.MusicPost {
	music := common.Remember(s.c, common.CacheKeyMusic(), func() []content.MusicPost {
		posts := sortMusicByDateDesc(s.store.MusicPosts)
		for i := range posts {
			posts[i].IFrame = sanitizeEmbed(posts[i].IFrame)
		}
		return posts
	})
	return slices.Clone(music)
}

func (s *BlogService) Friends() []content.Friend {
	friends := slices.Clone(s.store.Friends)
	if friends == nil {
		return []content.Friend{}
	}
	return friends
}
