package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/sushihentaime/folio/internal/content"
)

// identitySource leaves the order untouched so samples are the leading posts.
type identitySource struct{}

func (identitySource) Shuffle(int, func(i, j int)) {}

// reverseSource reverses the order.
type reverseSource struct{}

func (reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func mockPosts() []content.BlogPost {
	return []content.BlogPost{
		{
			CreationDate: content.MustDate("2024-01-10"),
			Title:        "Quantum Physics Explained",
			Desc:         "Understanding quantum mechanics",
			Labels:       []string{"quantum", "physics", "math"},
			Categories:   []content.Category{content.CategoryScience},
		},
		{
			CreationDate: content.MustDate("2024-03-15"),
			Title:        "A Guide to Marathon Running",
			Desc:         "Complete marathon training guide",
			Labels:       []string{"marathon", "training", "running"},
			Categories:   []content.Category{content.CategoryRunning},
		},
		{
			CreationDate: content.MustDate("2024-02-20"),
			Title:        "The Art of Music Production",
			Desc:         "Music production techniques",
			Labels:       []string{"music", "production"},
			Categories:   []content.Category{content.CategoryMusic},
		},
		{
			CreationDate: content.MustDate("2024-04-05"),
			Title:        "Philosophy of Mind",
			Desc:         "Exploring consciousness and mind",
			Labels:       []string{"philosophy", "consciousness"},
			Categories:   []content.Category{content.CategoryScience},
		},
		{
			CreationDate: content.MustDate("2024-05-12"),
			Title:        "Social Psychology Research",
			Desc:         "Latest findings in social psychology",
			Labels:       []string{"social science", "psychology"},
			Categories:   []content.Category{content.CategoryScience},
		},
		{
			CreationDate: content.MustDate("2024-06-18"),
			Title:        "Advanced Calculus",
			Desc:         "Deep dive into calculus concepts",
			Labels:       []string{"math", "calculus"},
			Categories:   []content.Category{content.CategoryScience},
		},
		{
			CreationDate: content.MustDate("2024-07-22"),
			Title:        "Another Philosophy Post",
			Desc:         "More philosophical thoughts",
			Labels:       []string{"philosophy", "ethics"},
			Categories:   []content.Category{content.CategoryScience},
		},
		{
			CreationDate: content.MustDate("2024-08-30"),
			Title:        "Statistics in Social Science",
			Desc:         "Statistical methods in social research",
			Labels:       []string{"social science", "statistics"},
			Categories:   []content.Category{content.CategoryScience},
		},
	}
}

func titles(posts []content.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	testCases := []struct {
		category content.Category
		want     int
	}{
		{category: content.CategoryScience, want: 6},
		{category: content.CategoryRunning, want: 1},
		{category: content.CategoryMusic, want: 1},
		{category: content.Category("non-existent"), want: 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.category), func(t *testing.T) {
			got := FilterByCategory(mockPosts(), tc.category)
			assert.Len(t, got, tc.want)
			for _, p := range got {
				assert.Contains(t, p.Categories, tc.category)
			}
		})
	}
}

func TestFilterByLabel(t *testing.T) {
	got := FilterByLabel(mockPosts(), "quantum")
	assert.Equal(t, []string{"Quantum Physics Explained"}, titles(got))

	assert.Empty(t, FilterByLabel(mockPosts(), "QUANTUM"))
	assert.Len(t, FilterByLabel(mockPosts(), "math"), 2)
}

func TestFilterByTitle(t *testing.T) {
	testCases := []struct {
		term string
		want int
	}{
		{term: "Quantum", want: 1},
		{term: "quantum", want: 1},
		{term: "Art", want: 1},
		{term: "non-existent", want: 0},
		{term: "", want: 8},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			assert.Len(t, FilterByTitle(mockPosts(), tc.term), tc.want)
		})
	}
}

func TestFilters_EmptyInput(t *testing.T) {
	assert.NotNil(t, FilterByCategory(nil, content.CategoryScience))
	assert.Empty(t, FilterByCategory(nil, content.CategoryScience))
	assert.Empty(t, FilterByLabel([]content.BlogPost{}, "quantum"))
	assert.Empty(t, FilterByTitle(nil, ""))
}

func TestSortByDateDesc(t *testing.T) {
	posts := mockPosts()
	original := mockPosts()

	sorted := SortByDateDesc(posts)

	assert.Equal(t, []string{
		"Statistics in Social Science",
		"Another Philosophy Post",
		"Advanced Calculus",
		"Social Psychology Research",
		"Philosophy of Mind",
		"A Guide to Marathon Running",
		"The Art of Music Production",
		"Quantum Physics Explained",
	}, titles(sorted))

	for i := 0; i+1 < len(sorted); i++ {
		assert.False(t, sorted[i].CreationDate.Before(sorted[i+1].CreationDate))
	}

	assert.Equal(t, original, posts, "input must not be modified")
}

func TestSortByDateDesc_StableOnTies(t *testing.T) {
	day := content.MustDate("2024-09-15")
	posts := []content.BlogPost{
		{CreationDate: day, Title: "first"},
		{CreationDate: content.MustDate("2024-01-01"), Title: "older"},
		{CreationDate: day, Title: "second"},
		{CreationDate: day, Title: "third"},
	}

	assert.Equal(t, []string{"first", "second", "third", "older"}, titles(SortByDateDesc(posts)))
}

func TestSortByDateDesc_Empty(t *testing.T) {
	assert.Equal(t, []content.BlogPost{}, SortByDateDesc(nil))
}

func TestSampleRandom(t *testing.T) {
	src := rand.New(rand.NewSource(42))

	testCases := []struct {
		name  string
		count int
		want  int
	}{
		{name: "some", count: 3, want: 3},
		{name: "all", count: 8, want: 8},
		{name: "more than available", count: 100, want: 8},
		{name: "zero", count: 0, want: 0},
		{name: "negative", count: -2, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SampleRandom(src, mockPosts(), tc.count)
			assert.Len(t, got, tc.want)

			seen := map[string]bool{}
			for _, p := range got {
				assert.False(t, seen[p.Title], "duplicate %q", p.Title)
				seen[p.Title] = true
			}
		})
	}
}

func TestSampleRandom_FullCountIsPermutation(t *testing.T) {
	got := SampleRandom(reverseSource{}, mockPosts(), 100)
	assert.ElementsMatch(t, titles(mockPosts()), titles(got))
	assert.Equal(t, "Statistics in Social Science", got[0].Title)
}

func TestSampleRandom_Deterministic(t *testing.T) {
	first := SampleRandom(rand.New(rand.NewSource(7)), mockPosts(), 3)
	second := SampleRandom(rand.New(rand.NewSource(7)), mockPosts(), 3)
	assert.Equal(t, titles(first), titles(second))

	got := SampleRandom(identitySource{}, mockPosts(), 2)
	assert.Equal(t, []string{"Quantum Physics Explained", "A Guide to Marathon Running"}, titles(got))
}

func TestSampleRandom_DoesNotModifyInput(t *testing.T) {
	posts := mockPosts()
	SampleRandom(reverseSource{}, posts, 5)
	assert.Equal(t, mockPosts(), posts)
}

func TestSampleRandom_NilSourceUsesDefault(t *testing.T) {
	assert.Len(t, SampleRandom(nil, mockPosts(), 2), 2)
}

func TestSampleOnePerLabel(t *testing.T) {
	t.Run("one post per label", func(t *testing.T) {
		labels := []string{"philosophy", "social science", "math"}
		picks := SampleOnePerLabel(rand.New(rand.NewSource(1)), mockPosts(), labels)

		assert.Len(t, picks, 3)
		for i, pick := range picks {
			assert.Equal(t, labels[i], pick.Label)
			if assert.NotNil(t, pick.Post) {
				assert.Contains(t, pick.Post.Labels, labels[i])
			}
		}
	})

	t.Run("case-insensitive matching", func(t *testing.T) {
		picks := SampleOnePerLabel(identitySource{}, mockPosts(), []string{"PHILOSOPHY", "Social Science", "MATH"})
		for _, pick := range picks {
			assert.NotNil(t, pick.Post, pick.Label)
		}
	})

	t.Run("nil for unmatched label", func(t *testing.T) {
		picks := SampleOnePerLabel(identitySource{}, mockPosts(), []string{"philosophy", "non-existent-category", "math"})
		assert.NotNil(t, picks[0].Post)
		assert.Nil(t, picks[1].Post)
		assert.NotNil(t, picks[2].Post)
	})

	t.Run("empty posts", func(t *testing.T) {
		picks := SampleOnePerLabel(identitySource{}, nil, []string{"philosophy", "math"})
		assert.Len(t, picks, 2)
		assert.Nil(t, picks[0].Post)
		assert.Nil(t, picks[1].Post)
	})

	t.Run("empty labels", func(t *testing.T) {
		assert.Empty(t, SampleOnePerLabel(identitySource{}, mockPosts(), nil))
	})

	t.Run("deterministic with a fixed source", func(t *testing.T) {
		picks := SampleOnePerLabel(identitySource{}, mockPosts(), []string{"philosophy", "math"})
		assert.Equal(t, "Philosophy of Mind", picks[0].Post.Title)
		assert.Equal(t, "Quantum Physics Explained", picks[1].Post.Title)
	})

	t.Run("duplicate labels sample independently", func(t *testing.T) {
		picks := SampleOnePerLabel(reverseSource{}, mockPosts(), []string{"philosophy", "philosophy"})
		assert.Len(t, picks, 2)
		assert.Equal(t, "Another Philosophy Post", picks[0].Post.Title)
		assert.Equal(t, "Another Philosophy Post", picks[1].Post.Title)
	})

	t.Run("does not modify input", func(t *testing.T) {
		posts := mockPosts()
		SampleOnePerLabel(reverseSource{}, posts, []string{"philosophy", "math"})
		assert.Equal(t, mockPosts(), posts)
	})
}
