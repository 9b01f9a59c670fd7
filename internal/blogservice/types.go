package blogservice

import (
	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
)

// RandomSource shuffles n elements by calling swap. *rand.Rand from both
// math/rand and golang.org/x/exp/rand satisfy it.
type RandomSource interface {
	Shuffle(n int, swap func(i, j int))
}

// PostFilter narrows a post listing. Zero fields are ignored.
type PostFilter struct {
	Category content.Category
	Label    string
	Title    string
}

// LabelPick is the post chosen for a label, or nil when no post carries it.
type LabelPick struct {
	Label string            `json:"label"`
	Post  *content.BlogPost `json:"post"`
}

type BlogService struct {
	store *content.Store
	c     *common.Cache
	rnd   RandomSource
}
