package content

import "time"

type Category string

const (
	CategoryScience Category = "science"
	CategoryRunning Category = "running"
	CategoryMusic   Category = "music"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryScience, CategoryRunning, CategoryMusic}

type Distance string

const (
	Distance5K           Distance = "5k"
	Distance10K          Distance = "10k"
	DistanceHalfMarathon Distance = "Half Marathon"
	DistanceMarathon     Distance = "Marathon"
)

type BlogPost struct {
	CreationDate time.Time `json:"creation_date" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Desc         string    `json:"desc,omitempty"`
	Image        string    `json:"image"`
	Labels       []string  `json:"labels"`
	// Post is a path or URL to the full post. Empty when the post has no body.
	Post       string     `json:"post"`
	Categories []Category `json:"categories" validate:"required,min=1,dive,oneof=science running music"`
}

// HasCategory reports whether c is one of the post's categories.
func (p BlogPost) HasCategory(c Category) bool {
	for _, pc := range p.Categories {
		if pc == c {
			return true
		}
	}
	return false
}

type MusicPost struct {
	BlogPost
	Artist string `json:"artist"`
	Piece  string `json:"piece"`
	IFrame string `json:"iframe" validate:"required"`
}

type RunningPB struct {
	EventDate     time.Time `json:"event_date" validate:"required"`
	EventLocation string    `json:"event_location" validate:"required"`
	Distance      Distance  `json:"distance" validate:"required,oneof=5k 10k 'Half Marathon' Marathon"`
	UsedShoe      string    `json:"used_shoe" validate:"required"`
	// Time is H:MM, MM:SS or H:MM:SS. Empty when unknown.
	Time string `json:"time,omitempty" validate:"omitempty,clock"`
}

type Friend struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
	Text  string `json:"text" validate:"required"`
	Role  string `json:"role"`
}

// TrainingEntry is one day of the training log. A zero Distance is a rest day.
type TrainingEntry struct {
	Date       time.Time `json:"date" validate:"required"`
	Distance   float64   `json:"distance" validate:"gte=0"`
	MovingTime float64   `json:"moving_time,omitempty" validate:"gte=0"`
}

// Store holds every collection of the site. It is never mutated after
// construction.
type Store struct {
	BlogPosts     []BlogPost      `validate:"dive"`
	MusicPosts    []MusicPost     `validate:"dive"`
	PersonalBests []RunningPB     `validate:"dive"`
	Friends       []Friend        `validate:"unique=Name,dive"`
	Training      []TrainingEntry `validate:"dive"`
}
