package content

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// fixture mirrors Store with dates as YYYY-MM-DD strings.
type fixture struct {
	BlogPosts []struct {
		CreationDate string     `yaml:"creation_date"`
		Title        string     `yaml:"title"`
		Desc         string     `yaml:"desc"`
		Image        string     `yaml:"image"`
		Labels       []string   `yaml:"labels"`
		Post         string     `yaml:"post"`
		Categories   []Category `yaml:"categories"`
	} `yaml:"blog_posts"`
	MusicPosts []struct {
		CreationDate string     `yaml:"creation_date"`
		Title        string     `yaml:"title"`
		Desc         string     `yaml:"desc"`
		Image        string     `yaml:"image"`
		Labels       []string   `yaml:"labels"`
		Post         string     `yaml:"post"`
		Categories   []Category `yaml:"categories"`
		Artist       string     `yaml:"artist"`
		Piece        string     `yaml:"piece"`
		IFrame       string     `yaml:"iframe"`
	} `yaml:"music_posts"`
	PersonalBests []struct {
		EventDate     string   `yaml:"event_date"`
		EventLocation string   `yaml:"event_location"`
		Distance      Distance `yaml:"distance"`
		UsedShoe      string   `yaml:"used_shoe"`
		Time          string   `yaml:"time"`
	} `yaml:"personal_bests"`
	Friends []struct {
		Name  string `yaml:"name"`
		Image string `yaml:"image"`
		Text  string `yaml:"text"`
		Role  string `yaml:"role"`
	} `yaml:"friends"`
	Training []struct {
		Date       string  `yaml:"date"`
		Distance   float64 `yaml:"distance"`
		MovingTime float64 `yaml:"moving_time"`
	} `yaml:"training"`
}

// LoadFixture decodes a YAML dataset into a Store. The result is not
// validated; call Validate for integrity checks.
func LoadFixture(r io.Reader) (*Store, error) {
	var f fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("could not decode fixture: %w", err)
	}

	s := &Store{}
	date := func(collection string, i int, raw string) (time.Time, error) {
		t, err := ParseDate(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s[%d]: %w", collection, i, err)
		}
		return t, nil
	}

	for i, p := range f.BlogPosts {
		d, err := date("blog_posts", i, p.CreationDate)
		if err != nil {
			return nil, err
		}
		s.BlogPosts = append(s.BlogPosts, BlogPost{
			CreationDate: d,
			Title:        p.Title,
			Desc:         p.Desc,
			Image:        p.Image,
			Labels:       p.Labels,
			Post:         p.Post,
			Categories:   p.Categories,
		})
	}

	for i, p := range f.MusicPosts {
		d, err := date("music_posts", i, p.CreationDate)
		if err != nil {
			return nil, err
		}
		categories := p.Categories
		if len(categories) == 0 {
			categories = []Category{CategoryMusic}
		}
		s.MusicPosts = append(s.MusicPosts, MusicPost{
			BlogPost: BlogPost{
				CreationDate: d,
				Title:        p.Title,
				Desc:         p.Desc,
				Image:        p.Image,
				Labels:       p.Labels,
				Post:         p.Post,
				Categories:   categories,
			},
			Artist: p.Artist,
			Piece:  p.Piece,
			IFrame: p.IFrame,
		})
	}

	for i, pb := range f.PersonalBests {
		d, err := date("personal_bests", i, pb.EventDate)
		if err != nil {
			return nil, err
		}
		s.PersonalBests = append(s.PersonalBests, RunningPB{
			EventDate:     d,
			EventLocation: pb.EventLocation,
			Distance:      pb.Distance,
			UsedShoe:      pb.UsedShoe,
			Time:          pb.Time,
		})
	}

	for _, fr := range f.Friends {
		s.Friends = append(s.Friends, Friend(fr))
	}

	for i, e := range f.Training {
		d, err := date("training", i, e.Date)
		if err != nil {
			return nil, err
		}
		s.Training = append(s.Training, TrainingEntry{Date: d, Distance: e.Distance, MovingTime: e.MovingTime})
	}

	return s, nil
}
