package trainingservice

import (
	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
)

// WeeksPerYear is the mean number of weeks in a Gregorian year.
const WeeksPerYear = 365.2425 / 7

// WeeklySummary is the distance run in the week starting on Week, a Sunday
// in YYYY-MM-DD form.
type WeeklySummary struct {
	Week          string  `json:"week"`
	TotalDistance float64 `json:"total_distance"`
}

// Summary describes a timeframe of training. Distances are kilometres,
// TotalTime is hours.
type Summary struct {
	Trainings         []content.TrainingEntry `json:"trainings"`
	WeeklyAverage     float64                 `json:"weekly_average"`
	PrevWeeklyAverage float64                 `json:"prev_weekly_average"`
	TotalTime         float64                 `json:"total_time"`
	TotalDistance     float64                 `json:"total_distance"`
}

// Stats are the distance figures for an inclusive date range.
type Stats struct {
	Start                string  `json:"start"`
	End                  string  `json:"end"`
	TotalDistance        float64 `json:"total_distance"`
	AverageDailyDistance float64 `json:"average_daily_distance"`
	TotalDistanceAllTime float64 `json:"total_distance_all_time"`
}

type TrainingService struct {
	store *content.Store
	c     *common.Cache
}
