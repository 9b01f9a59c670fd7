package trainingservice

import (
	"slices"
	"time"

	"github.com/sushihentaime/folio/internal/common"
	"github.com/sushihentaime/folio/internal/content"
)

const (
	minYear = 1970
	maxYear = 9999
)

// NewTrainingService derives training views from store. A nil cache disables
// memoisation.
func NewTrainingService(store *content.Store, c *common.Cache) *TrainingService {
	return &TrainingService{store: store, c: c}
}

func (s *TrainingService) PersonalBests() []content.RunningPB {
	pbs := common.Remember(s.c, common.CacheKeyPersonalBests(), func() []content.RunningPB {
		return SortPersonalBests(s.store.PersonalBests)
	})
	return slices.Clone(pbs)
}

func (s *TrainingService) Weekly() []WeeklySummary {
	weeks := common.Remember(s.c, common.CacheKeyWeekly(), func() []WeeklySummary {
		return AggregateWeekly(s.store.Training)
	})
	return slices.Clone(weeks)
}

// Stats returns the distance figures for the inclusive range [start, end].
func (s *TrainingService) Stats(start, end time.Time) (Stats, error) {
	start, end = content.Day(start), content.Day(end)

	v := common.NewValidator()
	v.Check(!end.Before(start), "end", "must not be before start")
	if !v.Valid() {
		return Stats{}, v.ValidationError()
	}

	return common.Remember(s.c, common.CacheKeyStats(start, end), func() Stats {
		return Stats{
			Start:                start.Format(content.DateLayout),
			End:                  end.Format(content.DateLayout),
			TotalDistance:        round2(TotalDistanceInRange(s.store.Training, start, end)),
			AverageDailyDistance: round2(AverageDailyDistance(s.store.Training, start, end)),
			TotalDistanceAllTime: round2(TotalDistanceAllTime(s.store.Training)),
		}
	}), nil
}

// YearAverage returns the weekly average distance of year, rounded to two
// decimals.
func (s *TrainingService) YearAverage(year int) (float64, error) {
	v := common.NewValidator()
	v.Check(v.CheckRange(year, minYear, maxYear), "year", "must be between 1970 and 9999")
	if !v.Valid() {
		return 0, v.ValidationError()
	}

	return common.Remember(s.c, common.CacheKeyYearAverage(year), func() float64 {
		return round2(WeeklyAverageForYear(s.store.Training, year))
	}), nil
}

// Summary parses timeframe and summarises the training ending on ref.
func (s *TrainingService) Summary(timeframe string, ref time.Time) (Summary, error) {
	tf, err := ParseTimeframe(timeframe)
	if err != nil {
		v := common.NewValidator()
		v.AddError("timeframe", `must be "all" or a positive number of days`)
		return Summary{}, v.ValidationError()
	}

	ref = content.Day(ref)
	summary := common.Remember(s.c, common.CacheKeySummary(tf.String(), ref), func() Summary {
		return SummarizeTrainingPeriod(s.store.Training, tf, ref)
	})
	summary.Trainings = slices.Clone(summary.Trainings)
	return summary, nil
}
