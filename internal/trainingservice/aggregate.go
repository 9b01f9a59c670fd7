package trainingservice

import (
	"math"
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"github.com/sushihentaime/folio/internal/content"
)

// WeekStart returns the Sunday on or before t, at midnight UTC.
func WeekStart(t time.Time) time.Time {
	d := content.Day(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// AggregateWeekly sums distances per Sunday-anchored week, oldest week first.
// Every entry lands in exactly one bucket, so the bucket totals add up to the
// total distance of entries.
func AggregateWeekly(entries []content.TrainingEntry) []WeeklySummary {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[WeekStart(e.Date).Format(content.DateLayout)] += e.Distance
	}

	weeks := maps.Keys(totals)
	slices.Sort(weeks)

	out := make([]WeeklySummary, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeeklySummary{Week: w, TotalDistance: totals[w]})
	}
	return out
}

// TotalDistanceInRange sums the distance of entries dated within
// [start, end]. Only the calendar day of each bound is considered.
func TotalDistanceInRange(entries []content.TrainingEntry, start, end time.Time) float64 {
	return sumDistance(inRange(entries, start, end))
}

// AverageDailyDistance is the mean distance of the running days within
// [start, end]. Rest days count towards neither the sum nor the number of
// days. It is 0 when there are no running days.
func AverageDailyDistance(entries []content.TrainingEntry, start, end time.Time) float64 {
	var total float64
	var days int
	for _, e := range inRange(entries, start, end) {
		if e.Distance > 0 {
			total += e.Distance
			days++
		}
	}
	if days == 0 {
		return 0
	}
	return total / float64(days)
}

func TotalDistanceAllTime(entries []content.TrainingEntry) float64 {
	return sumDistance(entries)
}

// WeeklyAverageForYear spreads the distance run in the calendar year over
// WeeksPerYear weeks.
func WeeklyAverageForYear(entries []content.TrainingEntry, year int) float64 {
	var total float64
	var found bool
	for _, e := range entries {
		if e.Date.UTC().Year() == year {
			total += e.Distance
			found = true
		}
	}
	if !found {
		return 0
	}
	return total / WeeksPerYear
}

func inRange(entries []content.TrainingEntry, start, end time.Time) []content.TrainingEntry {
	start, end = content.Day(start), content.Day(end)

	var out []content.TrainingEntry
	for _, e := range entries {
		d := content.Day(e.Date)
		if !d.Before(start) && !d.After(end) {
			out = append(out, e)
		}
	}
	return out
}

func sumDistance(entries []content.TrainingEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Distance
	}
	return total
}

func sumMovingTime(entries []content.TrainingEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.MovingTime
	}
	return total
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
