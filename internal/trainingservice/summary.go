package trainingservice

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sushihentaime/folio/internal/content"
)

var ErrInvalidTimeframe = errors.New("invalid timeframe")

// Timeframe is a rolling window of Days ending on a reference date, or every
// entry when All is set.
type Timeframe struct {
	Days int
	All  bool
}

var AllTime = Timeframe{All: true}

func Days(n int) Timeframe {
	return Timeframe{Days: n}
}

// ParseTimeframe accepts "all" or a positive number of days.
func ParseTimeframe(s string) (Timeframe, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return AllTime, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Timeframe{}, fmt.Errorf("%w: %q must be \"all\" or a positive number of days", ErrInvalidTimeframe, s)
	}

	return Days(n), nil
}

func (tf Timeframe) String() string {
	if tf.All {
		return "all"
	}
	return strconv.Itoa(tf.Days)
}

// SummarizeTrainingPeriod summarises the entries of tf ending on ref and
// compares them with the equally long window right before it.
//
// The current window holds entries dated in (ref-Days, ref], the prior window
// those in (ref-2*Days, ref-Days]. AllTime selects every entry, spans from the
// earliest entry to ref or the latest entry, whichever is later, and has no
// prior window. Every figure is rounded to two decimals.
func SummarizeTrainingPeriod(entries []content.TrainingEntry, tf Timeframe, ref time.Time) Summary {
	if len(entries) == 0 || (!tf.All && tf.Days <= 0) {
		return Summary{Trainings: []content.TrainingEntry{}}
	}

	ref = content.Day(ref)

	var current, prior []content.TrainingEntry
	var periodDays int

	if tf.All {
		current = slices.Clone(entries)
		periodDays = spanDays(entries, ref)
	} else {
		periodDays = tf.Days
		start := ref.AddDate(0, 0, -tf.Days)
		priorStart := start.AddDate(0, 0, -tf.Days)

		for _, e := range entries {
			d := content.Day(e.Date)
			switch {
			case d.After(start) && !d.After(ref):
				current = append(current, e)
			case d.After(priorStart) && !d.After(start):
				prior = append(prior, e)
			}
		}
	}

	if current == nil {
		current = []content.TrainingEntry{}
	}

	weeks := float64(periodDays) / 7

	return Summary{
		Trainings:         current,
		WeeklyAverage:     round2(sumDistance(current) / weeks),
		PrevWeeklyAverage: round2(sumDistance(prior) / weeks),
		TotalTime:         round2(sumMovingTime(current) / 60),
		TotalDistance:     round2(sumDistance(current)),
	}
}

// spanDays counts the days from the earliest entry to max(ref, latest entry),
// both inclusive.
func spanDays(entries []content.TrainingEntry, ref time.Time) int {
	first, last := content.Day(entries[0].Date), content.Day(entries[0].Date)
	for _, e := range entries[1:] {
		d := content.Day(e.Date)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	end := ref
	if last.After(end) {
		end = last
	}

	days := int(end.Sub(first).Hours()/24) + 1
	return max(days, 1)
}
