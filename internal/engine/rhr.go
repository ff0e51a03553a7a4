package engine

import (
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
)

const (
	// Fallback RHR window, local wall-clock hours of the log date: [02:00, 06:00).
	fallbackWindowStartHour = 2
	fallbackWindowEndHour   = 6
)

// ResolveRHR estimates the resting heart rate of a day.
//
// The ladder is fixed: mean bpm of samples inside the main sleep segment
// (bounds inclusive), then mean bpm of samples in the early-morning fallback
// window of the log date, then no data. A missing estimate is reported as a
// nil Value and never replaced with a number.
func ResolveRHR(log domain.DailyLog) domain.RHRResult {
	if main, ok := MainSleep(log.SleepSegments); ok {
		inSleep := func(ts time.Time) bool {
			return !ts.Before(main.StartTime) && !ts.After(main.EndTime)
		}
		if v, ok := meanBPM(log.HeartRateSamples, inSleep); ok {
			return domain.RHRResult{Value: &v, Source: domain.RHRSourceMainSleep}
		}
	}

	from, to := FallbackWindow(log.Date)
	inWindow := func(ts time.Time) bool {
		return !ts.Before(from) && ts.Before(to)
	}
	if v, ok := meanBPM(log.HeartRateSamples, inWindow); ok {
		return domain.RHRResult{Value: &v, Source: domain.RHRSourceFallbackWindow}
	}

	return domain.RHRResult{Source: domain.RHRSourceNoData}
}

// MainSleep returns the longest segment by DurationMinutes. The first of
// equally long segments wins.
func MainSleep(segments []domain.SleepSegment) (domain.SleepSegment, bool) {
	if len(segments) == 0 {
		return domain.SleepSegment{}, false
	}
	best := segments[0]
	for _, s := range segments[1:] {
		if s.DurationMinutes > best.DurationMinutes {
			best = s
		}
	}
	return best, true
}

// FallbackWindow returns the [02:00, 06:00) interval of date's calendar day in
// date's location.
func FallbackWindow(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	loc := date.Location()
	return time.Date(y, m, d, fallbackWindowStartHour, 0, 0, 0, loc),
		time.Date(y, m, d, fallbackWindowEndHour, 0, 0, 0, loc)
}

func meanBPM(samples []domain.HeartRateSample, keep func(time.Time) bool) (float64, bool) {
	var sum, n int
	for _, s := range samples {
		if keep(s.Timestamp) {
			sum += s.BPM
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
