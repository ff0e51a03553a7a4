package engine

import (
	"testing"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveRHRNoData(t *testing.T) {
	res := ResolveRHR(domain.DailyLog{Date: testDay})

	require.Nil(t, res.Value)
	require.Equal(t, domain.RHRSourceNoData, res.Source)
}

func TestResolveRHRMainSleepWindow(t *testing.T) {
	// 23:00 the night before until 06:30.
	main := segment(domain.SleepStageLight, at(-1, 0), at(6, 30))
	nap := segment(domain.SleepStageLight, at(14, 0), at(14, 30))

	log := domain.DailyLog{
		Date:          testDay,
		SleepSegments: []domain.SleepSegment{nap, main},
		HeartRateSamples: []domain.HeartRateSample{
			sample(at(12, 0), 100),
			sample(at(1, 0), 60),
			sample(at(3, 0), 50),
			sample(at(5, 0), 70),
		},
	}

	res := ResolveRHR(log)

	require.NotNil(t, res.Value)
	require.InDelta(t, 60.0, *res.Value, 1e-9)
	require.Equal(t, domain.RHRSourceMainSleep, res.Source)
}

func TestResolveRHRMainSleepBoundsInclusive(t *testing.T) {
	main := segment(domain.SleepStageDeep, at(0, 0), at(7, 0))
	log := domain.DailyLog{
		Date:          testDay,
		SleepSegments: []domain.SleepSegment{main},
		HeartRateSamples: []domain.HeartRateSample{
			sample(at(0, 0), 50),
			sample(at(7, 0), 54),
			sample(at(7, 1), 120),
		},
	}

	res := ResolveRHR(log)

	require.Equal(t, domain.RHRSourceMainSleep, res.Source)
	require.InDelta(t, 52.0, *res.Value, 1e-9)
}

func TestResolveRHRFallbackWithoutSegments(t *testing.T) {
	log := domain.DailyLog{
		Date: testDay,
		HeartRateSamples: []domain.HeartRateSample{
			sample(at(1, 59), 90),
			sample(at(2, 0), 55),
			sample(at(5, 59), 65),
			sample(at(6, 0), 90),
		},
	}

	res := ResolveRHR(log)

	require.Equal(t, domain.RHRSourceFallbackWindow, res.Source)
	require.InDelta(t, 60.0, *res.Value, 1e-9)
}

func TestResolveRHRFallbackWhenMainSleepHasNoSamples(t *testing.T) {
	main := segment(domain.SleepStageLight, at(-2, 0), at(1, 30))
	log := domain.DailyLog{
		Date:             testDay,
		SleepSegments:    []domain.SleepSegment{main},
		HeartRateSamples: []domain.HeartRateSample{sample(at(4, 0), 58)},
	}

	res := ResolveRHR(log)

	require.Equal(t, domain.RHRSourceFallbackWindow, res.Source)
	require.InDelta(t, 58.0, *res.Value, 1e-9)
}

func TestResolveRHRFallbackUsesDateLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := time.Date(2024, time.January, 16, 0, 0, 0, 0, ny)
	log := domain.DailyLog{
		Date: date,
		HeartRateSamples: []domain.HeartRateSample{
			// 03:00 in New York.
			sample(time.Date(2024, time.January, 16, 8, 0, 0, 0, time.UTC), 61),
			// 03:00 UTC is 22:00 the previous evening in New York.
			sample(time.Date(2024, time.January, 16, 3, 0, 0, 0, time.UTC), 99),
		},
	}

	res := ResolveRHR(log)

	require.Equal(t, domain.RHRSourceFallbackWindow, res.Source)
	require.InDelta(t, 61.0, *res.Value, 1e-9)
}

func TestResolveRHRNoSamplesInAnyWindow(t *testing.T) {
	log := domain.DailyLog{
		Date:             testDay,
		SleepSegments:    []domain.SleepSegment{segment(domain.SleepStageDeep, at(0, 0), at(1, 0))},
		HeartRateSamples: []domain.HeartRateSample{sample(at(12, 0), 80)},
	}

	res := ResolveRHR(log)

	require.Nil(t, res.Value)
	require.Equal(t, domain.RHRSourceNoData, res.Source)
}

func TestMainSleepFirstWinsOnTie(t *testing.T) {
	first := segment(domain.SleepStageLight, at(0, 0), at(2, 0))
	second := segment(domain.SleepStageDeep, at(3, 0), at(5, 0))

	got, ok := MainSleep([]domain.SleepSegment{first, second})

	require.True(t, ok)
	require.Equal(t, first, got)
}

func TestMainSleepUsesDurationNotBounds(t *testing.T) {
	// Bounds say 1h but the reported duration is authoritative.
	a := domain.SleepSegment{StartTime: at(0, 0), EndTime: at(1, 0), Stage: domain.SleepStageLight, DurationMinutes: 300}
	b := segment(domain.SleepStageLight, at(1, 0), at(5, 0))

	got, ok := MainSleep([]domain.SleepSegment{b, a})

	require.True(t, ok)
	require.Equal(t, 300, got.DurationMinutes)
}
