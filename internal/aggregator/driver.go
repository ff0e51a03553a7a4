// Package aggregator periodically recomputes the scores of active battles.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/events"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultInterval       = 60 * time.Second
	DefaultContestTimeout = 10 * time.Second
	DefaultConcurrency    = 4
)

// ContestStore lists active battles and persists recomputed scores.
type ContestStore interface {
	ListActive(ctx context.Context) ([]domain.Battle, error)
	UpdateScores(ctx context.Context, id uuid.UUID, teamA, teamB float64, at time.Time) error
}

// LogSource supplies the daily logs of every member of a team in a date range.
type LogSource interface {
	ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.DailyLog, error)
}

// Summary reports the outcome of one aggregation pass.
type Summary struct {
	Contests int
	Updated  int
	Failed   int
}

// Option configures a Driver.
type Option func(*Driver)

func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

func WithContestTimeout(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.contestTimeout = d
		}
	}
}

func WithConcurrency(n int) Option {
	return func(dr *Driver) {
		if n > 0 {
			dr.concurrency = n
		}
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(dr *Driver) {
		if p != nil {
			dr.publisher = p
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(dr *Driver) {
		if l != nil {
			dr.logger = l
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(dr *Driver) {
		dr.now = now
	}
}

// Driver recomputes every active contest on a fixed interval. A failing
// contest is logged and skipped; the others in the same pass still run.
type Driver struct {
	store            ContestStore
	logs             LogSource
	publisher        events.Publisher
	interval         time.Duration
	contestTimeout   time.Duration
	concurrency      int
	logger           *log.Logger
	now              func() time.Time
	shutdownComplete chan struct{}
}

// NewDriver constructs a Driver.
func NewDriver(store ContestStore, logs LogSource, opts ...Option) *Driver {
	d := &Driver{
		store:            store,
		logs:             logs,
		publisher:        events.NoopPublisher{},
		interval:         DefaultInterval,
		contestTimeout:   DefaultContestTimeout,
		concurrency:      DefaultConcurrency,
		logger:           log.New(log.Writer(), "[aggregator] ", log.LstdFlags),
		now:              func() time.Time { return time.Now().UTC() },
		shutdownComplete: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the polling loop. It should be called in a goroutine and
// returns when ctx is cancelled.
func (d *Driver) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer func() {
		ticker.Stop()
		close(d.shutdownComplete)
	}()

	for {
		if _, err := d.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Printf("aggregation pass failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Wait waits until the driver stops.
func (d *Driver) Wait() {
	<-d.shutdownComplete
}

// RunOnce recomputes all active contests once. It only returns an error when
// the active contests cannot be listed.
func (d *Driver) RunOnce(ctx context.Context) (Summary, error) {
	start := time.Now()
	defer func() { passDuration.Observe(time.Since(start).Seconds()) }()

	battles, err := d.store.ListActive(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list active battles: %w", err)
	}

	var updated, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(d.concurrency)
	for _, b := range battles {
		g.Go(func() error {
			if _, err := d.Recompute(ctx, b); err != nil {
				failed.Add(1)
				failedCounter.Inc()
				d.logger.Printf("battle %s: %v", b.ID, err)
				return nil
			}
			updated.Add(1)
			aggregatedCounter.Inc()
			return nil
		})
	}
	_ = g.Wait()

	lastAggregation.Set(float64(d.now().Unix()))

	return Summary{
		Contests: len(battles),
		Updated:  int(updated.Load()),
		Failed:   int(failed.Load()),
	}, nil
}

// Recompute scores a single contest from the stored logs of both teams and
// writes the totals back. Its I/O is bounded by the contest timeout.
func (d *Driver) Recompute(ctx context.Context, b domain.Battle) (score domain.ContestScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic while scoring: %v", domain.ErrInvariantViolation, r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.contestTimeout)
	defer cancel()

	var teamA, teamB []domain.DailyLog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		teamA, err = d.teamLogs(gctx, b.TeamAID, b)
		return err
	})
	g.Go(func() (err error) {
		teamB, err = d.teamLogs(gctx, b.TeamBID, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ContestScore{}, err
	}

	score = engine.ComputeContest(teamA, teamB)
	at := d.now()
	if err := d.store.UpdateScores(ctx, b.ID, score.TeamA, score.TeamB, at); err != nil {
		return domain.ContestScore{}, fmt.Errorf("store scores: %w", err)
	}

	evt := events.BattleScoresUpdatedEvent{
		BattleID:   b.ID,
		TeamAID:    b.TeamAID,
		TeamBID:    b.TeamBID,
		TeamAScore: score.TeamA,
		TeamBScore: score.TeamB,
		UpdatedAt:  at,
	}
	if err := d.publisher.Publish(ctx, events.TopicBattleScoresUpdated, b.ID.String(), evt); err != nil {
		d.logger.Printf("battle %s: scores stored, event not published: %v", b.ID, err)
	}

	return score, nil
}

func (d *Driver) teamLogs(ctx context.Context, teamID string, b domain.Battle) (logs []domain.DailyLog, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic loading team %s logs: %v", domain.ErrInvariantViolation, teamID, r)
		}
	}()

	logs, err = d.logs.ListByTeamRange(ctx, teamID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load team %s logs: %w", teamID, err)
	}
	return logs, nil
}
