//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/blaisecz/vital-quest/internal/config"
	"github.com/blaisecz/vital-quest/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("vitalquest"),
		postgrescontainer.WithUsername("quest"),
		postgrescontainer.WithPassword("quest"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func day(s string) time.Time {
	d, _ := domain.ParseDate(s, time.UTC)
	return d
}

func TestDailyLogsAndBattles(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	users := NewUserRepository(db)
	logs := NewDailyLogRepository(db)
	battles := NewBattleRepository(db)

	red := &domain.User{Username: "ada", TeamID: "red", Timezone: "UTC", Level: 1, RPGClass: domain.ClassVillager}
	blue := &domain.User{Username: "bob", TeamID: "blue", Timezone: "UTC", Level: 1, RPGClass: domain.ClassVillager}
	require.NoError(t, users.Create(ctx, red))
	require.NoError(t, users.Create(ctx, blue))

	// Upsert twice on the same day keeps one row with the latest log.
	first := &domain.DailyLogRecord{UserID: red.ID, Date: day("2024-01-16"), Log: domain.DailyLog{Date: day("2024-01-16"), TotalSteps: 1000}}
	require.NoError(t, logs.Upsert(ctx, first))
	second := &domain.DailyLogRecord{UserID: red.ID, Date: day("2024-01-16"), Log: domain.DailyLog{Date: day("2024-01-16"), TotalSteps: 10000}}
	require.NoError(t, logs.Upsert(ctx, second))
	require.Equal(t, first.ID, second.ID)

	stored, err := logs.GetByDate(ctx, red.ID, day("2024-01-16"))
	require.NoError(t, err)
	require.Equal(t, 10000, stored.Log.TotalSteps)

	_, err = logs.GetByDate(ctx, red.ID, day("2024-01-17"))
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, logs.Upsert(ctx, &domain.DailyLogRecord{UserID: red.ID, Date: day("2024-01-17"), Log: domain.DailyLog{TotalSteps: 2000}}))
	require.NoError(t, logs.Upsert(ctx, &domain.DailyLogRecord{UserID: blue.ID, Date: day("2024-01-17"), Log: domain.DailyLog{TotalSteps: 3000}}))
	require.NoError(t, logs.Upsert(ctx, &domain.DailyLogRecord{UserID: red.ID, Date: day("2024-02-01"), Log: domain.DailyLog{TotalSteps: 9}}))

	page, err := logs.List(ctx, red.ID, domain.DailyLogFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "2024-02-01", page[0].Date.Format(domain.DateLayout))

	teamLogs, err := logs.ListByTeamRange(ctx, "red", day("2024-01-15"), day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, teamLogs, 2)
	require.Equal(t, 10000, teamLogs[0].TotalSteps)
	require.Equal(t, 2000, teamLogs[1].TotalSteps)

	battle := &domain.Battle{TeamAID: "red", TeamBID: "blue", StartDate: day("2024-01-15"), EndDate: day("2024-01-31"), Status: domain.BattleStatusActive}
	require.NoError(t, battles.Create(ctx, battle))

	active, err := battles.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	now := time.Now().UTC()
	require.NoError(t, battles.UpdateScores(ctx, battle.ID, 600, 150, now))
	got, err := battles.GetByID(ctx, battle.ID)
	require.NoError(t, err)
	require.InDelta(t, 600.0, got.TeamAScore, 1e-9)
	require.NotNil(t, got.LastUpdated)

	require.NoError(t, users.UpdateProgression(ctx, red.ID, func(current *domain.User) (domain.UserProgress, domain.Attributes, error) {
		return domain.UserProgress{XP: 99, Level: 4}, domain.Attributes{Strength: 1.5}, nil
	}))
	require.NoError(t, users.UpdateClass(ctx, red.ID, domain.ClassWarrior))
	reloaded, err := users.GetByID(ctx, red.ID)
	require.NoError(t, err)
	require.Equal(t, 4, reloaded.Level)
	require.Equal(t, domain.ClassWarrior, reloaded.RPGClass)
}

func TestUpdateProgressionSerializesConcurrentAwards(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)

	user := &domain.User{Username: "ada", TeamID: "red", Timezone: "UTC", Level: 1, RPGClass: domain.ClassVillager}
	require.NoError(t, users.Create(ctx, user))

	const awards = 8
	add := func(current *domain.User) (domain.UserProgress, domain.Attributes, error) {
		attrs := current.Attributes()
		attrs.Stamina++
		return domain.UserProgress{XP: current.XP + 10, Level: current.Level}, attrs, nil
	}

	var g errgroup.Group
	for i := 0; i < awards; i++ {
		g.Go(func() error { return users.UpdateProgression(ctx, user.ID, add) })
	}
	require.NoError(t, g.Wait())

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, awards*10, got.XP)
	require.InDelta(t, float64(awards), got.Stamina, 1e-9)

	err = users.UpdateProgression(ctx, uuid.New(), add)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLeaderboard(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)

	players := []*domain.User{
		{Username: "ada", TeamID: "red", Level: 2, XP: 10},
		{Username: "bob", TeamID: "blue", Level: 1, XP: 90},
		{Username: "cy", TeamID: "red", Level: 2, XP: 50},
		{Username: "dee", TeamID: "red", Level: 1, XP: 0},
	}
	for _, p := range players {
		p.Timezone = "UTC"
		p.RPGClass = domain.ClassVillager
		require.NoError(t, users.Create(ctx, p))
	}

	global, err := users.ListLeaderboard(ctx, "", 3)
	require.NoError(t, err)
	require.Len(t, global, 3)
	require.Equal(t, []string{"cy", "ada", "bob"}, usernames(global))

	red, err := users.ListLeaderboard(ctx, "red", 10)
	require.NoError(t, err)
	require.Equal(t, []string{"cy", "ada", "dee"}, usernames(red))

	none, err := users.ListLeaderboard(ctx, "green", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}

func usernames(users []domain.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}
