package repository_test

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/als904204/go-querydsl/config"
	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/internal/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestPostgresIntegration runs the fixture against PostgreSQL to exercise
// the dollar placeholder dialect. It is skipped when no docker daemon is
// reachable.
func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=querydemo_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     "localhost",
		Port:     port,
		User:     "postgres",
		Password: "postgres",
		DBName:   "querydemo_test",
		SSLMode:  "disable",
	}

	var store *repository.Store
	require.NoError(t, pool.Retry(func() error {
		s, err := repository.Open(cfg, zap.NewNop().Sugar())
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		store = s
		return nil
	}))
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Seed())
	ctx := context.Background()

	m, err := store.MemberByUsername(ctx, "member1")
	require.NoError(t, err)
	require.Equal(t, 10, m.Age)

	stats, err := store.TeamAverageAges(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.TeamAgeStat{
		{TeamName: "teamA", AverageAge: 15},
		{TeamName: "teamB", AverageAge: 20},
	}, stats)

	page, err := store.Members(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)

	total, err := store.CountMembers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)

	withTeam, err := store.MembersWithTeam(ctx, "teamA")
	require.NoError(t, err)
	require.Len(t, withTeam, 4)
	require.Nil(t, withTeam[3].TeamName)
}
