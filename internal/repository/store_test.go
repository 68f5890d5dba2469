package repository_test

import (
	"context"
	"testing"

	"github.com/als904204/go-querydsl/config"
	"github.com/als904204/go-querydsl/internal/entities"
	"github.com/als904204/go-querydsl/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testStore opens an in-memory database and loads the canonical fixture:
// teamA with member1(10) and member2(20), teamB with member3(20) and
// member4(20).
func testStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	}, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Seed())
	return store
}

func TestMemberByUsername(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	m, err := store.MemberByUsername(ctx, "member1")
	require.NoError(t, err)
	require.NotNil(t, m.Username)
	require.Equal(t, "member1", *m.Username)
	require.Equal(t, 10, m.Age)

	_, err = store.MemberByUsername(ctx, "nobody")
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
}

func TestMemberByUsernameAndAge(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	m, err := store.MemberByUsernameAndAge(ctx, "member1", 10)
	require.NoError(t, err)
	require.Equal(t, 10, m.Age)

	_, err = store.MemberByUsernameAndAge(ctx, "member1", 20)
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
}

func TestMembersAgedSortsNullUsernamesLast(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateMember(ctx, entities.NewMember(nil, 100)))
	member5 := "member5"
	member6 := "member6"
	require.NoError(t, store.CreateMember(ctx, entities.NewMember(&member5, 100)))
	require.NoError(t, store.CreateMember(ctx, entities.NewMember(&member6, 100)))

	result, err := store.MembersAged(ctx, 100)
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, "member5", *result[0].Username)
	require.Equal(t, "member6", *result[1].Username)
	require.Nil(t, result[2].Username)
}

func TestMembersPaging(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	page, err := store.Members(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "member3", *page[0].Username)
	require.Equal(t, "member2", *page[1].Username)

	total, err := store.CountMembers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
}

func TestTeamAverageAges(t *testing.T) {
	store := testStore(t)

	stats, err := store.TeamAverageAges(context.Background())
	require.NoError(t, err)

	require.Equal(t, []entities.TeamAgeStat{
		{TeamName: "teamA", AverageAge: 15},
		{TeamName: "teamB", AverageAge: 20},
	}, stats)
}

func TestMembersOfTeam(t *testing.T) {
	store := testStore(t)

	result, err := store.MembersOfTeam(context.Background(), "teamA")
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "member1", *result[0].Username)
	require.Equal(t, "member2", *result[1].Username)
}

func TestMembersWithTeam(t *testing.T) {
	store := testStore(t)

	result, err := store.MembersWithTeam(context.Background(), "teamA")
	require.NoError(t, err)
	require.Len(t, result, 4)

	require.NotNil(t, result[0].TeamName)
	require.Equal(t, "teamA", *result[0].TeamName)
	require.NotNil(t, result[1].TeamName)
	require.Nil(t, result[2].TeamName)
	require.Nil(t, result[3].TeamName)
}

func TestMemberUsernames(t *testing.T) {
	store := testStore(t)

	usernames, err := store.MemberUsernames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"member1", "member2", "member3", "member4"}, usernames)
}

func TestMemberDTOProjections(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	exp := []entities.MemberDTO{
		{Username: "member1", Age: 10},
		{Username: "member2", Age: 20},
		{Username: "member3", Age: 20},
		{Username: "member4", Age: 20},
	}

	byFields, err := store.MemberDTOsByFields(ctx)
	require.NoError(t, err)
	require.Equal(t, exp, byFields)

	bySetters, err := store.MemberDTOsBySetters(ctx)
	require.NoError(t, err)
	require.Equal(t, exp, bySetters)

	byConstructor, err := store.MemberDTOsByConstructor(ctx)
	require.NoError(t, err)
	require.Equal(t, exp, byConstructor)
}

func TestTeams(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	teams, err := store.Teams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "teamA", teams[0].Name)

	teamA, err := store.TeamByName(ctx, "teamA")
	require.NoError(t, err)
	require.Len(t, teamA.Members, 2)

	_, err = store.TeamByName(ctx, "teamC")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)
}

func TestProducts(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	all, err := store.Products(ctx, -1, -1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "monitor", all[0].Name)

	cheap, err := store.ProductsCheaperThan(ctx, 50000)
	require.NoError(t, err)
	require.Len(t, cheap, 2)
	require.Equal(t, "mouse", cheap[0].Name)

	p, err := store.ProductByID(ctx, all[0].ID)
	require.NoError(t, err)
	require.Equal(t, int64(350000), p.Price)

	_, err = store.ProductByID(ctx, 9999)
	require.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestDemos(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	demo, err := store.CreateDemo(ctx)
	require.NoError(t, err)
	require.NotZero(t, demo.ID)

	count, err := store.CountDemos(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSeedIsIdempotent(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Seed())

	total, err := store.CountMembers(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), total)
}
