package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/testutil"
	"github.com/trailpoint/backend/pkg/xcontext"
)

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	submissionDomain := newTestSubmissionDomain()
	statisticDomain := NewStatisticDomain(
		repository.NewUserAggregateRepository(), repository.NewUserRepository())

	submitFixtureCheckin(t, ctx, submissionDomain)
	_, err := submissionDomain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Count.ID,
		Input:  map[string]any{"count": 10},
	})
	require.NoError(t, err)

	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	submitFixtureCheckin(t, ctx2, submissionDomain)

	for _, leaderboardType := range []string{"task", "xp", "ep"} {
		got, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
			Range: "week",
			Type:  leaderboardType,
			Limit: 10,
		})
		require.NoError(t, err)
		require.Len(t, got.Leaderboard, 2)
		require.Equal(t, testutil.User1.ID, got.Leaderboard[0].UserID)
		require.Equal(t, testutil.User1.Name, got.Leaderboard[0].UserName)
		require.Equal(t, uint64(1), got.Leaderboard[0].CurrentRank)
		require.Equal(t, testutil.User2.ID, got.Leaderboard[1].UserID)
		require.Equal(t, testutil.User2.Name, got.Leaderboard[1].UserName)
		require.Equal(t, uint64(2), got.Leaderboard[1].CurrentRank)
	}

	got, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		Range: "total",
		Type:  "xp",
		Limit: 10,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(35), got.Leaderboard[0].TotalXP)
	require.Equal(t, uint64(2), got.Leaderboard[0].TotalTasks)
}

func Test_statisticDomain_GetLeaderboard_invalidRequests(t *testing.T) {
	ctx := testutil.MockContext()
	statisticDomain := NewStatisticDomain(
		repository.NewUserAggregateRepository(), repository.NewUserRepository())

	_, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		Range: "decade", Type: "xp", Limit: 10,
	})
	require.Error(t, err)

	_, err = statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		Range: "week", Type: "karma", Limit: 10,
	})
	require.Error(t, err)

	_, err = statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		Range: "week", Type: "xp", Limit: 1000,
	})
	require.Error(t, err)
}
