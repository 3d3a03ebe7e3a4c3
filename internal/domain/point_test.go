package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/testutil"
	"github.com/trailpoint/backend/pkg/xcontext"
)

func Test_pointDomain_GetBalance(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	submissionDomain := newTestSubmissionDomain()
	pointDomain := NewPointDomain(repository.NewPointLedgerRepository())

	got, err := pointDomain.GetBalance(ctx, &model.GetPointBalanceRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(0), got.XP)
	require.Equal(t, int64(0), got.EP)

	submitFixtureCheckin(t, ctx, submissionDomain)

	got, err = pointDomain.GetBalance(ctx, &model.GetPointBalanceRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(15), got.XP)
	require.Equal(t, int64(10), got.EP)

	// Balances are per user.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	got, err = pointDomain.GetBalance(ctx2, &model.GetPointBalanceRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(0), got.XP)
}

func Test_pointDomain_GetHistory(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	submissionDomain := newTestSubmissionDomain()
	pointDomain := NewPointDomain(repository.NewPointLedgerRepository())

	submitFixtureCheckin(t, ctx, submissionDomain)

	got, err := pointDomain.GetHistory(ctx, &model.GetPointHistoryRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)

	currencies := []string{}
	for _, entry := range got.Entries {
		currencies = append(currencies, entry.Currency)
		require.Equal(t, "task_submission", entry.SourceType)
		require.NotEmpty(t, entry.SourceID)
		require.Contains(t, entry.Reason, "Check in at the museum")
	}
	require.ElementsMatch(t, []string{"xp", "ep"}, currencies)

	_, err = pointDomain.GetHistory(ctx, &model.GetPointHistoryRequest{Limit: 1000})
	require.Error(t, err)
}
