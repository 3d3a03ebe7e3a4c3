package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/domain/rewardengine"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/reflectutil"
	"github.com/trailpoint/backend/pkg/testutil"
	"github.com/trailpoint/backend/pkg/xcontext"
)

func newTestSubmissionDomain() SubmissionDomain {
	return NewSubmissionDomain(
		repository.NewTaskRepository(),
		repository.NewAttractionRepository(),
		repository.NewSubmissionRepository(),
		repository.NewProgressRepository(),
		repository.NewPointLedgerRepository(),
		repository.NewUserAggregateRepository(),
		rewardengine.NewEngine(
			repository.NewRewardRepository(),
			repository.NewUserRewardRepository(),
			repository.NewSubmissionRepository(),
			repository.NewProgressRepository(),
		),
	)
}

func requireErrorCode(t *testing.T, err error, code errorx.Code) errorx.Error {
	t.Helper()
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
	return errx
}

func Test_submissionDomain_SubmitTask_checkin(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	got, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)
	require.True(t, got.IsCorrect)
	require.Equal(t, 100, got.Score)
	require.NotEmpty(t, got.SubmissionID)
	require.Equal(t, int64(15), got.PointsGranted.XP)
	require.Equal(t, int64(10), got.PointsGranted.EP)

	require.NotNil(t, got.Progress)
	expectedProgress := &model.Progress{
		AttractionID:       testutil.Attraction1.ID,
		CompletedTasks:     1,
		TotalTasks:         3,
		ProgressPercentage: 33,
	}
	require.True(t, reflectutil.PartialEqual(expectedProgress, got.Progress),
		"%v != %v", expectedProgress, got.Progress)
	require.Empty(t, got.Progress.CompletedAt)

	// The quiz is the next unfinished task in display order.
	require.Equal(t, testutil.Attraction1Quiz.ID, got.NextTaskID)

	require.Len(t, got.NewRewards, 1)
	require.Equal(t, testutil.RewardFirstCheckin.ID, got.NewRewards[0].ID)
}

func Test_submissionDomain_SubmitTask_wrongAnswerIsRetryable(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	got, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "wrong-token"},
	})
	require.NoError(t, err)
	require.False(t, got.IsCorrect)
	require.Equal(t, 0, got.Score)
	require.Empty(t, got.SubmissionID)
	require.Equal(t, int64(0), got.PointsGranted.XP)

	// Nothing was persisted, so nothing blocks the retry.
	got, err = domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)
	require.True(t, got.IsCorrect)
}

func Test_submissionDomain_SubmitTask_idempotency(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)

	_, err = domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	requireErrorCode(t, err, errorx.AlreadySubmitted)

	// The losing attempt left no trace: one submission, one pair of ledger
	// entries, unchanged progress.
	pointLedgerRepo := repository.NewPointLedgerRepository()
	xp, err := pointLedgerRepo.Balance(ctx, testutil.User1.ID, "xp")
	require.NoError(t, err)
	require.Equal(t, int64(15), xp)

	progressRepo := repository.NewProgressRepository()
	progress, err := progressRepo.Get(ctx, testutil.User1.ID, testutil.Attraction1.ID)
	require.NoError(t, err)
	require.Equal(t, 1, progress.CompletedTasks)
}

func Test_submissionDomain_SubmitTask_checkinRequired(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Quiz.ID,
		Input:  map[string]any{"answers": []string{"1923", "A steam engine"}},
	})
	errx := requireErrorCode(t, err, errorx.CheckinRequired)

	details, ok := errx.Details.(model.CheckinRequiredDetails)
	require.True(t, ok)
	require.Equal(t, testutil.Attraction1Checkin.ID, details.CheckinTaskID)
}

func Test_submissionDomain_SubmitTask_fullAttractionCompletion(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	steps := []struct {
		taskID         string
		input          map[string]any
		wantCompleted  int
		wantPercentage int
	}{
		{
			taskID:         testutil.Attraction1Checkin.ID,
			input:          map[string]any{"token": "museum-entrance-token"},
			wantCompleted:  1,
			wantPercentage: 33,
		},
		{
			taskID:         testutil.Attraction1Quiz.ID,
			input:          map[string]any{"answers": []string{"1923", "A steam engine"}},
			wantCompleted:  2,
			wantPercentage: 66,
		},
		{
			taskID:         testutil.Attraction1Count.ID,
			input:          map[string]any{"count": 10},
			wantCompleted:  3,
			wantPercentage: 100,
		},
	}

	var last *model.SubmitTaskResponse
	for _, step := range steps {
		got, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
			TaskID: step.taskID,
			Input:  step.input,
		})
		require.NoError(t, err)
		require.True(t, got.IsCorrect)
		require.Equal(t, step.wantCompleted, got.Progress.CompletedTasks)
		require.Equal(t, step.wantPercentage, got.Progress.ProgressPercentage)
		last = got
	}

	require.NotEmpty(t, last.Progress.CompletedAt)
	require.Empty(t, last.NextTaskID)

	// Completing the museum unlocks the attraction reward and the first
	// museum category milestone in the same scan.
	gotRewards := []string{}
	for _, reward := range last.NewRewards {
		gotRewards = append(gotRewards, reward.ID)
	}
	require.ElementsMatch(
		t,
		[]string{testutil.RewardMuseumMaster.ID, testutil.RewardMuseumPioneer.ID},
		gotRewards,
	)

	// XP follows the per-type amounts: 15 + 25 + 20.
	pointLedgerRepo := repository.NewPointLedgerRepository()
	xp, err := pointLedgerRepo.Balance(ctx, testutil.User1.ID, "xp")
	require.NoError(t, err)
	require.Equal(t, int64(60), xp)

	ep, err := pointLedgerRepo.Balance(ctx, testutil.User1.ID, "ep")
	require.NoError(t, err)
	require.Equal(t, int64(30), ep)
}

func Test_submissionDomain_SubmitTask_notFound(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: "no-such-task",
		Input:  map[string]any{},
	})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_submissionDomain_SubmitTask_usersAreIndependent(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)

	// The same task is still open for the second user.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	got, err := domain.SubmitTask(ctx2, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)
	require.True(t, got.IsCorrect)
}

func Test_submissionDomain_GetMySubmissions(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newTestSubmissionDomain()

	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)

	got, err := domain.GetMySubmissions(ctx, &model.GetMySubmissionsRequest{
		AttractionID: testutil.Attraction1.ID,
	})
	require.NoError(t, err)
	require.Len(t, got.Submissions, 1)
	require.Equal(t, testutil.Attraction1Checkin.ID, got.Submissions[0].TaskID)
	require.Equal(t, "checkin", got.Submissions[0].TaskType)
	require.True(t, got.Submissions[0].IsCorrect)
	require.NotEmpty(t, got.Submissions[0].CreatedAt)

	// The other user has submitted nothing.
	ctx2 := xcontext.WithRequestUserID(ctx, testutil.User2.ID)
	got, err = domain.GetMySubmissions(ctx2, &model.GetMySubmissionsRequest{
		AttractionID: testutil.Attraction1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, got.Submissions)
}

func Test_progressDomain_Get(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	submissionDomain := newTestSubmissionDomain()
	progressDomain := NewProgressDomain(
		repository.NewAttractionRepository(),
		repository.NewProgressRepository(),
	)

	// A user who never submitted gets a zero-value snapshot, not an error.
	got, err := progressDomain.Get(ctx, &model.GetProgressRequest{
		AttractionID: testutil.Attraction1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 0, got.CompletedTasks)
	require.Equal(t, 0, got.ProgressPercentage)

	_, err = submissionDomain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)

	got, err = progressDomain.Get(ctx, &model.GetProgressRequest{
		AttractionID: testutil.Attraction1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, got.CompletedTasks)
	require.Equal(t, 3, got.TotalTasks)
	require.Equal(t, 33, got.ProgressPercentage)

	_, err = progressDomain.Get(ctx, &model.GetProgressRequest{AttractionID: "no-such-attraction"})
	requireErrorCode(t, err, errorx.NotFound)
}

func submitFixtureCheckin(t *testing.T, ctx context.Context, domain SubmissionDomain) {
	t.Helper()
	_, err := domain.SubmitTask(ctx, &model.SubmitTaskRequest{
		TaskID: testutil.Attraction1Checkin.ID,
		Input:  map[string]any{"token": "museum-entrance-token"},
	})
	require.NoError(t, err)
}
