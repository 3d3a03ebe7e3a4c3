package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trailpoint/backend/internal/domain/rewardengine"
	"github.com/trailpoint/backend/internal/domain/taskverify"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/dateutil"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// xpByTaskType is the fixed XP grant per verified task, keyed by how much
// effort the task type usually takes.
var xpByTaskType = map[entity.TaskType]int64{
	entity.TaskCheckin:          15,
	entity.TaskTimeBased:        15,
	entity.TaskCountConfirm:     20,
	entity.TaskDirection:        20,
	entity.TaskQuiz:             25,
	entity.TaskRiddle:           25,
	entity.TaskObservationMatch: 25,
	entity.TaskRouteCompletion:  30,
}

// epPerTask is the flat exploration grant per verified task.
const epPerTask = 10

const submissionSourceType = "task_submission"

type SubmissionDomain interface {
	SubmitTask(ctx context.Context, req *model.SubmitTaskRequest) (*model.SubmitTaskResponse, error)
	GetMySubmissions(ctx context.Context, req *model.GetMySubmissionsRequest) (*model.GetMySubmissionsResponse, error)
}

type submissionDomain struct {
	taskRepo          repository.TaskRepository
	attractionRepo    repository.AttractionRepository
	submissionRepo    repository.SubmissionRepository
	progressRepo      repository.ProgressRepository
	pointLedgerRepo   repository.PointLedgerRepository
	userAggregateRepo repository.UserAggregateRepository
	rewardEngine      *rewardengine.Engine
}

func NewSubmissionDomain(
	taskRepo repository.TaskRepository,
	attractionRepo repository.AttractionRepository,
	submissionRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
	pointLedgerRepo repository.PointLedgerRepository,
	userAggregateRepo repository.UserAggregateRepository,
	rewardEngine *rewardengine.Engine,
) *submissionDomain {
	return &submissionDomain{
		taskRepo:          taskRepo,
		attractionRepo:    attractionRepo,
		submissionRepo:    submissionRepo,
		progressRepo:      progressRepo,
		pointLedgerRepo:   pointLedgerRepo,
		userAggregateRepo: userAggregateRepo,
		rewardEngine:      rewardEngine,
	}
}

func (d *submissionDomain) SubmitTask(
	ctx context.Context, req *model.SubmitTaskRequest,
) (*model.SubmitTaskResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	task, err := d.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if !task.IsActive {
		return nil, errorx.New(errorx.NotFound, "Not found task")
	}

	attraction, err := d.attractionRepo.GetByID(ctx, task.AttractionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get attraction of task: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.checkPrerequisite(ctx, userID, task); err != nil {
		return nil, err
	}

	_, err = d.submissionRepo.Get(ctx, userID, task.ID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadySubmitted, "You have already submitted this task")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get submission: %v", err)
		return nil, errorx.Unknown
	}

	verifier, err := taskverify.NewVerifier(ctx, task, attraction)
	if err != nil {
		return nil, err
	}

	result, err := verifier.Verify(ctx, entity.Map(req.Input))
	if err != nil {
		return nil, err
	}

	// A wrong answer is a normal outcome. Nothing is persisted so the user
	// may retry.
	if !result.Correct {
		return &model.SubmitTaskResponse{
			IsCorrect:   false,
			Score:       result.Score,
			Explanation: result.Explanation,
		}, nil
	}

	submission := &entity.Submission{
		Base:      entity.Base{ID: uuid.NewString()},
		TaskID:    task.ID,
		UserID:    userID,
		IsCorrect: true,
		Score:     result.Score,
		Answer:    result.Answer,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// The unique index on (user_id, task_id) is the concurrency fence. A
	// racing attempt loses here and nothing else of its transaction lands.
	if err := d.submissionRepo.Create(ctx, submission); err != nil {
		if repository.IsDuplicateKeyError(err) {
			return nil, errorx.New(errorx.AlreadySubmitted, "You have already submitted this task")
		}

		xcontext.Logger(ctx).Errorf("Cannot create submission: %v", err)
		return nil, errorx.Unknown
	}

	progress, err := refreshProgress(
		ctx, d.taskRepo, d.submissionRepo, d.progressRepo, userID, task.AttractionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh progress: %v", err)
		return nil, errorx.Unknown
	}

	xp := xpByTaskType[task.Type]
	if err := d.grantPoints(ctx, userID, task, submission.ID, xp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot grant points: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.updateAggregates(ctx, userID, xp); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user aggregates: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	// Rewards are a bonus, not a correctness guarantee. A failure here only
	// omits new_rewards from the response.
	newRewards := []model.Reward{}
	granted, err := d.rewardEngine.ScanAndGrant(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot scan rewards after submission: %v", err)
	} else {
		for _, reward := range granted {
			newRewards = append(newRewards, model.Reward{
				ID:          reward.ID,
				Name:        reward.Name,
				Description: string(reward.Description),
				IconURL:     reward.IconURL,
				Type:        string(reward.Type),
				Rarity:      string(reward.Rarity),
			})
		}
	}

	return &model.SubmitTaskResponse{
		IsCorrect:     true,
		Score:         result.Score,
		SubmissionID:  submission.ID,
		PointsGranted: model.PointsGranted{XP: xp, EP: epPerTask},
		NewRewards:    newRewards,
		Progress:      convertProgress(progress),
		NextTaskID:    d.nextTaskID(ctx, userID, task.AttractionID),
	}, nil
}

// checkPrerequisite enforces that non-checkin tasks are only available after
// the user checked in at the attraction. An attraction without a checkin
// task has no prerequisite.
func (d *submissionDomain) checkPrerequisite(
	ctx context.Context, userID string, task *entity.Task,
) error {
	if task.Type == entity.TaskCheckin {
		return nil
	}

	checkinTask, err := d.taskRepo.GetCheckinByAttractionID(ctx, task.AttractionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get checkin task of attraction: %v", err)
		return errorx.Unknown
	}

	_, err = d.submissionRepo.Get(ctx, userID, checkinTask.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.CheckinRequired, "Check in at this attraction first").
				WithDetails(model.CheckinRequiredDetails{CheckinTaskID: checkinTask.ID})
		}

		xcontext.Logger(ctx).Errorf("Cannot get checkin submission: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *submissionDomain) grantPoints(
	ctx context.Context, userID string, task *entity.Task, submissionID string, xp int64,
) error {
	reason := fmt.Sprintf("Completed task %q", task.Title)
	return d.pointLedgerRepo.BulkCreate(ctx, []*entity.PointLedgerEntry{
		{
			Base:       entity.Base{ID: uuid.NewString()},
			UserID:     userID,
			Amount:     xp,
			Currency:   entity.PointXP,
			Reason:     reason,
			SourceType: submissionSourceType,
			SourceID:   submissionID,
		},
		{
			Base:       entity.Base{ID: uuid.NewString()},
			UserID:     userID,
			Amount:     epPerTask,
			Currency:   entity.PointEP,
			Reason:     reason,
			SourceType: submissionSourceType,
			SourceID:   submissionID,
		},
	})
}

func (d *submissionDomain) updateAggregates(ctx context.Context, userID string, xp int64) error {
	aggregates := []*entity.UserAggregate{}
	for _, aggregateRange := range entity.UserAggregateRangeList {
		rangeValue, err := dateutil.GetCurrentValueByRange(aggregateRange)
		if err != nil {
			return err
		}

		aggregates = append(aggregates, &entity.UserAggregate{
			UserID:     userID,
			Range:      aggregateRange,
			RangeValue: rangeValue,
			TotalTasks: 1,
			TotalXP:    uint64(xp),
			TotalEP:    epPerTask,
		})
	}

	return d.userAggregateRepo.BulkUpsert(ctx, aggregates)
}

// nextTaskID returns the first unfinished task of the attraction in display
// order, or an empty string when everything is done. It is advisory, so any
// failure only drops the hint from the response.
func (d *submissionDomain) nextTaskID(ctx context.Context, userID, attractionID string) string {
	tasks, err := d.taskRepo.GetListByAttractionID(ctx, attractionID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get tasks for the next task hint: %v", err)
		return ""
	}

	taskIDs := []string{}
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}

	submissions, err := d.submissionRepo.GetByUserAndTasks(ctx, userID, taskIDs)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get submissions for the next task hint: %v", err)
		return ""
	}

	submitted := map[string]bool{}
	for _, submission := range submissions {
		submitted[submission.TaskID] = true
	}

	for _, task := range tasks {
		if !submitted[task.ID] {
			return task.ID
		}
	}

	return ""
}

func (d *submissionDomain) GetMySubmissions(
	ctx context.Context, req *model.GetMySubmissionsRequest,
) (*model.GetMySubmissionsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	submissions, err := d.submissionRepo.GetListByUserAndAttraction(ctx, userID, req.AttractionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get submissions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMySubmissionsResponse{Submissions: []model.Submission{}}
	for _, submission := range submissions {
		resp.Submissions = append(resp.Submissions, model.Submission{
			ID:        submission.ID,
			TaskID:    submission.TaskID,
			TaskType:  string(submission.Task.Type),
			IsCorrect: submission.IsCorrect,
			Score:     submission.Score,
			Answer:    submission.Answer,
			CreatedAt: submission.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
