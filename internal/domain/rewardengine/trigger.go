package rewardengine

import (
	"context"
	"errors"

	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/enum"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CategoryMilestones are the built-in thresholds of completed attractions a
// category_milestone definition may reference.
var CategoryMilestones = []int{1, 3, 5, 10, 25}

// Trigger decides whether a reward definition is satisfied by the user's
// current submission and progress state. Triggers never mutate anything.
type Trigger interface {
	Satisfied(ctx context.Context, userID string) (bool, error)
}

// NewTrigger returns the trigger matching the definition's trigger type. A
// malformed trigger condition is a management-side defect, reported as an
// internal error.
func NewTrigger(
	ctx context.Context,
	reward *entity.Reward,
	submissionRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
) (Trigger, error) {
	var trigger Trigger
	var err error
	switch reward.TriggerType {
	case entity.TriggerTaskCompletion:
		trigger, err = newTaskCompletionTrigger(ctx, reward.TriggerCondition, submissionRepo)

	case entity.TriggerTaskSetCompletion:
		trigger, err = newTaskSetCompletionTrigger(ctx, reward.TriggerCondition, submissionRepo)

	case entity.TriggerTaskTypeCompletion:
		trigger, err = newTaskTypeCompletionTrigger(ctx, reward.TriggerCondition, submissionRepo)

	case entity.TriggerAttractionCompletion:
		trigger, err = newAttractionCompletionTrigger(ctx, reward.TriggerCondition, progressRepo)

	case entity.TriggerCategoryMilestone:
		trigger, err = newCategoryMilestoneTrigger(ctx, reward.TriggerCondition, progressRepo)

	case entity.TriggerManual:
		trigger, err = newManualTrigger(ctx, reward.TriggerCondition)

	default:
		xcontext.Logger(ctx).Errorf("Unsupported trigger type %s of reward %s", reward.TriggerType, reward.ID)
		return nil, errorx.New(errorx.Internal, "Unsupported trigger type %s", reward.TriggerType)
	}

	if err != nil {
		return nil, err
	}

	return trigger, nil
}

// TaskCompletion Trigger
type taskCompletionTrigger struct {
	TaskID string `mapstructure:"task_id"`

	submissionRepo repository.SubmissionRepository
}

func newTaskCompletionTrigger(
	ctx context.Context, data entity.Map, submissionRepo repository.SubmissionRepository,
) (*taskCompletionTrigger, error) {
	trigger := taskCompletionTrigger{submissionRepo: submissionRepo}
	err := mapstructure.Decode(map[string]any(data), &trigger)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode task_completion condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed task_completion condition")
	}

	if trigger.TaskID == "" {
		xcontext.Logger(ctx).Errorf("Task_completion condition has no task id")
		return nil, errorx.New(errorx.Internal, "Malformed task_completion condition")
	}

	return &trigger, nil
}

func (t *taskCompletionTrigger) Satisfied(ctx context.Context, userID string) (bool, error) {
	_, err := t.submissionRepo.Get(ctx, userID, t.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// TaskSetCompletion Trigger
type taskSetCompletionTrigger struct {
	TaskIDs []string `mapstructure:"task_ids"`

	submissionRepo repository.SubmissionRepository
}

func newTaskSetCompletionTrigger(
	ctx context.Context, data entity.Map, submissionRepo repository.SubmissionRepository,
) (*taskSetCompletionTrigger, error) {
	trigger := taskSetCompletionTrigger{submissionRepo: submissionRepo}
	err := mapstructure.Decode(map[string]any(data), &trigger)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode task_set_completion condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed task_set_completion condition")
	}

	if len(trigger.TaskIDs) == 0 {
		xcontext.Logger(ctx).Errorf("Task_set_completion condition has no task ids")
		return nil, errorx.New(errorx.Internal, "Malformed task_set_completion condition")
	}

	return &trigger, nil
}

func (t *taskSetCompletionTrigger) Satisfied(ctx context.Context, userID string) (bool, error) {
	submissions, err := t.submissionRepo.GetByUserAndTasks(ctx, userID, t.TaskIDs)
	if err != nil {
		return false, err
	}

	submitted := map[string]bool{}
	for _, submission := range submissions {
		submitted[submission.TaskID] = true
	}

	for _, taskID := range t.TaskIDs {
		if !submitted[taskID] {
			return false, nil
		}
	}

	return true, nil
}

// TaskTypeCompletion Trigger
type taskTypeCompletionTrigger struct {
	TaskType      string `mapstructure:"task_type"`
	RequiredCount int    `mapstructure:"required_count"`

	taskType       entity.TaskType
	submissionRepo repository.SubmissionRepository
}

func newTaskTypeCompletionTrigger(
	ctx context.Context, data entity.Map, submissionRepo repository.SubmissionRepository,
) (*taskTypeCompletionTrigger, error) {
	trigger := taskTypeCompletionTrigger{submissionRepo: submissionRepo}
	err := mapstructure.Decode(map[string]any(data), &trigger)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode task_type_completion condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed task_type_completion condition")
	}

	trigger.taskType, err = enum.ToEnum[entity.TaskType](trigger.TaskType)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid task type of task_type_completion condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed task_type_completion condition")
	}

	if trigger.RequiredCount <= 0 {
		xcontext.Logger(ctx).Errorf("Invalid required count %d of task_type_completion condition", trigger.RequiredCount)
		return nil, errorx.New(errorx.Internal, "Malformed task_type_completion condition")
	}

	return &trigger, nil
}

func (t *taskTypeCompletionTrigger) Satisfied(ctx context.Context, userID string) (bool, error) {
	count, err := t.submissionRepo.CountCorrectByUserAndType(ctx, userID, t.taskType)
	if err != nil {
		return false, err
	}

	return count >= int64(t.RequiredCount), nil
}

// AttractionCompletion Trigger
type attractionCompletionTrigger struct {
	AttractionID string `mapstructure:"attraction_id"`

	progressRepo repository.ProgressRepository
}

func newAttractionCompletionTrigger(
	ctx context.Context, data entity.Map, progressRepo repository.ProgressRepository,
) (*attractionCompletionTrigger, error) {
	trigger := attractionCompletionTrigger{progressRepo: progressRepo}
	err := mapstructure.Decode(map[string]any(data), &trigger)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode attraction_completion condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed attraction_completion condition")
	}

	if trigger.AttractionID == "" {
		xcontext.Logger(ctx).Errorf("Attraction_completion condition has no attraction id")
		return nil, errorx.New(errorx.Internal, "Malformed attraction_completion condition")
	}

	return &trigger, nil
}

func (t *attractionCompletionTrigger) Satisfied(ctx context.Context, userID string) (bool, error) {
	progress, err := t.progressRepo.Get(ctx, userID, t.AttractionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return progress.ProgressPercentage >= 100, nil
}

// CategoryMilestone Trigger
type categoryMilestoneTrigger struct {
	Category  string `mapstructure:"category"`
	Milestone int    `mapstructure:"milestone"`

	category     entity.AttractionCategory
	progressRepo repository.ProgressRepository
}

func newCategoryMilestoneTrigger(
	ctx context.Context, data entity.Map, progressRepo repository.ProgressRepository,
) (*categoryMilestoneTrigger, error) {
	trigger := categoryMilestoneTrigger{progressRepo: progressRepo}
	err := mapstructure.Decode(map[string]any(data), &trigger)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode category_milestone condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed category_milestone condition")
	}

	trigger.category, err = enum.ToEnum[entity.AttractionCategory](trigger.Category)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid category of category_milestone condition: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed category_milestone condition")
	}

	if !slices.Contains(CategoryMilestones, trigger.Milestone) {
		xcontext.Logger(ctx).Errorf("Unknown milestone %d of category_milestone condition", trigger.Milestone)
		return nil, errorx.New(errorx.Internal, "Malformed category_milestone condition")
	}

	return &trigger, nil
}

func (t *categoryMilestoneTrigger) Satisfied(ctx context.Context, userID string) (bool, error) {
	count, err := t.progressRepo.CountCompletedByCategory(ctx, userID, t.category)
	if err != nil {
		return false, err
	}

	return count >= int64(t.Milestone), nil
}

// Manual Trigger
type manualTrigger struct{}

func newManualTrigger(context.Context, entity.Map) (*manualTrigger, error) {
	return &manualTrigger{}, nil
}

// Satisfied always reports false. Manual rewards are granted by an external
// administrative action, never by the scanner.
func (t *manualTrigger) Satisfied(context.Context, string) (bool, error) {
	return false, nil
}
