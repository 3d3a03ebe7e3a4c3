package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type SubmissionRepository interface {
	// Create inserts the submission. The unique index on (user_id, task_id)
	// is the single serialization point for racing attempts, so callers must
	// check the returned error with IsDuplicateKeyError.
	Create(ctx context.Context, data *entity.Submission) error

	Get(ctx context.Context, userID, taskID string) (*entity.Submission, error)
	GetByUserAndTasks(ctx context.Context, userID string, taskIDs []string) ([]entity.Submission, error)
	GetListByUserAndAttraction(ctx context.Context, userID, attractionID string) ([]entity.Submission, error)
	CountByUserAndAttraction(ctx context.Context, userID, attractionID string) (int64, error)
	CountCorrectByUserAndType(ctx context.Context, userID string, taskType entity.TaskType) (int64, error)
}

type submissionRepository struct{}

func NewSubmissionRepository() *submissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(ctx context.Context, data *entity.Submission) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *submissionRepository) Get(
	ctx context.Context, userID, taskID string,
) (*entity.Submission, error) {
	var result entity.Submission
	err := xcontext.DB(ctx).
		Where("user_id=? AND task_id=?", userID, taskID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *submissionRepository) GetByUserAndTasks(
	ctx context.Context, userID string, taskIDs []string,
) ([]entity.Submission, error) {
	result := []entity.Submission{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND task_id IN (?)", userID, taskIDs).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *submissionRepository) GetListByUserAndAttraction(
	ctx context.Context, userID, attractionID string,
) ([]entity.Submission, error) {
	result := []entity.Submission{}
	err := xcontext.DB(ctx).
		Preload("Task").
		Joins("JOIN tasks ON tasks.id=submissions.task_id").
		Where("submissions.user_id=? AND tasks.attraction_id=?", userID, attractionID).
		Order("submissions.created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *submissionRepository) CountByUserAndAttraction(
	ctx context.Context, userID, attractionID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Submission{}).
		Distinct("submissions.task_id").
		Joins("JOIN tasks ON tasks.id=submissions.task_id").
		Where("submissions.user_id=? AND tasks.attraction_id=? AND tasks.is_active=?",
			userID, attractionID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *submissionRepository) CountCorrectByUserAndType(
	ctx context.Context, userID string, taskType entity.TaskType,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Submission{}).
		Joins("JOIN tasks ON tasks.id=submissions.task_id").
		Where("submissions.user_id=? AND submissions.is_correct=? AND tasks.type=?",
			userID, true, taskType).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
