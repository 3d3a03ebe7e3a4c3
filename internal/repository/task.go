package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type TaskRepository interface {
	Create(ctx context.Context, data *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	GetListByAttractionID(ctx context.Context, attractionID string) ([]entity.Task, error)
	GetCheckinByAttractionID(ctx context.Context, attractionID string) (*entity.Task, error)
	CountByAttractionID(ctx context.Context, attractionID string) (int64, error)
}

type taskRepository struct{}

func NewTaskRepository() *taskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(ctx context.Context, data *entity.Task) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var result entity.Task
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) GetListByAttractionID(
	ctx context.Context, attractionID string,
) ([]entity.Task, error) {
	result := []entity.Task{}
	err := xcontext.DB(ctx).
		Where("attraction_id=? AND is_active=?", attractionID, true).
		Order("`index` ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskRepository) GetCheckinByAttractionID(
	ctx context.Context, attractionID string,
) (*entity.Task, error) {
	var result entity.Task
	err := xcontext.DB(ctx).
		Where("attraction_id=? AND type=? AND is_active=?",
			attractionID, entity.TaskCheckin, true).
		Order("`index` ASC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *taskRepository) CountByAttractionID(
	ctx context.Context, attractionID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Task{}).
		Where("attraction_id=? AND is_active=?", attractionID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
