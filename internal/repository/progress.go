package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Get(ctx context.Context, userID, attractionID string) (*entity.AttractionProgress, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.AttractionProgress, error)

	// Upsert rewrites the whole progress row with recomputed values. The
	// completed_at column is only ever assigned, never reset to NULL.
	Upsert(ctx context.Context, data *entity.AttractionProgress) error

	CountCompletedByCategory(ctx context.Context, userID string, category entity.AttractionCategory) (int64, error)
}

type progressRepository struct{}

func NewProgressRepository() *progressRepository {
	return &progressRepository{}
}

func (r *progressRepository) Get(
	ctx context.Context, userID, attractionID string,
) (*entity.AttractionProgress, error) {
	var result entity.AttractionProgress
	err := xcontext.DB(ctx).
		Where("user_id=? AND attraction_id=?", userID, attractionID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *progressRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.AttractionProgress, error) {
	result := []entity.AttractionProgress{}
	err := xcontext.DB(ctx).Where("user_id=?", userID).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *progressRepository) Upsert(
	ctx context.Context, data *entity.AttractionProgress,
) error {
	assignments := map[string]interface{}{
		"completed_tasks":     data.CompletedTasks,
		"total_tasks":         data.TotalTasks,
		"progress_percentage": data.ProgressPercentage,
		"updated_at":          gorm.Expr("CURRENT_TIMESTAMP"),
	}

	if data.CompletedAt.Valid {
		assignments["completed_at"] = gorm.Expr(
			"COALESCE(completed_at, ?)", data.CompletedAt.Time)
	}

	return xcontext.DB(ctx).Model(&entity.AttractionProgress{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "attraction_id"},
			},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(data).Error
}

func (r *progressRepository) CountCompletedByCategory(
	ctx context.Context, userID string, category entity.AttractionCategory,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.AttractionProgress{}).
		Joins("JOIN attractions ON attractions.id=attraction_progresses.attraction_id").
		Where("attraction_progresses.user_id=? AND attraction_progresses.progress_percentage=? AND attractions.category=?",
			userID, 100, category).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
