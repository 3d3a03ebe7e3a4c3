package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type AttractionFilter struct {
	Category entity.AttractionCategory

	Offset int
	Limit  int
}

type AttractionRepository interface {
	Create(ctx context.Context, data *entity.Attraction) error
	GetByID(ctx context.Context, id string) (*entity.Attraction, error)
	GetList(ctx context.Context, filter AttractionFilter) ([]entity.Attraction, error)
}

type attractionRepository struct{}

func NewAttractionRepository() *attractionRepository {
	return &attractionRepository{}
}

func (r *attractionRepository) Create(ctx context.Context, data *entity.Attraction) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*entity.Attraction, error) {
	var result entity.Attraction
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *attractionRepository) GetList(
	ctx context.Context, filter AttractionFilter,
) ([]entity.Attraction, error) {
	result := []entity.Attraction{}
	tx := xcontext.DB(ctx).
		Where("is_active=?", true).
		Offset(filter.Offset).
		Limit(filter.Limit)

	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
