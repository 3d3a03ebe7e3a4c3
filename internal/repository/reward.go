package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type RewardRepository interface {
	Create(ctx context.Context, data *entity.Reward) error
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	GetActiveList(ctx context.Context) ([]entity.Reward, error)
}

type rewardRepository struct{}

func NewRewardRepository() *rewardRepository {
	return &rewardRepository{}
}

func (r *rewardRepository) Create(ctx context.Context, data *entity.Reward) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *rewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var result entity.Reward
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rewardRepository) GetActiveList(ctx context.Context) ([]entity.Reward, error) {
	result := []entity.Reward{}
	if err := xcontext.DB(ctx).Where("is_active=?", true).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
