package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type UserRewardRepository interface {
	// Create inserts the grant. The composite primary key on
	// (user_id, reward_id) makes a duplicate grant fail; callers treat that
	// as already-granted, not as an error.
	Create(ctx context.Context, data *entity.UserReward) error

	GetListByUserID(ctx context.Context, userID string) ([]entity.UserReward, error)
}

type userRewardRepository struct{}

func NewUserRewardRepository() *userRewardRepository {
	return &userRewardRepository{}
}

func (r *userRewardRepository) Create(ctx context.Context, data *entity.UserReward) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRewardRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.UserReward, error) {
	result := []entity.UserReward{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
