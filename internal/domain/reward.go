package domain

import (
	"context"
	"errors"
	"time"

	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RewardDomain interface {
	GetMyRewards(ctx context.Context, req *model.GetMyRewardsRequest) (*model.GetMyRewardsResponse, error)
}

type rewardDomain struct {
	rewardRepo     repository.RewardRepository
	userRewardRepo repository.UserRewardRepository
}

func NewRewardDomain(
	rewardRepo repository.RewardRepository,
	userRewardRepo repository.UserRewardRepository,
) *rewardDomain {
	return &rewardDomain{
		rewardRepo:     rewardRepo,
		userRewardRepo: userRewardRepo,
	}
}

func (d *rewardDomain) GetMyRewards(
	ctx context.Context, req *model.GetMyRewardsRequest,
) (*model.GetMyRewardsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	userRewards, err := d.userRewardRepo.GetListByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user rewards: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyRewardsResponse{Rewards: []model.Reward{}}
	for _, userReward := range userRewards {
		reward, err := d.rewardRepo.GetByID(ctx, userReward.RewardID)
		if err != nil {
			// A definition removed after it was granted is not a reason to
			// fail the whole listing.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get reward: %v", err)
			return nil, errorx.Unknown
		}

		resp.Rewards = append(resp.Rewards, model.Reward{
			ID:          reward.ID,
			Name:        reward.Name,
			Description: string(reward.Description),
			IconURL:     reward.IconURL,
			Type:        string(reward.Type),
			Rarity:      string(reward.Rarity),
			UnlockedAt:  userReward.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
