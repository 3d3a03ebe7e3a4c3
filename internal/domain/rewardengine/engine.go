package rewardengine

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// Engine evaluates every active reward definition a user does not yet hold
// and grants the satisfied ones. Granting rides on the (user, reward)
// uniqueness constraint, so repeated scans of the same state never
// double-grant.
type Engine struct {
	rewardRepo     repository.RewardRepository
	userRewardRepo repository.UserRewardRepository
	submissionRepo repository.SubmissionRepository
	progressRepo   repository.ProgressRepository
}

func NewEngine(
	rewardRepo repository.RewardRepository,
	userRewardRepo repository.UserRewardRepository,
	submissionRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
) *Engine {
	return &Engine{
		rewardRepo:     rewardRepo,
		userRewardRepo: userRewardRepo,
		submissionRepo: submissionRepo,
		progressRepo:   progressRepo,
	}
}

// ScanAndGrant returns the rewards granted by this scan. A defective
// definition never blocks the others; it is logged and skipped.
func (e *Engine) ScanAndGrant(ctx context.Context, userID string) ([]entity.Reward, error) {
	rewards, err := e.rewardRepo.GetActiveList(ctx)
	if err != nil {
		return nil, err
	}

	held, err := e.userRewardRepo.GetListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	heldSet := map[string]bool{}
	for _, userReward := range held {
		heldSet[userReward.RewardID] = true
	}

	var granted []entity.Reward
	for _, reward := range rewards {
		if heldSet[reward.ID] {
			continue
		}

		trigger, err := NewTrigger(ctx, &reward, e.submissionRepo, e.progressRepo)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot build trigger of reward %s: %v", reward.ID, err)
			continue
		}

		satisfied, err := trigger.Satisfied(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot evaluate trigger of reward %s: %v", reward.ID, err)
			continue
		}

		if !satisfied {
			continue
		}

		err = e.userRewardRepo.Create(ctx, &entity.UserReward{
			UserID:   userID,
			RewardID: reward.ID,
		})
		if err != nil {
			// A concurrent scan won the race, the reward is already held.
			if repository.IsDuplicateKeyError(err) {
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot grant reward %s: %v", reward.ID, err)
			continue
		}

		granted = append(granted, reward)
	}

	return granted, nil
}
