package domain

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/dateutil"
	"github.com/trailpoint/backend/pkg/enum"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type statisticDomain struct {
	userAggregateRepo repository.UserAggregateRepository
	userRepo          repository.UserRepository
}

func NewStatisticDomain(
	userAggregateRepo repository.UserAggregateRepository,
	userRepo repository.UserRepository,
) *statisticDomain {
	return &statisticDomain{
		userAggregateRepo: userAggregateRepo,
		userRepo:          userRepo,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	aggregateRange, err := enum.ToEnum[entity.UserAggregateRange](req.Range)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid range %s", req.Range)
	}

	var orderField string
	switch req.Type {
	case "task":
		orderField = "total_tasks"
	case "xp":
		orderField = "total_xp"
	case "ep":
		orderField = "total_ep"
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid leaderboard type %s", req.Type)
	}

	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	rangeValue, err := dateutil.GetCurrentValueByRange(aggregateRange)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid range %s", req.Range)
	}

	leaderboard, err := d.userAggregateRepo.GetLeaderboard(ctx, &repository.LeaderboardFilter{
		Range:      aggregateRange,
		RangeValue: rangeValue,
		OrderField: orderField,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	prevRank := map[string]uint64{}
	prevLeaderboard, err := d.userAggregateRepo.GetPrevLeaderboard(ctx, repository.LeaderboardKey{
		OrderField: orderField,
		Range:      aggregateRange,
	})
	if err != nil {
		// The previous standings are decoration on top of the current ones;
		// losing them is not worth failing the request.
		xcontext.Logger(ctx).Warnf("Cannot get previous leaderboard: %v", err)
	} else {
		for i, aggregate := range prevLeaderboard {
			prevRank[aggregate.UserID] = uint64(i + 1)
		}
	}

	userIDs := []string{}
	for _, aggregate := range leaderboard {
		userIDs = append(userIDs, aggregate.UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	nameByID := map[string]string{}
	for _, user := range users {
		nameByID[user.ID] = user.Name
	}

	resp := &model.GetLeaderboardResponse{Leaderboard: []model.UserAggregate{}}
	for i, aggregate := range leaderboard {
		resp.Leaderboard = append(resp.Leaderboard, model.UserAggregate{
			UserID:      aggregate.UserID,
			UserName:    nameByID[aggregate.UserID],
			TotalTasks:  aggregate.TotalTasks,
			TotalXP:     aggregate.TotalXP,
			TotalEP:     aggregate.TotalEP,
			PrevRank:    prevRank[aggregate.UserID],
			CurrentRank: uint64(req.Offset + i + 1),
		})
	}

	return resp, nil
}
