package repository

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/dateutil"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardFilter struct {
	Range      entity.UserAggregateRange
	RangeValue string
	OrderField string

	Offset int
	Limit  int
}

type LeaderboardKey struct {
	OrderField string
	Range      entity.UserAggregateRange
}

func (k *LeaderboardKey) GetKey() string {
	return fmt.Sprintf("%s|%s", k.OrderField, k.Range)
}

type leaderboardValue struct {
	Data       []entity.UserAggregate
	RangeValue string
}

type UserAggregateRepository interface {
	BulkUpsert(ctx context.Context, aggregates []*entity.UserAggregate) error
	GetLeaderboard(ctx context.Context, filter *LeaderboardFilter) ([]entity.UserAggregate, error)
	GetPrevLeaderboard(ctx context.Context, key LeaderboardKey) ([]entity.UserAggregate, error)
}

type userAggregateRepository struct {
	// Previous-range leaderboards never change again, so they are cached in
	// memory after the first query.
	prevLeaderboard *xsync.MapOf[string, leaderboardValue]
}

func NewUserAggregateRepository() *userAggregateRepository {
	return &userAggregateRepository{
		prevLeaderboard: xsync.NewMapOf[leaderboardValue](),
	}
}

func (r *userAggregateRepository) BulkUpsert(
	ctx context.Context, aggregates []*entity.UserAggregate,
) error {
	for _, a := range aggregates {
		err := xcontext.DB(ctx).Model(&entity.UserAggregate{}).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "user_id"},
					{Name: "range"},
					{Name: "range_value"},
				},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"total_tasks": gorm.Expr("total_tasks + ?", a.TotalTasks),
					"total_xp":    gorm.Expr("total_xp + ?", a.TotalXP),
					"total_ep":    gorm.Expr("total_ep + ?", a.TotalEP),
				}),
			}).
			Create(a).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *userAggregateRepository) GetLeaderboard(
	ctx context.Context, filter *LeaderboardFilter,
) ([]entity.UserAggregate, error) {
	// Week and month values share the "N/YYYY" encoding, so the range column
	// must be part of the filter.
	var result []entity.UserAggregate
	err := xcontext.DB(ctx).Model(&entity.UserAggregate{}).
		Where("`range`=? AND range_value=?", filter.Range, filter.RangeValue).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Order(filter.OrderField + " DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userAggregateRepository) GetPrevLeaderboard(
	ctx context.Context, key LeaderboardKey,
) ([]entity.UserAggregate, error) {
	rangeValue, err := dateutil.GetPreviousValueByRange(key.Range)
	if err != nil {
		return nil, err
	}

	prev, ok := r.prevLeaderboard.Load(key.GetKey())
	if ok && prev.RangeValue == rangeValue {
		return prev.Data, nil
	}

	var result []entity.UserAggregate
	err = xcontext.DB(ctx).Model(&entity.UserAggregate{}).
		Where("`range`=? AND range_value=?", key.Range, rangeValue).
		Order(key.OrderField + " DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	r.prevLeaderboard.Store(key.GetKey(), leaderboardValue{
		Data:       result,
		RangeValue: rangeValue,
	})

	return result, nil
}
