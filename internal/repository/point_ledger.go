package repository

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type PointLedgerRepository interface {
	// BulkCreate appends entries to the ledger. There is no update or delete
	// method on purpose; corrections are compensating entries.
	BulkCreate(ctx context.Context, entries []*entity.PointLedgerEntry) error

	Balance(ctx context.Context, userID string, currency entity.PointCurrency) (int64, error)
	GetList(ctx context.Context, userID string, offset, limit int) ([]entity.PointLedgerEntry, error)
}

type pointLedgerRepository struct{}

func NewPointLedgerRepository() *pointLedgerRepository {
	return &pointLedgerRepository{}
}

func (r *pointLedgerRepository) BulkCreate(
	ctx context.Context, entries []*entity.PointLedgerEntry,
) error {
	if len(entries) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Create(entries).Error
}

func (r *pointLedgerRepository) Balance(
	ctx context.Context, userID string, currency entity.PointCurrency,
) (int64, error) {
	var balance int64
	err := xcontext.DB(ctx).Model(&entity.PointLedgerEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id=? AND currency=?", userID, currency).
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *pointLedgerRepository) GetList(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.PointLedgerEntry, error) {
	result := []entity.PointLedgerEntry{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
