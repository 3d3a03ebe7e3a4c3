package domain

import (
	"context"
	"time"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type PointDomain interface {
	GetBalance(ctx context.Context, req *model.GetPointBalanceRequest) (*model.GetPointBalanceResponse, error)
	GetHistory(ctx context.Context, req *model.GetPointHistoryRequest) (*model.GetPointHistoryResponse, error)
}

type pointDomain struct {
	pointLedgerRepo repository.PointLedgerRepository
}

func NewPointDomain(pointLedgerRepo repository.PointLedgerRepository) *pointDomain {
	return &pointDomain{pointLedgerRepo: pointLedgerRepo}
}

func (d *pointDomain) GetBalance(
	ctx context.Context, req *model.GetPointBalanceRequest,
) (*model.GetPointBalanceResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	xp, err := d.pointLedgerRepo.Balance(ctx, userID, entity.PointXP)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get xp balance: %v", err)
		return nil, errorx.Unknown
	}

	ep, err := d.pointLedgerRepo.Balance(ctx, userID, entity.PointEP)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ep balance: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetPointBalanceResponse{XP: xp, EP: ep}, nil
}

func (d *pointDomain) GetHistory(
	ctx context.Context, req *model.GetPointHistoryRequest,
) (*model.GetPointHistoryResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	userID := xcontext.RequestUserID(ctx)
	entries, err := d.pointLedgerRepo.GetList(ctx, userID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get point history: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetPointHistoryResponse{Entries: []model.PointLedgerEntry{}}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, model.PointLedgerEntry{
			Amount:     entry.Amount,
			Currency:   string(entry.Currency),
			Reason:     entry.Reason,
			SourceType: entry.SourceType,
			SourceID:   entry.SourceID,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp, nil
}
