package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ProgressDomain interface {
	Get(ctx context.Context, req *model.GetProgressRequest) (*model.GetProgressResponse, error)
}

type progressDomain struct {
	attractionRepo repository.AttractionRepository
	progressRepo   repository.ProgressRepository
}

func NewProgressDomain(
	attractionRepo repository.AttractionRepository,
	progressRepo repository.ProgressRepository,
) *progressDomain {
	return &progressDomain{
		attractionRepo: attractionRepo,
		progressRepo:   progressRepo,
	}
}

func (d *progressDomain) Get(
	ctx context.Context, req *model.GetProgressRequest,
) (*model.GetProgressResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if _, err := d.attractionRepo.GetByID(ctx, req.AttractionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found attraction")
		}

		xcontext.Logger(ctx).Errorf("Cannot get attraction: %v", err)
		return nil, errorx.Unknown
	}

	progress, err := d.progressRepo.Get(ctx, userID, req.AttractionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.GetProgressResponse{AttractionID: req.AttractionID}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetProgressResponse(*convertProgress(progress))
	return &resp, nil
}

// refreshProgress recomputes the progress of (user, attraction) from live
// submission and task counts and upserts the row. It is always derived from
// the source of truth, never incremented, so retried or out-of-order writes
// cannot make it drift.
func refreshProgress(
	ctx context.Context,
	taskRepo repository.TaskRepository,
	submissionRepo repository.SubmissionRepository,
	progressRepo repository.ProgressRepository,
	userID, attractionID string,
) (*entity.AttractionProgress, error) {
	completed, err := submissionRepo.CountByUserAndAttraction(ctx, userID, attractionID)
	if err != nil {
		return nil, err
	}

	total, err := taskRepo.CountByAttractionID(ctx, attractionID)
	if err != nil {
		return nil, err
	}

	percentage := 0
	if total > 0 {
		percentage = int(completed * 100 / total)
	}
	if percentage > 100 {
		percentage = 100
	}

	progress := &entity.AttractionProgress{
		UserID:             userID,
		AttractionID:       attractionID,
		CompletedTasks:     int(completed),
		TotalTasks:         int(total),
		ProgressPercentage: percentage,
	}

	if percentage == 100 {
		progress.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	}

	if err := progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return progress, nil
}

func convertProgress(progress *entity.AttractionProgress) *model.Progress {
	result := &model.Progress{
		AttractionID:       progress.AttractionID,
		CompletedTasks:     progress.CompletedTasks,
		TotalTasks:         progress.TotalTasks,
		ProgressPercentage: progress.ProgressPercentage,
	}

	if progress.CompletedAt.Valid {
		result.CompletedAt = progress.CompletedAt.Time.Format(time.RFC3339)
	}

	return result
}
