package domain

import (
	"context"
	"errors"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/enum"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AttractionDomain interface {
	Get(ctx context.Context, req *model.GetAttractionRequest) (*model.GetAttractionResponse, error)
	GetList(ctx context.Context, req *model.GetListAttractionRequest) (*model.GetListAttractionResponse, error)
}

type attractionDomain struct {
	attractionRepo repository.AttractionRepository
	taskRepo       repository.TaskRepository
}

func NewAttractionDomain(
	attractionRepo repository.AttractionRepository,
	taskRepo repository.TaskRepository,
) *attractionDomain {
	return &attractionDomain{
		attractionRepo: attractionRepo,
		taskRepo:       taskRepo,
	}
}

func (d *attractionDomain) Get(
	ctx context.Context, req *model.GetAttractionRequest,
) (*model.GetAttractionResponse, error) {
	attraction, err := d.attractionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found attraction")
		}

		xcontext.Logger(ctx).Errorf("Cannot get attraction: %v", err)
		return nil, errorx.Unknown
	}

	tasks, err := d.taskRepo.GetListByAttractionID(ctx, attraction.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tasks of attraction: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetAttractionResponse{
		Attraction: convertAttraction(attraction, len(tasks)),
		Tasks:      []model.Task{},
	}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, convertTask(&tasks[i]))
	}

	return resp, nil
}

func (d *attractionDomain) GetList(
	ctx context.Context, req *model.GetListAttractionRequest,
) (*model.GetListAttractionResponse, error) {
	if req.Limit == 0 {
		req.Limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	filter := repository.AttractionFilter{
		Offset: req.Offset,
		Limit:  req.Limit,
	}

	if req.Category != "" {
		category, err := enum.ToEnum[entity.AttractionCategory](req.Category)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid category %s", req.Category)
		}

		filter.Category = category
	}

	attractions, err := d.attractionRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get attractions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListAttractionResponse{Attractions: []model.Attraction{}}
	for i := range attractions {
		count, err := d.taskRepo.CountByAttractionID(ctx, attractions[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count tasks of attraction: %v", err)
			return nil, errorx.Unknown
		}

		resp.Attractions = append(resp.Attractions, convertAttraction(&attractions[i], int(count)))
	}

	return resp, nil
}

func convertAttraction(attraction *entity.Attraction, totalTasks int) model.Attraction {
	result := model.Attraction{
		ID:          attraction.ID,
		Name:        attraction.Name,
		Description: string(attraction.Description),
		Category:    string(attraction.Category),
		TotalTasks:  totalTasks,
	}

	if attraction.Latitude.Valid && attraction.Longitude.Valid {
		result.Latitude = attraction.Latitude.Float64
		result.Longitude = attraction.Longitude.Float64
	}

	return result
}
