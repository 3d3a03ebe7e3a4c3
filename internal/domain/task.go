package domain

import (
	"context"
	"errors"

	"github.com/trailpoint/backend/internal/domain/taskverify"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/internal/repository"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TaskDomain interface {
	Get(ctx context.Context, req *model.GetTaskRequest) (*model.GetTaskResponse, error)
	GetQuiz(ctx context.Context, req *model.GetQuizRequest) (*model.GetQuizResponse, error)
}

type taskDomain struct {
	taskRepo repository.TaskRepository
}

func NewTaskDomain(taskRepo repository.TaskRepository) *taskDomain {
	return &taskDomain{taskRepo: taskRepo}
}

func (d *taskDomain) Get(
	ctx context.Context, req *model.GetTaskRequest,
) (*model.GetTaskResponse, error) {
	task, err := d.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if !task.IsActive {
		return nil, errorx.New(errorx.NotFound, "Not found task")
	}

	resp := model.GetTaskResponse(convertTask(task))
	return &resp, nil
}

// GetQuiz returns the question and option structure of a quiz task with the
// correct answers stripped, for client rendering. Scoring stays server-side.
func (d *taskDomain) GetQuiz(
	ctx context.Context, req *model.GetQuizRequest,
) (*model.GetQuizResponse, error) {
	task, err := d.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if !task.IsActive || task.Type != entity.TaskQuiz {
		return nil, errorx.New(errorx.NotFound, "Not found quiz")
	}

	questions, err := taskverify.ParseQuizQuestions(ctx, task.Config, false)
	if err != nil {
		return nil, err
	}

	resp := &model.GetQuizResponse{TaskID: task.ID, Questions: []model.QuizQuestion{}}
	for _, question := range questions {
		resp.Questions = append(resp.Questions, model.QuizQuestion{
			Question: question.Question,
			Options:  question.Options,
		})
	}

	return resp, nil
}

func convertTask(task *entity.Task) model.Task {
	return model.Task{
		ID:           task.ID,
		AttractionID: task.AttractionID,
		Type:         string(task.Type),
		Title:        task.Title,
		Description:  string(task.Description),
		Index:        task.Index,
	}
}
