package taskverify

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// NewVerifier returns the verifier matching the task type. An unknown type or
// a malformed task config is a management-side defect, reported as an
// internal error.
func NewVerifier(
	ctx context.Context, task *entity.Task, attraction *entity.Attraction,
) (Verifier, error) {
	var verifier Verifier
	var err error
	switch task.Type {
	case entity.TaskCheckin:
		verifier, err = newCheckinVerifier(ctx, task.Config, attraction)

	case entity.TaskQuiz:
		verifier, err = newQuizVerifier(ctx, task.Config)

	case entity.TaskCountConfirm:
		verifier, err = newCountConfirmVerifier(ctx, task.Config)

	case entity.TaskDirection:
		verifier, err = newDirectionVerifier(ctx, task.Config)

	case entity.TaskRiddle:
		verifier, err = newRiddleVerifier(ctx, task.Config)

	case entity.TaskObservationMatch:
		verifier, err = newObservationMatchVerifier(ctx, task.Config)

	case entity.TaskRouteCompletion:
		verifier, err = newRouteCompletionVerifier(ctx, task.Config)

	case entity.TaskTimeBased:
		verifier, err = newTimeBasedVerifier(ctx, task.Config)

	default:
		xcontext.Logger(ctx).Errorf("Unsupported task type %s of task %s", task.Type, task.ID)
		return nil, errorx.New(errorx.Internal, "Unsupported task type %s", task.Type)
	}

	if err != nil {
		return nil, err
	}

	return verifier, nil
}
