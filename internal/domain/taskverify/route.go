package taskverify

import (
	"context"
	"fmt"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// RouteCompletion Verifier
type routeCompletionVerifier struct {
	Checkpoints []string `mapstructure:"checkpoints" structs:"checkpoints"`
}

type routeCompletionInput struct {
	Visited []string `mapstructure:"visited"`
}

type routeCompletionAnswer struct {
	Visited       []string `structs:"visited"`
	VisitedCount  int      `structs:"visited_count"`
	RequiredCount int      `structs:"required_count"`
}

func newRouteCompletionVerifier(ctx context.Context, data map[string]any) (*routeCompletionVerifier, error) {
	route := routeCompletionVerifier{}
	err := mapstructure.Decode(data, &route)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode route_completion config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed route_completion config")
	}

	if len(route.Checkpoints) == 0 {
		xcontext.Logger(ctx).Errorf("Route_completion config has no checkpoints")
		return nil, errorx.New(errorx.Internal, "Malformed route_completion config")
	}

	return &route, nil
}

func (v *routeCompletionVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := routeCompletionInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode route_completion input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid route_completion input")
	}

	visitedSet := map[string]bool{}
	for _, checkpoint := range attempt.Visited {
		visitedSet[checkpoint] = true
	}

	visitedCount := 0
	for _, checkpoint := range v.Checkpoints {
		if visitedSet[checkpoint] {
			visitedCount++
		}
	}

	required := len(v.Checkpoints)
	answer := structs.Map(routeCompletionAnswer{
		Visited:       attempt.Visited,
		VisitedCount:  visitedCount,
		RequiredCount: required,
	})

	if visitedCount != required {
		explanation := fmt.Sprintf("You visited %d of %d checkpoints", visitedCount, required)
		return incorrect(visitedCount*100/required, explanation, answer), nil
	}

	return correct(answer), nil
}
