package taskverify

import (
	"context"
	"strings"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

type singleChoiceInput struct {
	Answer string `mapstructure:"answer"`
}

type singleChoiceAnswer struct {
	Answer string `structs:"answer"`
}

// Direction Verifier
type directionVerifier struct {
	Answer  string   `mapstructure:"answer" structs:"answer"`
	Options []string `mapstructure:"options" structs:"options"`
}

func newDirectionVerifier(ctx context.Context, data map[string]any) (*directionVerifier, error) {
	direction := directionVerifier{}
	err := mapstructure.Decode(data, &direction)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode direction config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed direction config")
	}

	if direction.Answer == "" {
		xcontext.Logger(ctx).Errorf("Direction config has no answer")
		return nil, errorx.New(errorx.Internal, "Malformed direction config")
	}

	return &direction, nil
}

func (v *directionVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := singleChoiceInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil || attempt.Answer == "" {
		xcontext.Logger(ctx).Debugf("Cannot decode direction input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid direction input")
	}

	answer := structs.Map(singleChoiceAnswer{Answer: attempt.Answer})

	// Directions are matched leniently, "North-West" and "north-west" are
	// the same heading.
	if !strings.EqualFold(strings.TrimSpace(attempt.Answer), v.Answer) {
		return incorrect(0, "Wrong direction", answer), nil
	}

	return correct(answer), nil
}

// Riddle Verifier
type riddleVerifier struct {
	Answer  string   `mapstructure:"answer" structs:"answer"`
	Options []string `mapstructure:"options" structs:"options"`
}

func newRiddleVerifier(ctx context.Context, data map[string]any) (*riddleVerifier, error) {
	riddle := riddleVerifier{}
	err := mapstructure.Decode(data, &riddle)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode riddle config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed riddle config")
	}

	if riddle.Answer == "" {
		xcontext.Logger(ctx).Errorf("Riddle config has no answer")
		return nil, errorx.New(errorx.Internal, "Malformed riddle config")
	}

	return &riddle, nil
}

func (v *riddleVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := singleChoiceInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil || attempt.Answer == "" {
		xcontext.Logger(ctx).Debugf("Cannot decode riddle input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid riddle input")
	}

	answer := structs.Map(singleChoiceAnswer{Answer: attempt.Answer})
	if attempt.Answer != v.Answer {
		return incorrect(0, "Wrong answer", answer), nil
	}

	return correct(answer), nil
}
