package taskverify

import (
	"context"
	"fmt"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/math"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// ObservationMatch Verifier
type observationMatchVerifier struct {
	Options        []string `mapstructure:"options" structs:"options"`
	CorrectOptions []string `mapstructure:"correct_options" structs:"correct_options"`
}

type observationMatchInput struct {
	Selected []string `mapstructure:"selected"`
}

type observationMatchAnswer struct {
	Selected      []string `structs:"selected"`
	CorrectCount  int      `structs:"correct_count"`
	WrongCount    int      `structs:"wrong_count"`
	RequiredCount int      `structs:"required_count"`
}

func newObservationMatchVerifier(ctx context.Context, data map[string]any) (*observationMatchVerifier, error) {
	observation := observationMatchVerifier{}
	err := mapstructure.Decode(data, &observation)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode observation_match config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed observation_match config")
	}

	if len(observation.CorrectOptions) == 0 {
		xcontext.Logger(ctx).Errorf("Observation_match config has no correct options")
		return nil, errorx.New(errorx.Internal, "Malformed observation_match config")
	}

	return &observation, nil
}

func (v *observationMatchVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := observationMatchInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode observation_match input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid observation_match input")
	}

	if len(attempt.Selected) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Select at least one option")
	}

	correctSet := map[string]bool{}
	for _, option := range v.CorrectOptions {
		correctSet[option] = true
	}

	correctSelected := 0
	wrongSelected := 0
	seen := map[string]bool{}
	for _, option := range attempt.Selected {
		if seen[option] {
			continue
		}
		seen[option] = true

		if correctSet[option] {
			correctSelected++
		} else {
			wrongSelected++
		}
	}

	// Over-selection is penalized, every wrong pick cancels a right one.
	required := len(v.CorrectOptions)
	score := math.MaxInt(0, (correctSelected-wrongSelected)*100/required)

	answer := structs.Map(observationMatchAnswer{
		Selected:      attempt.Selected,
		CorrectCount:  correctSelected,
		WrongCount:    wrongSelected,
		RequiredCount: required,
	})

	if correctSelected != required || wrongSelected != 0 {
		explanation := fmt.Sprintf(
			"You matched %d of %d observations with %d wrong picks",
			correctSelected, required, wrongSelected,
		)
		return incorrect(score, explanation, answer), nil
	}

	return correct(answer), nil
}
