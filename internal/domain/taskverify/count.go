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

// CountConfirm Verifier
type countConfirmVerifier struct {
	CorrectCount int `mapstructure:"correct_count" structs:"correct_count"`
	Tolerance    int `mapstructure:"tolerance" structs:"tolerance"`
}

type countConfirmInput struct {
	Count *int `mapstructure:"count"`
}

type countConfirmAnswer struct {
	Count int `structs:"count"`
}

// partialCreditMargin widens the tolerance band for half credit. A count
// outside the tolerance but within tolerance plus this margin scores 50.
const partialCreditMargin = 2

func newCountConfirmVerifier(ctx context.Context, data map[string]any) (*countConfirmVerifier, error) {
	count := countConfirmVerifier{}
	err := mapstructure.Decode(data, &count)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode count_confirm config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed count_confirm config")
	}

	if count.CorrectCount <= 0 {
		xcontext.Logger(ctx).Errorf("Invalid correct count %d of count_confirm config", count.CorrectCount)
		return nil, errorx.New(errorx.Internal, "Malformed count_confirm config")
	}

	if count.Tolerance < 0 {
		xcontext.Logger(ctx).Errorf("Invalid tolerance %d of count_confirm config", count.Tolerance)
		return nil, errorx.New(errorx.Internal, "Malformed count_confirm config")
	}

	return &count, nil
}

func (v *countConfirmVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := countConfirmInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil || attempt.Count == nil {
		xcontext.Logger(ctx).Debugf("Cannot decode count_confirm input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid count_confirm input")
	}

	diff := *attempt.Count - v.CorrectCount
	if diff < 0 {
		diff = -diff
	}

	answer := structs.Map(countConfirmAnswer{Count: *attempt.Count})
	if diff <= v.Tolerance {
		return correct(answer), nil
	}

	explanation := fmt.Sprintf("Your count of %d is too far off, recount and retry", *attempt.Count)
	if diff <= v.Tolerance+partialCreditMargin {
		return incorrect(50, explanation, answer), nil
	}

	return incorrect(0, explanation, answer), nil
}
