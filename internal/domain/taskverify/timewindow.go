package taskverify

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// TimeBased Verifier
type timeBasedVerifier struct {
	StartTime string `mapstructure:"start_time" structs:"start_time"`
	EndTime   string `mapstructure:"end_time" structs:"end_time"`

	start time.Duration
	end   time.Duration
}

type timeBasedAnswer struct {
	SubmittedAt string `structs:"submitted_at"`
}

func newTimeBasedVerifier(ctx context.Context, data map[string]any) (*timeBasedVerifier, error) {
	window := timeBasedVerifier{}
	err := mapstructure.Decode(data, &window)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode time_based config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed time_based config")
	}

	window.start, err = parseDayTime(window.StartTime)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid start time of time_based config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed time_based config")
	}

	window.end, err = parseDayTime(window.EndTime)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid end time of time_based config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed time_based config")
	}

	return &window, nil
}

// parseDayTime parses a HH:MM clock value into an offset from midnight.
func parseDayTime(value string) (time.Duration, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func (v *timeBasedVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	location, err := time.LoadLocation(xcontext.Configs(ctx).Task.Timezone)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load service timezone: %v", err)
		return nil, errorx.New(errorx.Internal, "Invalid service timezone")
	}

	now := time.Now().In(location)
	sinceMidnight := time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute

	inWindow := false
	if v.start <= v.end {
		inWindow = sinceMidnight >= v.start && sinceMidnight <= v.end
	} else {
		// The window wraps past midnight, for example 22:00 to 02:00.
		inWindow = sinceMidnight >= v.start || sinceMidnight <= v.end
	}

	answer := structs.Map(timeBasedAnswer{SubmittedAt: now.Format(time.RFC3339)})
	if !inWindow {
		explanation := fmt.Sprintf("This task is only open between %s and %s", v.StartTime, v.EndTime)
		return incorrect(0, explanation, answer), nil
	}

	return correct(answer), nil
}
