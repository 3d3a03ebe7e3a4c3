package taskverify

import (
	"context"
	"fmt"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/crypto"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// Checkin Verifier
type checkinVerifier struct {
	Token string `mapstructure:"token" structs:"token"`

	attraction *entity.Attraction
}

type checkinInput struct {
	Token string `mapstructure:"token"`

	Latitude  *float64 `mapstructure:"latitude"`
	Longitude *float64 `mapstructure:"longitude"`
	Accuracy  *float64 `mapstructure:"accuracy"`
}

type checkinAnswer struct {
	Method   string  `structs:"method"`
	Distance float64 `structs:"distance,omitempty"`
	Accuracy float64 `structs:"accuracy,omitempty"`
}

func newCheckinVerifier(
	ctx context.Context, data map[string]any, attraction *entity.Attraction,
) (*checkinVerifier, error) {
	checkin := checkinVerifier{attraction: attraction}
	err := mapstructure.Decode(data, &checkin)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode checkin config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed checkin config")
	}

	return &checkin, nil
}

func (v *checkinVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := checkinInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode checkin input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid checkin input")
	}

	if attempt.Token != "" {
		return v.verifyToken(ctx, attempt.Token)
	}

	return v.verifyLocation(ctx, attempt)
}

func (v *checkinVerifier) verifyToken(ctx context.Context, token string) (*Result, error) {
	if v.Token == "" {
		xcontext.Logger(ctx).Debugf("Checkin task has no token but received a token proof")
		return nil, errorx.New(errorx.BadRequest, "This task does not accept a token proof")
	}

	if !crypto.SecureCompare(token, v.Token) {
		return incorrect(0, "Invalid token", nil), nil
	}

	return correct(structs.Map(checkinAnswer{Method: "token"})), nil
}

func (v *checkinVerifier) verifyLocation(ctx context.Context, attempt checkinInput) (*Result, error) {
	if attempt.Latitude == nil || attempt.Longitude == nil {
		return nil, errorx.New(errorx.BadRequest, "Provide either a token or a location proof")
	}

	// The reported accuracy drives the allowed radius, so a proof without it
	// cannot be evaluated.
	if attempt.Accuracy == nil {
		return nil, errorx.New(errorx.BadRequest, "Provide the GPS accuracy of the location proof")
	}

	if !v.attraction.Latitude.Valid || !v.attraction.Longitude.Valid {
		xcontext.Logger(ctx).Errorf("Attraction %s has no coordinates for location checkin", v.attraction.ID)
		return nil, errorx.New(errorx.Internal, "This attraction does not accept a location proof")
	}

	if *attempt.Accuracy > geofenceAccuracyMaximum {
		return incorrect(0, "GPS accuracy is too low, move to an open area and retry", nil), nil
	}

	distance := haversineDistance(
		*attempt.Latitude, *attempt.Longitude,
		v.attraction.Latitude.Float64, v.attraction.Longitude.Float64,
	)

	answer := structs.Map(checkinAnswer{
		Method:   "location",
		Distance: distance,
		Accuracy: *attempt.Accuracy,
	})

	if radius := allowedRadius(*attempt.Accuracy); distance > radius {
		explanation := fmt.Sprintf("You are %.0fm away, come within %.0fm of the attraction", distance, radius)
		return incorrect(0, explanation, answer), nil
	}

	return correct(answer), nil
}
