package taskverify

import (
	"database/sql"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/testutil"
)

func requireVerifyErrorCode(t *testing.T, err error, code errorx.Code) {
	t.Helper()
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, code, errx.Code)
}

// latitudeAtDistance returns the latitude of a point the given number of
// meters due north of the equator.
func latitudeAtDistance(meters float64) float64 {
	return meters / earthRadiusMeters * 180 / math.Pi
}

func testAttraction() *entity.Attraction {
	return &entity.Attraction{
		Base:      entity.Base{ID: "attraction1"},
		Latitude:  sql.NullFloat64{Float64: 0, Valid: true},
		Longitude: sql.NullFloat64{Float64: 0, Valid: true},
	}
}

func Test_checkinVerifier_Verify_token(t *testing.T) {
	ctx := testutil.MockContext()
	verifier, err := newCheckinVerifier(ctx, map[string]any{"token": "secret-token"}, testAttraction())
	require.NoError(t, err)

	got, err := verifier.Verify(ctx, entity.Map{"token": "secret-token"})
	require.NoError(t, err)
	require.True(t, got.Correct)
	require.Equal(t, 100, got.Score)

	got, err = verifier.Verify(ctx, entity.Map{"token": "wrong-token"})
	require.NoError(t, err)
	require.False(t, got.Correct)
	require.Equal(t, "Invalid token", got.Explanation)
}

func Test_checkinVerifier_Verify_location(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		accuracy float64
		want     bool
	}{
		{name: "inside base radius", distance: 99, accuracy: 40, want: true},
		{name: "outside base radius", distance: 101, accuracy: 40, want: false},
		{name: "inside expanded radius", distance: 149, accuracy: 100, want: true},
		{name: "outside expanded radius", distance: 151, accuracy: 100, want: false},
		{name: "accuracy too low even on the spot", distance: 0, accuracy: 160, want: false},
	}

	ctx := testutil.MockContext()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := newCheckinVerifier(ctx, map[string]any{}, testAttraction())
			require.NoError(t, err)

			got, err := verifier.Verify(ctx, entity.Map{
				"latitude":  latitudeAtDistance(tt.distance),
				"longitude": float64(0),
				"accuracy":  tt.accuracy,
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Correct)
		})
	}
}

func Test_checkinVerifier_Verify_invalidInput(t *testing.T) {
	ctx := testutil.MockContext()
	verifier, err := newCheckinVerifier(ctx, map[string]any{"token": "secret-token"}, testAttraction())
	require.NoError(t, err)

	// Neither a token nor a full location proof.
	_, err = verifier.Verify(ctx, entity.Map{"latitude": 0.5})
	require.Error(t, err)

	// A location proof without the GPS accuracy.
	_, err = verifier.Verify(ctx, entity.Map{
		"latitude":  float64(0),
		"longitude": float64(0),
	})
	requireVerifyErrorCode(t, err, errorx.BadRequest)

	// A token proof against a location-only task is a client mistake, not a
	// broken task.
	verifier, err = newCheckinVerifier(ctx, map[string]any{}, testAttraction())
	require.NoError(t, err)

	_, err = verifier.Verify(ctx, entity.Map{"token": "some-token"})
	requireVerifyErrorCode(t, err, errorx.BadRequest)

	// A location proof against an attraction without coordinates.
	noCoords := &entity.Attraction{Base: entity.Base{ID: "attraction2"}}
	verifier, err = newCheckinVerifier(ctx, map[string]any{}, noCoords)
	require.NoError(t, err)

	_, err = verifier.Verify(ctx, entity.Map{
		"latitude":  float64(0),
		"longitude": float64(0),
		"accuracy":  float64(10),
	})
	require.Error(t, err)
}
